package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fueldelivery/models"
)

func TestFormatLiters(t *testing.T) {
	assert.Equal(t, "1.234", FormatLiters(models.NewQuantity(1234.0)))
	assert.Equal(t, "16.000", FormatLiters(models.NewQuantity(16000)))
	assert.Equal(t, "1.250.000", FormatLiters(models.NewQuantity(1250000.4)))
	assert.Equal(t, "999", FormatLiters(models.NewQuantity(999)))
	assert.Equal(t, "0", FormatLiters(models.Quantity{}))
	assert.Equal(t, "0", FormatLiters(models.ParseQuantity("banyak")))
	assert.Equal(t, "2", FormatLiters(models.NewQuantity(2.5)))
}
