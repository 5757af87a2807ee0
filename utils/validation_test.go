package utils

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
)

func validOrder() models.DeliveryOrder {
	return models.NewOrder("010125-01", newYear, "PT. SHA Solo", models.FuelBiosolarB40)
}

func TestValidateOrderAccepts(t *testing.T) {
	require.NoError(t, ValidateOrder(validOrder()))

	o := validOrder()
	o.Date = models.Date{}
	o.Qty = models.Quantity{}
	require.NoError(t, ValidateOrder(o), "absent values are allowed")
}

func TestValidateOrderRejects(t *testing.T) {
	cases := map[string]func(o *models.DeliveryOrder){
		"missing number": func(o *models.DeliveryOrder) { o.DONumber = "" },
		"bad number":     func(o *models.DeliveryOrder) { o.DONumber = "2025-01" },
		"negative qty":   func(o *models.DeliveryOrder) { o.Qty = models.NewQuantity(-5) },
		"invalid qty":    func(o *models.DeliveryOrder) { o.Qty = models.ParseQuantity("lima") },
		"invalid date":   func(o *models.DeliveryOrder) { o.Date = models.ParseDate("besok") },
		"invalid po":     func(o *models.DeliveryOrder) { o.POClientDate = models.ParseDate("??") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			o := validOrder()
			mutate(&o)
			err := ValidateOrder(o)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrValidation))
		})
	}
}

func TestIsValidDONumber(t *testing.T) {
	assert.True(t, IsValidDONumber("010125-01"))
	assert.True(t, IsValidDONumber("010125-100"))
	assert.False(t, IsValidDONumber("010125-1"))
	assert.False(t, IsValidDONumber(time.Now().Format("2006")))
}
