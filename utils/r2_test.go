package utils

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
)

func TestPublicObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/010125-01.pdf", PublicObjectURL("https://cdn.example.com/", "010125-01.pdf"))
	assert.Equal(t, "https://cdn.example.com/a%20b.pdf", PublicObjectURL("https://cdn.example.com", "a b.pdf"))
}

func TestR2ArchiverRequiresConfig(t *testing.T) {
	a := NewR2Archiver(R2Config{Bucket: "receipts"})
	_, err := a.Upload(context.Background(), []byte("%PDF"), "x.pdf", "application/pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConfigMissing))
}

func TestR2ArchiverDeleteRequiresConfig(t *testing.T) {
	a := NewR2Archiver(R2Config{})
	err := a.Delete(context.Background(), "010125-01.pdf")
	assert.True(t, errors.Is(err, models.ErrConfigMissing))
}
