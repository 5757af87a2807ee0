package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
)

func TestFileCompanyRepoDefaults(t *testing.T) {
	repo := NewFileCompanyRepo(filepath.Join(t.TempDir(), "company.json"))
	p, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCompanyProfile(), p)
}

func TestFileCompanyRepoSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewFileCompanyRepo(filepath.Join(t.TempDir(), "cfg", "company.json"))

	want := models.CompanyProfile{Name: "PT. Maju", Address: "Jl. Baru 1", Phone: "0271", Email: "a@b.c", Website: "maju.id"}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileCompanyRepoReadsLegacyKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config_identitas.json")
	legacy := `{"Nama Perusahaan": "PT. Lama", "Alamat 1": "Jl. Lama", "Telepon": "1", "Email": "x@y.z", "Website": "lama.id"}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	got, err := NewFileCompanyRepo(path).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PT. Lama", got.Name)
	assert.Equal(t, "Jl. Lama", got.Address)
	assert.Equal(t, "lama.id", got.Website)
}

func TestFileCompanyRepoCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "company.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got, err := NewFileCompanyRepo(path).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCompanyProfile(), got)
}
