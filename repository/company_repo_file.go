package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

// Keys written by older releases of the settings page.
var legacyCompanyKeys = map[string]string{
	"Nama Perusahaan": "name",
	"Alamat 1":        "address",
	"Telepon":         "phone",
	"Email":           "email",
	"Website":         "website",
}

// FileCompanyRepo keeps the profile in a JSON file. A missing or unreadable
// file yields the defaults.
type FileCompanyRepo struct {
	Path string
	mu   sync.Mutex
}

func NewFileCompanyRepo(path string) *FileCompanyRepo {
	return &FileCompanyRepo{Path: path}
}

func (r *FileCompanyRepo) Get(_ context.Context) (models.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", r.Path).Msg("company file unreadable, using defaults")
		}
		return models.DefaultCompanyProfile(), nil
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn().Err(err).Str("path", r.Path).Msg("company file corrupt, using defaults")
		return models.DefaultCompanyProfile(), nil
	}
	for legacy, key := range legacyCompanyKeys {
		if v, ok := raw[legacy]; ok {
			if _, set := raw[key]; !set {
				raw[key] = v
			}
		}
	}
	return models.CompanyProfile{
		Name:    raw["name"],
		Address: raw["address"],
		Phone:   raw["phone"],
		Email:   raw["email"],
		Website: raw["website"],
	}, nil
}

func (r *FileCompanyRepo) Save(_ context.Context, profile models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(profile, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create company dir")
		}
	}
	return errors.Wrap(os.WriteFile(r.Path, data, 0o644), "write company file")
}
