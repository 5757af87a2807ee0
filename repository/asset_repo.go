package repository

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

// HeaderCandidates are looked up in order; the first existing file is the
// receipt header. Uploads are written to the last one.
var HeaderCandidates = []string{"sha.jpg", "header_sha.jpg", "header_sha.png"}

const maxHeaderWidth = 1200

type AssetRepository interface {
	// Header returns nil when no header image exists.
	Header(ctx context.Context) ([]byte, error)
	SaveHeader(ctx context.Context, data []byte) error
}

type FileAssetRepo struct {
	Dir string
}

func NewFileAssetRepo(dir string) *FileAssetRepo {
	return &FileAssetRepo{Dir: dir}
}

func (r *FileAssetRepo) Header(_ context.Context) ([]byte, error) {
	for _, name := range HeaderCandidates {
		data, err := os.ReadFile(filepath.Join(r.Dir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read header %s", name)
		}
	}
	return nil, nil
}

// SaveHeader accepts a PNG or JPEG, scales it down to maxHeaderWidth and
// stores it as PNG. Older header files are removed so the upload is the one
// printed.
func (r *FileAssetRepo) SaveHeader(_ context.Context, data []byte) error {
	mt := mimetype.Detect(data)
	if !mt.Is("image/png") && !mt.Is("image/jpeg") {
		return models.ValidationError("header must be a PNG or JPEG image, got " + mt.String())
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return models.ValidationError("cannot decode image: " + err.Error())
	}
	if img.Bounds().Dx() > maxHeaderWidth {
		img = imaging.Resize(img, maxHeaderWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return errors.Wrap(err, "encode header")
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create assets dir")
	}
	target := HeaderCandidates[len(HeaderCandidates)-1]
	if err := os.WriteFile(filepath.Join(r.Dir, target), buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, name := range HeaderCandidates[:len(HeaderCandidates)-1] {
		if err := os.Remove(filepath.Join(r.Dir, name)); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", name).Msg("could not remove old header")
		}
	}
	log.Info().Str("file", target).Int("width", img.Bounds().Dx()).Msg("header image saved")
	return nil
}
