package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"fueldelivery/models"
)

// R2Config holds the Cloudflare R2 bucket settings.
type R2Config struct {
	AccountID       string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

func (c R2Config) Enabled() bool {
	return c.Bucket != "" && c.AccountID != "" && c.PublicURL != ""
}

// R2Archiver uploads rendered receipts to R2. The client is built lazily.
type R2Archiver struct {
	cfg      R2Config
	client   *s3.Client
	initOnce sync.Once
	initErr  error
}

func NewR2Archiver(cfg R2Config) *R2Archiver {
	return &R2Archiver{cfg: cfg}
}

func (a *R2Archiver) init(ctx context.Context) error {
	a.initOnce.Do(func() {
		if !a.cfg.Enabled() {
			a.initErr = errors.Wrap(models.ErrConfigMissing, "R2 bucket, account id and public url are required")
			return
		}
		endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", a.cfg.AccountID)

		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion("auto"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				a.cfg.AccessKeyID,
				a.cfg.SecretAccessKey,
				"",
			)),
		)
		if err != nil {
			a.initErr = errors.Wrap(err, "load R2 config")
			return
		}
		a.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	})
	return a.initErr
}

// Upload stores the file under its base name and returns the public URL.
func (a *R2Archiver) Upload(ctx context.Context, body []byte, filename, contentType string) (string, error) {
	if err := a.init(ctx); err != nil {
		return "", err
	}

	key := filepath.Base(filename)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "upload to R2")
	}
	return PublicObjectURL(a.cfg.PublicURL, key), nil
}

// Delete removes an object given its key or public URL.
func (a *R2Archiver) Delete(ctx context.Context, fileURL string) error {
	if err := a.init(ctx); err != nil {
		return err
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		return errors.Wrap(err, "invalid file URL")
	}
	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.cfg.Bucket),
		Key:    aws.String(filepath.Base(u.Path)),
	})
	return errors.Wrap(err, "delete R2 object")
}

func PublicObjectURL(base, key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), url.PathEscape(key))
}
