package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
	"fueldelivery/repository"
	"fueldelivery/utils"
)

// Archiver stores a rendered document and returns where it can be fetched.
type Archiver interface {
	Upload(ctx context.Context, body []byte, filename, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
}

// Receipt is a rendered delivery receipt.
type Receipt struct {
	PDF        []byte
	FileName   string
	ArchiveURL string
	// ArchiveErr is set when archiving was asked for and failed; the PDF is
	// still good.
	ArchiveErr error
}

type ReceiptService struct {
	repo     *repository.ReceiptRepository
	printer  utils.PDFPrinter
	archiver Archiver
}

// NewReceiptService takes a nil archiver when archiving is not configured.
func NewReceiptService(repo *repository.ReceiptRepository, printer utils.PDFPrinter, archiver Archiver) *ReceiptService {
	return &ReceiptService{repo: repo, printer: printer, archiver: archiver}
}

// Render builds the receipt PDF of a saved order.
func (s *ReceiptService) Render(ctx context.Context, doNumber string, archive bool) (*Receipt, error) {
	order, err := s.repo.GetOrderForReceipt(ctx, doNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "order %s", doNumber)
	}
	pdf, err := s.RenderOrder(ctx, *order)
	if err != nil {
		return nil, err
	}

	rc := &Receipt{PDF: pdf, FileName: receiptFileName(order.DONumber)}
	if archive {
		rc.ArchiveURL, rc.ArchiveErr = s.archive(ctx, rc)
	}
	return rc, nil
}

// RenderOrder renders any order, saved or not.
func (s *ReceiptService) RenderOrder(ctx context.Context, order models.DeliveryOrder) ([]byte, error) {
	company, err := s.repo.GetCompanyForReceipt(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("company profile unavailable, using defaults")
		company = models.DefaultCompanyProfile()
	}
	data := utils.BuildReceiptData(order, company, s.repo.GetHeaderForReceipt(ctx))

	html, err := utils.RenderReceiptHTML(data)
	if err != nil {
		return nil, err
	}
	pdf, err := s.printer.PrintPDF(ctx, html)
	if err != nil {
		log.Error().Err(err).Str("do_number", order.DONumber).Msg("receipt render failed")
		if !errors.Is(err, models.ErrRender) {
			err = errors.Wrap(models.ErrRender, err.Error())
		}
		return nil, err
	}
	return pdf, nil
}

// RemoveArchived deletes the archived receipt of doNumber. It is a no-op
// when archiving is not configured.
func (s *ReceiptService) RemoveArchived(ctx context.Context, doNumber string) error {
	if s.archiver == nil {
		return nil
	}
	name := receiptFileName(doNumber)
	if err := s.archiver.Delete(ctx, name); err != nil {
		return errors.Wrapf(err, "remove archived %s", name)
	}
	log.Info().Str("file", name).Msg("archived receipt removed")
	return nil
}

func receiptFileName(doNumber string) string {
	return doNumber + ".pdf"
}

func (s *ReceiptService) archive(ctx context.Context, rc *Receipt) (string, error) {
	if s.archiver == nil {
		return "", errors.Wrap(models.ErrConfigMissing, "receipt archive is not configured")
	}
	url, err := s.archiver.Upload(ctx, rc.PDF, rc.FileName, "application/pdf")
	if err != nil {
		log.Warn().Err(err).Str("file", rc.FileName).Msg("receipt archive failed")
		return "", err
	}
	log.Info().Str("file", rc.FileName).Str("url", url).Msg("receipt archived")
	return url, nil
}
