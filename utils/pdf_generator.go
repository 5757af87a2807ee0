package utils

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/models"
)

// A4 in inches.
const (
	a4Width  = 8.27
	a4Height = 11.7
)

// PDFPrinter turns a rendered HTML page into a PDF document.
type PDFPrinter interface {
	PrintPDF(ctx context.Context, html []byte) ([]byte, error)
}

// ChromePrinter prints through headless Chrome.
type ChromePrinter struct {
	Timeout   time.Duration
	ExecPath  string // optional chrome binary
	SettleFor time.Duration
}

func NewChromePrinter(timeout time.Duration, execPath string) *ChromePrinter {
	return &ChromePrinter{Timeout: timeout, ExecPath: execPath, SettleFor: 300 * time.Millisecond}
}

func (p *ChromePrinter) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	tmp, err := os.CreateTemp("", "receipt_*.html")
	if err != nil {
		return nil, errors.Wrap(models.ErrRender, err.Error())
	}
	tmpHTML := tmp.Name()
	defer os.Remove(tmpHTML)
	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return nil, errors.Wrap(models.ErrRender, err.Error())
	}
	tmp.Close()

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if p.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(p.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	var pdfBuf []byte
	err = chromedp.Run(taskCtx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(p.SettleFor),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("chrome print failed")
		return nil, errors.Wrap(models.ErrRender, err.Error())
	}
	if len(pdfBuf) == 0 {
		return nil, errors.Wrap(models.ErrRender, "empty pdf")
	}
	return pdfBuf, nil
}
