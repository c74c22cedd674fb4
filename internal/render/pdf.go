package render

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPrintTimeout bounds a single print operation.
const DefaultPrintTimeout = 30 * time.Second

// Printer produces a downloadable document from rendered markup. It is an
// opaque collaborator: a failed print surfaces an error and must not be
// assumed to have produced anything.
type Printer interface {
	Print(ctx context.Context, htmlContent string) ([]byte, error)
}

// ChromePrinter prints markup to PDF through a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromePrinter struct {
	Timeout time.Duration
}

// NewChromePrinter creates a printer with the default timeout.
func NewChromePrinter() *ChromePrinter {
	return &ChromePrinter{Timeout: DefaultPrintTimeout}
}

// Print loads the markup into a headless browser page and prints it to PDF.
func (p *ChromePrinter) Print(ctx context.Context, htmlContent string) ([]byte, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "headless print failed", Cause: err}
	}

	return pdf, nil
}
