package letter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for Chrome's print backend.
const (
	paperWidthA4  = 8.27
	paperHeightA4 = 11.69
)

// watermarkScript appends the fixed diagonal watermark over the page
// center after layout. Text, rotation, opacity and font are constant
// regardless of document content.
const watermarkScript = `(() => {
	const div = document.createElement("div");
	div.innerHTML = "Not Valid for VISA Purpose";
	div.style.cssText = ` + "`" + `
		position: fixed;
		top: 50%;
		left: 50%;
		opacity: 0.1;
		transform: translate(-50%, -50%) rotate(-45deg);
		font-family: 'Arial', sans-serif;
		font-size: 55pt;
		color: rgba(136, 136, 136);
		z-index: 10000;
		white-space: nowrap;
	` + "`" + `;
	document.body.appendChild(div);
})()`

// Producer turns rendered offer-letter HTML into an A4 PDF using
// headless Chrome. The template relies on CSS layout, so a full
// layout and paint engine is required; a literal-text PDF writer
// would not reproduce it.
type Producer struct {
	execPath string
	timeout  time.Duration
}

// NewProducer creates a Producer. execPath optionally points at the
// Chrome binary; empty means chromedp's default lookup. timeout bounds
// a single production run.
func NewProducer(execPath string, timeout time.Duration) *Producer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Producer{execPath: execPath, timeout: timeout}
}

// Produce renders html to PDF bytes. A browser launch or print failure
// is ErrGeneration; exceeding the deadline is ErrTimeout. Either way
// no partial document is returned and the caller decides how to react;
// there is no internal retry.
func (p *Producer) Produce(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.Evaluate(watermarkScript, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthA4).
				WithPaperHeight(paperHeightA4).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, p.timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return pdf, nil
}
