package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Chrome constants
const (
	ChromeName         = "chrome"
	ReadySelector      = "body"
	PDFFilePermissions = 0644
)

// ChromeCandidates are looked up on PATH, in order, when no explicit path is configured
var ChromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

// Chrome renders pages with a headless Chrome or Chromium instance
type Chrome struct {
	path string
	exec executor
}

// NewChrome creates a renderer. An empty path searches ChromeCandidates.
func NewChrome(path string) *Chrome {
	return newChrome(path, defaultExec)
}

func newChrome(path string, exec executor) *Chrome {
	return &Chrome{path: path, exec: exec}
}

func (c *Chrome) Name() string { return ChromeName }

func (c *Chrome) Available() error {
	_, err := c.resolve()
	return err
}

// resolve returns the browser executable to launch
func (c *Chrome) resolve() (string, error) {
	if c.path != "" {
		p, err := c.exec.LookPath(c.path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrToolUnavailable, c.path, err)
		}
		return p, nil
	}
	for _, name := range ChromeCandidates {
		if p, err := c.exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: none of %v found on PATH", ErrToolUnavailable, ChromeCandidates)
}

// Render navigates to url, waits for the body and prints the page to outputPath
func (c *Chrome) Render(ctx context.Context, url, outputPath string) error {
	browserPath, err := c.resolve()
	if err != nil {
		return err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoFirstRun,
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.ExecPath(browserPath),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	log.Printf("Printing %s with %s -> %s", url, browserPath, outputPath)

	var buf []byte
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(ReadySelector, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s: %v", ErrToolUnavailable, browserPath, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("chrome interrupted: %w", ctxErr)
		}
		return fmt.Errorf("chrome failed to print %s: %w", url, err)
	}

	if err := os.WriteFile(outputPath, buf, PDFFilePermissions); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}
