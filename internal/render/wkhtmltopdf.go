package render

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// wkhtmltopdf constants
const (
	WkhtmltopdfName    = "wkhtmltopdf"
	WkhtmltopdfCommand = "wkhtmltopdf"
	LogLevelFlag       = "--log-level"
	ErrorLogLevel      = "error"
	EncodingFlag       = "--encoding"
	DefaultEncoding    = "UTF-8"
)

// Wkhtmltopdf renders pages by running the wkhtmltopdf binary
type Wkhtmltopdf struct {
	bin  string
	exec executor
}

// NewWkhtmltopdf creates a renderer for the given binary name or path.
// An empty bin falls back to WkhtmltopdfCommand on PATH.
func NewWkhtmltopdf(bin string) *Wkhtmltopdf {
	return newWkhtmltopdf(bin, defaultExec)
}

func newWkhtmltopdf(bin string, exec executor) *Wkhtmltopdf {
	if bin == "" {
		bin = WkhtmltopdfCommand
	}
	return &Wkhtmltopdf{bin: bin, exec: exec}
}

func (w *Wkhtmltopdf) Name() string { return WkhtmltopdfName }

// Binary returns the configured command name or path
func (w *Wkhtmltopdf) Binary() string { return w.bin }

func (w *Wkhtmltopdf) Available() error {
	if _, err := w.exec.LookPath(w.bin); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrToolUnavailable, w.bin, err)
	}
	return nil
}

// Render runs wkhtmltopdf once. A missing binary maps to ErrToolUnavailable,
// a non-zero exit to an error carrying the tool's stderr.
func (w *Wkhtmltopdf) Render(ctx context.Context, url, outputPath string) error {
	args := w.BuildArgs(url, outputPath)
	log.Printf("Running %s for %s -> %s", w.bin, url, outputPath)

	stderr, err := w.exec.Run(ctx, w.bin, args...)
	if err == nil {
		return nil
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %v", ErrToolUnavailable, w.bin, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s interrupted: %w", w.bin, ctxErr)
	}
	if stderr != "" {
		return fmt.Errorf("%s failed: %s: %w", w.bin, stderr, err)
	}
	return fmt.Errorf("%s failed: %w", w.bin, err)
}

// BuildArgs builds the wkhtmltopdf command arguments
func (w *Wkhtmltopdf) BuildArgs(url, outputPath string) []string {
	return []string{
		LogLevelFlag, ErrorLogLevel,   // Errors on stderr, no progress output
		EncodingFlag, DefaultEncoding, // Default text encoding
		url,
		outputPath,
	}
}
