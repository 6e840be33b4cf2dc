package render

import (
	"fmt"
	"strings"
)

// Options selects engine binaries for New
type Options struct {
	WkhtmltopdfPath string
	ChromePath      string
}

// New returns the renderer registered under name ("wkhtmltopdf" or "chrome").
// An empty name selects wkhtmltopdf.
func New(name string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", WkhtmltopdfName:
		return NewWkhtmltopdf(opts.WkhtmltopdfPath), nil
	case ChromeName:
		return NewChrome(opts.ChromePath), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

// InstallHint returns the message shown when the engine cannot be found
func InstallHint(r Renderer) string {
	return fmt.Sprintf("%s not found or not installed. Please install it.", r.Name())
}
