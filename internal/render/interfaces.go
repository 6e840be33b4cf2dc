package render

import (
	"context"
	"errors"
)

// ErrToolUnavailable is returned when the engine binary cannot be located or started
var ErrToolUnavailable = errors.New("rendering engine not available")

// Renderer defines the interface for an HTML-to-PDF engine.
type Renderer interface {
	// Name returns the engine name shown to the user ("wkhtmltopdf" or "chrome").
	Name() string

	// Available returns nil when the engine can be started, or an error
	// wrapping ErrToolUnavailable.
	Available() error

	// Render fetches url and writes the PDF to outputPath.
	Render(ctx context.Context, url, outputPath string) error
}
