package download

import (
	"context"
	"time"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	// Convert renders url into the current bucket under filename and returns the final path.
	Convert(ctx context.Context, url, filename string) (string, error)

	// EngineName returns the name of the rendering engine in use
	EngineName() string

	// SetRenderTimeout bounds a single render call; zero or negative disables the bound
	SetRenderTimeout(timeout time.Duration)

	// SetBaseDirectory sets the directory that holds the month/year buckets
	SetBaseDirectory(dir string)
}
