package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ytget/jobpdf/internal/model"
	"github.com/ytget/jobpdf/internal/organize"
	"github.com/ytget/jobpdf/internal/platform"
	"github.com/ytget/jobpdf/internal/render"
)

// Conversion constants
const (
	// PartialSuffix marks a file the engine is still writing
	PartialSuffix = ".part"

	// DefaultRenderTimeout bounds a single engine run
	DefaultRenderTimeout = 2 * time.Minute

	// OpConvert names the operation in failures
	OpConvert = "convert"
)

// ErrEmptyURL is returned when the request carries no URL
var ErrEmptyURL = errors.New("URL is empty")

// ErrNoOutput is returned when the engine exits cleanly without writing a file
var ErrNoOutput = errors.New("rendering engine produced no output")

// Service converts web pages into PDFs organized by month
type Service struct {
	renderer render.Renderer
	baseDir  string
	timeout  time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewService creates a new conversion service writing under baseDir
func NewService(renderer render.Renderer, baseDir string) *Service {
	if baseDir == "" {
		baseDir = organize.DefaultBaseDir
	}
	return &Service{
		renderer: renderer,
		baseDir:  baseDir,
		timeout:  DefaultRenderTimeout,
		now:      time.Now,
	}
}

// EngineName returns the name of the rendering engine in use
func (s *Service) EngineName() string {
	return s.renderer.Name()
}

// SetRenderTimeout sets the render bound
func (s *Service) SetRenderTimeout(timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = timeout
}

// SetBaseDirectory sets the directory that holds the month/year buckets
func (s *Service) SetBaseDirectory(dir string) {
	if dir == "" {
		dir = organize.DefaultBaseDir
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseDir = dir
}

// BaseDirectory returns the directory that holds the month/year buckets
func (s *Service) BaseDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseDir
}

// Convert runs one conversion attempt. No directory is created when the URL is
// empty or the engine is unavailable. An existing file at the target path is
// replaced.
func (s *Service) Convert(ctx context.Context, url, filename string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", model.NewFailure(model.FailureUserInput, OpConvert, "", ErrEmptyURL)
	}

	name := strings.TrimSpace(filename)
	if err := organize.ValidateFilename(name); err != nil {
		return "", model.NewFailure(model.FailureUserInput, OpConvert, "", err)
	}
	name = organize.NormalizeFilename(name)

	if err := s.renderer.Available(); err != nil {
		log.Printf("Rendering engine %s unavailable: %v", s.renderer.Name(), err)
		return "", model.NewFailure(model.FailureToolUnavailable, OpConvert, "", err)
	}

	s.mu.RLock()
	baseDir, timeout := s.baseDir, s.timeout
	s.mu.RUnlock()

	dir, err := organize.ResolveBucketDirectory(baseDir, s.now())
	if err != nil {
		return "", model.NewFailure(model.FailureFilesystem, OpConvert, baseDir, err)
	}

	finalPath := filepath.Join(dir, name)
	partPath := finalPath + PartialSuffix

	renderCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Printf("Conversion started: url=%s, path=%s, engine=%s", url, finalPath, s.renderer.Name())
	started := time.Now()

	if err := s.renderer.Render(renderCtx, url, partPath); err != nil {
		// Remove partial output file
		os.Remove(partPath)
		log.Printf("Conversion failed: url=%s, error=%v", url, err)
		if errors.Is(err, render.ErrToolUnavailable) {
			return "", model.NewFailure(model.FailureToolUnavailable, OpConvert, finalPath, err)
		}
		return "", model.NewFailure(model.FailureConversionFailed, OpConvert, finalPath, err)
	}

	if !platform.FileExists(partPath) {
		return "", model.NewFailure(model.FailureConversionFailed, OpConvert, finalPath, ErrNoOutput)
	}

	if err := os.Rename(partPath, finalPath); err != nil {
		os.Remove(partPath)
		return "", model.NewFailure(model.FailureFilesystem, OpConvert, finalPath, fmt.Errorf("failed to move output into place: %w", err))
	}

	log.Printf("Conversion completed: path=%s, took=%s", finalPath, time.Since(started).Round(time.Millisecond))
	return finalPath, nil
}
