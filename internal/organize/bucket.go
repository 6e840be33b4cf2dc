package organize

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ytget/jobpdf/internal/platform"
)

const (
	// DefaultBaseDir is created relative to the working directory
	DefaultBaseDir = "output"

	// BucketLayout renders as full month name and four-digit year, e.g. "June 2024"
	BucketLayout = "January 2006"
)

// BucketName returns the bucket directory name for t in its own location
func BucketName(t time.Time) string {
	return t.Format(BucketLayout)
}

// BucketPath joins the bucket for t under baseDir without touching the filesystem
func BucketPath(baseDir string, t time.Time) string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return filepath.Join(baseDir, BucketName(t))
}

// ResolveBucketDirectory returns baseDir/<Month Year> for now and makes sure it exists.
// Calling it again for the same month is a no-op returning the same path.
func ResolveBucketDirectory(baseDir string, now time.Time) (string, error) {
	dir := BucketPath(baseDir, now)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create bucket directory %s: %w", dir, err)
	}
	return dir, nil
}

// ResolveCurrentBucket resolves the bucket for the current local time
func ResolveCurrentBucket(baseDir string) (string, error) {
	return ResolveBucketDirectory(baseDir, time.Now())
}
