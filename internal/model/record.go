package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// BytesPerKB is used for the "Size: N KB" properties line
const BytesPerKB = 1024

// DownloadRecord tracks one successfully produced file for the current session
type DownloadRecord struct {
	ID        string
	URL       string    // source page
	Path      string    // path of the produced PDF, as returned by the dispatcher
	SizeBytes int64     // file size in bytes, 0 if unknown
	CreatedAt time.Time // when the conversion finished
}

// FileProperties describes a record's backing file at the time it was inspected
type FileProperties struct {
	Path         string
	AbsolutePath string
	SizeBytes    int64
}

// SizeKB returns the size in kilobytes
func (p *FileProperties) SizeKB() float64 {
	return float64(p.SizeBytes) / BytesPerKB
}

// FileName returns the base name of the produced file
func (r *DownloadRecord) FileName() string {
	if r.Path == "" {
		return ""
	}
	return filepath.Base(r.Path)
}

// Bucket returns the month/year directory the file was organized into
func (r *DownloadRecord) Bucket() string {
	if r.Path == "" {
		return ""
	}
	dir := filepath.Base(filepath.Dir(r.Path))
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	return dir
}

// GetDisplayTitle returns file name without extension, or URL as a fallback
func (r *DownloadRecord) GetDisplayTitle() string {
	if name := r.FileName(); name != "" {
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}
	return r.URL
}

// GetSizeString returns a human readable size, or "—" if unknown
func (r *DownloadRecord) GetSizeString() string {
	if r.SizeBytes <= 0 {
		return "—"
	}
	return humanize.IBytes(uint64(r.SizeBytes))
}
