package session

import (
	"context"

	"github.com/ytget/jobpdf/internal/model"
)

// FileOpener hands files to the operating system
type FileOpener interface {
	OpenFile(path string) error
	RevealFile(path string) error
}

// Converter is the part of the conversion service the controller needs
type Converter interface {
	Convert(ctx context.Context, url, filename string) (string, error)
	EngineName() string
}

// Session defines the interface for the session controller.
type Session interface {
	SetUpdateCallback(func())
	Submit(ctx context.Context, req model.ConversionRequest) (*model.DownloadRecord, error)
	Records() []*model.DownloadRecord
	Record(id string) (*model.DownloadRecord, bool)
	Open(id string) error
	Reveal(id string) error
	Properties(id string) (*model.FileProperties, error)
	Delete(id string) error
	EngineName() string
}
