package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/jobpdf/internal/download"
	"github.com/ytget/jobpdf/internal/model"
	"github.com/ytget/jobpdf/internal/platform"
)

// Operation names used in failures
const (
	OpOpen       = "open"
	OpReveal     = "reveal"
	OpProperties = "properties"
	OpDelete     = "delete"

	RecordIDPrefix = "record-"
)

// ErrNoSelection is returned when an action refers to a record that is not in the list
var ErrNoSelection = errors.New("no file selected")

// Controller owns the session state and performs user actions on it
type Controller struct {
	converter Converter
	opener    FileOpener
	tracker   *Tracker
	onUpdate  func() // callback for UI updates
	now       func() time.Time
}

// NewController creates a controller with an empty record list
func NewController(converter Converter, opener FileOpener) *Controller {
	return &Controller{
		converter: converter,
		opener:    opener,
		tracker:   NewTracker(),
		now:       time.Now,
	}
}

// SetUpdateCallback sets the callback invoked after the record list changes
func (c *Controller) SetUpdateCallback(callback func()) {
	c.onUpdate = callback
}

// EngineName returns the name of the rendering engine in use
func (c *Controller) EngineName() string {
	return c.converter.EngineName()
}

// Submit runs one conversion and records the produced file.
// Nothing is recorded when the conversion fails.
func (c *Controller) Submit(ctx context.Context, req model.ConversionRequest) (*model.DownloadRecord, error) {
	req = model.NewConversionRequest(req.URL, req.DesiredFilename)
	if !req.HasURL() {
		return nil, model.NewFailure(model.FailureUserInput, download.OpConvert, "", download.ErrEmptyURL)
	}

	path, err := c.converter.Convert(ctx, req.URL, req.DesiredFilename)
	if err != nil {
		if kind, ok := model.KindOf(err); ok && kind.IsExternal() {
			log.Printf("Submit failed in %s: url=%s, error=%v", c.converter.EngineName(), req.URL, err)
		}
		return nil, err
	}

	size, err := platform.FileSize(path)
	if err != nil {
		log.Printf("Failed to stat %s: %v", path, err)
	}

	record := &model.DownloadRecord{
		ID:        generateRecordID(),
		URL:       req.URL,
		Path:      path,
		SizeBytes: size,
		CreatedAt: c.now(),
	}
	c.tracker.Append(record)
	log.Printf("Record added successfully: ID=%s, Path=%s, Size=%d", record.ID, record.Path, record.SizeBytes)

	c.notifyUpdate()
	return record, nil
}

// Records returns a snapshot of the session records in creation order
func (c *Controller) Records() []*model.DownloadRecord {
	return c.tracker.All()
}

// Record returns a record by ID
func (c *Controller) Record(id string) (*model.DownloadRecord, bool) {
	return c.tracker.Get(id)
}

// Open opens the record's file with the default application
func (c *Controller) Open(id string) error {
	return c.withExistingFile(OpOpen, id, c.opener.OpenFile)
}

// Reveal shows the record's file in the system file manager
func (c *Controller) Reveal(id string) error {
	return c.withExistingFile(OpReveal, id, c.opener.RevealFile)
}

// Properties returns size and absolute location of the record's file
func (c *Controller) Properties(id string) (*model.FileProperties, error) {
	record, err := c.lookup(OpProperties, id)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(record.Path)
	if err != nil {
		return nil, model.NewFailure(model.FailureFilesystem, OpProperties, record.Path, normalizeMissing(err))
	}

	abs, err := filepath.Abs(record.Path)
	if err != nil {
		return nil, model.NewFailure(model.FailureFilesystem, OpProperties, record.Path, err)
	}

	return &model.FileProperties{
		Path:         record.Path,
		AbsolutePath: abs,
		SizeBytes:    info.Size(),
	}, nil
}

// Delete removes the record's file and then the record.
// If the file is already gone the stale record is dropped as well and a
// Filesystem failure wrapping fs.ErrNotExist is returned.
func (c *Controller) Delete(id string) error {
	record, err := c.lookup(OpDelete, id)
	if err != nil {
		return err
	}

	if err := platform.DeleteFile(record.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.tracker.Remove(id)
			log.Printf("Record removed, file was already missing: ID=%s, Path=%s", id, record.Path)
			c.notifyUpdate()
			return model.NewFailure(model.FailureFilesystem, OpDelete, record.Path, fs.ErrNotExist)
		}
		log.Printf("Failed to delete %s: %v", record.Path, err)
		return model.NewFailure(model.FailureFilesystem, OpDelete, record.Path, err)
	}

	c.tracker.Remove(id)
	log.Printf("Record deleted successfully: ID=%s, Path=%s", id, record.Path)
	c.notifyUpdate()
	return nil
}

// IsMissingFile reports whether err means the record's file no longer exists
func IsMissingFile(err error) bool {
	return model.IsKind(err, model.FailureFilesystem) && errors.Is(err, fs.ErrNotExist)
}

// withExistingFile runs action on the record's path after checking the file is still there
func (c *Controller) withExistingFile(op, id string, action func(string) error) error {
	record, err := c.lookup(op, id)
	if err != nil {
		return err
	}

	if !platform.FileExists(record.Path) {
		return model.NewFailure(model.FailureFilesystem, op, record.Path, fs.ErrNotExist)
	}

	if err := action(record.Path); err != nil {
		log.Printf("Failed to %s %s: %v", op, record.Path, err)
		return model.NewFailure(model.FailureFilesystem, op, record.Path, err)
	}
	return nil
}

// lookup finds a record or reports a missing selection
func (c *Controller) lookup(op, id string) (*model.DownloadRecord, error) {
	if id == "" {
		return nil, model.NewFailure(model.FailureUserInput, op, "", ErrNoSelection)
	}
	record, ok := c.tracker.Get(id)
	if !ok {
		return nil, model.NewFailure(model.FailureUserInput, op, "", fmt.Errorf("%w: %s", ErrNoSelection, id))
	}
	return record, nil
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

// normalizeMissing replaces a *PathError for a missing file with fs.ErrNotExist itself
func normalizeMissing(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fs.ErrNotExist
	}
	return err
}

// generateRecordID generates a unique record ID
func generateRecordID() string {
	// UUID v7 sorts by creation time
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RecordIDPrefix+"%d", time.Now().UnixNano())
	}
	return RecordIDPrefix + id.String()
}
