package session

import (
	"sync"

	"github.com/ytget/jobpdf/internal/model"
)

// Tracker keeps produced records in creation order. Duplicate paths are kept
// as separate records.
type Tracker struct {
	records []*model.DownloadRecord
	mu      sync.RWMutex
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Append adds a record at the end of the list
func (t *Tracker) Append(record *model.DownloadRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, record)
}

// Get returns a record by ID
func (t *Tracker) Get(id string) (*model.DownloadRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i := t.indexOf(id); i >= 0 {
		return t.records[i], true
	}
	return nil, false
}

// FindByPath returns the first record pointing at path
func (t *Tracker) FindByPath(path string) (*model.DownloadRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, r := range t.records {
		if r.Path == path {
			return r, true
		}
	}
	return nil, false
}

// Remove deletes the record with the given ID and reports whether it was present
func (t *Tracker) Remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.records = append(t.records[:i], t.records[i+1:]...)
	return true
}

// All returns a snapshot of the records in creation order
func (t *Tracker) All() []*model.DownloadRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*model.DownloadRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}

// indexOf must be called with mu held
func (t *Tracker) indexOf(id string) int {
	for i, r := range t.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
