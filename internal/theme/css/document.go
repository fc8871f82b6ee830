package css

import (
	"fmt"
	"sort"
	"sync"
)

// Document is the surface themes are applied to. The server implementation
// holds injected stylesheets in memory and serves them over HTTP; tests use
// the same type directly.
type Document interface {
	// UpsertStyle replaces the stylesheet registered under id, creating it
	// on first use. At most one stylesheet exists per id.
	UpsertStyle(id, stylesheet string) error
	// RemoveStyle drops the stylesheet registered under id, if any.
	RemoveStyle(id string) error
	// Style returns the stylesheet registered under id.
	Style(id string) (string, bool)
}

// MemoryDocument is a concurrency-safe in-memory Document.
type MemoryDocument struct {
	mu     sync.RWMutex
	styles map[string]string
}

// NewMemoryDocument returns an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{styles: make(map[string]string)}
}

func (d *MemoryDocument) UpsertStyle(id, stylesheet string) error {
	if id == "" {
		return fmt.Errorf("upsert style: empty id")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.styles[id] = stylesheet
	return nil
}

func (d *MemoryDocument) RemoveStyle(id string) error {
	if id == "" {
		return fmt.Errorf("remove style: empty id")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.styles, id)
	return nil
}

func (d *MemoryDocument) Style(id string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.styles[id]
	return s, ok
}

// StyleIDs lists the registered ids in sorted order.
func (d *MemoryDocument) StyleIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, 0, len(d.styles))
	for id := range d.styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Combined concatenates every registered stylesheet in id order. The server
// serves this as the tenant stylesheet.
func (d *MemoryDocument) Combined() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, 0, len(d.styles))
	for id := range d.styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out string
	for _, id := range ids {
		out += d.styles[id]
	}
	return out
}

// failingDocument is a Document whose writes always fail. Used by tests to
// exercise the apply recovery path.
type failingDocument struct{ err error }

func (f failingDocument) UpsertStyle(string, string) error { return f.err }
func (f failingDocument) RemoveStyle(string) error         { return f.err }
func (f failingDocument) Style(string) (string, bool)      { return "", false }
