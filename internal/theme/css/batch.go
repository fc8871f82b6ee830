package css

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"petroflow/internal/log"
)

// BatchStyleID is the reserved document id for batched variable overrides.
// It is distinct from StyleID so overrides layer on top of the applied theme.
const BatchStyleID = "petroflow-theme-overrides"

// DefaultFlushDelay is roughly one frame at 60Hz.
const DefaultFlushDelay = 16 * time.Millisecond

// Batcher coalesces individual CSS variable updates into a single document
// write. Updates arriving within the flush window are merged, last write per
// variable wins, and the timer restarts on every update so a burst flushes
// once after it quiets down.
type Batcher struct {
	mu      sync.Mutex
	doc     Document
	delay   time.Duration
	pending map[string]string
	applied map[string]string
	timer   *time.Timer
}

// NewBatcher builds a batcher writing to doc. A non-positive delay selects
// the default flush window.
func NewBatcher(doc Document, delay time.Duration) *Batcher {
	if delay <= 0 {
		delay = DefaultFlushDelay
	}
	return &Batcher{
		doc:     doc,
		delay:   delay,
		pending: make(map[string]string),
		applied: make(map[string]string),
	}
}

// Update schedules a variable write. The name is normalized to a custom
// property, so both "primary" and "--pf-primary" address the same variable.
func (b *Batcher) Update(name, value string) {
	name = normalizeVariable(name)
	if name == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending[name] = value
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, b.flushPending)
}

// Flush writes any pending updates immediately and cancels the timer.
func (b *Batcher) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()
	b.flushPending()
}

// Reset drops every pending and applied override and removes the override
// stylesheet from the document.
func (b *Batcher) Reset() error {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pending = make(map[string]string)
	b.applied = make(map[string]string)
	b.mu.Unlock()
	return b.doc.RemoveStyle(BatchStyleID)
}

// Pending reports the number of queued updates.
func (b *Batcher) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Batcher) flushPending() {
	b.mu.Lock()
	if len(b.pending) == 0 {
		b.mu.Unlock()
		return
	}
	flushed := len(b.pending)
	for name, value := range b.pending {
		b.applied[name] = value
	}
	b.pending = make(map[string]string)
	b.timer = nil
	block := overrideBlock(b.applied)
	b.mu.Unlock()

	if err := b.doc.UpsertStyle(BatchStyleID, block); err != nil {
		log.Error(context.Background(), "variable batch flush failed", "variables", flushed, "error", err)
	}
}

func overrideBlock(vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(":root{")
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte(':')
		sb.WriteString(vars[name])
		sb.WriteByte(';')
	}
	sb.WriteString("}")
	return sb.String()
}

func normalizeVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return variablePrefix + name
}
