package css

import (
	"bytes"
	"compress/gzip"
	"io"
	"sync"
	"time"
)

// Cache defaults, overridable through config.ThemeConfig.
const (
	DefaultTTL         = 5 * time.Minute
	DefaultCapacity    = 32
	DefaultCompressMin = 8192
)

// entry is a cached stylesheet. Entries are owned exclusively by the cache;
// callers only ever see the decoded text.
type entry struct {
	data       []byte
	compressed bool
	size       int
	createdAt  time.Time
}

// Cache memoizes generated stylesheets keyed by a hash of the theme document.
// Expiry is lazy: entries are checked against the TTL on read, not swept in
// the background. When the capacity is exceeded the oldest entry is evicted
// first.
type Cache struct {
	mu          sync.Mutex
	ttl         time.Duration
	capacity    int
	compressMin int
	entries     map[uint64]*entry
	order       []uint64 // insertion order, oldest first

	now func() time.Time // test hook
}

// NewCache builds a cache. Non-positive arguments select the defaults.
func NewCache(ttl time.Duration, capacity, compressMin int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if compressMin <= 0 {
		compressMin = DefaultCompressMin
	}
	return &Cache{
		ttl:         ttl,
		capacity:    capacity,
		compressMin: compressMin,
		entries:     make(map[uint64]*entry, capacity),
		now:         time.Now,
	}
}

// Key derives a deterministic cache key from a serialized theme using an
// FNV-1a rolling hash. Collisions are treated as hits; that is an accepted
// approximation, not a correctness guarantee.
func Key(document string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	hash := uint64(offset64)
	for i := 0; i < len(document); i++ {
		hash ^= uint64(document[i])
		hash *= prime64
	}
	return hash
}

// Get returns the cached stylesheet for a key if the entry is still live.
func (c *Cache) Get(key uint64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		c.removeLocked(key)
		return "", false
	}

	if !e.compressed {
		return string(e.data), true
	}
	text, err := gunzip(e.data)
	if err != nil {
		// A corrupt entry is dropped and regenerated by the caller.
		c.removeLocked(key)
		return "", false
	}
	return text, true
}

// Put stores a stylesheet, compressing it when it exceeds the threshold and
// evicting the oldest entries once the capacity is reached.
func (c *Cache) Put(key uint64, stylesheet string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.removeLocked(key)
	}

	for len(c.entries) >= c.capacity && len(c.order) > 0 {
		c.removeLocked(c.order[0])
	}

	e := &entry{
		data:      []byte(stylesheet),
		size:      len(stylesheet),
		createdAt: c.now(),
	}
	if e.size >= c.compressMin {
		if compressed, err := gzipBytes(e.data); err == nil && len(compressed) < e.size {
			e.data = compressed
			e.compressed = true
		}
	}

	c.entries[key] = e
	c.order = append(c.order, key)
}

// Len reports the number of live entries without touching their TTLs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*entry, c.capacity)
	c.order = c.order[:0]
}

func (c *Cache) removeLocked(key uint64) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gunzip(data []byte) (string, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer r.Close()
	text, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
