package router

import "sync"

// History abstracts the host's location and session history. The
// browser implementation lives in history_js.go; MemoryHistory serves
// native builds and tests.
type History interface {
	// Push records a new entry for path, discarding any forward entries.
	Push(path string)

	// Location returns the path of the current entry.
	Location() string

	// Listen registers the callback invoked when the host moves through
	// history (back/forward). Only one listener is kept.
	Listen(fn func(path string))

	// Close detaches the listener and releases host resources.
	Close()
}

// MemoryHistory is an in-process History with explicit Back and Forward
// controls. The initial entry is "/".
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	cursor  int
	fn      func(path string)
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory creates a history positioned at "/".
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{entries: []string{"/"}}
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor = len(h.entries) - 1
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

func (h *MemoryHistory) Listen(fn func(path string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = fn
}

func (h *MemoryHistory) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = nil
}

// Back moves one entry backwards, notifying the listener. Moving past
// the oldest entry is a no-op.
func (h *MemoryHistory) Back() {
	h.mu.Lock()
	if h.cursor == 0 {
		h.mu.Unlock()
		return
	}
	h.cursor--
	path, fn := h.entries[h.cursor], h.fn
	h.mu.Unlock()
	if fn != nil {
		fn(path)
	}
}

// Forward moves one entry forwards, notifying the listener. Moving past
// the newest entry is a no-op.
func (h *MemoryHistory) Forward() {
	h.mu.Lock()
	if h.cursor >= len(h.entries)-1 {
		h.mu.Unlock()
		return
	}
	h.cursor++
	path, fn := h.entries[h.cursor], h.fn
	h.mu.Unlock()
	if fn != nil {
		fn(path)
	}
}
