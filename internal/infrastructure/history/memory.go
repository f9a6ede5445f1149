// Package history provides in-process implementations of port.Historian.
package history

import (
	"sync"

	"github.com/workbench/navstate/internal/application/port"
)

// MemoryHistorian records every published token in order.
// The CLI uses it to replay navigation scripts.
type MemoryHistorian struct {
	mu      sync.RWMutex
	entries []string
	limit   int
}

var _ port.Historian = (*MemoryHistorian)(nil)

// NewMemoryHistorian creates a historian keeping at most limit entries.
// A limit <= 0 keeps everything.
func NewMemoryHistorian(limit int) *MemoryHistorian {
	return &MemoryHistorian{limit: limit}
}

// NewItem appends token as the newest history entry.
func (h *MemoryHistorian) NewItem(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, token)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Token returns the newest entry, or "" when nothing was published.
func (h *MemoryHistorian) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Entries returns a copy of all entries, oldest first.
func (h *MemoryHistorian) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *MemoryHistorian) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
