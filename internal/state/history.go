// internal/state/history.go
package state

import (
	"strings"
	"sync"
)

// HistoryLimit caps the search history length.
const HistoryLimit = 10

// SearchHistory is a bounded most-recent-first list of search queries.
// Re-running a remembered query moves it to the front instead of
// duplicating it.
type SearchHistory struct {
	mu      sync.Mutex
	entries []string
}

func NewSearchHistory() *SearchHistory {
	return &SearchHistory{}
}

func (h *SearchHistory) Add(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, entry := range h.entries {
		if strings.EqualFold(entry, query) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}

	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > HistoryLimit {
		h.entries = h.entries[:HistoryLimit]
	}
}

func (h *SearchHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *SearchHistory) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
