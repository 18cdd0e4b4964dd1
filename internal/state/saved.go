// internal/state/saved.go
package state

import (
	"sync"

	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

// SavedItems is the saved-for-later slice: a set of product references
// with toggle semantics.
type SavedItems struct {
	mu     sync.Mutex
	items  []upstream.SavedItem
	status Status
}

func NewSavedItems() *SavedItems {
	return &SavedItems{}
}

func savedKey(item upstream.SavedItem) string {
	if item.ProductID != "" {
		return item.ProductID
	}
	return item.Title + "|" + item.Source
}

// Toggle flips membership and reports whether the item is saved after the
// call. Toggling twice restores the original set.
func (s *SavedItems) Toggle(item upstream.SavedItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := savedKey(item)
	for i, existing := range s.items {
		if savedKey(existing) == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, item)
	return true
}

func (s *SavedItems) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if savedKey(item) == key {
			return true
		}
	}
	return false
}

func (s *SavedItems) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if savedKey(item) == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Replace reconciles the slice with the server's saved-items list.
func (s *SavedItems) Replace(items []upstream.SavedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]upstream.SavedItem, len(items))
	copy(s.items, items)
}

func (s *SavedItems) Items() []upstream.SavedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]upstream.SavedItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *SavedItems) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *SavedItems) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Status{Loading: true}
}

func (s *SavedItems) End(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Status{}
	if err != nil {
		s.status.Error = err.Error()
	}
}

func (s *SavedItems) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
