// internal/state/store.go

// Package state holds the per-session client state the web application
// kept in its central store: cart, saved items, search history, the
// comparison list and active search filters. Each slice guards itself
// with a mutex because the gateway, unlike the browser, serves a session
// from concurrent requests.
package state

// Store bundles one session's slices.
type Store struct {
	Cart       *Cart
	Saved      *SavedItems
	History    *SearchHistory
	Comparison *Comparison
	Filters    *Filters
}

func NewStore() *Store {
	return &Store{
		Cart:       NewCart(),
		Saved:      NewSavedItems(),
		History:    NewSearchHistory(),
		Comparison: NewComparison(),
		Filters:    NewFilters(),
	}
}

// Status mirrors the loading/error flags each web-client slice carried
// through its async request lifecycle.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}
