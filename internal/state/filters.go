// internal/state/filters.go
package state

import (
	"sync"
)

// FiltersView is a snapshot of the active search filters.
type FiltersView struct {
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	Sources     []string `json:"sources,omitempty"`
	SortOrder   string   `json:"sort_order"`
	InStockOnly bool     `json:"in_stock_only"`
}

// Sort orders accepted by the search page.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
)

// Filters is the search-filter slice.
type Filters struct {
	mu   sync.Mutex
	view FiltersView
}

func NewFilters() *Filters {
	return &Filters{view: FiltersView{SortOrder: SortRelevance}}
}

func (f *Filters) SetPriceRange(min, max float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.MinPrice = min
	f.view.MaxPrice = max
}

func (f *Filters) SetSources(sources []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.Sources = append([]string(nil), sources...)
}

func (f *Filters) SetSortOrder(order string) {
	switch order {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRating:
	default:
		order = SortRelevance
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.SortOrder = order
}

func (f *Filters) SetInStockOnly(only bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view.InStockOnly = only
}

func (f *Filters) Snapshot() FiltersView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := f.view
	view.Sources = append([]string(nil), f.view.Sources...)
	return view
}

func (f *Filters) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.view = FiltersView{SortOrder: SortRelevance}
}
