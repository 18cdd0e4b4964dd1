// internal/state/state_test.go
package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

func TestCartAddMergesQuantity(t *testing.T) {
	cart := NewCart()

	cart.Add(upstream.CartItem{ProductID: "p1", Title: "Earbuds", Price: 100, Quantity: 1})
	cart.Add(upstream.CartItem{ProductID: "p1", Title: "Earbuds", Price: 100, Quantity: 2})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, cart.Count())
}

func TestCartTotalFollowsQuantityChanges(t *testing.T) {
	cart := NewCart()
	cart.Add(upstream.CartItem{ProductID: "p1", Price: 100, Quantity: 2})
	cart.Add(upstream.CartItem{ProductID: "p2", Price: 50, Quantity: 1})
	assert.Equal(t, 250.0, cart.Total())

	cart.SetQuantity("p2", 2)
	assert.Equal(t, 300.0, cart.Total())

	cart.SetQuantity("p1", 1)
	assert.Equal(t, 200.0, cart.Total())
}

func TestCartTotalAfterRemoval(t *testing.T) {
	cart := NewCart()
	cart.Add(upstream.CartItem{ProductID: "p1", Price: 100, Quantity: 2})
	cart.Add(upstream.CartItem{ProductID: "p2", Price: 50, Quantity: 1})
	require.Equal(t, 250.0, cart.Total())

	cart.Remove("p2")
	assert.Equal(t, 200.0, cart.Total())
}

func TestCartQuantityBelowOneRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.Add(upstream.CartItem{ProductID: "p1", Price: 100, Quantity: 2})

	cart.SetQuantity("p1", 0)
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartReplaceTakesServerView(t *testing.T) {
	cart := NewCart()
	cart.Add(upstream.CartItem{ProductID: "p1", Price: 100, Quantity: 1})

	cart.Replace([]upstream.CartItem{
		{ID: "srv-1", ProductID: "p2", Price: 75, Quantity: 2},
	})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "srv-1", items[0].ID)
	assert.Equal(t, 150.0, cart.Total())
}

func TestSavedToggleTwiceRestoresOriginalSet(t *testing.T) {
	saved := NewSavedItems()
	item := upstream.SavedItem{ProductID: "p1", Title: "Earbuds"}

	assert.True(t, saved.Toggle(item))
	assert.True(t, saved.Contains("p1"))

	assert.False(t, saved.Toggle(item))
	assert.False(t, saved.Contains("p1"))
	assert.Zero(t, saved.Len())
}

func TestHistoryCapsAtLimit(t *testing.T) {
	h := NewSearchHistory()
	for i := 0; i < HistoryLimit+5; i++ {
		h.Add(fmt.Sprintf("query %d", i))
	}

	entries := h.Entries()
	require.Len(t, entries, HistoryLimit)
	// Most recent first
	assert.Equal(t, fmt.Sprintf("query %d", HistoryLimit+4), entries[0])
}

func TestHistoryDeduplicatesCaseInsensitively(t *testing.T) {
	h := NewSearchHistory()
	h.Add("Laptop")
	h.Add("mouse")
	h.Add("LAPTOP")

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "LAPTOP", entries[0])
	assert.Equal(t, "mouse", entries[1])
}

func TestHistoryIgnoresBlankQueries(t *testing.T) {
	h := NewSearchHistory()
	h.Add("   ")
	h.Add("")
	assert.Empty(t, h.Entries())
}

func TestComparisonLimit(t *testing.T) {
	c := NewComparison()
	require.NoError(t, c.Add(upstream.Product{ID: "a"}))
	require.NoError(t, c.Add(upstream.Product{ID: "b"}))
	require.NoError(t, c.Add(upstream.Product{ID: "c"}))

	err := c.Add(upstream.Product{ID: "d"})
	assert.ErrorIs(t, err, ErrComparisonFull)
	assert.Len(t, c.Items(), ComparisonLimit)
}

func TestComparisonDuplicateIsNoop(t *testing.T) {
	c := NewComparison()
	require.NoError(t, c.Add(upstream.Product{ID: "a"}))
	require.NoError(t, c.Add(upstream.Product{ID: "a"}))
	assert.Len(t, c.Items(), 1)
}

func TestFiltersRejectUnknownSortOrder(t *testing.T) {
	f := NewFilters()
	f.SetSortOrder("cheapest-first")
	assert.Equal(t, SortRelevance, f.Snapshot().SortOrder)

	f.SetSortOrder(SortPriceAsc)
	assert.Equal(t, SortPriceAsc, f.Snapshot().SortOrder)
}

func TestFiltersResetRestoresDefaults(t *testing.T) {
	f := NewFilters()
	f.SetPriceRange(100, 500)
	f.SetSources([]string{"Amazon"})
	f.SetInStockOnly(true)

	f.Reset()

	view := f.Snapshot()
	assert.Zero(t, view.MinPrice)
	assert.Zero(t, view.MaxPrice)
	assert.Empty(t, view.Sources)
	assert.False(t, view.InStockOnly)
	assert.Equal(t, SortRelevance, view.SortOrder)
}

func TestCartConcurrentAdds(t *testing.T) {
	cart := NewCart()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart.Add(upstream.CartItem{ProductID: "p1", Price: 10, Quantity: 1})
		}()
	}
	wg.Wait()

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 50, cart.Count())
}
