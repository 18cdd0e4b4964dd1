// internal/handlers/search_test.go
package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar-gateway/internal/state"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

var sampleResults = []upstream.Product{
	{ID: "a", Title: "Budget Earbuds", Price: 999, Source: "Flipkart", Rating: 3.9, InStock: true},
	{ID: "b", Title: "Mid Earbuds", Price: 1999, Source: "Amazon", Rating: 4.4, InStock: false},
	{ID: "c", Title: "Premium Earbuds", Price: 4999, Source: "Amazon", Rating: 4.8, InStock: true},
}

func TestApplyFiltersPriceRange(t *testing.T) {
	f := state.FiltersView{MinPrice: 1000, MaxPrice: 3000, SortOrder: state.SortRelevance}

	got := applyFilters(sampleResults, f)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestApplyFiltersZeroMaxMeansNoUpperBound(t *testing.T) {
	f := state.FiltersView{MinPrice: 1000, SortOrder: state.SortRelevance}

	got := applyFilters(sampleResults, f)
	require.Len(t, got, 2)
}

func TestApplyFiltersInStockOnly(t *testing.T) {
	f := state.FiltersView{InStockOnly: true, SortOrder: state.SortRelevance}

	got := applyFilters(sampleResults, f)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, p.InStock)
	}
}

func TestApplyFiltersSourceIsCaseInsensitive(t *testing.T) {
	f := state.FiltersView{Sources: []string{"amazon"}, SortOrder: state.SortRelevance}

	got := applyFilters(sampleResults, f)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "Amazon", p.Source)
	}
}

func TestApplyFiltersSortOrders(t *testing.T) {
	asc := applyFilters(sampleResults, state.FiltersView{SortOrder: state.SortPriceAsc})
	require.Len(t, asc, 3)
	assert.Equal(t, "a", asc[0].ID)
	assert.Equal(t, "c", asc[2].ID)

	desc := applyFilters(sampleResults, state.FiltersView{SortOrder: state.SortPriceDesc})
	assert.Equal(t, "c", desc[0].ID)

	byRating := applyFilters(sampleResults, state.FiltersView{SortOrder: state.SortRating})
	assert.Equal(t, "c", byRating[0].ID)
	assert.Equal(t, "a", byRating[2].ID)
}

func TestApplyFiltersRelevanceKeepsUpstreamOrder(t *testing.T) {
	got := applyFilters(sampleResults, state.FiltersView{SortOrder: state.SortRelevance})
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}
