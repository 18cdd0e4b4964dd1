// internal/state/compare.go
package state

import (
	"errors"
	"sync"

	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

// ComparisonLimit caps how many products fit in a side-by-side comparison.
const ComparisonLimit = 3

var ErrComparisonFull = errors.New("comparison list is full")

// Comparison is the side-by-side comparison slice.
type Comparison struct {
	mu    sync.Mutex
	items []upstream.Product
}

func NewComparison() *Comparison {
	return &Comparison{}
}

// Add appends a product. Adding a product already in the list is a no-op;
// adding beyond the limit fails.
func (c *Comparison) Add(product upstream.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.ID == product.ID {
			return nil
		}
	}
	if len(c.items) >= ComparisonLimit {
		return ErrComparisonFull
	}

	c.items = append(c.items, product)
	return nil
}

func (c *Comparison) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Comparison) Items() []upstream.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]upstream.Product, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Comparison) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
