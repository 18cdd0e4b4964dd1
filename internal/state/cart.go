// internal/state/cart.go
package state

import (
	"sync"

	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

// Cart is the cart slice. When the upstream API is reachable the server's
// response replaces the local items (last response wins); when it is not,
// mutations apply locally so the user keeps a working cart offline.
type Cart struct {
	mu     sync.Mutex
	items  []upstream.CartItem
	status Status
}

func NewCart() *Cart {
	return &Cart{}
}

// itemKey identifies a cart line. Server-backed items carry an explicit
// ID or product ID; the offline fallback keys on (title, source).
func itemKey(item upstream.CartItem) string {
	if item.ID != "" {
		return item.ID
	}
	if item.ProductID != "" {
		return item.ProductID
	}
	return item.Title + "|" + item.Source
}

// Add merges the item into the cart. Adding an existing line increases
// its quantity.
func (c *Cart) Add(item upstream.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := itemKey(item)
	for i, existing := range c.items {
		if itemKey(existing) == key {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// SetQuantity updates a line's quantity. A quantity below one removes the
// line; quantity >= 1 is the slice invariant.
func (c *Cart) SetQuantity(key string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if itemKey(item) != key {
			continue
		}
		if quantity < 1 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		return
	}
}

func (c *Cart) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if itemKey(item) == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Replace reconciles the slice with the server's view of the cart.
func (c *Cart) Replace(items []upstream.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]upstream.CartItem, len(items))
	copy(c.items, items)
}

func (c *Cart) Clear() {
	c.Replace(nil)
}

func (c *Cart) Items() []upstream.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]upstream.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total is the sum of price times quantity over current items.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Status{Loading: true}
}

func (c *Cart) End(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Status{}
	if err != nil {
		c.status.Error = err.Error()
	}
}

func (c *Cart) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
