// internal/upstream/cart.go
package upstream

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) Cart(ctx context.Context) ([]CartItem, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart/", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddCartItem adds an item and returns the server's view of the cart.
func (c *Client) AddCartItem(ctx context.Context, item CartItem) ([]CartItem, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodPost, "/cart/", nil, item, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UpdateCartItem sets the quantity of an existing cart item.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) ([]CartItem, error) {
	payload := map[string]interface{}{"id": itemID, "quantity": quantity}

	var resp CartResponse
	if err := c.do(ctx, http.MethodPut, "/cart/", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID string) ([]CartItem, error) {
	q := url.Values{}
	q.Set("id", itemID)

	var resp CartResponse
	if err := c.do(ctx, http.MethodDelete, "/cart/", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
