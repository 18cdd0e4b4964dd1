// internal/upstream/saved.go
package upstream

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) SavedItems(ctx context.Context) ([]SavedItem, error) {
	var resp SavedItemsResponse
	if err := c.do(ctx, http.MethodGet, "/saved-items/", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) SaveItem(ctx context.Context, item SavedItem) ([]SavedItem, error) {
	var resp SavedItemsResponse
	if err := c.do(ctx, http.MethodPost, "/saved-items/", nil, item, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) RemoveSavedItem(ctx context.Context, itemID string) ([]SavedItem, error) {
	q := url.Values{}
	q.Set("id", itemID)

	var resp SavedItemsResponse
	if err := c.do(ctx, http.MethodDelete, "/saved-items/", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}
