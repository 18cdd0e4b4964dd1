// internal/upstream/search.go
package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// Search runs a cross-platform product search.
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	q := url.Values{}
	q.Set("query", query)

	var resp SearchResponse
	if err := c.do(ctx, http.MethodGet, "/search/", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
