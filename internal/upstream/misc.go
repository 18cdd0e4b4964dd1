// internal/upstream/misc.go
package upstream

import (
	"context"
	"net/http"
)

func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/newsletter/", nil, map[string]string{"email": email}, nil)
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/contact/", nil, req, nil)
}
