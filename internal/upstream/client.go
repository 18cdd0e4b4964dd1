// internal/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to the price-comparison REST API on behalf of one client
// session. The embedded transport injects the session's bearer token and
// handles the refresh-on-401 dance, so the typed methods below never see
// a recoverable 401.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Entry
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	logger := logrus.WithField("component", "upstream")

	return &Client{
		baseURL: baseURL,
		logger:  logger,
		http: &http.Client{
			Timeout:   timeout,
			Transport: newAuthTransport(http.DefaultTransport, tokens, baseURL+"/token/refresh/", logger),
		},
	}
}

// do sends one JSON request and decodes the JSON response into out (when
// out is non-nil). Transport-level failures are normalized to
// ErrServerUnreachable; 4xx/5xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return ErrSessionExpired
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Warn("Upstream request failed")
		return ErrServerUnreachable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrServerUnreachable
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{
			Status:  resp.StatusCode,
			Message: serverMessage(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}

	return nil
}

// serverMessage pulls the human-readable message out of an error payload.
// The API is not consistent about the field name, so the common ones are
// tried in order before falling back to a generic string.
func serverMessage(data []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, field := range []string{"message", "detail", "error"} {
			if msg, ok := payload[field].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return "Something went wrong. Please try again."
}
