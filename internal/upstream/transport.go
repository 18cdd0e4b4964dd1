// internal/upstream/transport.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
)

// TokenSource reads and writes the persisted token pair for one client
// session. Empty strings mean "no token stored".
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetAccessToken(ctx context.Context, token string) error
	ClearTokens(ctx context.Context) error
}

var errNoRefreshToken = errors.New("no refresh token stored")

// authTransport attaches the bearer token to every outbound request and,
// on a 401, performs one refresh-and-replay before giving up.
//
// Concurrent 401'd requests do not race independent refresh calls: the
// refresh path is serialized per session, and a request that waited on
// the lock reuses the token its predecessor already obtained.
type authTransport struct {
	base       http.RoundTripper
	tokens     TokenSource
	refreshURL string
	logger     *logrus.Entry

	refreshMu sync.Mutex
}

func newAuthTransport(base http.RoundTripper, tokens TokenSource, refreshURL string, logger *logrus.Entry) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{
		base:       base,
		tokens:     tokens,
		refreshURL: refreshURL,
		logger:     logger,
	}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	attempt := req
	if token != "" {
		attempt = req.Clone(ctx)
		attempt.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(attempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	newToken, refreshErr := t.refresh(ctx, token)
	if refreshErr != nil {
		if errors.Is(refreshErr, errNoRefreshToken) {
			// Nothing to refresh with; the caller sees the original 401.
			return resp, nil
		}
		drain(resp)
		return nil, refreshErr
	}

	retry, ok := replayable(req)
	if !ok {
		// Body cannot be rewound, so the original 401 stands.
		return resp, nil
	}
	drain(resp)

	retry.Header.Set("Authorization", "Bearer "+newToken)

	// The retry goes straight to the base transport: a second 401 is
	// returned as-is, so a request is replayed at most once.
	return t.base.RoundTrip(retry)
}

// refresh exchanges the stored refresh token for a new access token. The
// staleToken argument is the access token the failed request carried; if
// the stored token already differs, another request refreshed while this
// one waited and its result is reused.
func (t *authTransport) refresh(ctx context.Context, staleToken string) (string, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	if current, err := t.tokens.AccessToken(ctx); err == nil && current != "" && current != staleToken {
		return current, nil
	}

	refreshToken, err := t.tokens.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", errNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return "", ErrServerUnreachable
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		t.logger.WithField("status", resp.StatusCode).Warn("Token refresh rejected, clearing session")
		if clearErr := t.tokens.ClearTokens(ctx); clearErr != nil {
			t.logger.WithError(clearErr).Error("Failed to clear stored tokens")
		}
		return "", ErrSessionExpired
	}

	var result struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Access == "" {
		t.tokens.ClearTokens(ctx)
		return "", ErrSessionExpired
	}

	if err := t.tokens.SetAccessToken(ctx, result.Access); err != nil {
		return "", err
	}

	t.logger.Debug("Access token refreshed")
	return result.Access, nil
}

// replayable clones req with a fresh body. Requests built by the client
// always carry GetBody; anything else with a body cannot be retried.
func replayable(req *http.Request) (*http.Request, bool) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	clone.Body = body
	return clone, true
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
