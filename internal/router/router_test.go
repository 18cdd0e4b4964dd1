// internal/router/router_test.go
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar-gateway/internal/config"
	"github.com/dealradar/dealradar-gateway/internal/storage"
)

const testSessionID = "11111111-1111-1111-1111-111111111111"

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Environment: "test",
		Server: config.ServerConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Upstream: config.UpstreamConfig{
			BaseURL: upstreamURL,
			Timeout: 2,
		},
		Storage: config.StorageConfig{Backend: "memory"},
		Session: config.SessionConfig{
			CookieName: "dealradar_session",
			TTL:        720,
		},
		I18n:    config.I18nConfig{DefaultLocale: "en"},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
	}
}

// authenticate seeds the token pair an authenticated session would hold.
func authenticate(t *testing.T, st storage.Storage) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, storage.SessionKey(testSessionID, storage.KeyAccessToken), "test-access"))
	require.NoError(t, st.Set(ctx, storage.SessionKey(testSessionID, storage.KeyRefreshToken), "test-refresh"))
	require.NoError(t, st.Set(ctx, storage.SessionKey(testSessionID, storage.KeyUserEmail), "user@example.com"))
}

func doRequest(r *gin.Engine, method, path string, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if withSession {
		req.AddCookie(&http.Cookie{Name: "dealradar_session", Value: testSessionID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body struct {
		Success bool                   `json:"success"`
		Error   map[string]interface{} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	return body.Error
}

func TestHealthCheck(t *testing.T) {
	r := Initialize(storage.NewMemoryStorage(), testConfig("http://localhost:8000/api"))

	w := doRequest(r, http.MethodGet, "/health", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestProtectedPageRedirectsGuestsToLogin(t *testing.T) {
	r := Initialize(storage.NewMemoryStorage(), testConfig("http://localhost:8000/api"))

	w := doRequest(r, http.MethodGet, "/cart", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	errBody := decodeError(t, w)
	assert.Equal(t, "AUTH_REQUIRED", errBody["code"])
	assert.Equal(t, "/login", errBody["redirect"])
}

func TestGuestPageRedirectsAuthenticatedUsersHome(t *testing.T) {
	st := storage.NewMemoryStorage()
	authenticate(t, st)
	r := Initialize(st, testConfig("http://localhost:8000/api"))

	w := doRequest(r, http.MethodPost, "/login", true)
	assert.Equal(t, http.StatusForbidden, w.Code)

	errBody := decodeError(t, w)
	assert.Equal(t, "GUEST_ONLY", errBody["code"])
	assert.Equal(t, "/", errBody["redirect"])
}

func TestAuthenticatedCartRoundTrip(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cart/" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"id":"srv-1","product_id":"p1","title":"Earbuds","price":1999,"source":"Amazon","quantity":2}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	st := storage.NewMemoryStorage()
	authenticate(t, st)
	r := Initialize(st, testConfig(upstream.URL))

	w := doRequest(r, http.MethodGet, "/cart", true)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Count int     `json:"count"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Data.Count)
	assert.Equal(t, 3998.0, body.Data.Total)
}

func TestSearchRecordsHistory(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search/" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"query":"earbuds","results":[{"id":"p1","title":"Earbuds","price":1999,"source":"Amazon","in_stock":true}]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	r := Initialize(storage.NewMemoryStorage(), testConfig(upstream.URL))

	w := doRequest(r, http.MethodGet, "/search?query=earbuds", true)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/search/history", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "earbuds")
}

func TestFailedRefreshRendersSessionExpiredRedirect(t *testing.T) {
	// Upstream rejects both the request and the refresh, so the gateway
	// must clear the session and tell the client to sign in again.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	st := storage.NewMemoryStorage()
	authenticate(t, st)
	r := Initialize(st, testConfig(upstream.URL))

	w := doRequest(r, http.MethodGet, "/cart", true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	errBody := decodeError(t, w)
	assert.Equal(t, "SESSION_EXPIRED", errBody["code"])
	assert.Equal(t, "/login", errBody["redirect"])

	// Both tokens are gone; the next request fails the guard instead
	w = doRequest(r, http.MethodGet, "/cart", true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_REQUIRED", decodeError(t, w)["code"])
}

func TestUnknownRouteReturnsNotFoundState(t *testing.T) {
	r := Initialize(storage.NewMemoryStorage(), testConfig("http://localhost:8000/api"))

	w := doRequest(r, http.MethodGet, "/no-such-page", false)
	assert.Equal(t, http.StatusNotFound, w.Code)

	errBody := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
}

func TestSessionCookieMintedOnFirstContact(t *testing.T) {
	r := Initialize(storage.NewMemoryStorage(), testConfig("http://localhost:8000/api"))

	w := doRequest(r, http.MethodGet, "/health", false)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "dealradar_session" {
			found = true
			assert.NotEmpty(t, cookie.Value)
		}
	}
	assert.True(t, found, "session cookie must be set")
}
