// internal/session/session_test.go
package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar-gateway/internal/config"
	"github.com/dealradar/dealradar-gateway/internal/state"
	"github.com/dealradar/dealradar-gateway/internal/storage"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

func testConfig() *config.Config {
	return &config.Config{
		Upstream: config.UpstreamConfig{BaseURL: "http://localhost:8000/api", Timeout: 2},
		Session:  config.SessionConfig{CookieName: "dealradar_session", TTL: 720},
	}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestIsAuthenticatedWithLiveToken(t *testing.T) {
	st := storage.NewMemoryStorage()
	sess := newSession("sess-1", st, testConfig())
	ctx := context.Background()

	require.NoError(t, sess.Login(ctx, &upstream.TokenPair{
		Access: signedToken(t, time.Now().Add(time.Hour)),
	}, "user@example.com"))

	assert.True(t, sess.IsAuthenticated(ctx))
}

func TestIsAuthenticatedWithExpiredTokenNeedsRefreshToken(t *testing.T) {
	st := storage.NewMemoryStorage()
	ctx := context.Background()

	// Expired access, no refresh: not authenticated
	sess := newSession("sess-1", st, testConfig())
	require.NoError(t, sess.Login(ctx, &upstream.TokenPair{
		Access: signedToken(t, time.Now().Add(-time.Hour)),
	}, ""))
	assert.False(t, sess.IsAuthenticated(ctx))

	// Expired access with a refresh token behind it: authenticated,
	// the transport will refresh on first use
	sess2 := newSession("sess-2", st, testConfig())
	require.NoError(t, sess2.Login(ctx, &upstream.TokenPair{
		Access:  signedToken(t, time.Now().Add(-time.Hour)),
		Refresh: "refresh-token",
	}, ""))
	assert.True(t, sess2.IsAuthenticated(ctx))
}

func TestIsAuthenticatedWithoutTokens(t *testing.T) {
	sess := newSession("sess-1", storage.NewMemoryStorage(), testConfig())
	assert.False(t, sess.IsAuthenticated(context.Background()))
}

func TestLogoutClearsTokensEmailAndAccountSlices(t *testing.T) {
	st := storage.NewMemoryStorage()
	sess := newSession("sess-1", st, testConfig())
	ctx := context.Background()

	require.NoError(t, sess.Login(ctx, &upstream.TokenPair{Access: "a", Refresh: "r"}, "user@example.com"))
	sess.State().Cart.Add(upstream.CartItem{ProductID: "p1", Price: 100, Quantity: 1})
	sess.State().Saved.Toggle(upstream.SavedItem{ProductID: "p1"})
	sess.State().History.Add("earbuds")

	require.NoError(t, sess.Logout(ctx))

	assert.False(t, sess.IsAuthenticated(ctx))
	assert.Empty(t, sess.Email(ctx))
	assert.Empty(t, sess.State().Cart.Items())
	assert.Zero(t, sess.State().Saved.Len())
	// Search history is device state, not account state
	assert.NotEmpty(t, sess.State().History.Entries())
}

func TestClearTokensKeepsCachedEmail(t *testing.T) {
	st := storage.NewMemoryStorage()
	sess := newSession("sess-1", st, testConfig())
	ctx := context.Background()

	require.NoError(t, sess.Login(ctx, &upstream.TokenPair{Access: "a", Refresh: "r"}, "user@example.com"))
	require.NoError(t, sess.ClearTokens(ctx))

	assert.False(t, sess.IsAuthenticated(ctx))
	assert.Equal(t, "user@example.com", sess.Email(ctx))
}

func TestManagerReturnsSameSessionForSameID(t *testing.T) {
	m := NewManager(storage.NewMemoryStorage(), testConfig())

	a := m.Get("sess-1")
	b := m.Get("sess-1")
	c := m.Get("sess-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestManagerSessionsShareStorageAcrossEviction(t *testing.T) {
	st := storage.NewMemoryStorage()
	ctx := context.Background()

	m := NewManager(st, testConfig())
	sess := m.Get("sess-1")
	require.NoError(t, sess.Login(ctx, &upstream.TokenPair{Access: "a", Refresh: "r"}, "user@example.com"))

	// A fresh manager simulates the session coming back after eviction
	// or a process restart: durable state survives, slices reset.
	m2 := NewManager(st, testConfig())
	revived := m2.Get("sess-1")

	assert.True(t, revived.IsAuthenticated(ctx))
	assert.Equal(t, "user@example.com", revived.Email(ctx))
	assert.Empty(t, revived.State().Cart.Items())
}

func TestStateStoreSlicesStartEmpty(t *testing.T) {
	sess := newSession("sess-1", storage.NewMemoryStorage(), testConfig())
	store := sess.State()

	assert.Empty(t, store.Cart.Items())
	assert.Zero(t, store.Saved.Len())
	assert.Empty(t, store.History.Entries())
	assert.Empty(t, store.Comparison.Items())
	assert.Equal(t, state.SortRelevance, store.Filters.Snapshot().SortOrder)
}
