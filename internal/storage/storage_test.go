// internal/storage/storage_test.go
package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackend(t *testing.T, st Storage) {
	ctx := context.Background()

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Set(ctx, "access_token", "abc"))
	value, err := st.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	// Last write wins
	require.NoError(t, st.Set(ctx, "access_token", "def"))
	value, err = st.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "def", value)

	require.NoError(t, st.Delete(ctx, "access_token"))
	_, err = st.Get(ctx, "access_token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, st.Delete(ctx, "never-written"))
}

func TestMemoryStorage(t *testing.T) {
	testBackend(t, NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_storage.json")
	st, err := NewFileStorage(path)
	require.NoError(t, err)

	testBackend(t, st)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client_storage.json")

	st, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, SessionKey("sess-1", KeyRefreshToken), "refresh-value"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, SessionKey("sess-1", KeyRefreshToken))
	require.NoError(t, err)
	assert.Equal(t, "refresh-value", value)
}

func TestSessionKeyNamespacing(t *testing.T) {
	a := SessionKey("sess-a", KeyAccessToken)
	b := SessionKey("sess-b", KeyAccessToken)
	assert.NotEqual(t, a, b)
	assert.Equal(t, "session:sess-a:access_token", a)
}
