// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has never been written or was deleted.
var ErrNotFound = errors.New("storage: key not found")

// Storage is the durable client-side key-value store. It holds, per
// session, the same keys the browser client kept in local storage: the
// access and refresh tokens, the cached user email, and the serialized
// locale preferences. Values are plain strings; structured values are
// JSON-encoded by the caller. Writes are last-write-wins.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known keys, scoped per session via SessionKey.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserEmail    = "user_email"
	KeyLanguage     = "selected_language"
	KeyCurrency     = "selected_currency"
	KeyDateFormat   = "date_format"
	KeyTimeFormat   = "time_format"
)

// SessionKey namespaces a storage key to one client session.
func SessionKey(sessionID, key string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}
