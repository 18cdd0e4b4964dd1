// internal/upstream/errors.go
package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrServerUnreachable replaces every network-level failure (DNS,
	// refused connection, timeout) so the handlers can show a single
	// "server unreachable" message distinct from server errors.
	ErrServerUnreachable = errors.New("upstream server unreachable")

	// ErrSessionExpired means a 401 could not be recovered: the refresh
	// call itself failed and both stored tokens have been cleared.
	ErrSessionExpired = errors.New("session expired")
)

// APIError carries a server-returned error. Message is the server's own
// message field when one was present, else a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
