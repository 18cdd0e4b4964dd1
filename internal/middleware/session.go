// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dealradar/dealradar-gateway/internal/config"
	"github.com/dealradar/dealradar-gateway/internal/session"
)

const sessionContextKey = "session"

// Session attaches the client's session to the request context, minting a
// session cookie on first contact. Cookie values that are not UUIDs are
// discarded rather than used as storage keys.
func Session(manager *session.Manager, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || !validSessionID(id) {
			id = manager.NewID()
			maxAge := cfg.Session.TTL * 3600
			c.SetCookie(cfg.Session.CookieName, id, maxAge, "/", "", cfg.Session.Secure, true)
		}

		c.Set(sessionContextKey, manager.Get(id))
		c.Next()
	}
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// GetSession returns the session the Session middleware attached, or nil
// on routes mounted outside it.
func GetSession(c *gin.Context) *session.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
