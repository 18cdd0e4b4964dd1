// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/utils"
)

// AuthRequired guards pages that need a signed-in user (cart, account,
// saved items, admin, orders). Unauthenticated sessions are told to
// navigate to /login.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		sess := GetSession(c)
		if sess == nil || !sess.IsAuthenticated(c.Request.Context()) {
			utils.RedirectResponse(c, http.StatusUnauthorized, "AUTH_REQUIRED",
				i18n.T(lang, i18n.KeyAuthRequired), "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GuestOnly guards pages that make no sense for a signed-in user (login,
// register, password reset). Authenticated sessions are sent home.
func GuestOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)

		sess := GetSession(c)
		if sess != nil && sess.IsAuthenticated(c.Request.Context()) {
			utils.RedirectResponse(c, http.StatusForbidden, "GUEST_ONLY",
				i18n.T(lang, i18n.KeyAuthGuestOnly), "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
