// internal/middleware/locale.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/prefs"
)

// Locale resolves the request language: the session's saved language
// preference wins, then the Accept-Language header, then English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""

		if sess := GetSession(c); sess != nil {
			lang = sess.Prefs().Load(c.Request.Context()).Language.Code
		}

		if lang == "" {
			lang = parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = "en"
		}

		c.Set("lang", lang)
		c.Next()
	}
}

// parseAcceptLanguage handles values like "es-MX,es;q=0.9,en;q=0.8" and
// returns a catalog language code, or empty when nothing matches.
func parseAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		code := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.IndexAny(code, "-_"); idx > 0 {
			code = code[:idx]
		}
		if _, ok := prefs.LanguageByCode(code); ok {
			return code
		}
	}
	return ""
}
