// internal/middleware/locale_test.go
package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"es", "es"},
		{"es-MX,es;q=0.9,en;q=0.8", "es"},
		{"fr-CA", "fr"},
		{"pt-BR,pt;q=0.9", ""},       // not in the catalog
		{"pt-BR,de;q=0.8", "de"},     // first supported entry wins
		{"zh_CN", "zh"},
		{" hi ", "hi"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseAcceptLanguage(tc.header), "header %q", tc.header)
	}
}
