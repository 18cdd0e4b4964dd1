// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatesKnownLanguage(t *testing.T) {
	assert.Equal(t, "Sesión iniciada correctamente", T("es", KeyAuthLoginSuccess))
}

func TestFallsBackToDefaultLanguage(t *testing.T) {
	// hi has a partial table; untranslated keys fall back to English
	assert.Equal(t, "कार्ट अपडेट हुआ", T("hi", KeyCartUpdated))
	assert.Equal(t, translations["en"][KeySavedAdded], T("hi", KeySavedAdded))
}

func TestUnknownLanguageUsesDefault(t *testing.T) {
	assert.Equal(t, translations["en"][KeyAuthRequired], T("xx", KeyAuthRequired))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestFormatArguments(t *testing.T) {
	assert.Equal(t, "Invalid email", T("en", KeyValidationInvalid, "email"))
	assert.Equal(t, "email no válido", T("es", KeyValidationInvalid, "email"))
}
