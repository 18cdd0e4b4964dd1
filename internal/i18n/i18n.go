// internal/i18n/i18n.go

// Package i18n holds the UI message catalog. Tables are static constant
// maps compiled into the binary; languages without a table fall back to
// the default language key by key.
package i18n

import (
	"fmt"
)

const defaultLang = "en"

var translations = map[string]map[string]string{
	"en": {
		KeyAuthRequired:        "Please sign in to continue",
		KeyAuthGuestOnly:       "You are already signed in",
		KeyAuthSessionExpired:  "Your session has expired. Please sign in again",
		KeyAuthLoginSuccess:    "Signed in successfully",
		KeyAuthLogoutSuccess:   "Signed out successfully",
		KeyAuthRegisterSuccess: "Account created. Check your email for the verification code",
		KeyAuthOTPSent:         "Verification code sent",
		KeyAuthOTPVerified:     "Email verified successfully",
		KeyAuthResetRequested:  "If the email exists, a reset code has been sent",
		KeyAuthResetSuccess:    "Password reset successfully",

		KeyValidationInvalid: "Invalid %s",

		KeyErrorServerUnreachable: "Cannot reach the server. Please check your connection and try again",
		KeyErrorNotFound:          "Page not found",
		KeyErrorRateLimited:       "Rate limit exceeded. Please try again later",

		KeyCartItemAdded:   "Added to cart",
		KeyCartItemRemoved: "Removed from cart",
		KeyCartUpdated:     "Cart updated",
		KeyCartOffline:     "Cart updated locally; changes will not sync until the server is reachable",

		KeySavedAdded:   "Saved for later",
		KeySavedRemoved: "Removed from saved items",

		KeyCompareFull: "You can compare up to 3 products at a time",

		KeySearchNoResults: "No results found",

		KeyPrefsUpdated: "Preferences updated",

		KeyNewsletterSubscribed: "Subscribed to the newsletter",
		KeyContactReceived:      "Thanks for reaching out. We will get back to you soon",
		KeyProfileUpdated:       "Profile updated",
	},
	"es": {
		KeyAuthRequired:        "Inicia sesión para continuar",
		KeyAuthGuestOnly:       "Ya has iniciado sesión",
		KeyAuthSessionExpired:  "Tu sesión ha expirado. Inicia sesión de nuevo",
		KeyAuthLoginSuccess:    "Sesión iniciada correctamente",
		KeyAuthLogoutSuccess:   "Sesión cerrada correctamente",
		KeyAuthRegisterSuccess: "Cuenta creada. Revisa tu correo para el código de verificación",
		KeyAuthOTPSent:         "Código de verificación enviado",
		KeyAuthOTPVerified:     "Correo verificado correctamente",
		KeyAuthResetRequested:  "Si el correo existe, se ha enviado un código de restablecimiento",
		KeyAuthResetSuccess:    "Contraseña restablecida correctamente",

		KeyValidationInvalid: "%s no válido",

		KeyErrorServerUnreachable: "No se puede conectar con el servidor. Comprueba tu conexión e inténtalo de nuevo",
		KeyErrorNotFound:          "Página no encontrada",
		KeyErrorRateLimited:       "Límite de peticiones superado. Inténtalo más tarde",

		KeyCartItemAdded:   "Añadido al carrito",
		KeyCartItemRemoved: "Eliminado del carrito",
		KeyCartUpdated:     "Carrito actualizado",
		KeyCartOffline:     "Carrito actualizado localmente; los cambios no se sincronizarán hasta recuperar la conexión",

		KeySavedAdded:   "Guardado para más tarde",
		KeySavedRemoved: "Eliminado de los guardados",

		KeyCompareFull: "Puedes comparar hasta 3 productos a la vez",

		KeySearchNoResults: "No se encontraron resultados",

		KeyPrefsUpdated: "Preferencias actualizadas",

		KeyNewsletterSubscribed: "Suscrito al boletín",
		KeyContactReceived:      "Gracias por escribirnos. Te responderemos pronto",
		KeyProfileUpdated:       "Perfil actualizado",
	},
	"hi": {
		KeyAuthRequired:       "जारी रखने के लिए साइन इन करें",
		KeyAuthLoginSuccess:   "सफलतापूर्वक साइन इन हुआ",
		KeyAuthLogoutSuccess:  "सफलतापूर्वक साइन आउट हुआ",
		KeyAuthSessionExpired: "आपका सत्र समाप्त हो गया है। कृपया फिर से साइन इन करें",
		KeyCartItemAdded:      "कार्ट में जोड़ा गया",
		KeyCartItemRemoved:    "कार्ट से हटाया गया",
		KeyCartUpdated:        "कार्ट अपडेट हुआ",
		KeySearchNoResults:    "कोई परिणाम नहीं मिला",
		KeyPrefsUpdated:       "प्राथमिकताएँ अपडेट हुईं",
	},
}

// T resolves key for lang, falling back to the default language, then to
// the key itself.
func T(lang, key string, args ...interface{}) string {
	if text, ok := lookup(lang, key); ok {
		if len(args) > 0 {
			return fmt.Sprintf(text, args...)
		}
		return text
	}
	return key
}

func lookup(lang, key string) (string, bool) {
	if table, ok := translations[lang]; ok {
		if text, ok := table[key]; ok {
			return text, true
		}
	}
	if lang != defaultLang {
		if text, ok := translations[defaultLang][key]; ok {
			return text, true
		}
	}
	return "", false
}

func GetSupportedLanguages() []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	return langs
}
