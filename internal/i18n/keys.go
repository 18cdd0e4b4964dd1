// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired             = "auth.required"
	KeyAuthGuestOnly            = "auth.guest_only"
	KeyAuthSessionExpired       = "auth.session_expired"
	KeyAuthLoginSuccess         = "auth.login_success"
	KeyAuthLogoutSuccess        = "auth.logout_success"
	KeyAuthRegisterSuccess      = "auth.register_success"
	KeyAuthOTPSent              = "auth.otp_sent"
	KeyAuthOTPVerified          = "auth.otp_verified"
	KeyAuthResetRequested       = "auth.reset_requested"
	KeyAuthResetSuccess         = "auth.reset_success"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Errors
	KeyErrorServerUnreachable = "error.server_unreachable"
	KeyErrorNotFound          = "error.not_found"
	KeyErrorRateLimited       = "error.rate_limited"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"
	KeyCartUpdated     = "cart.updated"
	KeyCartOffline     = "cart.offline"

	// Saved items
	KeySavedAdded   = "saved.added"
	KeySavedRemoved = "saved.removed"

	// Comparison
	KeyCompareFull = "compare.full"

	// Search
	KeySearchNoResults = "search.no_results"

	// Preferences
	KeyPrefsUpdated = "prefs.updated"

	// Misc
	KeyNewsletterSubscribed = "newsletter.subscribed"
	KeyContactReceived      = "contact.received"
	KeyProfileUpdated       = "profile.updated"
)
