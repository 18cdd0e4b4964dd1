// internal/prefs/catalog.go
package prefs

// Language is one selectable UI language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Currency is one selectable display currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Date and time format enums. Preferences only ever hold one of these.
const (
	DateFormatDMY = "DD/MM/YYYY"
	DateFormatMDY = "MM/DD/YYYY"
	DateFormatISO = "YYYY-MM-DD"

	TimeFormat12h = "12h"
	TimeFormat24h = "24h"
)

var Languages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Español", Flag: "🇪🇸"},
	{Code: "fr", Name: "Français", Flag: "🇫🇷"},
	{Code: "de", Name: "Deutsch", Flag: "🇩🇪"},
	{Code: "hi", Name: "हिन्दी", Flag: "🇮🇳"},
	{Code: "ja", Name: "日本語", Flag: "🇯🇵"},
	{Code: "zh", Name: "中文", Flag: "🇨🇳"},
	{Code: "ar", Name: "العربية", Flag: "🇸🇦"},
}

var Currencies = []Currency{
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
}

var DateFormats = []string{DateFormatDMY, DateFormatMDY, DateFormatISO}

var TimeFormats = []string{TimeFormat12h, TimeFormat24h}

// LanguageByCode looks up a catalog language.
func LanguageByCode(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// CurrencyByCode looks up a catalog currency.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

func validDateFormat(f string) bool {
	for _, known := range DateFormats {
		if f == known {
			return true
		}
	}
	return false
}

func validTimeFormat(f string) bool {
	return f == TimeFormat12h || f == TimeFormat24h
}
