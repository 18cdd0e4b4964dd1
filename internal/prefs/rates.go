// internal/prefs/rates.go
package prefs

import (
	"fmt"
)

// BaseCurrency is the currency all upstream prices are denominated in.
const BaseCurrency = "INR"

// exchangeRates maps a currency code to units per one INR. The table is a
// fixed snapshot, not a live feed; that is a known accuracy limitation of
// the product, not something to fix silently here.
var exchangeRates = map[string]float64{
	"INR": 1.0,
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
	"JPY": 1.8,
	"AED": 0.044,
	"CAD": 0.016,
	"AUD": 0.018,
	"SGD": 0.016,
	"CNY": 0.087,
}

// Convert converts amount between two currencies via the static rate
// table. Converting a currency to itself returns the amount unchanged.
func Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	fromRate, ok := exchangeRates[from]
	if !ok {
		return amount, fmt.Errorf("unknown currency code %q", from)
	}
	toRate, ok := exchangeRates[to]
	if !ok {
		return amount, fmt.Errorf("unknown currency code %q", to)
	}

	return amount / fromRate * toRate, nil
}

// RateTableCodes lists every code in the rate table, for tests and the
// language/currency settings page.
func RateTableCodes() []string {
	codes := make([]string, 0, len(exchangeRates))
	for code := range exchangeRates {
		codes = append(codes, code)
	}
	return codes
}
