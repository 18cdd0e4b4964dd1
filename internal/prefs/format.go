// internal/prefs/format.go
package prefs

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice converts amount from sourceCurrency (empty means the base
// currency) into the selected display currency, then renders it with
// locale-aware currency formatting for the selected language.
//
// Invalid amounts render as an empty string. An unknown currency code
// logs a warning and the amount passes through unconverted.
func (p Preferences) FormatPrice(amount float64, sourceCurrency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}

	if sourceCurrency == "" {
		sourceCurrency = BaseCurrency
	}

	converted, err := Convert(amount, sourceCurrency, p.Currency.Code)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"source":   sourceCurrency,
			"selected": p.Currency.Code,
		}).Warn("Unknown currency code, skipping conversion")
		converted = amount
	}

	unit, err := currency.ParseISO(p.Currency.Code)
	if err != nil {
		return fmt.Sprintf("%s%.2f", p.Currency.Symbol, converted)
	}

	printer := message.NewPrinter(p.languageTag())
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(converted)))
}

// FormatDate renders t according to the selected date format enum.
func (p Preferences) FormatDate(t time.Time) string {
	switch p.DateFormat {
	case DateFormatMDY:
		return t.Format("01/02/2006")
	case DateFormatISO:
		return t.Format("2006-01-02")
	default:
		return t.Format("02/01/2006")
	}
}

// FormatTime renders t honoring the 12/24-hour preference.
func (p Preferences) FormatTime(t time.Time) string {
	if p.TimeFormat == TimeFormat24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

func (p Preferences) languageTag() language.Tag {
	tag, err := language.Parse(p.Language.Code)
	if err != nil {
		return language.English
	}
	return tag
}
