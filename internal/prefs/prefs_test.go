// internal/prefs/prefs_test.go
package prefs

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealradar/dealradar-gateway/internal/storage"
)

func TestConvertIdentity(t *testing.T) {
	got, err := Convert(123.45, "USD", "USD")
	require.NoError(t, err)
	assert.Equal(t, 123.45, got)
}

func TestConvertBaseToUSD(t *testing.T) {
	got, err := Convert(2000, "INR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 24.0, got, 1e-9)
}

func TestConvertRoundTrip(t *testing.T) {
	for _, code := range RateTableCodes() {
		there, err := Convert(999.99, BaseCurrency, code)
		require.NoError(t, err)
		back, err := Convert(there, code, BaseCurrency)
		require.NoError(t, err)
		assert.InDelta(t, 999.99, back, 1e-9, "round trip through %s", code)
	}
}

func TestConvertUnknownCodePassesAmountThrough(t *testing.T) {
	got, err := Convert(100, "INR", "XTS")
	assert.Error(t, err)
	assert.Equal(t, 100.0, got)
}

func TestFormatPriceInvalidAmounts(t *testing.T) {
	p := Defaults()
	assert.Empty(t, p.FormatPrice(math.NaN(), ""))
	assert.Empty(t, p.FormatPrice(math.Inf(1), ""))
	assert.Empty(t, p.FormatPrice(math.Inf(-1), ""))
}

func TestFormatPriceConvertsToSelectedCurrency(t *testing.T) {
	p := Defaults()
	usd, ok := CurrencyByCode("USD")
	require.True(t, ok)
	p.Currency = usd

	// 2000 INR at the table rate is 24 USD
	got := p.FormatPrice(2000, "")
	assert.Contains(t, got, "24")
	assert.NotContains(t, got, "2,000")
}

func TestFormatPriceSpanishEuro(t *testing.T) {
	p := Defaults()
	es, ok := LanguageByCode("es")
	require.True(t, ok)
	eur, ok := CurrencyByCode("EUR")
	require.True(t, ok)
	p.Language = es
	p.Currency = eur

	// 1000 INR at the table rate is 11 EUR, rendered for the es locale
	got := p.FormatPrice(1000, "INR")
	assert.Contains(t, got, "11")
	assert.NotContains(t, got, "1000")
}

func TestFormatDateHonorsFormat(t *testing.T) {
	p := Defaults()
	day := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "07/03/2025", p.FormatDate(day))

	p.DateFormat = DateFormatMDY
	assert.Equal(t, "03/07/2025", p.FormatDate(day))

	p.DateFormat = DateFormatISO
	assert.Equal(t, "2025-03-07", p.FormatDate(day))
}

func TestFormatTimeHonorsFormat(t *testing.T) {
	p := Defaults()
	moment := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "2:30 PM", p.FormatTime(moment))

	p.TimeFormat = TimeFormat24h
	assert.Equal(t, "14:30", p.FormatTime(moment))
}

func TestStoreLoadReturnsDefaultsWhenEmpty(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage(), "sess-1")

	p := store.Load(context.Background())
	assert.Equal(t, "en", p.Language.Code)
	assert.Equal(t, BaseCurrency, p.Currency.Code)
	assert.Equal(t, DateFormatDMY, p.DateFormat)
	assert.Equal(t, TimeFormat12h, p.TimeFormat)
}

func TestStorePersistsSelections(t *testing.T) {
	st := storage.NewMemoryStorage()
	store := NewStore(st, "sess-1")
	ctx := context.Background()

	_, err := store.SetLanguage(ctx, "es")
	require.NoError(t, err)
	_, err = store.SetCurrency(ctx, "EUR")
	require.NoError(t, err)
	require.NoError(t, store.SetDateFormat(ctx, DateFormatISO))
	require.NoError(t, store.SetTimeFormat(ctx, TimeFormat24h))

	// A second store over the same backend sees the same preferences.
	reloaded := NewStore(st, "sess-1").Load(ctx)
	assert.Equal(t, "es", reloaded.Language.Code)
	assert.Equal(t, "EUR", reloaded.Currency.Code)
	assert.Equal(t, DateFormatISO, reloaded.DateFormat)
	assert.Equal(t, TimeFormat24h, reloaded.TimeFormat)
}

func TestStoreSelectionsAreScopedPerSession(t *testing.T) {
	st := storage.NewMemoryStorage()
	ctx := context.Background()

	_, err := NewStore(st, "sess-1").SetCurrency(ctx, "USD")
	require.NoError(t, err)

	other := NewStore(st, "sess-2").Load(ctx)
	assert.Equal(t, BaseCurrency, other.Currency.Code)
}

func TestStoreRejectsUnknownCodes(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage(), "sess-1")
	ctx := context.Background()

	_, err := store.SetLanguage(ctx, "xx")
	assert.Error(t, err)
	_, err = store.SetCurrency(ctx, "BTC")
	assert.Error(t, err)
	assert.Error(t, store.SetDateFormat(ctx, "DD.MM.YYYY"))
	assert.Error(t, store.SetTimeFormat(ctx, "48h"))
}
