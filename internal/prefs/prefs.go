// internal/prefs/prefs.go
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dealradar/dealradar-gateway/internal/storage"
)

// Preferences is the per-session locale state: language, display currency
// and date/time formats. Zero value is not valid; use Defaults.
type Preferences struct {
	Language   Language `json:"language"`
	Currency   Currency `json:"currency"`
	DateFormat string   `json:"date_format"`
	TimeFormat string   `json:"time_format"`
}

func Defaults() Preferences {
	return Preferences{
		Language:   Languages[0],                       // en
		Currency:   mustCurrency(BaseCurrency),         // INR
		DateFormat: DateFormatDMY,
		TimeFormat: TimeFormat12h,
	}
}

func mustCurrency(code string) Currency {
	c, ok := CurrencyByCode(code)
	if !ok {
		panic("base currency missing from catalog: " + code)
	}
	return c
}

// Store persists one session's preferences. Every setter writes through
// to client storage immediately, mirroring the web client's
// persist-on-change behavior.
type Store struct {
	storage   storage.Storage
	sessionID string
	logger    *logrus.Entry
}

func NewStore(st storage.Storage, sessionID string) *Store {
	return &Store{
		storage:   st,
		sessionID: sessionID,
		logger:    logrus.WithField("component", "prefs"),
	}
}

// Load returns defaults overlaid with whatever was persisted. A corrupt
// or missing value falls back to the default for that field.
func (s *Store) Load(ctx context.Context) Preferences {
	p := Defaults()

	if raw, err := s.get(ctx, storage.KeyLanguage); err == nil {
		var lang Language
		if json.Unmarshal([]byte(raw), &lang) == nil {
			if known, ok := LanguageByCode(lang.Code); ok {
				p.Language = known
			}
		}
	}

	if raw, err := s.get(ctx, storage.KeyCurrency); err == nil {
		var cur Currency
		if json.Unmarshal([]byte(raw), &cur) == nil {
			if known, ok := CurrencyByCode(cur.Code); ok {
				p.Currency = known
			}
		}
	}

	if raw, err := s.get(ctx, storage.KeyDateFormat); err == nil && validDateFormat(raw) {
		p.DateFormat = raw
	}

	if raw, err := s.get(ctx, storage.KeyTimeFormat); err == nil && validTimeFormat(raw) {
		p.TimeFormat = raw
	}

	return p
}

func (s *Store) SetLanguage(ctx context.Context, code string) (Language, error) {
	lang, ok := LanguageByCode(code)
	if !ok {
		return Language{}, fmt.Errorf("unsupported language %q", code)
	}

	data, err := json.Marshal(lang)
	if err != nil {
		return Language{}, err
	}
	if err := s.set(ctx, storage.KeyLanguage, string(data)); err != nil {
		return Language{}, err
	}
	return lang, nil
}

func (s *Store) SetCurrency(ctx context.Context, code string) (Currency, error) {
	cur, ok := CurrencyByCode(code)
	if !ok {
		return Currency{}, fmt.Errorf("unsupported currency %q", code)
	}

	data, err := json.Marshal(cur)
	if err != nil {
		return Currency{}, err
	}
	if err := s.set(ctx, storage.KeyCurrency, string(data)); err != nil {
		return Currency{}, err
	}
	return cur, nil
}

func (s *Store) SetDateFormat(ctx context.Context, format string) error {
	if !validDateFormat(format) {
		return fmt.Errorf("unsupported date format %q", format)
	}
	return s.set(ctx, storage.KeyDateFormat, format)
}

func (s *Store) SetTimeFormat(ctx context.Context, format string) error {
	if !validTimeFormat(format) {
		return fmt.Errorf("unsupported time format %q", format)
	}
	return s.set(ctx, storage.KeyTimeFormat, format)
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	value, err := s.storage.Get(ctx, storage.SessionKey(s.sessionID, key))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.WithError(err).WithField("key", key).Warn("Failed to read preference")
		}
		return "", err
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	return s.storage.Set(ctx, storage.SessionKey(s.sessionID, key), value)
}
