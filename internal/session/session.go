// internal/session/session.go

// Package session ties one client session to its persisted tokens, its
// preference store and its in-memory state slices. A Session is also the
// upstream.TokenSource its API client reads tokens through, so the
// refresh-on-401 transport and the handlers always agree on what is
// stored.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"github.com/dealradar/dealradar-gateway/internal/config"
	"github.com/dealradar/dealradar-gateway/internal/prefs"
	"github.com/dealradar/dealradar-gateway/internal/state"
	"github.com/dealradar/dealradar-gateway/internal/storage"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

// Session is one client's view of the application: persisted tokens and
// email, locale preferences, and the in-memory store slices.
type Session struct {
	ID string

	storage storage.Storage
	cfg     *config.Config
	logger  *logrus.Entry

	store *state.Store
	prefs *prefs.Store

	apiOnce sync.Once
	api     *upstream.Client

	profileOnce sync.Once
}

func newSession(id string, st storage.Storage, cfg *config.Config) *Session {
	return &Session{
		ID:      id,
		storage: st,
		cfg:     cfg,
		logger:  logrus.WithField("session_id", id),
		store:   state.NewStore(),
		prefs:   prefs.NewStore(st, id),
	}
}

// API returns the upstream client bound to this session's tokens. Built
// once per session so concurrent 401s share the same refresh guard.
func (s *Session) API() *upstream.Client {
	s.apiOnce.Do(func() {
		s.api = upstream.New(s.cfg.Upstream.BaseURL, s.cfg.UpstreamTimeout(), s)
	})
	return s.api
}

func (s *Session) State() *state.Store {
	return s.store
}

func (s *Session) Prefs() *prefs.Store {
	return s.prefs
}

// TokenSource implementation.

func (s *Session) AccessToken(ctx context.Context) (string, error) {
	return s.value(ctx, storage.KeyAccessToken)
}

func (s *Session) RefreshToken(ctx context.Context) (string, error) {
	return s.value(ctx, storage.KeyRefreshToken)
}

func (s *Session) SetAccessToken(ctx context.Context, token string) error {
	return s.storage.Set(ctx, s.key(storage.KeyAccessToken), token)
}

// ClearTokens drops both tokens. Called by the transport when a refresh
// is rejected; the cached email survives until an explicit logout.
func (s *Session) ClearTokens(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key(storage.KeyAccessToken)); err != nil {
		return err
	}
	return s.storage.Delete(ctx, s.key(storage.KeyRefreshToken))
}

// Login persists the token pair and the user's email.
func (s *Session) Login(ctx context.Context, tokens *upstream.TokenPair, email string) error {
	if err := s.storage.Set(ctx, s.key(storage.KeyAccessToken), tokens.Access); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, s.key(storage.KeyRefreshToken), tokens.Refresh); err != nil {
		return err
	}
	if email != "" {
		if err := s.storage.Set(ctx, s.key(storage.KeyUserEmail), email); err != nil {
			return err
		}
	}
	return nil
}

// Logout clears tokens, cached email and the account-scoped slices.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.ClearTokens(ctx); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, s.key(storage.KeyUserEmail)); err != nil {
		return err
	}

	s.store.Cart.Clear()
	s.store.Saved.Replace(nil)
	return nil
}

// IsAuthenticated reports whether this session holds a usable credential:
// a live access token, or an expired one with a refresh token behind it.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	access, err := s.AccessToken(ctx)
	if err != nil || access == "" {
		return false
	}
	if !tokenExpired(access) {
		return true
	}

	refresh, err := s.RefreshToken(ctx)
	return err == nil && refresh != ""
}

// Email returns the cached profile email, fetching the profile once per
// session when a token is present and no email has been cached yet.
func (s *Session) Email(ctx context.Context) string {
	if email, err := s.value(ctx, storage.KeyUserEmail); err == nil && email != "" {
		return email
	}

	if !s.IsAuthenticated(ctx) {
		return ""
	}

	s.profileOnce.Do(func() {
		profile, err := s.API().Profile(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("Failed to load profile for session")
			return
		}
		if err := s.storage.Set(ctx, s.key(storage.KeyUserEmail), profile.Email); err != nil {
			s.logger.WithError(err).Warn("Failed to cache profile email")
		}
	})

	email, _ := s.value(ctx, storage.KeyUserEmail)
	return email
}

func (s *Session) key(name string) string {
	return storage.SessionKey(s.ID, name)
}

func (s *Session) value(ctx context.Context, name string) (string, error) {
	value, err := s.storage.Get(ctx, s.key(name))
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return value, err
}

// tokenExpired inspects the exp claim without verifying the signature;
// the gateway does not hold the upstream signing secret. An unparsable
// token counts as expired.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
