// internal/session/manager.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dealradar/dealradar-gateway/internal/config"
	"github.com/dealradar/dealradar-gateway/internal/storage"
)

// Manager hands out Session objects keyed by the session cookie. The
// in-memory part of a session (state slices, refresh guard) lives here;
// the durable part lives in client storage, so an idle session evicted
// from the map comes back with its tokens and preferences intact.
type Manager struct {
	storage storage.Storage
	cfg     *config.Config

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

func NewManager(st storage.Storage, cfg *config.Config) *Manager {
	m := &Manager{
		storage:  st,
		cfg:      cfg,
		sessions: make(map[string]*entry),
	}

	// Evict idle sessions periodically
	go m.cleanupSessions()

	return m
}

// NewID mints a session identifier for the cookie.
func (m *Manager) NewID() string {
	return uuid.New().String()
}

// Get returns the session for id, creating it on first sight.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		e = &entry{session: newSession(id, m.storage, m.cfg)}
		m.sessions[id] = e
	}
	e.lastSeen = time.Now()
	return e.session
}

func (m *Manager) cleanupSessions() {
	ttl := time.Duration(m.cfg.Session.TTL) * time.Hour
	for {
		time.Sleep(time.Minute)
		m.mu.Lock()
		for id, e := range m.sessions {
			if time.Since(e.lastSeen) > ttl {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
