package session

import (
	"sync"

	"github.com/rs/zerolog"
)

// Manager holds independent sessions keyed by id. It is safe for
// concurrent use; each State it hands out still has a single driver.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
	log      zerolog.Logger
}

// NewManager creates an empty Manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*State),
		log:      log,
	}
}

// Create starts a new session with its own store and archive.
func (m *Manager) Create() *State {
	s := New(WithLogger(m.log))

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.log.Debug().Str("session", s.ID).Msg("session created")
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close drops a session. Closing an unknown id is a no-op.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
