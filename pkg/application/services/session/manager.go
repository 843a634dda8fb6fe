package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
)

// Option configures a Manager
type Option func(*Manager)

// WithClock overrides the time source used for idle tracking
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the manager's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// Manager hands out one workspace per session id. Each new workspace starts
// from its own clone of the seed store, so sessions never share state.
type Manager struct {
	seed   *memory.Store
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewManager creates a manager. Workspaces idle for longer than ttl are
// evicted; a ttl of zero keeps them forever.
func NewManager(seed *memory.Store, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		seed:       seed,
		ttl:        ttl,
		now:        time.Now,
		logger:     zerolog.Nop(),
		workspaces: make(map[string]*Workspace),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewSessionID generates an id for a new session
func NewSessionID() string {
	return uuid.New().String()
}

// Get returns the workspace for id, creating it on first use
func (m *Manager) Get(id string) (*Workspace, error) {
	if id == "" {
		return nil, fmt.Errorf("session id cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	workspace, exists := m.workspaces[id]
	if !exists {
		store, err := m.seed.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to create workspace for session %s: %w", id, err)
		}
		workspace = NewWorkspace(id, store, m.logger)
		m.workspaces[id] = workspace
		m.logger.Debug().Str("session", id).Int("sessions", len(m.workspaces)).Msg("Workspace created")
	}
	workspace.lastUsed = now

	return workspace, nil
}

// Drop discards the workspace for id
func (m *Manager) Drop(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.workspaces[id]
	delete(m.workspaces, id)
	return exists
}

// Sweep evicts workspaces idle since before now minus the ttl and returns how many were removed
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked(now)
}

// Len returns the number of live workspaces
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workspaces)
}

func (m *Manager) sweepLocked(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}

	removed := 0
	for id, workspace := range m.workspaces {
		if now.Sub(workspace.lastUsed) > m.ttl {
			delete(m.workspaces, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info().Int("evicted", removed).Int("sessions", len(m.workspaces)).Msg("Idle workspaces evicted")
	}
	return removed
}
