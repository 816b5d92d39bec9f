// Package session owns the authenticated-user lifecycle: who is signed
// in, the durable copies of the user record and bearer token, and the
// redirect decisions that keep unauthenticated users on public screens.
package session

import (
	"errors"
	"sync"

	"github.com/consistencyhq/consistency-cli/internal/logger"
	"github.com/consistencyhq/consistency-cli/internal/models"
)

// State is the tri-state session flag: unknown until Init has run, then
// signed in or out.
type State int

const (
	StateUnknown State = iota
	StateSignedOut
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StateSignedOut:
		return "signed out"
	case StateSignedIn:
		return "signed in"
	default:
		return "unknown"
	}
}

// TokenSetter is the slice of the API client the manager drives: the
// default authorization header for all subsequent requests.
type TokenSetter interface {
	SetAuthToken(token string)
	RemoveAuthToken()
}

// Manager is the single source of truth for the current session. The
// user record and token are set together or not at all; consumers read
// through the accessors and never touch durable storage directly.
type Manager struct {
	store *Store
	api   TokenSetter
	nav   Navigator

	mu    sync.RWMutex
	state State
	user  models.User
	token string
}

// NewManager returns a manager in StateUnknown. Call Init before using
// the accessors. nav may be nil when no navigation surface exists (unit
// tests, scripting).
func NewManager(store *Store, api TokenSetter, nav Navigator) *Manager {
	return &Manager{
		store: store,
		api:   api,
		nav:   nav,
		state: StateUnknown,
	}
}

// Init rehydrates the session from durable storage. A readable, complete
// user+token pair yields a signed-in session and forwards the token to
// the API client; anything else (absent values, partial state from an
// interrupted sign-in, unreadable or malformed storage) fails open to
// signed out. Read errors are logged, never surfaced. The state always
// leaves StateUnknown, and the redirect policy runs only after that.
func (m *Manager) Init() {
	user, uerr := m.store.LoadUser()
	token, terr := m.store.LoadToken()

	if uerr != nil && !errors.Is(uerr, ErrNoSession) {
		logger.Warn("failed to read stored user record", "error", uerr)
	}
	if terr != nil && !errors.Is(terr, ErrNoSession) {
		logger.Warn("failed to read stored auth token", "error", terr)
	}

	m.mu.Lock()
	if uerr == nil && terr == nil && user.ID != 0 && token != "" {
		m.user = user
		m.token = token
		m.state = StateSignedIn
		m.api.SetAuthToken(token)
	} else {
		m.state = StateSignedOut
	}
	m.mu.Unlock()

	logger.Debug("session initialized", "state", m.State().String())

	m.evaluateRedirect()
}

// SignIn persists the user record and token, updates the in-memory
// session and the API client's default authorization header, and applies
// the redirect policy. Both values must be non-zero or the call is a
// no-op. The two storage writes are sequential and independent; a
// failure of either is logged and aborts the sign-in without touching
// in-memory state, and whatever partial durable state remains reads back
// as no session.
func (m *Manager) SignIn(user models.User, token string) {
	if user.ID == 0 || token == "" {
		return
	}

	if err := m.store.SaveUser(user); err != nil {
		logger.Error("failed to persist user record", "error", err)
		return
	}

	if err := m.store.SaveToken(token); err != nil {
		logger.Error("failed to persist auth token", "error", err)
		return
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.state = StateSignedIn
	m.mu.Unlock()

	m.api.SetAuthToken(token)

	logger.Info("signed in", "user_id", user.ID, "email", user.Email)

	m.evaluateRedirect()
}

// SignOut clears the in-memory session, removes both durable values and
// the API client's authorization header, then applies the redirect
// policy. Storage delete failures are logged at warn level and otherwise
// swallowed: the in-memory clear always wins, though an undeletable
// durable copy could resurrect the session on a later Init.
func (m *Manager) SignOut() {
	if err := m.store.DeleteUser(); err != nil {
		logger.Warn("failed to clear stored user record", "error", err)
	}
	if err := m.store.DeleteToken(); err != nil {
		logger.Warn("failed to clear stored auth token", "error", err)
	}

	m.mu.Lock()
	m.user = models.User{}
	m.token = ""
	m.state = StateSignedOut
	m.mu.Unlock()

	m.api.RemoveAuthToken()

	logger.Info("signed out")

	m.evaluateRedirect()
}

// RouteChanged re-applies the redirect policy after a navigation change.
func (m *Manager) RouteChanged() {
	m.evaluateRedirect()
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// User returns the signed-in user, if any.
func (m *Manager) User() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.state == StateSignedIn
}

// Token returns the current bearer token, empty when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) evaluateRedirect() {
	if m.nav == nil {
		return
	}

	target, ok := EvaluateRedirect(m.State(), m.nav.Current())
	if !ok {
		return
	}

	logger.Debug("redirecting", "to", string(target))
	m.nav.Replace(target)
}
