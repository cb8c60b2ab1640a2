// Package session owns the client's authentication state: the current user,
// the token lifecycle, and the deferred-authorization gate that lets
// anonymous visitors trigger actions which resume after a successful login.
package session

import (
	"context"
	"errors"
	"sync"

	"shopfront/internal/api"
	"shopfront/internal/logging"
	"shopfront/internal/models"
)

// State is the session lifecycle: Unknown while the bootstrap verify is in
// flight, then settled to Anonymous or Authenticated.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// User is the identity attached to the session.
type User struct {
	ID   string
	Name string
}

// Result is the uniform outcome of request-driven session actions.
type Result struct {
	OK      bool
	Message string
}

// Snapshot is an immutable view of the session handed to subscribers.
type Snapshot struct {
	State State
	User  *User
}

func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

// API is the slice of the remote client the session manager needs.
type API interface {
	Login(ctx context.Context, cr api.Credentials) (*api.AuthResult, error)
	Register(ctx context.Context, p api.RegisterPayload) (*api.AuthResult, error)
	Verify(ctx context.Context) (*api.Identity, error)
}

// Tokens is the token lifecycle as seen from the session: one reader, one
// writer, durable behind the scenes.
type Tokens interface {
	Token() string
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

const unexpectedErrMsg = "An unexpected error occurred."

// Manager is the process-wide session object. It is constructed explicitly
// and passed down; nothing in this package is a package-level singleton.
type Manager struct {
	api    API
	tokens Tokens
	log    logging.Logger

	mu        sync.Mutex
	state     State
	user      *User
	pending   func() // one-shot continuation armed by AuthProcess
	prompt    func() // opens the login dialog; injected by the presentation layer
	listeners []func(Snapshot)

	// verifyAsync runs the post-login reconciliation verify. Tests replace
	// it to make the call synchronous.
	verifyAsync func(fn func())
}

func NewManager(apiClient API, tokens Tokens, log logging.Logger) *Manager {
	return &Manager{
		api:         apiClient,
		tokens:      tokens,
		log:         log,
		state:       StateUnknown,
		verifyAsync: func(fn func()) { go fn() },
	}
}

// SetLoginPrompt installs the hook that opens the login dialog when an
// anonymous visitor hits the auth gate.
func (m *Manager) SetLoginPrompt(prompt func()) {
	m.mu.Lock()
	m.prompt = prompt
	m.mu.Unlock()
}

// OnChange subscribes to session transitions. Subscribers are invoked
// synchronously, outside the manager's lock, in registration order.
func (m *Manager) OnChange(fn func(Snapshot)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, User: m.user}
}

// IsAuthenticated reports whether the session has settled authenticated.
func (m *Manager) IsAuthenticated() bool {
	return m.Snapshot().IsAuthenticated()
}

func (m *Manager) settle(state State, user *User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	snap := Snapshot{State: state, User: user}
	listeners := make([]func(Snapshot), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// Bootstrap settles the session at app start. Without a persisted token it
// settles Anonymous immediately; otherwise the token is verified against
// the server, with an unverified claim peek providing a provisional
// identity while the round trip is in flight.
func (m *Manager) Bootstrap(ctx context.Context) {
	token := m.tokens.Token()
	if token == "" {
		m.settle(StateAnonymous, nil)
		return
	}

	if u := peekIdentity(token); u != nil {
		m.mu.Lock()
		m.user = u
		m.mu.Unlock()
	}

	m.Verify(ctx)
}

// Verify reconciles the session with the server-asserted identity. Any
// failure — network or explicit rejection — degrades silently to Anonymous
// and clears the persisted token; it never surfaces an error to the caller.
func (m *Manager) Verify(ctx context.Context) bool {
	if m.tokens.Token() == "" {
		m.settle(StateAnonymous, nil)
		return false
	}

	id, err := m.api.Verify(ctx)
	if err != nil {
		m.log.Warn(ctx, "token verification failed", "error", err)
		if err := m.tokens.Clear(ctx); err != nil {
			m.log.Error(ctx, "clearing token", "error", err)
		}
		m.settle(StateAnonymous, nil)
		return false
	}

	m.settle(StateAuthenticated, &User{ID: id.ID, Name: id.Name})
	return true
}

// Login authenticates, persists the returned token, and optimistically
// adopts the user echoed by the server; a fire-and-forget Verify then
// reconciles with the server-asserted identity. A successful login fires
// the pending auth-gate continuation exactly once.
func (m *Manager) Login(ctx context.Context, cr api.Credentials) Result {
	res, err := m.api.Login(ctx, cr)
	if err != nil {
		return failure(err)
	}

	if err := m.tokens.Set(ctx, res.Token); err != nil {
		m.log.Error(ctx, "persisting token", "error", err)
		return Result{OK: false, Message: unexpectedErrMsg}
	}

	m.settle(StateAuthenticated, userFromModel(res.User))
	m.firePending()

	m.verifyAsync(func() {
		m.Verify(context.Background())
	})

	return Result{OK: true, Message: "Login successful"}
}

// Register creates an account and adopts the returned session. Unlike
// Login it performs no secondary verify and does not fire the auth gate.
func (m *Manager) Register(ctx context.Context, p api.RegisterPayload) Result {
	res, err := m.api.Register(ctx, p)
	if err != nil {
		return failure(err)
	}

	if err := m.tokens.Set(ctx, res.Token); err != nil {
		m.log.Error(ctx, "persisting token", "error", err)
		return Result{OK: false, Message: unexpectedErrMsg}
	}

	m.settle(StateAuthenticated, userFromModel(res.User))
	return Result{OK: true, Message: "Registration successful"}
}

// Logout clears the token and user synchronously. No server call is made.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.tokens.Clear(ctx); err != nil {
		m.log.Error(ctx, "clearing token", "error", err)
	}
	m.settle(StateAnonymous, nil)
}

// AuthProcess is the deferred-authorization gate. Authenticated callers run
// action immediately. Anonymous callers have it stored as a one-shot
// continuation and the login prompt opened: a subsequent successful Login
// fires it exactly once, a DismissLogin discards it.
func (m *Manager) AuthProcess(action func()) {
	if action == nil {
		return
	}

	m.mu.Lock()
	if m.state == StateAuthenticated {
		m.mu.Unlock()
		action()
		return
	}
	m.pending = action
	prompt := m.prompt
	m.mu.Unlock()

	if prompt != nil {
		prompt()
	}
}

// DismissLogin discards the pending continuation without invoking it.
// Called when the login prompt is closed without a successful login.
func (m *Manager) DismissLogin() {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
}

func (m *Manager) firePending() {
	m.mu.Lock()
	action := m.pending
	m.pending = nil
	m.mu.Unlock()

	if action != nil {
		action()
	}
}

func failure(err error) Result {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return Result{OK: false, Message: apiErr.Message}
	}
	return Result{OK: false, Message: unexpectedErrMsg}
}

func userFromModel(u models.User) *User {
	return &User{ID: u.ID, Name: u.Name}
}
