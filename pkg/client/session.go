package client

import (
	"context"
	"encoding/json"
	"sync"
)

// Session is the process-wide source of truth for "who is logged in".
// Credentials live in the durable Store; the session additionally owns
// a context that covers all requests made while logged in, so logout
// can abort anything still in flight.
//
// A session-error broadcast clears the credentials automatically: the
// wrapper detects the failure, the broadcaster fans it out, and the
// session reacts exactly like an explicit logout.
type Session struct {
	store *Store

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession binds a session to its store and subscribes it to session
// errors on b.
func NewSession(store *Store, b *Broadcaster) *Session {
	s := &Session{store: store}
	s.resetContext()
	b.OnSessionError(func(SessionError) {
		_ = s.Logout()
	})
	return s
}

// Token returns the persisted credential, or "" when logged out. Wire
// this as Options.Token when building the Client.
func (s *Session) Token() string {
	return s.store.Token()
}

// LoggedIn reports whether a credential is persisted.
func (s *Session) LoggedIn() bool {
	return s.store.Token() != ""
}

// User returns the persisted profile and whether one exists.
func (s *Session) User() (User, bool) {
	raw := s.store.User()
	if raw == "" {
		return User{}, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false
	}
	return u, true
}

// Context returns a context cancelled by logout. Requests tied to the
// session should derive from it so logout aborts them (best effort).
func (s *Session) Context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// Login authenticates via c and, on success, persists the token and
// profile. The error is the wrapper's sentinel, already broadcast.
func (s *Session) Login(ctx context.Context, c *Client, email, password string) (*LoginResult, error) {
	res, err := c.Login(ctx, email, password)
	if err != nil {
		return res, err
	}

	var profile string
	if res.User != nil {
		if b, err := json.Marshal(res.User); err == nil {
			profile = string(b)
		}
	}
	if err := s.store.SetCredentials(res.Token, profile); err != nil {
		return res, err
	}

	s.mu.Lock()
	s.resetContextLocked()
	s.mu.Unlock()

	return res, nil
}

// Logout clears the persisted credentials and cancels the session
// context. Safe to call repeatedly and from broadcast callbacks.
func (s *Session) Logout() error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.resetContextLocked()
	s.mu.Unlock()

	return s.store.ClearCredentials()
}

func (s *Session) resetContext() {
	s.mu.Lock()
	s.resetContextLocked()
	s.mu.Unlock()
}

func (s *Session) resetContextLocked() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
}
