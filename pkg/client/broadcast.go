package client

import "sync"

// BackendError is the generic, recoverable failure kind: the backend
// rejected or never received a request. Views show it as a dismissible
// banner with a retry action.
type BackendError struct {
	Returncode string
	Message    string
}

// SessionErrorKind distinguishes the two session-failure sub-kinds.
type SessionErrorKind int

const (
	// SessionInvalid means the stored credential was rejected outright.
	SessionInvalid SessionErrorKind = iota
	// SessionExpired means the credential was valid but has timed out.
	SessionExpired
)

// SessionError signals that the stored credential is unusable. Unlike
// BackendError it forces a credential clear and a return to login.
type SessionError struct {
	Kind    SessionErrorKind
	Message string
}

type backendSub struct {
	id int
	fn func(BackendError)
}

type sessionSub struct {
	id int
	fn func(SessionError)
}

// Broadcaster decouples failure detection (the client wrapper) from
// reaction (views, the session container) without threading error
// values through call chains. The two event kinds are independent:
// subscribers of one never see the other.
//
// Dispatch is synchronous and in registration order. Each publish
// iterates over a snapshot of the subscriber list, so unsubscribing
// from inside a callback is safe and does not disturb the current
// pass. Publishing with no subscribers is a no-op.
type Broadcaster struct {
	mu      sync.Mutex
	nextID  int
	backend []backendSub
	session []sessionSub
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// OnBackendError registers fn for generic backend failures and returns
// a handle that removes the registration.
func (b *Broadcaster) OnBackendError(fn func(BackendError)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.backend = append(b.backend, backendSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.backend {
			if s.id == id {
				b.backend = append(b.backend[:i:i], b.backend[i+1:]...)
				return
			}
		}
	}
}

// OnSessionError registers fn for session failures and returns a
// handle that removes the registration.
func (b *Broadcaster) OnSessionError(fn func(SessionError)) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.session = append(b.session, sessionSub{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.session {
			if s.id == id {
				b.session = append(b.session[:i:i], b.session[i+1:]...)
				return
			}
		}
	}
}

// PublishBackendError delivers err to every backend-error subscriber.
func (b *Broadcaster) PublishBackendError(err BackendError) {
	b.mu.Lock()
	snapshot := make([]backendSub, len(b.backend))
	copy(snapshot, b.backend)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(err)
	}
}

// PublishSessionError delivers err to every session-error subscriber.
func (b *Broadcaster) PublishSessionError(err SessionError) {
	b.mu.Lock()
	snapshot := make([]sessionSub, len(b.session))
	copy(snapshot, b.session)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(err)
	}
}
