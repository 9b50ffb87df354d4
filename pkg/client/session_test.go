package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionLoginPersistsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"returncode":"200","token":"tok-1","user":{"name":"Anna","email":"anna@mail.com"}}`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	b := NewBroadcaster()
	session := NewSession(store, b)
	c := New(Options{BaseURL: srv.URL, Broadcaster: b, Token: session.Token})

	if session.LoggedIn() {
		t.Fatal("LoggedIn() = true before login")
	}

	res, err := session.Login(context.Background(), c, "anna@mail.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Token != "tok-1" {
		t.Errorf("token = %q, want tok-1", res.Token)
	}
	if !session.LoggedIn() {
		t.Error("LoggedIn() = false after login")
	}
	if got := store.Token(); got != "tok-1" {
		t.Errorf("persisted token = %q, want tok-1", got)
	}
	u, ok := session.User()
	if !ok || u.Name != "Anna" {
		t.Errorf("User() = %+v %v, want Anna true", u, ok)
	}
}

func TestSessionLoginFailureLeavesStateUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"returncode":"401","message":"login.error_invalid"}`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	b := NewBroadcaster()
	session := NewSession(store, b)
	c := New(Options{BaseURL: srv.URL, Broadcaster: b, Token: session.Token})

	_, err := session.Login(context.Background(), c, "anna@mail.com", "wrong")
	if !errors.Is(err, ErrBackend) {
		t.Fatalf("Login() error = %v, want ErrBackend", err)
	}
	if session.LoggedIn() {
		t.Error("LoggedIn() = true after failed login")
	}
}

func TestSessionErrorBroadcastLogsOut(t *testing.T) {
	store := newTestStore(t)
	b := NewBroadcaster()
	session := NewSession(store, b)
	if err := store.SetCredentials("stale", ""); err != nil {
		t.Fatalf("SetCredentials() error = %v", err)
	}
	ctx := session.Context()

	b.PublishSessionError(SessionError{Kind: SessionExpired, Message: "login.error_expired"})

	if session.LoggedIn() {
		t.Error("LoggedIn() = true after session error")
	}
	select {
	case <-ctx.Done():
	default:
		t.Error("session context not cancelled by session error")
	}
}

func TestSessionLogoutCancelsContext(t *testing.T) {
	store := newTestStore(t)
	b := NewBroadcaster()
	session := NewSession(store, b)
	if err := store.SetCredentials("tok", ""); err != nil {
		t.Fatalf("SetCredentials() error = %v", err)
	}

	before := session.Context()
	if err := session.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	select {
	case <-before.Done():
	default:
		t.Error("pre-logout context not cancelled")
	}
	// A fresh context is handed out for the next login.
	if after := session.Context(); after.Err() != nil {
		t.Error("post-logout context already cancelled")
	}
	if session.LoggedIn() {
		t.Error("LoggedIn() = true after logout")
	}
}

func TestSessionLogoutIsIdempotent(t *testing.T) {
	session := NewSession(newTestStore(t), NewBroadcaster())
	for i := 0; i < 3; i++ {
		if err := session.Logout(); err != nil {
			t.Fatalf("Logout() #%d error = %v", i+1, err)
		}
	}
}
