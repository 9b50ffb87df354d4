package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the durable per-user key-value store backing the session:
// the credential token, the serialized user profile, and the preferred
// language code. It is a single small JSON document written atomically
// (write temp file, rename over) so a crash never leaves it torn.
type Store struct {
	path string
	mu   sync.Mutex
}

type storeData struct {
	Token             string `json:"token,omitempty"`
	User              string `json:"user,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
}

// NewStore opens (or prepares to create) the store at path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Token returns the persisted credential token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

// User returns the persisted serialized user profile.
func (s *Store) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().User
}

// PreferredLanguage returns the persisted language code, or "".
func (s *Store) PreferredLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().PreferredLanguage
}

// SetCredentials persists the token and serialized profile together.
func (s *Store) SetCredentials(token, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.load()
	d.Token = token
	d.User = user
	return s.save(d)
}

// ClearCredentials removes the token and profile but keeps the
// language preference, which survives logout.
func (s *Store) ClearCredentials() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.load()
	d.Token = ""
	d.User = ""
	return s.save(d)
}

// SetPreferredLanguage persists the preferred language code.
func (s *Store) SetPreferredLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.load()
	d.PreferredLanguage = code
	return s.save(d)
}

// load reads the current document; a missing or unreadable file yields
// an empty document rather than an error, matching first-run state.
func (s *Store) load() storeData {
	var d storeData
	b, err := os.ReadFile(s.path)
	if err != nil {
		return d
	}
	_ = json.Unmarshal(b, &d)
	return d
}

func (s *Store) save(d storeData) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
