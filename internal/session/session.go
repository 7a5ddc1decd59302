// Package session holds the credential obtained at login.
//
// The session is the only process-wide shared state of the admin client.
// It is created once at startup and handed to the gateway explicitly, so
// there is no ambient token storage to stub out in tests.
package session

import "sync"

// Session stores the bearer token for the current operator.
// The zero value is a logged-out session; methods are safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
}

func New() *Session {
	return &Session{}
}

// Set stores the token obtained from a successful login.
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the current token and whether one is present.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Active reports whether an operator is logged in.
func (s *Session) Active() bool {
	_, ok := s.Token()
	return ok
}

// Clear discards the token. Called on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
