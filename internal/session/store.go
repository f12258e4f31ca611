// Package session holds the identity of a client session and the mock login
// entry points that produce it.
package session

import (
	"github.com/goserg/arcesports/internal/domain"
	"github.com/sirupsen/logrus"
)

// Store holds the active identity of one client session. The zero value is
// not usable; create stores with New.
//
// A Store is not safe for concurrent use. Callers that share one between
// goroutines serialise access themselves.
type Store struct {
	current  domain.Identity
	disposed bool
	log      *logrus.Entry
}

func New(l *logrus.Logger) *Store {
	return &Store{
		current: domain.Anonymous{},
		log:     l.WithField("from", "session"),
	}
}

// Login replaces the current identity with m. Nothing is merged from the
// previous identity. A nil member behaves like Logout.
func (s *Store) Login(m domain.Member) {
	if s.disposed {
		s.log.Warn("login on disposed session ignored")
		return
	}
	if m == nil {
		s.Logout()
		return
	}
	s.current = m
	s.log.WithFields(logrus.Fields{
		"kind": m.Kind(),
		"id":   m.Profile().ID,
	}).Debug("logged in")
}

// Logout resets the session to anonymous. Calling it repeatedly is harmless.
func (s *Store) Logout() {
	if _, ok := s.current.(domain.Anonymous); ok {
		return
	}
	s.log.WithField("kind", s.current.Kind()).Debug("logged out")
	s.current = domain.Anonymous{}
}

func (s *Store) Current() domain.Identity {
	return s.current
}

// Dispose ends the session. The store stays anonymous afterwards.
func (s *Store) Dispose() {
	s.current = domain.Anonymous{}
	s.disposed = true
}

func (s *Store) Disposed() bool {
	return s.disposed
}
