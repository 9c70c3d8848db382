package locator

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionStore keeps client sessions in memory with a sliding expiry.
type SessionStore struct {
	sessions *cache.Cache
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{
		sessions: cache.New(ttl, 2*ttl),
		ttl:      ttl,
	}
}

// Get returns the session for id, creating one when id is empty or unknown.
func (s *SessionStore) Get(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	if v, ok := s.sessions.Get(id); ok {
		session := v.(*Session)
		s.sessions.Set(id, session, s.ttl)
		return session
	}

	session := NewSession(id)
	if err := s.sessions.Add(id, session, s.ttl); err != nil {
		// lost a race with a concurrent creator
		if v, ok := s.sessions.Get(id); ok {
			return v.(*Session)
		}
		s.sessions.Set(id, session, s.ttl)
	}
	return session
}

// Lookup returns an existing session without creating one.
func (s *SessionStore) Lookup(id string) (*Session, bool) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

func (s *SessionStore) Len() int {
	return s.sessions.ItemCount()
}
