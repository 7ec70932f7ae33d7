package services

import (
	"sync"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/google/uuid"
)

// DraftSession is one user's in-progress offer builder for a match: the
// map, environment and layout picked so far before the offer is submitted.
// It lives in memory only; abandoning it loses nothing but the picks.
type DraftSession struct {
	MatchChannelID string
	UserID         uuid.UUID
	Map            string
	Environment    catalog.Environment
	Layout         *catalog.Layout
	UpdatedAt      time.Time
}

type sessionKey struct {
	channelID string
	userID    uuid.UUID
}

// SessionStore holds draft sessions keyed by (match, user), so two users
// building offers for the same match never see each other's picks. Entries
// expire after the TTL and are swept by a background loop.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[sessionKey]*DraftSession
	done     chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	s := &SessionStore{
		ttl:      ttl,
		sessions: make(map[sessionKey]*DraftSession),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Get returns the user's session for the match, creating a fresh one if
// none exists or the old one expired.
func (s *SessionStore) Get(channelID string, userID uuid.UUID) *DraftSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{channelID: channelID, userID: userID}
	session := s.sessions[key]
	if session == nil || time.Since(session.UpdatedAt) > s.ttl {
		session = &DraftSession{MatchChannelID: channelID, UserID: userID}
	}
	session.UpdatedAt = time.Now()
	s.sessions[key] = session
	return session
}

// Put stores the session, refreshing its TTL.
func (s *SessionStore) Put(session *DraftSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.UpdatedAt = time.Now()
	s.sessions[sessionKey{channelID: session.MatchChannelID, userID: session.UserID}] = session
}

// Clear drops the user's session for the match, typically after the offer
// was submitted.
func (s *SessionStore) Clear(channelID string, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey{channelID: channelID, userID: userID})
}

// ClearMatch drops every session attached to a match, used when the match
// is deleted or resolved.
func (s *SessionStore) ClearMatch(channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.sessions {
		if key.channelID == channelID {
			delete(s.sessions, key)
		}
	}
}

func (s *SessionStore) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *SessionStore) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			for key, session := range s.sessions {
				if time.Since(session.UpdatedAt) > s.ttl {
					delete(s.sessions, key)
				}
			}
			s.mu.Unlock()
		}
	}
}
