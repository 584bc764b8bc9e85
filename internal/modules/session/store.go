package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory session registry. Sessions hold no backing store
// and vanish with the process; idle ones are evicted lazily on access.
type Store struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// GetOrCreate returns the session for id, creating a fresh one (with a new
// uuid) when the id is empty, unknown or expired. The second result reports
// whether a new session was created, so the caller can reset the cookie.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.evictStaleLocked(now)

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			s.touch(now)
			return s, false
		}
	}

	s := newSession(uuid.New().String(), now)
	st.sessions[s.ID] = s
	return s, true
}

// Get returns the session for id without creating one.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	s.touch(st.now())
	return s, true
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) evictStaleLocked(now time.Time) {
	for id, s := range st.sessions {
		if s.staleAt(now, st.ttl) {
			delete(st.sessions, id)
		}
	}
}
