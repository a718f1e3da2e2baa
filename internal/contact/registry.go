package contact

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// DefaultMaxSessions caps a registry created without an explicit limit.
const DefaultMaxSessions = 10000

// Registry hands out one Session per visitor id and forgets sessions that
// have not been touched within the ttl. At most limit sessions are held;
// creating one past the limit evicts the least recently seen idle session.
type Registry struct {
	sender Sender
	ttl    time.Duration
	limit  int
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*registryEntry
}

// NewRegistry creates a registry whose sessions deliver through sender.
// A limit of zero or less means DefaultMaxSessions.
func NewRegistry(sender Sender, ttl time.Duration, limit int) *Registry {
	if limit <= 0 {
		limit = DefaultMaxSessions
	}
	return &Registry{
		sender:   sender,
		ttl:      ttl,
		limit:    limit,
		now:      time.Now,
		sessions: make(map[string]*registryEntry),
	}
}

// Lookup returns the existing session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

// Snapshot returns the state of the session for id, or an empty idle form
// when there is none. It never registers a session.
func (r *Registry) Snapshot(id string) Snapshot {
	if s, ok := r.Lookup(id); ok {
		return s.Snapshot()
	}
	return Snapshot{Errors: Errors{}, Status: StatusIdle}
}

// Get returns the session for id, creating it when id is empty or unknown.
// The returned id is the one the caller should hand back next time.
func (r *Registry) Get(id string) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.sessions[id]; ok && id != "" {
		e.lastSeen = now
		return id, e.session
	}

	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	if len(r.sessions) >= r.limit {
		r.evictOldestLocked()
	}
	s := NewSession(r.sender)
	r.sessions[id] = &registryEntry{session: s, lastSeen: now}
	return id, s
}

// evictOldestLocked drops the least recently seen session that is not
// submitting. r.mu must be held.
func (r *Registry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.sessions {
		if e.session.Status() == StatusSubmitting {
			continue
		}
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.sessions, oldestID)
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops expired sessions and returns how many were removed. A session
// with a submission in flight is kept.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) && e.session.Status() != StatusSubmitting {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
