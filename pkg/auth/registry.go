package auth

import (
	"sync"
	"time"
)

// SessionStore is the capability the request pipeline needs from a session
// backend: mint a session and check one. Implementations other than the
// in-memory Registry (persistent, clustered) can be swapped in without
// touching call sites.
type SessionStore interface {
	Create(id string) time.Time
	IsValid(id string) bool
}

// Registry is the process-local session table. Sessions are lost on restart.
//
// A TTL of zero disables server-side expiry: a session stays valid until the
// process exits, even after the cookie expired client-side. That mirrors the
// long-standing behavior of the service; set SessionTTL to the cookie
// lifetime to actually enforce expiry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry creates an empty session registry with the given expiry policy.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create records the session and returns its creation time.
func (r *Registry) Create(id string) time.Time {
	createdAt := r.now()
	r.mu.Lock()
	r.sessions[id] = createdAt
	r.mu.Unlock()
	return createdAt
}

// IsValid reports whether the session exists and has not expired.
func (r *Registry) IsValid(id string) bool {
	r.mu.RLock()
	createdAt, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if r.ttl == 0 {
		return true
	}
	return r.now().Sub(createdAt) <= r.ttl
}

// Len returns the number of recorded sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
