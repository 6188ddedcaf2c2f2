package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

type sessionEntry struct {
	User   *domain.User
	RoomID domain.RoomID
	Sink   core.Sink
	Cancel context.CancelFunc
}

// Registry maps live transport connections to their identity and the
// single room each belongs to. A connection is in zero or one room;
// binding a new room replaces the old binding, it never stacks.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[core.SessionID]*sessionEntry)}
}

// Connect registers a connection with empty room membership. Nothing is
// externally visible until the first join.
func (r *Registry) Connect(sid core.SessionID, sink core.Sink, cancel context.CancelFunc) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok {
		e.Sink = sink
		e.Cancel = cancel
		return e.User
	}
	u := domain.NewUser(string(sid), time.Now())
	r.sessions[sid] = &sessionEntry{User: u, Sink: sink, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("connection registered")
	return u
}

// Disconnect discards the connection record. Idempotent against
// duplicate disconnect signals; the second call reports ok=false.
func (r *Registry) Disconnect(sid core.SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sid]; !ok {
		return false
	}
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("connection discarded")
	return true
}

func (r *Registry) User(sid core.SessionID) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.User, true
	}
	return nil, false
}

func (r *Registry) Sink(sid core.SessionID) (core.Sink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok && e.Sink != nil {
		return e.Sink, true
	}
	return nil, false
}

// RoomOf returns the room the connection currently belongs to, if any.
func (r *Registry) RoomOf(sid core.SessionID) (domain.RoomID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.RoomID == "" {
		return "", false
	}
	return e.RoomID, true
}

// SetRoom binds the connection to roomID. The caller is responsible for
// having detached it from any previous room first.
func (r *Registry) SetRoom(sid core.SessionID, roomID domain.RoomID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return false
	}
	e.RoomID = roomID
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(roomID)).Msg("room bound")
	return true
}

func (r *Registry) ClearRoom(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok {
		e.RoomID = ""
	}
}

// UpdateStatus mutates the connection-level presence meta and reports
// which room (if any) should be notified.
func (r *Registry) UpdateStatus(sid core.SessionID, status, language string) (domain.RoomID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return "", false
	}
	e.User.Status = status
	if language != "" {
		e.User.Language = language
	}
	return e.RoomID, true
}

type memberSnap struct {
	SID  core.SessionID
	Sink core.Sink
}

// MembersOfRoom snapshots the sinks currently bound to a room.
func (r *Registry) MembersOfRoom(roomID domain.RoomID) []memberSnap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]memberSnap, 0, len(r.sessions))
	for sid, e := range r.sessions {
		if e.RoomID == roomID && e.Sink != nil {
			out = append(out, memberSnap{SID: sid, Sink: e.Sink})
		}
	}
	return out
}

// Cancel fires the connection's cancel func, tearing down its pumps.
// Disconnection cleanup then runs through the normal path.
func (r *Registry) Cancel(sid core.SessionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok || e.Cancel == nil {
		return false
	}
	e.Cancel()
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("canceled session")
	return true
}
