package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

// RoomManagerImpl owns the authoritative room map. Lock ordering is
// manager -> room; rooms never call back into the manager.
type RoomManagerImpl struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
	now   func() time.Time
}

func NewRoomManager() core.RoomStore {
	return &RoomManagerImpl{
		rooms: make(map[domain.RoomID]core.RoomService),
		now:   time.Now,
	}
}

func (m *RoomManagerImpl) GetOrCreate(id domain.RoomID) core.RoomService {
	m.mu.RLock()
	room, ok := m.rooms[id]
	m.mu.RUnlock()
	if ok && !room.Closed() {
		return room
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if room, ok = m.rooms[id]; ok && !room.Closed() {
		return room
	}
	room = core.NewRoomService(id, m.now())
	m.rooms[id] = room
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room created")
	return room
}

func (m *RoomManagerImpl) Get(id domain.RoomID) (core.RoomService, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[id]
	if !ok || room.Closed() {
		return nil, false
	}
	return room, true
}

func (m *RoomManagerImpl) List() []core.RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(m.rooms))
	for id, r := range m.rooms {
		if r.Closed() {
			continue
		}
		out = append(out, core.RoomInfo{ID: id, ParticipantCount: r.ParticipantCount(), CreatedAt: r.CreatedAt()})
	}
	return out
}

func (m *RoomManagerImpl) DeleteIfEmpty(id domain.RoomID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		return false
	}
	// CloseIfEmpty is atomic against concurrent AddParticipant: a join
	// racing with this check either lands before (room stays) or
	// observes the closed room, fails, and re-creates it.
	if !room.CloseIfEmpty() {
		return false
	}
	delete(m.rooms, id)
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room deleted (empty)")
	return true
}

// SweepIdle reclaims rooms left empty beyond the inactivity threshold.
// Safety net for rooms whose immediate deletion was dropped; the common
// case is handled on leave/disconnect.
func (m *RoomManagerImpl) SweepIdle(olderThan time.Duration) int {
	cutoff := m.now().Add(-olderThan)
	m.mu.Lock()
	defer m.mu.Unlock()
	swept := 0
	for id, room := range m.rooms {
		if room.CreatedAt().After(cutoff) {
			continue
		}
		if room.CloseIfEmpty() {
			delete(m.rooms, id)
			swept++
			log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room swept (idle)")
		}
	}
	return swept
}
