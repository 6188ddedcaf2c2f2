package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

func TestRoomManager_GetOrCreateReturnsSameRoom(t *testing.T) {
	req := require.New(t)
	m := NewRoomManager()

	r1 := m.GetOrCreate("r1")
	r2 := m.GetOrCreate("r1")
	req.Same(r1, r2)

	other := m.GetOrCreate("r2")
	req.NotSame(r1, other)
	req.Len(m.List(), 2)
}

func TestRoomManager_ConcurrentGetOrCreate(t *testing.T) {
	req := require.New(t)
	m := NewRoomManager()

	const n = 32
	rooms := make([]core.RoomService, n)
	hosts := make([]bool, n)
	added := make([]bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			room := m.GetOrCreate("shared")
			sid := core.SessionID(fmt.Sprintf("c%d", i))
			hosts[i], added[i] = room.AddParticipant(sid, domain.Participant{ID: string(sid)})
			rooms[i] = room
		}(i)
	}
	wg.Wait()

	// Exactly one room object exists and exactly one joiner is host
	hostCount := 0
	for i := 0; i < n; i++ {
		req.True(added[i])
	}
	for i := 1; i < n; i++ {
		req.Same(rooms[0], rooms[i])
	}
	for _, h := range hosts {
		if h {
			hostCount++
		}
	}
	req.Equal(1, hostCount)
	req.Equal(n, rooms[0].ParticipantCount())
	req.Len(m.List(), 1)
}

func TestRoomManager_DeleteIfEmpty(t *testing.T) {
	req := require.New(t)
	m := NewRoomManager()

	room := m.GetOrCreate("r1")
	room.AddParticipant("a", domain.Participant{ID: "a"})

	// A populated room is not deleted
	req.False(m.DeleteIfEmpty("r1"))
	_, ok := m.Get("r1")
	req.True(ok)

	room.RemoveParticipant("a")
	req.True(m.DeleteIfEmpty("r1"))
	_, ok = m.Get("r1")
	req.False(ok)

	// Deleting again is a no-op
	req.False(m.DeleteIfEmpty("r1"))
}

func TestRoomManager_JoinAfterDeleteGetsFreshRoom(t *testing.T) {
	req := require.New(t)
	m := NewRoomManager()

	stale := m.GetOrCreate("r1")
	req.True(m.DeleteIfEmpty("r1"))

	// A join that raced with deletion observes the closed room and
	// retries; GetOrCreate must hand out a fresh one.
	_, ok := stale.AddParticipant("a", domain.Participant{ID: "a"})
	req.False(ok)

	fresh := m.GetOrCreate("r1")
	req.NotSame(stale, fresh)
	isHost, ok := fresh.AddParticipant("a", domain.Participant{ID: "a"})
	req.True(ok)
	req.True(isHost)
}

func TestRoomManager_SweepIdle(t *testing.T) {
	req := require.New(t)

	current := time.Now()
	m := &RoomManagerImpl{
		rooms: make(map[domain.RoomID]core.RoomService),
		now:   func() time.Time { return current },
	}

	old := m.GetOrCreate("old-empty")
	m.GetOrCreate("old-occupied").AddParticipant("a", domain.Participant{ID: "a"})

	current = current.Add(25 * time.Hour)
	m.GetOrCreate("young-empty")

	// When sweeping with a 24h threshold
	swept := m.SweepIdle(24 * time.Hour)

	// Then only the old empty room is reclaimed
	req.Equal(1, swept)
	req.True(old.Closed())
	_, ok := m.Get("old-empty")
	req.False(ok)
	_, ok = m.Get("old-occupied")
	req.True(ok)
	_, ok = m.Get("young-empty")
	req.True(ok)
}

func TestSweeper_RunStopsOnContextCancel(t *testing.T) {
	req := require.New(t)
	m := NewRoomManager()
	s := &Sweeper{Rooms: m, Interval: 10 * time.Millisecond, IdleTTL: 0}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	m.GetOrCreate("r1")
	err := s.Run(ctx)
	req.Error(err)

	// With a zero TTL the empty room is gone after a few ticks
	_, ok := m.Get("r1")
	req.False(ok)
}
