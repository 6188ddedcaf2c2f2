package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingualive/coordinator/internal/core"
)

type nullSink struct{}

func (nullSink) Send(any) error { return nil }

func TestRegistry_ConnectAndDisconnect(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()

	// Given no connection is registered
	_, ok := r.User("c1")
	req.False(ok)

	// When a connection registers
	u := r.Connect("c1", nullSink{}, nil)
	req.NotNil(u)
	req.Equal("c1", u.ID)

	got, ok := r.User("c1")
	req.True(ok)
	req.Same(u, got)

	// Then disconnect discards it, and only once
	req.True(r.Disconnect("c1"))
	req.False(r.Disconnect("c1"))
	_, ok = r.User("c1")
	req.False(ok)
}

func TestRegistry_SingleRoomMembership(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	r.Connect("c1", nullSink{}, nil)

	_, ok := r.RoomOf("c1")
	req.False(ok)

	req.True(r.SetRoom("c1", "r1"))
	roomID, ok := r.RoomOf("c1")
	req.True(ok)
	req.Equal("r1", string(roomID))

	// Binding a second room replaces the first, it never stacks
	req.True(r.SetRoom("c1", "r2"))
	roomID, _ = r.RoomOf("c1")
	req.Equal("r2", string(roomID))

	r.ClearRoom("c1")
	_, ok = r.RoomOf("c1")
	req.False(ok)

	req.False(r.SetRoom("ghost", "r1"))
}

func TestRegistry_MembersOfRoom(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	r.Connect("a", nullSink{}, nil)
	r.Connect("b", nullSink{}, nil)
	r.Connect("c", nullSink{}, nil)
	r.SetRoom("a", "r1")
	r.SetRoom("b", "r1")
	r.SetRoom("c", "r2")

	members := r.MembersOfRoom("r1")
	req.Len(members, 2)
	sids := []core.SessionID{members[0].SID, members[1].SID}
	req.ElementsMatch([]core.SessionID{"a", "b"}, sids)

	req.Len(r.MembersOfRoom("r2"), 1)
	req.Empty(r.MembersOfRoom("nope"))
}

func TestRegistry_UpdateStatus(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()
	r.Connect("a", nullSink{}, nil)
	r.SetRoom("a", "r1")

	roomID, ok := r.UpdateStatus("a", "away", "fr")
	req.True(ok)
	req.Equal("r1", string(roomID))

	u, _ := r.User("a")
	req.Equal("away", u.Status)
	req.Equal("fr", u.Language)

	// Empty language keeps the previous one
	r.UpdateStatus("a", "back", "")
	u, _ = r.User("a")
	req.Equal("fr", u.Language)

	_, ok = r.UpdateStatus("ghost", "away", "")
	req.False(ok)
}

func TestRegistry_Cancel(t *testing.T) {
	req := require.New(t)
	r := NewRegistry()

	canceled := false
	r.Connect("a", nullSink{}, func() { canceled = true })

	req.True(r.Cancel("a"))
	req.True(canceled)
	req.False(r.Cancel("ghost"))
}
