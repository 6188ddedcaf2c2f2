// Package orch ties inbound commands to room state mutation and
// outbound fan-out. Room-wide notifications are pushed through the
// registry's sinks here; sender-directed responses are returned to the
// calling adapter, which owns that connection.
package orch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/app"
	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

const archiveTimeout = 5 * time.Second

type Orchestrator struct {
	Registry *app.Registry
	Rooms    core.RoomStore
	Policy   app.Policy
	Archive  core.Archive
}

// Connect registers a fresh transport connection.
func (o *Orchestrator) Connect(sid core.SessionID, sink core.Sink, cancel context.CancelFunc) *domain.User {
	return o.Registry.Connect(sid, sink, cancel)
}

// Disconnect runs the same cleanup as an explicit leave, tagged with
// reason=disconnected, then discards the connection record. Safe to
// call more than once per connection.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	if roomID, ok := o.Registry.RoomOf(sid); ok {
		o.detach(sid, roomID, domain.ReasonDisconnected)
	}
	o.Registry.Disconnect(sid)
}

// detach removes the participant from a room, notifies the remaining
// members and deletes the room once it empties.
func (o *Orchestrator) detach(sid core.SessionID, roomID domain.RoomID, reason string) {
	o.Registry.ClearRoom(sid)
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}
	removed, remaining := room.RemoveParticipant(sid)
	if !removed {
		return
	}
	o.broadcastRoom(roomID, core.UserLeftEvent{
		Type:             core.EvtUserLeft,
		UserID:           string(sid),
		ParticipantCount: remaining,
		Timestamp:        time.Now(),
		Reason:           reason,
	})
	if remaining == 0 {
		snap := room.Snapshot()
		if o.Rooms.DeleteIfEmpty(roomID) {
			o.persistRoom(snap)
		}
	}
}

// broadcastRoom fans an event out to every sink bound to the room,
// sender included.
func (o *Orchestrator) broadcastRoom(roomID domain.RoomID, v any) {
	for _, m := range o.Registry.MembersOfRoom(roomID) {
		if err := m.Sink.Send(v); err != nil {
			o.onDrop(roomID, m.SID, err)
		}
	}
}

// broadcastFrom fans an event out to the room except the sender.
func (o *Orchestrator) broadcastFrom(from core.SessionID, roomID domain.RoomID, v any) {
	for _, m := range o.Registry.MembersOfRoom(roomID) {
		if m.SID == from {
			continue
		}
		if err := m.Sink.Send(v); err != nil {
			o.onDrop(roomID, m.SID, err)
		}
	}
}

func (o *Orchestrator) onDrop(roomID domain.RoomID, sid core.SessionID, err error) {
	log.Warn().Str("module", "orch").Str("room", string(roomID)).Str("sid", string(sid)).Err(err).Msg("fan-out drop")
	if o.Policy == nil {
		return
	}
	if o.Policy.OnBackPressure(string(roomID), sid) == app.KickMember {
		o.Registry.Cancel(sid)
	}
}

// roomParticipant resolves the precondition shared by message-bearing
// events: the room exists and the connection is one of its participants.
func (o *Orchestrator) roomParticipant(sid core.SessionID, roomID domain.RoomID) (core.RoomService, domain.Participant, error) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return nil, domain.Participant{}, domain.ErrRoomNotFound
	}
	p, ok := room.Participant(sid)
	if !ok {
		return nil, domain.Participant{}, domain.ErrNotInRoom
	}
	return room, p, nil
}

func (o *Orchestrator) persistMessage(roomID domain.RoomID, msg domain.Message) {
	if o.Archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		if err := o.Archive.PersistMessage(ctx, roomID, msg); err != nil {
			log.Warn().Str("module", "orch").Str("room", string(roomID)).Err(err).Msg("archive message failed")
		}
	}()
}

func (o *Orchestrator) persistRoom(snap core.RoomSnapshot) {
	if o.Archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		if err := o.Archive.PersistRoom(ctx, snap); err != nil {
			log.Warn().Str("module", "orch").Str("room", string(snap.ID)).Err(err).Msg("archive room failed")
		}
	}()
}
