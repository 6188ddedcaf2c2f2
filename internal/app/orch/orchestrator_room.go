package orch

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

// Join attaches the connection to roomID, creating the room lazily.
// One room per connection: any previous membership is left first. The
// returned event is the sender's room-joined response; the rest of the
// room is notified here.
func (o *Orchestrator) Join(sid core.SessionID, roomID domain.RoomID, name, language string) (core.RoomJoinedEvent, error) {
	if err := domain.ValidateRoomID(roomID); err != nil {
		return core.RoomJoinedEvent{}, err
	}
	user, ok := o.Registry.User(sid)
	if !ok {
		return core.RoomJoinedEvent{}, domain.ErrNotRegistered
	}
	if err := user.SetName(name); err != nil {
		return core.RoomJoinedEvent{}, err
	}
	if language != "" {
		user.Language = language
	}

	if prev, ok := o.Registry.RoomOf(sid); ok && prev != roomID {
		o.detach(sid, prev, "")
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("from_room", string(prev)).Msg("left previous room")
	}

	p := domain.Participant{
		ID:       string(sid),
		Name:     user.Name,
		Language: user.Language,
		Status:   user.Status,
		JoinedAt: time.Now(),
	}
	var (
		room   core.RoomService
		isHost bool
	)
	for {
		room = o.Rooms.GetOrCreate(roomID)
		var added bool
		if isHost, added = room.AddParticipant(sid, p); added {
			break
		}
		// Lost a race with deletion; the next GetOrCreate starts fresh.
	}
	o.Registry.SetRoom(sid, roomID)
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(roomID)).Bool("host", isHost).Msg("joined room")

	joined, _ := room.Participant(sid)
	o.broadcastFrom(sid, roomID, core.UserJoinedEvent{
		Type:             core.EvtUserJoined,
		User:             joined,
		ParticipantCount: room.ParticipantCount(),
		Timestamp:        time.Now(),
	})

	return core.RoomJoinedEvent{
		Type:            core.EvtRoomJoined,
		RoomID:          roomID,
		Participants:    room.Participants(),
		RecentMessages:  room.RecentMessages(domain.RecentMessagesOnJoin),
		RecentSubtitles: room.RecentSubtitles(domain.RecentSubtitlesOnJoin),
		IsHost:          joined.IsHost,
	}, nil
}

// Leave detaches the connection from roomID. The connection itself
// stays registered.
func (o *Orchestrator) Leave(sid core.SessionID, roomID domain.RoomID) error {
	if _, ok := o.Registry.User(sid); !ok {
		return domain.ErrNotRegistered
	}
	cur, ok := o.Registry.RoomOf(sid)
	if !ok || cur != roomID {
		return domain.ErrNotInRoom
	}
	o.detach(sid, roomID, "")
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(roomID)).Msg("left room")
	return nil
}

// RoomInfo answers an existence query. No precondition: callers may
// probe rooms they never joined.
func (o *Orchestrator) RoomInfo(roomID domain.RoomID) core.RoomInfoEvent {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return core.RoomInfoEvent{Type: core.EvtRoomInfo, RoomID: roomID, Exists: false}
	}
	created := room.CreatedAt()
	return core.RoomInfoEvent{
		Type:             core.EvtRoomInfo,
		RoomID:           roomID,
		Exists:           true,
		ParticipantCount: room.ParticipantCount(),
		CreatedAt:        &created,
	}
}

func (o *Orchestrator) ListRooms() []core.RoomInfo {
	return o.Rooms.List()
}
