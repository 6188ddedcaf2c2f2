package orch

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

// Message appends a chat message and fans it out to the whole room,
// sender included.
func (o *Orchestrator) Message(sid core.SessionID, roomID domain.RoomID, text string, ts int64) (core.NewMessageEvent, error) {
	room, p, err := o.roomParticipant(sid, roomID)
	if err != nil {
		return core.NewMessageEvent{}, err
	}
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	msg := domain.Message{
		ID:        uuid.NewString(),
		UserID:    string(sid),
		UserName:  p.Name,
		Message:   text,
		Timestamp: ts,
	}
	room.AppendMessage(msg)
	ev := core.NewMessageEvent{Type: core.EvtNewMessage, Message: msg}
	o.broadcastRoom(roomID, ev)
	o.persistMessage(roomID, msg)
	return ev, nil
}

// PostMessage is the REST-side variant of Message: the author holds no
// live connection, so identity is synthesized and nothing comes back
// over a socket to them.
func (o *Orchestrator) PostMessage(roomID domain.RoomID, userName, text string, ts int64) (core.NewMessageEvent, error) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return core.NewMessageEvent{}, domain.ErrRoomNotFound
	}
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	msg := domain.Message{
		ID:        uuid.NewString(),
		UserID:    "rest:" + uuid.NewString(),
		UserName:  userName,
		Message:   text,
		Timestamp: ts,
	}
	room.AppendMessage(msg)
	ev := core.NewMessageEvent{Type: core.EvtNewMessage, Message: msg}
	o.broadcastRoom(roomID, ev)
	o.persistMessage(roomID, msg)
	return ev, nil
}

// Typing forwards a typing indicator to the rest of the room. Nothing
// is persisted.
func (o *Orchestrator) Typing(sid core.SessionID, roomID domain.RoomID, isTyping bool) error {
	if _, _, err := o.roomParticipant(sid, roomID); err != nil {
		return err
	}
	o.broadcastFrom(sid, roomID, core.UserTypingEvent{
		Type:      core.EvtUserTyping,
		UserID:    string(sid),
		IsTyping:  isTyping,
		Timestamp: time.Now().UnixMilli(),
	})
	return nil
}

// UpdateStatus mutates the connection's presence meta and mirrors it
// into the participant entry of the room it belongs to, if any.
func (o *Orchestrator) UpdateStatus(sid core.SessionID, status, language string) error {
	roomID, ok := o.Registry.UpdateStatus(sid, status, language)
	if !ok {
		return domain.ErrNotRegistered
	}
	if roomID == "" {
		return nil
	}
	room, ok := o.Rooms.Get(roomID)
	if !ok || !room.UpdateParticipant(sid, status, language) {
		return nil
	}
	log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("room", string(roomID)).Str("status", status).Msg("status updated")
	o.broadcastFrom(sid, roomID, core.UserStatusUpdatedEvent{
		Type:      core.EvtUserStatusUpdated,
		UserID:    string(sid),
		Status:    status,
		Language:  language,
		Timestamp: time.Now().UnixMilli(),
	})
	return nil
}
