package orch

import (
	"time"

	"github.com/lingualive/coordinator/internal/app"
	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

// RequestSummary synthesizes a digest for a participant of the room.
// Sender-only: the caller delivers the returned event.
func (o *Orchestrator) RequestSummary(sid core.SessionID, roomID domain.RoomID) (core.MeetingSummaryEvent, error) {
	room, _, err := o.roomParticipant(sid, roomID)
	if err != nil {
		return core.MeetingSummaryEvent{}, err
	}
	now := time.Now()
	return core.MeetingSummaryEvent{
		Type:        core.EvtMeetingSummary,
		RoomID:      roomID,
		Summary:     app.Synthesize(room.Snapshot(), now),
		GeneratedAt: now,
	}, nil
}

// SummarizeRoom is the REST-side read: existence is the only
// precondition.
func (o *Orchestrator) SummarizeRoom(roomID domain.RoomID) (core.Summary, error) {
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return core.Summary{}, domain.ErrRoomNotFound
	}
	return app.Synthesize(room.Snapshot(), time.Now()), nil
}
