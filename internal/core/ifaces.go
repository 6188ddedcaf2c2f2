package core

import (
	"context"
	"time"

	"github.com/lingualive/coordinator/internal/domain"
)

type SessionID string

// Sink is the outbound half of a connection. Send must not block: an
// implementation either enqueues the event or returns an error
// (backpressure, closed connection). Owned by the adapter; the adapter
// is responsible for closing the underlying transport.
type Sink interface {
	Send(event any) error
}

// RoomService is the core-facing API of a single room. It owns the
// participant map and the history buffers; all mutation of room state
// funnels through it. It never touches transport resources.
type RoomService interface {
	ID() domain.RoomID
	CreatedAt() time.Time
	Closed() bool

	ParticipantCount() int
	Participants() []domain.Participant
	Participant(sid SessionID) (domain.Participant, bool)
	HasParticipant(sid SessionID) bool

	// AddParticipant inserts or refreshes a participant. The returned
	// isHost reports whether this insert claimed the host designation.
	// ok is false when the room has been closed for deletion; the caller
	// must fetch a fresh room and retry.
	AddParticipant(sid SessionID, p domain.Participant) (isHost bool, ok bool)
	// RemoveParticipant deletes the entry and reports the remaining count.
	RemoveParticipant(sid SessionID) (removed bool, remaining int)
	UpdateParticipant(sid SessionID, status, language string) bool

	AppendMessage(m domain.Message)
	// AppendSubtitle retains the record only when it is final.
	AppendSubtitle(s domain.Subtitle)
	AppendTranslation(t domain.Translation)

	RecentMessages(n int) []domain.Message
	RecentSubtitles(n int) []domain.Subtitle

	// Snapshot returns a deep copy safe to read without holding the
	// room lock; summaries are synthesized from it.
	Snapshot() RoomSnapshot

	// CloseIfEmpty atomically marks the room deleted iff no participants
	// remain. A closed room accepts no new participants.
	CloseIfEmpty() bool
}

// RoomSnapshot is a point-in-time copy of a room's accumulated state.
type RoomSnapshot struct {
	ID           domain.RoomID
	CreatedAt    time.Time
	Participants []domain.Participant
	Messages     []domain.Message
	Subtitles    []domain.Subtitle
	Translations []domain.Translation
}

// RoomInfo is a read-only view for APIs.
type RoomInfo struct {
	ID               domain.RoomID `json:"roomId"`
	ParticipantCount int           `json:"participantCount"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// RoomStore owns the authoritative room map.
type RoomStore interface {
	// GetOrCreate never returns a closed room and never creates
	// duplicates under concurrent calls for the same id.
	GetOrCreate(id domain.RoomID) RoomService
	Get(id domain.RoomID) (RoomService, bool)
	List() []RoomInfo
	// DeleteIfEmpty removes the room iff its participant map is empty at
	// the time of the check, atomically with respect to concurrent joins.
	DeleteIfEmpty(id domain.RoomID) bool
	// SweepIdle deletes rooms that are empty and were created more than
	// olderThan ago, returning how many were reclaimed.
	SweepIdle(olderThan time.Duration) int
}

// Archive is the durable-store collaborator. Writes happen fire-and-
// forget after in-memory mutation; a slow or failing archive must never
// stall live fan-out.
type Archive interface {
	PersistRoom(ctx context.Context, snap RoomSnapshot) error
	PersistMessage(ctx context.Context, roomID domain.RoomID, msg domain.Message) error
}
