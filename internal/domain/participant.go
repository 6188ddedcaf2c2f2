package domain

import "time"

// Participant is a connection's representation inside one room.
// IsHost is assigned once, to the first participant of a fresh room,
// and is never recomputed afterwards.
type Participant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Language string    `json:"language"`
	IsHost   bool      `json:"isHost"`
	JoinedAt time.Time `json:"joinedAt"`
	Status   string    `json:"status,omitempty"`
}
