// Package domain contains entities without logic, just meta-data.
package domain

import "errors"

type RoomID string

const MaxRoomIDLen = 64

// History caps preserve most-recent-N semantics: oldest entries are
// evicted first once a buffer is full.
const (
	MessageHistoryCap     = 100
	SubtitleHistoryCap    = 50
	TranslationHistoryCap = 50
)

// Slice sizes handed to a participant on join.
const (
	RecentMessagesOnJoin  = 20
	RecentSubtitlesOnJoin = 10
)

var (
	ErrRoomIDEmpty   = errors.New("room id empty")
	ErrRoomIDTooLong = errors.New("room id too long")
)

// ValidateRoomID checks the caller-supplied opaque room id.
func ValidateRoomID(id RoomID) error {
	if len(id) == 0 {
		return ErrRoomIDEmpty
	}
	if len(id) > MaxRoomIDLen {
		return ErrRoomIDTooLong
	}
	return nil
}
