package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lingualive/coordinator/internal/domain"
)

func newTestRoom() RoomService {
	return NewRoomService("room-1", time.Now())
}

func participant(id, name string) domain.Participant {
	return domain.Participant{ID: id, Name: name, Language: "en", JoinedAt: time.Now()}
}

func TestRoom_FirstParticipantIsHost(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	// When the first participant joins an empty room
	isHost, ok := room.AddParticipant("a", participant("a", "Alice"))
	req.True(ok)
	req.True(isHost)

	// Then later joins never claim the host flag
	isHost, ok = room.AddParticipant("b", participant("b", "Bob"))
	req.True(ok)
	req.False(isHost)

	req.Equal(2, room.ParticipantCount())
}

func TestRoom_HostNeverReassigned(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	room.AddParticipant("a", participant("a", "Alice"))
	room.AddParticipant("b", participant("b", "Bob"))

	// When the host leaves
	removed, remaining := room.RemoveParticipant("a")
	req.True(removed)
	req.Equal(1, remaining)

	// Then a newcomer does not become host
	isHost, ok := room.AddParticipant("c", participant("c", "Carol"))
	req.True(ok)
	req.False(isHost)

	p, ok := room.Participant("b")
	req.True(ok)
	req.False(p.IsHost)
}

func TestRoom_RejoinKeepsHostAndJoinTime(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	first := participant("a", "Alice")
	room.AddParticipant("a", first)
	before, _ := room.Participant("a")

	// When the same connection joins again with new meta
	isHost, ok := room.AddParticipant("a", participant("a", "Alicia"))
	req.True(ok)
	req.True(isHost)

	after, _ := room.Participant("a")
	req.Equal("Alicia", after.Name)
	req.True(after.IsHost)
	req.Equal(before.JoinedAt, after.JoinedAt)
	req.Equal(1, room.ParticipantCount())
}

func TestRoom_RemoveParticipantIdempotent(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.AddParticipant("a", participant("a", "Alice"))

	removed, remaining := room.RemoveParticipant("a")
	req.True(removed)
	req.Equal(0, remaining)

	removed, remaining = room.RemoveParticipant("a")
	req.False(removed)
	req.Equal(0, remaining)
}

func TestRoom_MessageHistoryCapped(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	for i := 1; i <= domain.MessageHistoryCap+20; i++ {
		room.AppendMessage(domain.Message{ID: fmt.Sprintf("m%d", i), Message: fmt.Sprintf("msg %d", i)})
	}

	snap := room.Snapshot()
	req.Len(snap.Messages, domain.MessageHistoryCap)
	req.Equal("m21", snap.Messages[0].ID)
	req.Equal(fmt.Sprintf("m%d", domain.MessageHistoryCap+20), snap.Messages[len(snap.Messages)-1].ID)
}

func TestRoom_OnlyFinalSubtitlesRetained(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	room.AppendSubtitle(domain.Subtitle{ID: "s1", Text: "partial", IsFinal: false})
	room.AppendSubtitle(domain.Subtitle{ID: "s2", Text: "final", IsFinal: true})
	room.AppendSubtitle(domain.Subtitle{ID: "s3", Text: "another partial", IsFinal: false})

	subs := room.RecentSubtitles(10)
	req.Len(subs, 1)
	req.Equal("s2", subs[0].ID)
}

func TestRoom_SubtitleAndTranslationCaps(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()

	for i := 0; i < domain.SubtitleHistoryCap+10; i++ {
		room.AppendSubtitle(domain.Subtitle{ID: fmt.Sprintf("s%d", i), IsFinal: true})
	}
	for i := 0; i < domain.TranslationHistoryCap+10; i++ {
		room.AppendTranslation(domain.Translation{ID: fmt.Sprintf("t%d", i)})
	}

	snap := room.Snapshot()
	req.Len(snap.Subtitles, domain.SubtitleHistoryCap)
	req.Len(snap.Translations, domain.TranslationHistoryCap)
}

func TestRoom_CloseIfEmpty(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.AddParticipant("a", participant("a", "Alice"))

	// A populated room refuses to close
	req.False(room.CloseIfEmpty())
	req.False(room.Closed())

	room.RemoveParticipant("a")
	req.True(room.CloseIfEmpty())
	req.True(room.Closed())

	// A closed room accepts no participants
	_, ok := room.AddParticipant("b", participant("b", "Bob"))
	req.False(ok)

	// Closing again stays true
	req.True(room.CloseIfEmpty())
}

func TestRoom_UpdateParticipant(t *testing.T) {
	req := require.New(t)
	room := newTestRoom()
	room.AddParticipant("a", participant("a", "Alice"))

	req.True(room.UpdateParticipant("a", "away", "fr"))
	p, _ := room.Participant("a")
	req.Equal("away", p.Status)
	req.Equal("fr", p.Language)

	// Empty language keeps the previous one
	req.True(room.UpdateParticipant("a", "back", ""))
	p, _ = room.Participant("a")
	req.Equal("fr", p.Language)

	req.False(room.UpdateParticipant("ghost", "away", ""))
}
