package app

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

const (
	// Messages shorter than this carry no substance for a digest.
	keyMessageMinLen = 20
	keyMessageCount  = 10
	summarySubCount  = 5
)

// Synthesize derives a meeting digest from a room snapshot. Pure: no
// side effects, no external calls; safe to run off the event path.
func Synthesize(snap core.RoomSnapshot, now time.Time) core.Summary {
	minutes := int(now.Sub(snap.CreatedAt).Round(time.Minute) / time.Minute)

	substantive := lo.Filter(snap.Messages, func(m domain.Message, _ int) bool {
		return len(m.Message) > keyMessageMinLen
	})
	keyMessages := lo.Map(tail(substantive, keyMessageCount), func(m domain.Message, _ int) core.SummaryMessage {
		return core.SummaryMessage{User: m.UserName, Message: m.Message, Timestamp: m.Timestamp}
	})

	recentSubs := lo.Map(tail(snap.Subtitles, summarySubCount), func(s domain.Subtitle, _ int) core.SummarySubtitle {
		return core.SummarySubtitle{User: s.UserName, Text: s.Text, Language: s.Language, Timestamp: s.Timestamp}
	})

	participants := lo.Map(snap.Participants, func(p domain.Participant, _ int) core.SummaryParticipant {
		return core.SummaryParticipant{Name: p.Name, Language: p.Language, IsHost: p.IsHost, JoinedAt: p.JoinedAt}
	})

	languages := lo.Uniq(lo.Map(snap.Participants, func(p domain.Participant, _ int) string {
		return p.Language
	}))

	return core.Summary{
		RoomID:    snap.ID,
		StartTime: snap.CreatedAt,
		EndTime:   now,
		Duration:  fmt.Sprintf("%d minutes", minutes),
		Participants: participants,
		Stats: core.SummaryStats{
			MessageCount:     len(snap.Messages),
			SubtitleCount:    len(snap.Subtitles),
			TranslationCount: len(snap.Translations),
			ParticipantCount: len(snap.Participants),
		},
		KeyMessages:     keyMessages,
		RecentSubtitles: recentSubs,
		Languages:       languages,
	}
}

func tail[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
