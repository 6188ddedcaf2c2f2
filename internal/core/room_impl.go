package core

import (
	"sync"
	"time"

	"github.com/lingualive/coordinator/internal/domain"
	"github.com/rs/zerolog/log"
)

// roomImpl is a threadsafe in-memory room. Every mutation takes the
// room's own lock, so events for the same room serialize while
// different rooms proceed in parallel. It never closes adapter-owned
// resources.
type roomImpl struct {
	id        domain.RoomID
	createdAt time.Time

	mu           sync.RWMutex
	participants map[SessionID]domain.Participant
	messages     *Ring[domain.Message]
	subtitles    *Ring[domain.Subtitle]
	translations *Ring[domain.Translation]
	hostClaimed  bool
	closed       bool
}

func NewRoomService(id domain.RoomID, now time.Time) RoomService {
	return &roomImpl{
		id:           id,
		createdAt:    now,
		participants: make(map[SessionID]domain.Participant),
		messages:     NewRing[domain.Message](domain.MessageHistoryCap),
		subtitles:    NewRing[domain.Subtitle](domain.SubtitleHistoryCap),
		translations: NewRing[domain.Translation](domain.TranslationHistoryCap),
	}
}

func (r *roomImpl) ID() domain.RoomID    { return r.id }
func (r *roomImpl) CreatedAt() time.Time { return r.createdAt }

func (r *roomImpl) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

func (r *roomImpl) ParticipantCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.participants)
}

func (r *roomImpl) Participants() []domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		out = append(out, p)
	}
	return out
}

func (r *roomImpl) Participant(sid SessionID) (domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.participants[sid]
	return p, ok
}

func (r *roomImpl) HasParticipant(sid SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.participants[sid]
	return ok
}

func (r *roomImpl) AddParticipant(sid SessionID, p domain.Participant) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false, false
	}
	if prev, ok := r.participants[sid]; ok {
		// Re-join of the same connection refreshes meta but keeps the
		// original join time and host designation.
		p.JoinedAt = prev.JoinedAt
		p.IsHost = prev.IsHost
		r.participants[sid] = p
		return p.IsHost, true
	}
	p.IsHost = !r.hostClaimed
	r.hostClaimed = true
	r.participants[sid] = p
	log.Debug().Str("module", "core.room").Str("room", string(r.id)).Str("sid", string(sid)).Bool("host", p.IsHost).Msg("participant added")
	return p.IsHost, true
}

func (r *roomImpl) RemoveParticipant(sid SessionID) (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[sid]; !ok {
		return false, len(r.participants)
	}
	delete(r.participants, sid)
	log.Debug().Str("module", "core.room").Str("room", string(r.id)).Str("sid", string(sid)).Msg("participant removed")
	return true, len(r.participants)
}

func (r *roomImpl) UpdateParticipant(sid SessionID, status, language string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[sid]
	if !ok {
		return false
	}
	p.Status = status
	if language != "" {
		p.Language = language
	}
	r.participants[sid] = p
	return true
}

func (r *roomImpl) AppendMessage(m domain.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages.Append(m)
}

func (r *roomImpl) AppendSubtitle(s domain.Subtitle) {
	if !s.IsFinal {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subtitles.Append(s)
}

func (r *roomImpl) AppendTranslation(t domain.Translation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.translations.Append(t)
}

func (r *roomImpl) RecentMessages(n int) []domain.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.messages.Tail(n)
}

func (r *roomImpl) RecentSubtitles(n int) []domain.Subtitle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.subtitles.Tail(n)
}

func (r *roomImpl) Snapshot() RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parts := make([]domain.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		parts = append(parts, p)
	}
	return RoomSnapshot{
		ID:           r.id,
		CreatedAt:    r.createdAt,
		Participants: parts,
		Messages:     r.messages.Items(),
		Subtitles:    r.subtitles.Items(),
		Translations: r.translations.Items(),
	}
}

func (r *roomImpl) CloseIfEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return true
	}
	if len(r.participants) > 0 {
		return false
	}
	r.closed = true
	return true
}
