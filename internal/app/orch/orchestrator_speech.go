package orch

import (
	"time"

	"github.com/google/uuid"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

// Subtitle broadcasts a speech-recognition result to the room except
// the sender and returns the sender's lightweight receipt. Only final
// subtitles enter room history; interim ones are forwarded and dropped.
func (o *Orchestrator) Subtitle(sid core.SessionID, roomID domain.RoomID, text, language string, isFinal bool, confidence float64, ts int64) (core.SubtitleReceivedEvent, error) {
	room, p, err := o.roomParticipant(sid, roomID)
	if err != nil {
		return core.SubtitleReceivedEvent{}, err
	}
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	sub := domain.Subtitle{
		ID:         uuid.NewString(),
		UserID:     string(sid),
		UserName:   p.Name,
		Text:       text,
		Language:   language,
		IsFinal:    isFinal,
		Confidence: confidence,
		Timestamp:  ts,
	}
	room.AppendSubtitle(sub)
	o.broadcastFrom(sid, roomID, core.SubtitleUpdateEvent{Type: core.EvtSubtitleUpdate, Subtitle: sub})
	return core.SubtitleReceivedEvent{Type: core.EvtSubtitleReceived, ID: sub.ID, Timestamp: ts}, nil
}

// Translation appends a translation record and fans it out to the
// whole room, sender included.
func (o *Orchestrator) Translation(sid core.SessionID, roomID domain.RoomID, original, translated, srcLang, dstLang string, confidence float64, ts int64) error {
	room, p, err := o.roomParticipant(sid, roomID)
	if err != nil {
		return err
	}
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	tr := domain.Translation{
		ID:             uuid.NewString(),
		UserID:         string(sid),
		UserName:       p.Name,
		OriginalText:   original,
		TranslatedText: translated,
		SourceLanguage: srcLang,
		TargetLanguage: dstLang,
		Confidence:     confidence,
		Timestamp:      ts,
	}
	room.AppendTranslation(tr)
	o.broadcastRoom(roomID, core.TranslationUpdateEvent{Type: core.EvtTranslationUpdate, Translation: tr})
	return nil
}
