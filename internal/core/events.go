package core

import (
	"time"

	"github.com/lingualive/coordinator/internal/domain"
)

// Outbound wire events. This is a closed set: every server-to-client
// frame is one of these structs, tagged by its Type field. Timestamps
// on history records are unix milliseconds (client clock convention);
// lifecycle notifications carry server time.
const (
	EvtRoomJoined        = "room-joined"
	EvtUserJoined        = "user-joined"
	EvtUserLeft          = "user-left"
	EvtNewMessage        = "new-message"
	EvtSubtitleUpdate    = "subtitle-update"
	EvtSubtitleReceived  = "subtitle-received"
	EvtTranslationUpdate = "translation-update"
	EvtUserTyping        = "user-typing"
	EvtUserStatusUpdated = "user-status-updated"
	EvtMeetingSummary    = "meeting-summary"
	EvtRoomInfo          = "room-info"
	EvtError             = "error"
)

type RoomJoinedEvent struct {
	Type            string               `json:"type"`
	RoomID          domain.RoomID        `json:"roomId"`
	Participants    []domain.Participant `json:"participants"`
	RecentMessages  []domain.Message     `json:"recentMessages"`
	RecentSubtitles []domain.Subtitle    `json:"recentSubtitles"`
	IsHost          bool                 `json:"isHost"`
}

type UserJoinedEvent struct {
	Type             string             `json:"type"`
	User             domain.Participant `json:"user"`
	ParticipantCount int                `json:"participantCount"`
	Timestamp        time.Time          `json:"timestamp"`
}

type UserLeftEvent struct {
	Type             string    `json:"type"`
	UserID           string    `json:"userId"`
	ParticipantCount int       `json:"participantCount"`
	Timestamp        time.Time `json:"timestamp"`
	Reason           string    `json:"reason,omitempty"`
}

type NewMessageEvent struct {
	Type string `json:"type"`
	domain.Message
}

type SubtitleUpdateEvent struct {
	Type string `json:"type"`
	domain.Subtitle
}

type SubtitleReceivedEvent struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

type TranslationUpdateEvent struct {
	Type string `json:"type"`
	domain.Translation
}

type UserTypingEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	IsTyping  bool   `json:"isTyping"`
	Timestamp int64  `json:"timestamp"`
}

type UserStatusUpdatedEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	Language  string `json:"language"`
	Timestamp int64  `json:"timestamp"`
}

type MeetingSummaryEvent struct {
	Type        string        `json:"type"`
	RoomID      domain.RoomID `json:"roomId"`
	Summary     Summary       `json:"summary"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

type RoomInfoEvent struct {
	Type             string        `json:"type"`
	RoomID           domain.RoomID `json:"roomId"`
	Exists           bool          `json:"exists"`
	ParticipantCount int           `json:"participantCount,omitempty"`
	CreatedAt        *time.Time    `json:"createdAt,omitempty"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewErrorEvent(msg string) ErrorEvent {
	return ErrorEvent{Type: EvtError, Message: msg}
}

// Summary is the on-demand digest of a room's accumulated state.
type Summary struct {
	RoomID          domain.RoomID        `json:"roomId"`
	StartTime       time.Time            `json:"startTime"`
	EndTime         time.Time            `json:"endTime"`
	Duration        string               `json:"duration"`
	Participants    []SummaryParticipant `json:"participants"`
	Stats           SummaryStats         `json:"stats"`
	KeyMessages     []SummaryMessage     `json:"keyMessages"`
	RecentSubtitles []SummarySubtitle    `json:"recentSubtitles"`
	Languages       []string             `json:"languages"`
}

type SummaryParticipant struct {
	Name     string    `json:"name"`
	Language string    `json:"language"`
	IsHost   bool      `json:"isHost"`
	JoinedAt time.Time `json:"joinedAt"`
}

type SummaryStats struct {
	MessageCount     int `json:"messageCount"`
	SubtitleCount    int `json:"subtitleCount"`
	TranslationCount int `json:"translationCount"`
	ParticipantCount int `json:"participantCount"`
}

type SummaryMessage struct {
	User      string `json:"user"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type SummarySubtitle struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	Timestamp int64  `json:"timestamp"`
}
