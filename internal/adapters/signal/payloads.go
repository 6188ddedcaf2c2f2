package signal

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Inbound payloads form a closed set: frames are decoded into exactly
// one of these shapes and validated before any handler logic runs.
// Anything that does not match is rejected.

var validate = validator.New()

type userData struct {
	Name     string `json:"name" validate:"max=36"`
	Language string `json:"language" validate:"max=16"`
}

type joinRoomPayload struct {
	RoomID   string   `json:"roomId" validate:"required,max=64"`
	UserData userData `json:"userData"`
}

type leaveRoomPayload struct {
	RoomID string `json:"roomId" validate:"required,max=64"`
}

type messagePayload struct {
	RoomID    string `json:"roomId" validate:"required,max=64"`
	Message   string `json:"message" validate:"required"`
	Timestamp int64  `json:"timestamp"`
}

type subtitlePayload struct {
	RoomID     string  `json:"roomId" validate:"required,max=64"`
	Text       string  `json:"text" validate:"required"`
	Language   string  `json:"language" validate:"max=16"`
	IsFinal    bool    `json:"isFinal"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Timestamp  int64   `json:"timestamp"`
}

type translationPayload struct {
	RoomID         string  `json:"roomId" validate:"required,max=64"`
	OriginalText   string  `json:"originalText" validate:"required"`
	TranslatedText string  `json:"translatedText" validate:"required"`
	SourceLanguage string  `json:"sourceLanguage" validate:"max=16"`
	TargetLanguage string  `json:"targetLanguage" validate:"max=16"`
	Confidence     float64 `json:"confidence" validate:"gte=0,lte=1"`
	Timestamp      int64   `json:"timestamp"`
}

type typingPayload struct {
	RoomID   string `json:"roomId" validate:"required,max=64"`
	IsTyping bool   `json:"isTyping"`
}

type updateStatusPayload struct {
	Status   string `json:"status" validate:"max=64"`
	Language string `json:"language" validate:"max=16"`
}

type roomQueryPayload struct {
	RoomID string `json:"roomId" validate:"required,max=64"`
}

// decode unmarshals and validates one inbound payload.
func decode[T any](data []byte) (T, error) {
	var p T
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return p, fmt.Errorf("validate payload: %w", err)
	}
	return p, nil
}
