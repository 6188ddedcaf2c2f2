package signal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_JoinRoom(t *testing.T) {
	req := require.New(t)

	p, err := decode[joinRoomPayload]([]byte(`{"roomId":"r1","userData":{"name":"Alice","language":"en"}}`))
	req.NoError(err)
	req.Equal("r1", p.RoomID)
	req.Equal("Alice", p.UserData.Name)
	req.Equal("en", p.UserData.Language)

	// userData is optional, the server fills in a placeholder name
	p, err = decode[joinRoomPayload]([]byte(`{"roomId":"r1"}`))
	req.NoError(err)
	req.Empty(p.UserData.Name)
}

func TestDecode_JoinRoomRejected(t *testing.T) {
	req := require.New(t)

	cases := map[string]string{
		"missing room id": `{"userData":{"name":"Alice"}}`,
		"empty room id":   `{"roomId":""}`,
		"room id too long": `{"roomId":"` + strings.Repeat("x", 65) + `"}`,
		"name too long":    `{"roomId":"r1","userData":{"name":"` + strings.Repeat("n", 37) + `"}}`,
		"malformed json":   `{"roomId":`,
	}
	for name, raw := range cases {
		_, err := decode[joinRoomPayload]([]byte(raw))
		req.Error(err, name)
	}
}

func TestDecode_Message(t *testing.T) {
	req := require.New(t)

	p, err := decode[messagePayload]([]byte(`{"roomId":"r1","message":"hi","timestamp":1700000000000}`))
	req.NoError(err)
	req.Equal("hi", p.Message)
	req.EqualValues(1700000000000, p.Timestamp)

	_, err = decode[messagePayload]([]byte(`{"roomId":"r1","message":""}`))
	req.Error(err)
}

func TestDecode_SubtitleConfidenceBounds(t *testing.T) {
	req := require.New(t)

	p, err := decode[subtitlePayload]([]byte(`{"roomId":"r1","text":"hello","language":"en","isFinal":true,"confidence":0.97}`))
	req.NoError(err)
	req.True(p.IsFinal)
	req.InDelta(0.97, p.Confidence, 1e-9)

	_, err = decode[subtitlePayload]([]byte(`{"roomId":"r1","text":"hello","confidence":1.5}`))
	req.Error(err)
	_, err = decode[subtitlePayload]([]byte(`{"roomId":"r1","text":"hello","confidence":-0.1}`))
	req.Error(err)
}

func TestDecode_TranslationRequiresBothTexts(t *testing.T) {
	req := require.New(t)

	_, err := decode[translationPayload]([]byte(`{"roomId":"r1","originalText":"hello","sourceLanguage":"en","targetLanguage":"fr"}`))
	req.Error(err)

	p, err := decode[translationPayload]([]byte(`{"roomId":"r1","originalText":"hello","translatedText":"bonjour","sourceLanguage":"en","targetLanguage":"fr"}`))
	req.NoError(err)
	req.Equal("bonjour", p.TranslatedText)
}

func TestDecode_UpdateStatusAllFieldsOptional(t *testing.T) {
	req := require.New(t)

	p, err := decode[updateStatusPayload]([]byte(`{}`))
	req.NoError(err)
	req.Empty(p.Status)

	p, err = decode[updateStatusPayload]([]byte(`{"status":"away","language":"de"}`))
	req.NoError(err)
	req.Equal("away", p.Status)
	req.Equal("de", p.Language)
}
