package domain

// Message is an immutable chat record. Timestamps are unix milliseconds
// as supplied by the client, defaulted by the server when absent.
type Message struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Subtitle is a speech-recognition result. Only final subtitles are
// retained in room history; interim ones are broadcast and forgotten.
type Subtitle struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName"`
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	IsFinal    bool    `json:"isFinal"`
	Confidence float64 `json:"confidence"`
	Timestamp  int64   `json:"timestamp"`
}

// Translation pairs an original utterance with its translated text.
type Translation struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	UserName       string  `json:"userName"`
	OriginalText   string  `json:"originalText"`
	TranslatedText string  `json:"translatedText"`
	SourceLanguage string  `json:"sourceLanguage"`
	TargetLanguage string  `json:"targetLanguage"`
	Confidence     float64 `json:"confidence"`
	Timestamp      int64   `json:"timestamp"`
}
