package models

import "time"

// Attachment is a row in the files store. The payload lives in the row
// itself and is never mutated after creation.
type Attachment struct {
	ID             int64     `json:"id"`
	Filename       string    `json:"filename"`
	MimeType       string    `json:"mime_type"`
	FileData       []byte    `json:"-"`
	ConversationID *string   `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
}
