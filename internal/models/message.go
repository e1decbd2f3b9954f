package models

import "time"

// Message is a row in the text store. The attachment_* fields are a
// denormalized pointer into the files store; the referenced files row may
// have been deleted independently, so the pointer can dangle.
type Message struct {
	ID             int64     `json:"id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	ParentID       *int64    `json:"parent_id"`
	AttachmentID   *int64    `json:"attachment_id"`
	AttachmentURL  *string   `json:"attachment_url"`
	AttachmentName *string   `json:"attachment_name"`
	AttachmentType *string   `json:"attachment_type"`
	ConversationID *string   `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
}
