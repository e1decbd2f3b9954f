package service

import (
	"context"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/database"
	"github.com/akramas2005/backend-as-space/internal/models"
)

const (
	maxContentLength = 10000
	defaultListLimit = 200
	maxListLimit     = 1000
)

// MessageService handles message persistence against the text store.
type MessageService struct {
	messages database.MessageRepository
	log      zerolog.Logger
}

// NewMessageService creates a MessageService.
func NewMessageService(messages database.MessageRepository, log zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, log: log}
}

// PostMessageInput carries the optional fields of a message post. Absent
// fields stay nil and are stored as NULL; parent and attachment references
// are deliberately not validated against existing rows.
type PostMessageInput struct {
	Role           string
	Content        string
	ParentID       *int64
	AttachmentID   *int64
	AttachmentURL  *string
	AttachmentName *string
	AttachmentType *string
	ConversationID *string
}

// Post inserts one message row and returns it with the store-assigned id and
// created_at.
func (s *MessageService) Post(ctx context.Context, in PostMessageInput) (*models.Message, error) {
	if in.Role == "" {
		return nil, BadRequest("MISSING_ROLE", "role is required")
	}
	// The cap is 10,000 characters, not bytes; multibyte content counts
	// by rune.
	if utf8.RuneCountInString(in.Content) > maxContentLength {
		return nil, TooLarge("MESSAGE_TOO_LARGE", "message too large")
	}

	msg := &models.Message{
		Role:           in.Role,
		Content:        in.Content,
		ParentID:       in.ParentID,
		AttachmentID:   in.AttachmentID,
		AttachmentURL:  in.AttachmentURL,
		AttachmentName: in.AttachmentName,
		AttachmentType: in.AttachmentType,
		ConversationID: in.ConversationID,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		s.log.Error().Err(err).Msg("message insert failed")
		return nil, storeError(err)
	}
	return msg, nil
}

// List returns messages ordered by created_at ascending, oldest first,
// truncated to limit. A limit outside 1..1000 is clamped; zero means the
// default of 200.
func (s *MessageService) List(ctx context.Context, conversationID *string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	messages, err := s.messages.List(ctx, conversationID, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("message list failed")
		return nil, storeError(err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// Delete removes exactly one message row. No cascade to its attachment.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	affected, err := s.messages.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Int64("message_id", id).Msg("message delete failed")
		return storeError(err)
	}
	if affected == 0 {
		return NotFound("MESSAGE_NOT_FOUND", "message not found")
	}
	return nil
}
