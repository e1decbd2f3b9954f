package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/database"
)

// DeletionService coordinates deletes that span both stores. There is no
// cross-store transaction: each statement commits independently, and a
// failure after the first store's delete leaves the system partially
// updated. The failure is reported; no compensating action is taken.
type DeletionService struct {
	messages database.MessageRepository
	files    database.FileRepository
	log      zerolog.Logger
}

// NewDeletionService creates a DeletionService.
func NewDeletionService(messages database.MessageRepository, files database.FileRepository, log zerolog.Logger) *DeletionService {
	return &DeletionService{messages: messages, files: files, log: log}
}

// DeleteFromMessage deletes every message and every files row with
// created_at at or after the anchor message's created_at. When the anchor
// carries a conversation_id both deletes are scoped to it; otherwise they
// apply globally. The anchor's timestamp is the cutoff for both stores,
// including files rows.
func (s *DeletionService) DeleteFromMessage(ctx context.Context, anchorID int64) error {
	anchor, err := s.messages.GetByID(ctx, anchorID)
	if err != nil {
		s.log.Error().Err(err).Int64("message_id", anchorID).Msg("anchor lookup failed")
		return storeError(err)
	}
	if anchor == nil {
		return NotFound("MESSAGE_NOT_FOUND", "message not found")
	}

	if _, err := s.messages.DeleteFrom(ctx, anchor.CreatedAt, anchor.ConversationID); err != nil {
		s.log.Error().Err(err).Msg("delete-from failed in text store")
		return storeError(err)
	}
	if _, err := s.files.DeleteFrom(ctx, anchor.CreatedAt, anchor.ConversationID); err != nil {
		s.log.Error().Err(err).Msg("delete-from failed in files store, text store already deleted")
		return storeError(err)
	}
	return nil
}

// DeleteConversation removes every message and files row with the given
// conversation id and reports the per-store counts. Matching nothing is not
// an error.
func (s *DeletionService) DeleteConversation(ctx context.Context, conversationID string) (messagesDeleted, filesDeleted int64, err error) {
	messagesDeleted, err = s.messages.DeleteByConversation(ctx, conversationID)
	if err != nil {
		s.log.Error().Err(err).Str("conversation_id", conversationID).Msg("conversation delete failed in text store")
		return 0, 0, storeError(err)
	}
	filesDeleted, err = s.files.DeleteByConversation(ctx, conversationID)
	if err != nil {
		s.log.Error().Err(err).Str("conversation_id", conversationID).Msg("conversation delete failed in files store, text store already deleted")
		return messagesDeleted, 0, storeError(err)
	}
	return messagesDeleted, filesDeleted, nil
}

// DeleteAll unconditionally empties both stores.
func (s *DeletionService) DeleteAll(ctx context.Context) error {
	if _, err := s.messages.DeleteAll(ctx); err != nil {
		s.log.Error().Err(err).Msg("delete-all failed in text store")
		return storeError(err)
	}
	if _, err := s.files.DeleteAll(ctx); err != nil {
		s.log.Error().Err(err).Msg("delete-all failed in files store, text store already emptied")
		return storeError(err)
	}
	return nil
}
