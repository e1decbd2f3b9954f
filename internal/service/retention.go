package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/akramas2005/backend-as-space/internal/database"
)

const (
	messageRetention = 90 * 24 * time.Hour
	fileRetention    = 30 * 24 * time.Hour
)

// CleanupResult reports how many rows a retention run removed per store.
type CleanupResult struct {
	MessagesDeleted int64
	FilesDeleted    int64
}

// RetentionService deletes rows past their retention age: messages after 90
// days, files after 30. The two deletions are independent; a message can
// outlive its attachment and keep a dangling pointer.
type RetentionService struct {
	messages database.MessageRepository
	files    database.FileRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewRetentionService creates a RetentionService.
func NewRetentionService(messages database.MessageRepository, files database.FileRepository, log zerolog.Logger) *RetentionService {
	return &RetentionService{messages: messages, files: files, log: log, now: time.Now}
}

// RunCleanup performs one retention pass. Idempotent: a run with no eligible
// rows deletes nothing and succeeds.
func (s *RetentionService) RunCleanup(ctx context.Context) (CleanupResult, error) {
	now := s.now()
	var result CleanupResult

	deleted, err := s.messages.DeleteOlderThan(ctx, now.Add(-messageRetention))
	if err != nil {
		s.log.Error().Err(err).Msg("retention delete failed in text store")
		return result, storeError(err)
	}
	result.MessagesDeleted = deleted

	deleted, err = s.files.DeleteOlderThan(ctx, now.Add(-fileRetention))
	if err != nil {
		s.log.Error().Err(err).Msg("retention delete failed in files store")
		return result, storeError(err)
	}
	result.FilesDeleted = deleted

	s.log.Info().
		Int64("messages_deleted", result.MessagesDeleted).
		Int64("files_deleted", result.FilesDeleted).
		Msg("retention cleanup complete")
	return result, nil
}

// Start runs RunCleanup on the given interval until ctx is cancelled. An
// interval of zero or less disables the scheduler.
func (s *RetentionService) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.RunCleanup(ctx); err != nil {
					s.log.Error().Err(err).Msg("scheduled cleanup failed")
				}
			}
		}
	}()
}
