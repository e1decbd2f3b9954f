package database

import (
	"context"
	"time"

	"github.com/akramas2005/backend-as-space/internal/models"
)

// MessageRepository is backed by the text store. Delete methods return the
// number of rows removed.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	List(ctx context.Context, conversationID *string, limit int) ([]models.Message, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteFrom(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error)
	DeleteByConversation(ctx context.Context, conversationID string) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// FileRepository is backed by the files store.
type FileRepository interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	GetByID(ctx context.Context, id int64) (*models.Attachment, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteFrom(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error)
	DeleteByConversation(ctx context.Context, conversationID string) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
