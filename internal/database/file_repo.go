package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akramas2005/backend-as-space/internal/models"
)

type fileRepo struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) FileRepository {
	return &fileRepo{pool: pool}
}

func (r *fileRepo) Create(ctx context.Context, a *models.Attachment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO files (filename, mime_type, file_data, conversation_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Filename, a.MimeType, a.FileData, a.ConversationID,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *fileRepo) GetByID(ctx context.Context, id int64) (*models.Attachment, error) {
	a := &models.Attachment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, filename, mime_type, file_data, conversation_id, created_at
		 FROM files
		 WHERE id = $1`, id,
	).Scan(&a.ID, &a.Filename, &a.MimeType, &a.FileData, &a.ConversationID, &a.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return a, err
}

func (r *fileRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	return tag.RowsAffected(), err
}

// DeleteFrom removes files rows at or after the cutoff. The cutoff is the
// anchor message's created_at, not the files rows' own (matches the
// delete-from-message-onward contract).
func (r *fileRepo) DeleteFrom(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM files
		 WHERE created_at >= $1
		   AND ($2::TEXT IS NULL OR conversation_id = $2)`,
		cutoff, conversationID,
	)
	return tag.RowsAffected(), err
}

func (r *fileRepo) DeleteByConversation(ctx context.Context, conversationID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files WHERE conversation_id = $1`, conversationID)
	return tag.RowsAffected(), err
}

func (r *fileRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files WHERE created_at < $1`, cutoff)
	return tag.RowsAffected(), err
}

func (r *fileRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files`)
	return tag.RowsAffected(), err
}
