package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akramas2005/backend-as-space/internal/models"
)

type messageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepo{pool: pool}
}

func (r *messageRepo) Create(ctx context.Context, msg *models.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (role, content, parent_id, attachment_id, attachment_url, attachment_name, attachment_type, conversation_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		msg.Role, msg.Content, msg.ParentID, msg.AttachmentID, msg.AttachmentURL,
		msg.AttachmentName, msg.AttachmentType, msg.ConversationID,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *messageRepo) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	m := &models.Message{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, role, content, parent_id, attachment_id, attachment_url, attachment_name, attachment_type, conversation_id, created_at
		 FROM messages
		 WHERE id = $1`, id,
	).Scan(
		&m.ID, &m.Role, &m.Content, &m.ParentID, &m.AttachmentID, &m.AttachmentURL,
		&m.AttachmentName, &m.AttachmentType, &m.ConversationID, &m.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *messageRepo) List(ctx context.Context, conversationID *string, limit int) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, role, content, parent_id, attachment_id, attachment_url, attachment_name, attachment_type, conversation_id, created_at
		 FROM messages
		 WHERE ($1::TEXT IS NULL OR conversation_id = $1)
		 ORDER BY created_at ASC
		 LIMIT $2`,
		conversationID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(
			&m.ID, &m.Role, &m.Content, &m.ParentID, &m.AttachmentID, &m.AttachmentURL,
			&m.AttachmentName, &m.AttachmentType, &m.ConversationID, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messageRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return tag.RowsAffected(), err
}

func (r *messageRepo) DeleteFrom(ctx context.Context, cutoff time.Time, conversationID *string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM messages
		 WHERE created_at >= $1
		   AND ($2::TEXT IS NULL OR conversation_id = $2)`,
		cutoff, conversationID,
	)
	return tag.RowsAffected(), err
}

func (r *messageRepo) DeleteByConversation(ctx context.Context, conversationID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE conversation_id = $1`, conversationID)
	return tag.RowsAffected(), err
}

func (r *messageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE created_at < $1`, cutoff)
	return tag.RowsAffected(), err
}

func (r *messageRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages`)
	return tag.RowsAffected(), err
}
