package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureTextSchema idempotently creates the messages table in the text store.
func EnsureTextSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS messages (
			id BIGSERIAL PRIMARY KEY,
			role TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			parent_id BIGINT,
			attachment_id BIGINT,
			attachment_url TEXT,
			attachment_name TEXT,
			attachment_type TEXT,
			conversation_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS messages_conversation_created_idx
		 ON messages (conversation_id, created_at)`)
	return err
}

// EnsureFilesSchema idempotently creates the files table in the files store.
func EnsureFilesSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS files (
			id BIGSERIAL PRIMARY KEY,
			filename TEXT NOT NULL,
			mime_type TEXT NOT NULL,
			file_data BYTEA NOT NULL,
			conversation_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS files_conversation_created_idx
		 ON files (conversation_id, created_at)`)
	return err
}
