package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeenMedia, downSeenMedia)
}

func upSeenMedia(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS seen_media (
		file_id    INTEGER PRIMARY KEY,
		user_id    INTEGER NOT NULL,
		title      VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS seen_media_created_at_idx ON seen_media (created_at);
	`)
	return err
}

func downSeenMedia(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS seen_media;`)
	return err
}
