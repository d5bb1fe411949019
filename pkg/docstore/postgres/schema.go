package postgres

import (
	"context"
	"fmt"
)

// TableName таблица, в которой хранятся все коллекции
const TableName = "documents"

// ChangesChannel канал LISTEN/NOTIFY для уведомлений об изменениях документов
const ChangesChannel = "docstore_changes"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		collection TEXT        NOT NULL,
		id         TEXT        NOT NULL,
		data       JSONB       NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (collection, id)
	)`,
	`CREATE INDEX IF NOT EXISTS documents_data_idx ON documents USING GIN (data jsonb_path_ops)`,
	`CREATE INDEX IF NOT EXISTS documents_created_idx ON documents (collection, created_at, id)`,
	`CREATE OR REPLACE FUNCTION docstore_notify() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('docstore_changes', json_build_object(
			'collection', NEW.collection,
			'id', NEW.id,
			'op', CASE WHEN TG_OP = 'INSERT' THEN 'created' ELSE 'updated' END
		)::text);
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS documents_notify ON documents`,
	`CREATE TRIGGER documents_notify AFTER INSERT OR UPDATE ON documents
		FOR EACH ROW EXECUTE FUNCTION docstore_notify()`,
}

// Migrate создает таблицу документов, индексы и триггер уведомлений
// Все выражения выполняются в одной транзакции и идемпотентны.
func Migrate(ctx context.Context, db TxBeginner) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Migrate - begin: %w", ErrMigrate, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, stmt := range schema {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: Migrate - statement %d: %w", ErrMigrate, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Migrate - commit: %w", ErrMigrate, err)
	}
	return nil
}
