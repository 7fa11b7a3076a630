package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finegems/internal/core"
	applog "finegems/internal/log"
	"finegems/internal/store"

	_ "modernc.org/sqlite"
)

// documentRow is the fixed primary key of the single stored document.
const documentRow = 1

// SQLiteRepository keeps the encoded document as one row. It is a drop-in
// alternative to the JSON file and shares its whole-document semantics.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements store.Store
func (r *SQLiteRepository) Load(ctx context.Context) (core.Document, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE id = ?`, documentRow).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return core.NewDocument(), nil
	}
	if err != nil {
		return core.Document{}, fmt.Errorf("select document: %w", err)
	}
	doc, err := store.Decode([]byte(body))
	if err != nil {
		return core.Document{}, fmt.Errorf("load document row: %w", err)
	}
	return doc, nil
}

// Save implements store.Store
func (r *SQLiteRepository) Save(ctx context.Context, doc core.Document) error {
	body, err := store.Encode(doc)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (id, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		documentRow, string(body))
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	slog.DebugContext(ctx, "Document saved to SQLite",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldOperation, applog.OpSave,
		"transactions", len(doc.Transactions),
		"budgets", len(doc.Budgets))
	return nil
}
