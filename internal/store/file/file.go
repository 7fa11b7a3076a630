// Package file stores the document as a single JSON file on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"finegems/internal/core"
	applog "finegems/internal/log"
	"finegems/internal/store"
)

// DefaultPath is where the document lives when no path is configured.
const DefaultPath = "finance_data.json"

type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Load reads and decodes the file. A missing file is the empty document.
func (s *Store) Load(ctx context.Context) (core.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.DebugContext(ctx, "Data file not found, using empty document",
			applog.FieldComponent, applog.ComponentStorage,
			applog.FieldOperation, applog.OpLoad,
			"path", s.path)
		return core.NewDocument(), nil
	}
	if err != nil {
		return core.Document{}, fmt.Errorf("read data file %s: %w", s.path, err)
	}
	doc, err := store.Decode(data)
	if err != nil {
		return core.Document{}, fmt.Errorf("load %s: %w", s.path, err)
	}
	return doc, nil
}

// Save writes the whole document, replacing the file via a rename so a
// reader never sees a half-written file.
func (s *Store) Save(ctx context.Context, doc core.Document) error {
	data, err := store.Encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}

	slog.DebugContext(ctx, "Document saved",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldOperation, applog.OpSave,
		"path", s.path,
		"transactions", len(doc.Transactions),
		"budgets", len(doc.Budgets),
		"bytes", len(data))
	return nil
}
