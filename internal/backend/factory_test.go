package backend

import (
	"context"
	"path/filepath"
	"testing"

	"finegems/internal/config"
	"finegems/internal/storage"
	"finegems/internal/store/file"
	"finegems/internal/store/memory"
)

func TestCreateBackend(t *testing.T) {
	dir := t.TempDir()
	f := NewFactory(nil)
	ctx := context.Background()

	res, err := f.CreateBackend(ctx, Config{Type: FileBackend, DataFile: filepath.Join(dir, "data.json")})
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	if _, ok := res.Store.(*file.Store); !ok || res.Cleanup != nil {
		t.Fatalf("unexpected file backend result %+v", res)
	}

	res, err = f.CreateBackend(ctx, Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	if _, ok := res.Store.(*memory.Store); !ok {
		t.Fatalf("unexpected memory backend %T", res.Store)
	}

	res, err = f.CreateBackend(ctx, Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(dir, "db", "x.db")})
	if err != nil {
		t.Fatalf("sqlite backend: %v", err)
	}
	if _, ok := res.Store.(*storage.SQLiteRepository); !ok || res.Cleanup == nil {
		t.Fatalf("unexpected sqlite backend result %+v", res)
	}
	if err := res.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}

func TestCreateBackendRejectsInvalidConfig(t *testing.T) {
	f := NewFactory(nil)
	for _, cfg := range []Config{
		{Type: "postgres"},
		{Type: FileBackend},
		{Type: SQLiteBackend},
	} {
		if _, err := f.CreateBackend(context.Background(), cfg); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		}
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	cfg, err := FromAppConfig(&config.Config{DataBackend: "file", DataFile: "x.json", SQLiteDBPath: "y.db"})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if cfg.Type != FileBackend || cfg.DataFile != "x.json" || cfg.SQLiteDBPath != "y.db" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "sheets"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	if got := GetBackendTypeStrings(); len(got) != 3 || got[0] != "file" {
		t.Fatalf("unexpected backend strings %v", got)
	}
}
