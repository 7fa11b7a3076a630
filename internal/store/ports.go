package store

import (
	"context"

	"finegems/internal/core"
)

// Store persists the whole document. There are no partial writes: Save
// replaces everything Load would return.
type Store interface {
	// Load returns the persisted document, or an empty one when nothing has
	// been saved yet. Malformed content yields an error wrapping ErrParse.
	Load(ctx context.Context) (core.Document, error)

	// Save overwrites the persisted document.
	Save(ctx context.Context, doc core.Document) error
}
