package memory

import (
	"context"
	"sync"

	"finegems/internal/core"
	"finegems/internal/store"
)

// Store keeps the encoded document in memory. Holding bytes rather than the
// struct means callers never share slices or maps with the store, and the
// codec runs exactly as it does for the file store.
type Store struct {
	mu   sync.Mutex
	data []byte
}

func New() *Store {
	return &Store{}
}

// NewFromDocument returns a store pre-seeded with doc.
func NewFromDocument(doc core.Document) (*Store, error) {
	s := New()
	if err := s.Save(context.Background(), doc); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromBytes returns a store holding raw content, which may be malformed.
func NewFromBytes(data []byte) *Store {
	return &Store{data: append([]byte(nil), data...)}
}

func (s *Store) Load(_ context.Context) (core.Document, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	if data == nil {
		return core.NewDocument(), nil
	}
	return store.Decode(data)
}

func (s *Store) Save(_ context.Context, doc core.Document) error {
	data, err := store.Encode(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Bytes returns a copy of the stored content.
func (s *Store) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...)
}
