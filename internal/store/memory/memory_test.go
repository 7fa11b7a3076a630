package memory

import (
	"context"
	"errors"
	"testing"

	"finegems/internal/core"
	"finegems/internal/store"
)

func TestMemoryStoreEmptyThenSave(t *testing.T) {
	s := New()
	ctx := context.Background()
	doc, err := s.Load(ctx)
	if err != nil || len(doc.Transactions) != 0 {
		t.Fatalf("unexpected initial load: doc=%+v err=%v", doc, err)
	}

	core.AddTransaction(&doc, core.TransactionInput{Date: "2024-03-01", Type: core.Income, Amount: "1", Category: "a"})
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	doc.Transactions[0].Category = "changed"
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].Category != "a" {
		t.Fatalf("unexpected stored document %+v", got)
	}
}

func TestMemoryStoreMalformed(t *testing.T) {
	s := NewFromBytes([]byte("{oops"))
	if _, err := s.Load(context.Background()); !errors.Is(err, store.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestNewFromDocument(t *testing.T) {
	doc := core.NewDocument()
	core.SetBudget(&doc, "Groceries", 300)
	s, err := NewFromDocument(doc)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, _ := s.Load(context.Background())
	if got.Budgets["Groceries"] != 300 {
		t.Fatalf("unexpected budgets %v", got.Budgets)
	}
	if len(s.Bytes()) == 0 {
		t.Fatalf("expected encoded content")
	}
}
