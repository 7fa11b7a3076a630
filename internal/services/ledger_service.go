// Package services runs one ledger operation per request against a Store.
package services

import (
	"context"
	"fmt"
	"time"

	"finegems/internal/core"
	applog "finegems/internal/log"
	"finegems/internal/store"
)

// LedgerService loads the whole document, applies a single operation and
// saves it back. There is no lock around that cycle: two concurrent writers
// can lose one update, last save wins.
type LedgerService struct {
	store  store.Store
	logger *applog.StructuredLogger
	now    func() time.Time
}

func NewLedgerService(s store.Store, logger *applog.Logger) *LedgerService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &LedgerService{
		store:  s,
		logger: applog.NewStructuredLogger(logger.WithComponent(applog.ComponentLedger)),
		now:    time.Now,
	}
}

// WithClock replaces the clock used for "this month" and the form's default date.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

// Today returns the service clock's current time.
func (s *LedgerService) Today() time.Time {
	return s.now()
}

// Dashboard computes the aggregates shown on the index page.
func (s *LedgerService) Dashboard(ctx context.Context) (core.Aggregates, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return core.Aggregates{}, err
	}
	return core.ComputeAggregates(doc, s.now()), nil
}

// AddTransaction records a new transaction and returns it with its id.
func (s *LedgerService) AddTransaction(ctx context.Context, in core.TransactionInput) (core.Transaction, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return core.Transaction{}, err
	}
	tx := core.AddTransaction(&doc, in)
	if err := s.save(ctx, doc); err != nil {
		return core.Transaction{}, err
	}
	s.logger.LogTransactionAdded(ctx, tx.ID, string(tx.Type), tx.Date, tx.Amount, tx.Category)
	return tx, nil
}

// DeleteTransaction removes the transaction with the given id. Unknown ids
// are not an error; the document is still rewritten.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) (int, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	removed := core.DeleteTransaction(&doc, id)
	if err := s.save(ctx, doc); err != nil {
		return 0, err
	}
	s.logger.LogTransactionDeleted(ctx, id, removed)
	return removed, nil
}

// SetBudget stores the monthly limit for a category. The amount is the raw
// form value and degrades to 0 when it cannot be parsed.
func (s *LedgerService) SetBudget(ctx context.Context, category, amount string) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	value := core.ParseAmount(amount)
	core.SetBudget(&doc, category, value)
	if err := s.save(ctx, doc); err != nil {
		return err
	}
	s.logger.LogBudgetSet(ctx, category, value)
	return nil
}

// Ready reports whether the store can currently be read.
func (s *LedgerService) Ready(ctx context.Context) error {
	_, err := s.load(ctx)
	return err
}

func (s *LedgerService) load(ctx context.Context) (core.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.LogError(ctx, "Failed to load document", err, applog.OpLoad, nil)
		return core.Document{}, fmt.Errorf("load document: %w", err)
	}
	return doc, nil
}

func (s *LedgerService) save(ctx context.Context, doc core.Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		s.logger.LogError(ctx, "Failed to save document", err, applog.OpSave, nil)
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
