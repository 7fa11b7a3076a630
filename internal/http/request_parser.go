package http

import (
	"fmt"
	"net/http"
	"strings"

	"finegems/internal/core"
)

// maxFormBytes bounds the request body read by ParseForm.
const maxFormBytes = 64 << 10

// BudgetInput carries the fields of the budget form.
type BudgetInput struct {
	Category string
	Amount   string
}

// ParseTransactionForm reads the add-transaction form. Only a body that
// cannot be decoded is an error; every field is otherwise accepted as is.
func ParseTransactionForm(w http.ResponseWriter, r *http.Request) (core.TransactionInput, error) {
	if err := parseForm(w, r); err != nil {
		return core.TransactionInput{}, err
	}
	return core.TransactionInput{
		Date:        sanitizeInput(r.Form.Get("date")),
		Type:        core.ParseTxType(sanitizeInput(r.Form.Get("type"))),
		Amount:      sanitizeInput(r.Form.Get("amount")),
		Category:    sanitizeInput(r.Form.Get("category")),
		Description: sanitizeInput(r.Form.Get("description")),
	}, nil
}

// ParseBudgetForm reads the set-budget form.
func ParseBudgetForm(w http.ResponseWriter, r *http.Request) (BudgetInput, error) {
	if err := parseForm(w, r); err != nil {
		return BudgetInput{}, err
	}
	return BudgetInput{
		Category: sanitizeInput(r.Form.Get("category")),
		Amount:   sanitizeInput(r.Form.Get("amount")),
	}, nil
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	return nil
}

// sanitizeInput removes control characters other than tab and newlines and
// trims surrounding whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		if r == 127 {
			return -1
		}
		return r
	}, s)
}
