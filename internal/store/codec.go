package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"finegems/internal/core"
)

// ErrParse reports stored content that is not a valid document.
var ErrParse = errors.New("malformed document")

// wireTransaction mirrors core.Transaction but accepts an amount written as
// either a JSON number or a string. Budget values get the same treatment.
type wireTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

type wireDocument struct {
	Transactions []wireTransaction          `json:"transactions"`
	Budgets      map[string]json.RawMessage `json:"budgets"`
}

// Decode parses a stored document. Empty input decodes to the empty document.
func Decode(data []byte) (core.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return core.NewDocument(), nil
	}
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return core.Document{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	doc := core.Document{
		Transactions: make([]core.Transaction, 0, len(w.Transactions)),
		Budgets:      make(map[string]float64, len(w.Budgets)),
	}
	for category, raw := range w.Budgets {
		doc.Budgets[category] = decodeAmount(raw)
	}
	for _, t := range w.Transactions {
		doc.Transactions = append(doc.Transactions, core.Transaction{
			ID:          t.ID,
			Date:        t.Date,
			Type:        core.TxType(t.Type),
			Amount:      decodeAmount(t.Amount),
			Category:    t.Category,
			Description: t.Description,
		})
	}
	doc.Normalize()
	return doc, nil
}

func decodeAmount(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		return core.ParseAmount(s)
	}
	return core.ParseAmount(string(raw))
}

// Encode serializes the document as indented JSON.
func Encode(doc core.Document) ([]byte, error) {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(data, '\n'), nil
}
