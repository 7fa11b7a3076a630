package core

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates an opaque transaction identifier.
var NewID = uuid.NewString

// AddTransaction builds a transaction from the input with a fresh ID, appends
// it to the document and returns it. Only the amount is coerced; nothing
// else is validated.
func AddTransaction(doc *Document, in TransactionInput) Transaction {
	doc.Normalize()
	tx := Transaction{
		ID:          NewID(),
		Date:        strings.TrimSpace(in.Date),
		Type:        in.Type,
		Amount:      ParseAmount(in.Amount),
		Category:    in.Category,
		Description: in.Description,
	}
	doc.Transactions = append(doc.Transactions, tx)
	return tx
}

// DeleteTransaction removes every transaction with the given ID and reports
// how many were removed. An unknown ID is a no-op.
func DeleteTransaction(doc *Document, id string) int {
	kept := doc.Transactions[:0]
	removed := 0
	for _, tx := range doc.Transactions {
		if tx.ID == id {
			removed++
			continue
		}
		kept = append(kept, tx)
	}
	doc.Transactions = kept
	doc.Normalize()
	return removed
}

// SetBudget sets the monthly limit for a category, overwriting any previous one.
func SetBudget(doc *Document, category string, amount float64) {
	doc.Normalize()
	doc.Budgets[category] = amount
}
