package core

import (
	"strings"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	TxType string

	Transaction struct {
		ID          string  `json:"id"`
		Date        string  `json:"date"` // ISO YYYY-MM-DD, not validated
		Type        TxType  `json:"type"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	}

	// TransactionInput carries the user-supplied fields of a new transaction.
	// Amount is the raw form value; it is coerced by ParseAmount.
	TransactionInput struct {
		Date        string
		Type        TxType
		Amount      string
		Category    string
		Description string
	}

	// Document is the whole persisted state of the application.
	Document struct {
		Transactions []Transaction      `json:"transactions"`
		Budgets      map[string]float64 `json:"budgets"`
	}
)

// NewDocument returns the empty document used when nothing is persisted yet.
func NewDocument() Document {
	return Document{
		Transactions: []Transaction{},
		Budgets:      map[string]float64{},
	}
}

// Normalize replaces nil collections with empty ones so the document
// always encodes as `[]` and `{}`.
func (d *Document) Normalize() {
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Budgets == nil {
		d.Budgets = map[string]float64{}
	}
}

// ParseTxType maps a form value onto a TxType. Unknown values are kept
// verbatim; they count toward neither total.
func ParseTxType(s string) TxType {
	switch t := strings.ToLower(strings.TrimSpace(s)); t {
	case string(Income):
		return Income
	case string(Expense):
		return Expense
	default:
		return TxType(strings.TrimSpace(s))
	}
}

func (t TxType) IsIncome() bool  { return t == Income }
func (t TxType) IsExpense() bool { return t == Expense }

// Sign returns the display sign of a transaction of this type.
func (t TxType) Sign() string {
	if t == Income {
		return "+"
	}
	return "-"
}

// Title is the text shown for a transaction: the description, or the
// category when the description is blank.
func (t Transaction) Title() string {
	if strings.TrimSpace(t.Description) == "" {
		return t.Category
	}
	return t.Description
}
