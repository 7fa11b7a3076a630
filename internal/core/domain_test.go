package core

import "testing"

func TestParseTxType(t *testing.T) {
	cases := []struct {
		in   string
		want TxType
	}{
		{"income", Income},
		{" Expense ", Expense},
		{"INCOME", Income},
		{"transfer", TxType("transfer")},
		{"", TxType("")},
	}
	for _, tc := range cases {
		if got := ParseTxType(tc.in); got != tc.want {
			t.Fatalf("ParseTxType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransactionTitle(t *testing.T) {
	tx := Transaction{Category: "Groceries", Description: "  "}
	if got := tx.Title(); got != "Groceries" {
		t.Fatalf("expected category fallback, got %q", got)
	}
	tx.Description = "weekly shop"
	if got := tx.Title(); got != "weekly shop" {
		t.Fatalf("expected description, got %q", got)
	}
}

func TestNormalizeFillsNilCollections(t *testing.T) {
	var d Document
	d.Normalize()
	if d.Transactions == nil || d.Budgets == nil {
		t.Fatalf("normalize left nil collections: %+v", d)
	}
	if Income.Sign() != "+" || Expense.Sign() != "-" {
		t.Fatalf("unexpected signs")
	}
}
