package http

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finegems/internal/core"
)

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-03-01", "March 01, 2024"},
		{"2023-12-25", "December 25, 2023"},
		{"", ""},
		{"yesterday", "yesterday"},
		{"2024-13-01", "2024-13-01"},
	}
	for _, tt := range tests {
		if got := formatLongDate(tt.in); got != tt.want {
			t.Errorf("formatLongDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildDashboardView(t *testing.T) {
	agg := core.Aggregates{
		TotalIncome:   decimal.NewFromInt(10),
		TotalExpenses: decimal.RequireFromString("15.5"),
		Balance:       decimal.RequireFromString("-5.5"),
		MonthIncome:   decimal.Zero,
		MonthExpenses: decimal.Zero,
		ExpensesByCategory: []core.CategoryAmount{
			{Name: "Dining", Amount: decimal.RequireFromString("15.5")},
		},
		Recent: []core.Transaction{
			{ID: "1", Date: "2024-03-02", Type: core.Expense, Amount: 15.5, Category: "Dining"},
			{ID: "2", Date: "2024-03-01", Type: core.Income, Amount: 10, Category: "Salary", Description: "March pay"},
			{ID: "4", Date: "2024-02-02", Type: core.Income, Amount: -5, Category: "Refund"},
			{ID: "3", Date: "2024-02-01", Type: core.TxType("transfer"), Amount: 3, Category: "Other"},
		},
	}

	v := buildDashboardView(agg, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))

	if v.Balance != "-$5.50" || v.BalanceMessage != "Time to review spending" {
		t.Fatalf("balance %q %q", v.Balance, v.BalanceMessage)
	}
	if v.Today != "2024-03-09" {
		t.Fatalf("today = %q", v.Today)
	}
	if len(v.Categories) != 1 || v.Categories[0].Amount != "$15.50" {
		t.Fatalf("categories = %+v", v.Categories)
	}
	want := []transactionRow{
		{ID: "1", Title: "Dining", Category: "Dining", Date: "March 02, 2024", Kind: "expense", Amount: "-$15.50"},
		{ID: "2", Title: "March pay", Category: "Salary", Date: "March 01, 2024", Kind: "income", Amount: "+$10.00"},
		{ID: "4", Title: "Refund", Category: "Refund", Date: "February 02, 2024", Kind: "income", Amount: "+$5.00"},
		{ID: "3", Title: "Other", Category: "Other", Date: "February 01, 2024", Kind: "", Amount: "-$3.00"},
	}
	if len(v.Transactions) != len(want) {
		t.Fatalf("rows = %+v", v.Transactions)
	}
	for i := range want {
		if v.Transactions[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, v.Transactions[i], want[i])
		}
	}
}

func TestBalanceMessageZeroIsGood(t *testing.T) {
	if got := balanceMessage(core.Aggregates{Balance: decimal.Zero}); got != "You're doing great!" {
		t.Fatalf("got %q", got)
	}
}
