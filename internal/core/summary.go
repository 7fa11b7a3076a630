package core

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RecentLimit caps the number of transactions shown on the dashboard.
const RecentLimit = 20

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Aggregates is everything the dashboard derives from the document.
// Nothing here is ever stored.
type Aggregates struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal

	MonthStart    string // YYYY-MM-01
	MonthIncome   decimal.Decimal
	MonthExpenses decimal.Decimal

	// Sorted by descending amount, ties in first-seen order.
	ExpensesByCategory []CategoryAmount

	// All transactions, newest date first, ties in document order.
	Recent []Transaction
}

// MonthStart returns the first day of the month containing t as YYYY-MM-01.
func MonthStart(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-01", t.Year(), int(t.Month()))
}

// ComputeAggregates derives totals, this month's totals, the expense
// breakdown and the recent list as of the given day. Dates are compared as
// strings, which is correct for ISO formatted dates.
func ComputeAggregates(doc Document, asOf time.Time) Aggregates {
	agg := Aggregates{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		MonthStart:    MonthStart(asOf),
		MonthIncome:   decimal.Zero,
		MonthExpenses: decimal.Zero,
	}

	byCategory := map[string]int{}
	for _, tx := range doc.Transactions {
		amt := Money(tx.Amount)
		inMonth := tx.Date >= agg.MonthStart
		switch {
		case tx.Type.IsIncome():
			agg.TotalIncome = agg.TotalIncome.Add(amt)
			if inMonth {
				agg.MonthIncome = agg.MonthIncome.Add(amt)
			}
		case tx.Type.IsExpense():
			agg.TotalExpenses = agg.TotalExpenses.Add(amt)
			if inMonth {
				agg.MonthExpenses = agg.MonthExpenses.Add(amt)
			}
			i, ok := byCategory[tx.Category]
			if !ok {
				i = len(agg.ExpensesByCategory)
				byCategory[tx.Category] = i
				agg.ExpensesByCategory = append(agg.ExpensesByCategory, CategoryAmount{Name: tx.Category, Amount: decimal.Zero})
			}
			agg.ExpensesByCategory[i].Amount = agg.ExpensesByCategory[i].Amount.Add(amt)
		}
	}
	agg.Balance = agg.TotalIncome.Sub(agg.TotalExpenses)

	slices.SortStableFunc(agg.ExpensesByCategory, func(a, b CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})

	agg.Recent = slices.Clone(doc.Transactions)
	slices.SortStableFunc(agg.Recent, func(a, b Transaction) int {
		return cmp.Compare(b.Date, a.Date)
	})

	return agg
}

// CappedRecent returns at most RecentLimit of the most recent transactions.
func (a Aggregates) CappedRecent() []Transaction {
	if len(a.Recent) > RecentLimit {
		return a.Recent[:RecentLimit]
	}
	return a.Recent
}
