package http

import (
	"time"

	"finegems/internal/core"
)

const (
	isoDate  = "2006-01-02"
	longDate = "January 02, 2006"
)

// Quick-fill buttons under the category field.
var quickCategories = []quickCategory{
	{Value: "Groceries", Label: "🛒 Groceries"},
	{Value: "Dining", Label: "🍽️ Dining"},
	{Value: "Transport", Label: "🚗 Transport"},
	{Value: "Entertainment", Label: "🎬 Fun"},
	{Value: "Salary", Label: "💼 Salary"},
}

type (
	quickCategory struct {
		Value string
		Label string
	}

	categoryRow struct {
		Name   string
		Amount string
	}

	transactionRow struct {
		ID       string
		Title    string
		Category string
		Date     string
		Kind     string // css class: income, expense or empty
		Amount   string // signed, e.g. "+$1500.00"
	}

	// dashboardView is everything index.html renders, already formatted.
	dashboardView struct {
		TotalIncome    string
		TotalExpenses  string
		Balance        string
		BalanceMessage string
		MonthIncome    string
		MonthExpenses  string

		Today           string
		QuickCategories []quickCategory
		Categories      []categoryRow
		Transactions    []transactionRow
	}
)

func buildDashboardView(agg core.Aggregates, today time.Time) dashboardView {
	v := dashboardView{
		TotalIncome:     core.FormatDollars(agg.TotalIncome),
		TotalExpenses:   core.FormatDollars(agg.TotalExpenses),
		Balance:         core.FormatDollars(agg.Balance),
		BalanceMessage:  balanceMessage(agg),
		MonthIncome:     core.FormatDollars(agg.MonthIncome),
		MonthExpenses:   core.FormatDollars(agg.MonthExpenses),
		Today:           today.Format(isoDate),
		QuickCategories: quickCategories,
	}

	for _, c := range agg.ExpensesByCategory {
		v.Categories = append(v.Categories, categoryRow{Name: c.Name, Amount: core.FormatDollars(c.Amount)})
	}

	for _, tx := range agg.CappedRecent() {
		v.Transactions = append(v.Transactions, transactionRow{
			ID:       tx.ID,
			Title:    tx.Title(),
			Category: tx.Category,
			Date:     formatLongDate(tx.Date),
			Kind:     kindClass(tx.Type),
			Amount:   tx.Type.Sign() + "$" + core.Money(tx.Amount).Abs().StringFixed(2),
		})
	}
	return v
}

func balanceMessage(agg core.Aggregates) string {
	if agg.Balance.IsNegative() {
		return "Time to review spending"
	}
	return "You're doing great!"
}

func kindClass(t core.TxType) string {
	switch {
	case t.IsIncome():
		return "income"
	case t.IsExpense():
		return "expense"
	default:
		return ""
	}
}

// formatLongDate renders an ISO date as "March 01, 2024". Anything that does
// not parse is shown as stored.
func formatLongDate(s string) string {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return s
	}
	return t.Format(longDate)
}
