// Package report turns a ledger summary into chart data, text, markdown and
// PDF output.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finledger/internal/model"
)

// Breakdown labels.
const (
	LabelRemaining = "Remaining Income"
	LabelSavings   = "Savings"
	LabelDeficit   = "Deficit"
)

// ExpenseBars returns one bar per expense item, labelled "category: description",
// in ledger order.
func ExpenseBars(s model.Summary) []model.ExpenseBar {
	bars := make([]model.ExpenseBar, 0, len(s.Items))
	for _, e := range s.Items {
		bars = append(bars, model.ExpenseBar{
			Label: e.Category + ": " + e.Description,
			Value: e.Amount,
		})
	}
	return bars
}

// Breakdown splits the overview into remaining income, savings and deficit.
// Only strictly positive parts are returned, each with its share of their sum.
func Breakdown(s model.Summary) []model.BudgetPart {
	candidates := []model.BudgetPart{
		{Label: LabelRemaining, Value: s.RemainingBudget},
		{Label: LabelSavings, Value: s.Savings},
		{Label: LabelDeficit, Value: s.Deficit},
	}

	var parts []model.BudgetPart
	total := decimal.Zero
	for _, p := range candidates {
		if p.Value.IsPositive() {
			parts = append(parts, p)
			total = total.Add(p.Value)
		}
	}
	for i := range parts {
		parts[i].Share = parts[i].Value.Div(total).InexactFloat64()
	}
	return parts
}

// MaxBar returns the largest bar value, or zero when there are none.
func MaxBar(bars []model.ExpenseBar) decimal.Decimal {
	m := decimal.Zero
	for _, b := range bars {
		m = decimal.Max(m, b.Value)
	}
	return m
}

// CategoryTotals sums expenses per category, largest first. Ties keep the
// ledger's category order.
func CategoryTotals(s model.Summary) []model.CategoryTotal {
	index := make(map[string]int)
	var totals []model.CategoryTotal
	for _, e := range s.Items {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, model.CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[i].Count++
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}

	if s.TotalExpenses.IsPositive() {
		for i := range totals {
			totals[i].Share = totals[i].Total.Div(s.TotalExpenses).InexactFloat64()
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals
}
