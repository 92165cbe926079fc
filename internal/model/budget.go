package model

import "github.com/shopspring/decimal"

// BudgetPart is one strictly positive slice of the budget breakdown
// (remaining income, savings or deficit).
type BudgetPart struct {
	Label string
	Value decimal.Decimal
	Share float64 // 0-1 fraction of the sum of all parts
}

// ExpenseBar is one bar of the expense chart.
type ExpenseBar struct {
	Label string // "category: description"
	Value decimal.Decimal
}

// CategoryTotal aggregates the expenses of one category.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
	Share    float64 // of all expenses, 0-1
}
