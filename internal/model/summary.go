package model

import "github.com/shopspring/decimal"

// Summary is a read-only view of a ledger at one point in time.
type Summary struct {
	Income          decimal.Decimal
	OriginalSavings decimal.Decimal
	Savings         decimal.Decimal
	SavingsGoal     decimal.Decimal
	Deficit         decimal.Decimal

	// Items lists every expense, categories in first-seen order,
	// entries in insertion order within a category.
	Items []Expense

	TotalExpenses   decimal.Decimal
	RemainingBudget decimal.Decimal
}
