// Package model defines domain types shared by the ledger, store and reports.
package model

import "github.com/shopspring/decimal"

// Entry is one item inside an expense category.
type Entry struct {
	Description string
	Amount      decimal.Decimal
}

// Expense is a flattened expense: an Entry together with its category.
type Expense struct {
	Category    string
	Description string
	Amount      decimal.Decimal
}

// ExpenseRow is an Expense as persisted in the relational store.
type ExpenseRow struct {
	ID int64
	Expense
}
