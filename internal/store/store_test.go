package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finledger/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "finance_data.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func expense(category, desc, amount string) model.Expense {
	return model.Expense{Category: category, Description: desc, Amount: decimal.RequireFromString(amount)}
}

func TestInsertAndRows(t *testing.T) {
	s := openTemp(t)

	id, err := s.Insert(expense("Groceries", "Bread", "2.25"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 1 {
		t.Errorf("first id = %d, want 1", id)
	}

	rows, err := s.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Category != "Groceries" || r.Description != "Bread" {
		t.Errorf("row = %+v, want Groceries/Bread", r)
	}
	if !r.Amount.Equal(decimal.RequireFromString("2.25")) {
		t.Errorf("Amount = %s, want 2.25", r.Amount)
	}
}

func TestReplaceDropsStaleRows(t *testing.T) {
	s := openTemp(t)

	for _, e := range []model.Expense{
		expense("Rent", "Old", "900"),
		expense("Rent", "Older", "850"),
		expense("Misc", "Gone", "1"),
	} {
		if _, err := s.Insert(e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	want := []model.Expense{
		expense("Utilities", "Water", "30"),
		expense("Utilities", "Internet", "45"),
	}
	if err := s.Replace(want); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	rows, err := s.Rows()
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != len(want) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(want))
	}
	for i, r := range rows {
		if r.ID != int64(i+1) {
			t.Errorf("rows[%d].ID = %d, want %d (ids restart after rebuild)", i, r.ID, i+1)
		}
		if r.Category != want[i].Category || r.Description != want[i].Description || !r.Amount.Equal(want[i].Amount) {
			t.Errorf("rows[%d] = %+v, want %+v", i, r.Expense, want[i])
		}
	}
}

func TestReplaceEmptyTruncates(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Insert(expense("Rent", "Monthly Rent", "1000")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Replace(nil); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance_data.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Insert(expense("Health", "Vitamins", "20.5")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = s.Close() }()

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count after reopen = %d, want 1", n)
	}
}

func TestDeleteReusesLastID(t *testing.T) {
	s := openTemp(t)

	if _, err := s.Insert(expense("Food", "Lunch", "12")); err != nil {
		t.Fatal(err)
	}
	id, err := s.Insert(expense("Food", "Dinner", "20"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
	next, err := s.Insert(expense("Food", "Snack", "3"))
	if err != nil {
		t.Fatal(err)
	}
	if next != id {
		t.Errorf("id after delete = %d, want %d", next, id)
	}
}
