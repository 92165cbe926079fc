package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finledger/internal/model"
)

// Line prefixes of the snapshot format.
const (
	prefixIncome      = "Income:"
	prefixSavings     = "Savings:"
	prefixSavingsGoal = "SavingsGoal:"
	prefixExpenses    = "Expenses:"

	fieldSep = ", "

	// maxLineLen bounds one snapshot line. AddExpense refuses fields that
	// would not fit.
	maxLineLen = 1 << 20
)

// Snapshot is the flat-file form of a ledger.
type Snapshot struct {
	Income      decimal.Decimal
	Savings     decimal.Decimal
	SavingsGoal decimal.Decimal
	Expenses    []model.Expense // categories grouped, in first-seen order
}

// DecodeSnapshot reads the line-oriented snapshot format:
//
//	Income: 4500
//	Savings: 2000
//	SavingsGoal: 6000
//	Expenses:
//	Groceries, Milk, 3.5
//
// Header lines may come in any order. Every non-blank line after
// "Expenses:" that is not itself a header is an expense. Unknown lines
// before "Expenses:" are ignored. Any value that does not parse as a
// number fails the whole decode with a *RecordError.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	inExpenses := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, prefixIncome):
			v, err := parseHeader(line, prefixIncome, lineNo)
			if err != nil {
				return Snapshot{}, err
			}
			snap.Income = v
		case strings.HasPrefix(line, prefixSavingsGoal):
			v, err := parseHeader(line, prefixSavingsGoal, lineNo)
			if err != nil {
				return Snapshot{}, err
			}
			snap.SavingsGoal = v
		case strings.HasPrefix(line, prefixSavings):
			v, err := parseHeader(line, prefixSavings, lineNo)
			if err != nil {
				return Snapshot{}, err
			}
			snap.Savings = v
		case strings.HasPrefix(line, prefixExpenses):
			inExpenses = true
		case inExpenses && strings.TrimSpace(line) != "":
			e, err := parseExpense(line, lineNo)
			if err != nil {
				return Snapshot{}, err
			}
			snap.Expenses = append(snap.Expenses, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}

	snap.Expenses = groupByCategory(snap.Expenses)
	return snap, nil
}

func parseHeader(line, prefix string, lineNo int) (decimal.Decimal, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	v, err := parseDecimal(raw)
	if err != nil {
		return decimal.Zero, &RecordError{Line: lineNo, Text: line, Err: err}
	}
	return v, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if err := CheckAmount(v); err != nil {
		return decimal.Zero, err
	}
	return v, nil
}

// parseExpense splits "category, description, amount". The category ends at
// the first separator and the amount starts after the last one, so the
// description may itself contain the separator.
func parseExpense(line string, lineNo int) (model.Expense, error) {
	text := strings.TrimSpace(line)

	first := strings.Index(text, fieldSep)
	last := strings.LastIndex(text, fieldSep)
	if first < 0 || first == last {
		return model.Expense{}, &RecordError{
			Line: lineNo,
			Text: line,
			Err:  errors.New("want 3 comma-separated fields"),
		}
	}

	amount, err := parseDecimal(strings.TrimSpace(text[last+len(fieldSep):]))
	if err != nil {
		return model.Expense{}, &RecordError{Line: lineNo, Text: line, Err: err}
	}

	return model.Expense{
		Category:    text[:first],
		Description: text[first+len(fieldSep) : last],
		Amount:      amount,
	}, nil
}

// groupByCategory reorders expenses so each category is contiguous,
// categories in first-seen order and entries in original order.
func groupByCategory(expenses []model.Expense) []model.Expense {
	if len(expenses) == 0 {
		return nil
	}
	var order []string
	byCat := make(map[string][]model.Expense)
	for _, e := range expenses {
		if _, ok := byCat[e.Category]; !ok {
			order = append(order, e.Category)
		}
		byCat[e.Category] = append(byCat[e.Category], e)
	}
	out := make([]model.Expense, 0, len(expenses))
	for _, c := range order {
		out = append(out, byCat[c]...)
	}
	return out
}

// EncodeSnapshot writes snap in the format read by DecodeSnapshot.
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", prefixIncome, snap.Income.String())
	fmt.Fprintf(bw, "%s %s\n", prefixSavings, snap.Savings.String())
	fmt.Fprintf(bw, "%s %s\n", prefixSavingsGoal, snap.SavingsGoal.String())
	fmt.Fprintf(bw, "%s\n", prefixExpenses)
	for _, e := range snap.Expenses {
		fmt.Fprintf(bw, "%s%s%s%s%s\n", e.Category, fieldSep, e.Description, fieldSep, e.Amount.String())
	}

	return bw.Flush()
}
