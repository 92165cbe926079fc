// Package ledger holds the in-memory finance record and keeps the snapshot
// file and the relational expense mirror in step with it.
package ledger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finledger/internal/model"
)

// Mirror is the relational copy of the expenses. *store.Store implements it.
type Mirror interface {
	Replace(expenses []model.Expense) error
	Insert(e model.Expense) (int64, error)
	Delete(id int64) error
	Rows() ([]model.ExpenseRow, error)
	Count() (int, error)
	Close() error
}

// Options configures Open.
type Options struct {
	SnapshotPath string
	Mirror       Mirror
	Logger       *log.Logger // nil discards log output
}

// Ledger records income, savings, a savings goal and categorised expenses.
// It is not safe for concurrent use.
type Ledger struct {
	snapshotPath string
	mirror       Mirror
	logger       *log.Logger

	income          decimal.Decimal
	savings         decimal.Decimal
	baseSavings     decimal.Decimal // savings before the current deficit
	savingsGoal     decimal.Decimal
	originalSavings decimal.Decimal
	deficit         decimal.Decimal

	categories []string // first-seen order
	expenses   map[string][]model.Entry
}

// Open builds a Ledger and loads it from the snapshot at opts.SnapshotPath.
// A missing snapshot yields an empty ledger. On error the mirror is closed.
func Open(opts Options) (*Ledger, error) {
	if opts.Mirror == nil {
		return nil, errors.New("ledger: nil mirror")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &Ledger{
		snapshotPath: opts.SnapshotPath,
		mirror:       opts.Mirror,
		logger:       logger,
		expenses:     make(map[string][]model.Entry),
	}
	if err := l.Load(); err != nil {
		_ = l.mirror.Close()
		return nil, err
	}
	return l, nil
}

// Close releases the relational mirror.
func (l *Ledger) Close() error {
	return l.mirror.Close()
}

// Load replaces the ledger state with the snapshot contents and rebuilds
// the mirror from the parsed expenses. A malformed snapshot leaves both the
// ledger and the mirror untouched. Savings stored as 0 while in deficit
// reload with no pre-deficit savings, so covering the deficit later does not
// restore them.
func (l *Ledger) Load() error {
	snap, err := l.readSnapshot()
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("no previous data found, starting fresh", "snapshot", l.snapshotPath)
		snap = Snapshot{}
	} else if err != nil {
		return err
	}

	if err := l.mirror.Replace(snap.Expenses); err != nil {
		return fmt.Errorf("rebuilding expense mirror: %w", err)
	}

	l.income = snap.Income
	l.savings = snap.Savings
	l.savingsGoal = snap.SavingsGoal
	l.categories = nil
	l.expenses = make(map[string][]model.Entry)
	for _, e := range snap.Expenses {
		l.appendEntry(e)
	}

	l.deficit = l.shortfall()
	l.baseSavings = l.savings
	if l.savings.IsPositive() {
		// Saved savings already had the deficit taken out.
		l.baseSavings = l.savings.Add(l.deficit)
	}
	l.originalSavings = l.savings

	l.logger.Debug("ledger loaded",
		"snapshot", l.snapshotPath,
		"expenses", len(snap.Expenses),
		"categories", len(l.categories),
	)
	return nil
}

func (l *Ledger) readSnapshot() (Snapshot, error) {
	f, err := os.Open(l.snapshotPath)
	if err != nil {
		return Snapshot{}, err
	}
	defer func() { _ = f.Close() }()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading %s: %w", l.snapshotPath, err)
	}
	return snap, nil
}

// AddIncome adds amount to the income and persists. Non-positive amounts
// are ignored.
func (l *Ledger) AddIncome(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	if err := CheckAmount(amount); err != nil {
		return err
	}
	l.income = l.income.Add(amount)
	l.AdjustSavingsIfNeeded()
	return l.WriteSnapshot()
}

// SetSavingsGoal sets the savings goal and persists. Negative goals are
// ignored.
func (l *Ledger) SetSavingsGoal(goal decimal.Decimal) error {
	if goal.IsNegative() {
		return nil
	}
	if err := CheckAmount(goal); err != nil {
		return err
	}
	l.savingsGoal = goal
	return l.WriteSnapshot()
}

// AddExpense appends an expense to its category, mirrors it, re-derives
// savings and persists. Non-positive amounts are ignored. Surrounding
// whitespace is trimmed from the category. If the snapshot cannot be
// written the expense is taken back out of the ledger and the mirror.
func (l *Ledger) AddExpense(category, description string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	if err := CheckAmount(amount); err != nil {
		return err
	}
	category = strings.TrimSpace(category)
	if err := validateFields(category, description); err != nil {
		return err
	}

	e := model.Expense{Category: category, Description: description, Amount: amount}
	id, err := l.mirror.Insert(e)
	if err != nil {
		return fmt.Errorf("mirroring expense: %w", err)
	}
	l.logger.Debug("expense mirrored", "id", id, "category", category)

	l.appendEntry(e)
	l.AdjustSavingsIfNeeded()
	if err := l.WriteSnapshot(); err != nil {
		l.dropLastEntry(category)
		l.AdjustSavingsIfNeeded()
		if derr := l.mirror.Delete(id); derr != nil {
			l.logger.Warn("removing unsaved expense from mirror", "id", id, "err", derr)
		}
		return err
	}
	return nil
}

func (l *Ledger) appendEntry(e model.Expense) {
	if _, ok := l.expenses[e.Category]; !ok {
		l.categories = append(l.categories, e.Category)
	}
	l.expenses[e.Category] = append(l.expenses[e.Category], model.Entry{
		Description: e.Description,
		Amount:      e.Amount,
	})
}

// dropLastEntry undoes the most recent appendEntry for category.
func (l *Ledger) dropLastEntry(category string) {
	entries := l.expenses[category]
	if len(entries) > 1 {
		l.expenses[category] = entries[:len(entries)-1]
		return
	}
	delete(l.expenses, category)
	for i, c := range l.categories {
		if c == category {
			l.categories = append(l.categories[:i], l.categories[i+1:]...)
			break
		}
	}
}

// validateFields rejects text the snapshot format cannot round-trip.
func validateFields(category, description string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: empty category", ErrInvalidField)
	}
	if strings.Contains(category, fieldSep) {
		return fmt.Errorf("%w: category %q contains %q", ErrInvalidField, category, fieldSep)
	}
	for _, p := range []string{prefixIncome, prefixSavings, prefixSavingsGoal, prefixExpenses} {
		if strings.HasPrefix(category, p) {
			return fmt.Errorf("%w: category %q starts with %q", ErrInvalidField, category, p)
		}
	}
	if strings.ContainsAny(category, "\r\n") || strings.ContainsAny(description, "\r\n") {
		return fmt.Errorf("%w: line break in category or description", ErrInvalidField)
	}
	// Leave room for the separators and the amount.
	if len(category)+len(description) > maxLineLen-256 {
		return fmt.Errorf("%w: category and description exceed %d bytes", ErrInvalidField, maxLineLen-256)
	}
	return nil
}

// AdjustSavingsIfNeeded recomputes the deficit and takes it out of the
// pre-deficit savings, flooring at zero. It is idempotent.
func (l *Ledger) AdjustSavingsIfNeeded() {
	l.deficit = l.shortfall()
	l.savings = decimal.Max(l.baseSavings.Sub(l.deficit), decimal.Zero)
	if l.deficit.IsPositive() {
		l.logger.Debug("expenses exceed income", "deficit", l.deficit, "savings", l.savings)
	}
}

// shortfall is max(0, totalExpenses - income).
func (l *Ledger) shortfall() decimal.Decimal {
	return decimal.Max(l.TotalExpenses().Sub(l.income), decimal.Zero)
}

// WriteSnapshot replaces the snapshot file with the current state.
func (l *Ledger) WriteSnapshot() error {
	dir := filepath.Dir(l.snapshotPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(l.snapshotPath)+"-*")
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := EncodeSnapshot(tmp, l.snapshot()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.snapshotPath); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	l.logger.Debug("snapshot written", "path", l.snapshotPath)
	return nil
}

func (l *Ledger) snapshot() Snapshot {
	return Snapshot{
		Income:      l.income,
		Savings:     l.savings,
		SavingsGoal: l.savingsGoal,
		Expenses:    l.flatten(),
	}
}

func (l *Ledger) flatten() []model.Expense {
	var out []model.Expense
	for _, c := range l.categories {
		for _, e := range l.expenses[c] {
			out = append(out, model.Expense{Category: c, Description: e.Description, Amount: e.Amount})
		}
	}
	return out
}

// Summary returns a read-only report of the current state.
func (l *Ledger) Summary() model.Summary {
	total := l.TotalExpenses()
	return model.Summary{
		Income:          l.income,
		OriginalSavings: l.originalSavings,
		Savings:         l.savings,
		SavingsGoal:     l.savingsGoal,
		Deficit:         l.deficit,
		Items:           l.flatten(),
		TotalExpenses:   total,
		RemainingBudget: decimal.Max(l.income.Sub(total), decimal.Zero),
	}
}

// DatabaseRows returns every row of the relational mirror.
func (l *Ledger) DatabaseRows() ([]model.ExpenseRow, error) {
	rows, err := l.mirror.Rows()
	if err != nil {
		return nil, fmt.Errorf("reading expense rows: %w", err)
	}
	return rows, nil
}

// RowCount returns the number of rows in the relational mirror.
func (l *Ledger) RowCount() (int, error) {
	n, err := l.mirror.Count()
	if err != nil {
		return 0, fmt.Errorf("counting expense rows: %w", err)
	}
	return n, nil
}

// TotalExpenses sums every expense across all categories.
func (l *Ledger) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, entries := range l.expenses {
		for _, e := range entries {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func (l *Ledger) Income() decimal.Decimal          { return l.income }
func (l *Ledger) Savings() decimal.Decimal         { return l.savings }
func (l *Ledger) SavingsGoal() decimal.Decimal     { return l.savingsGoal }
func (l *Ledger) OriginalSavings() decimal.Decimal { return l.originalSavings }
func (l *Ledger) Deficit() decimal.Decimal         { return l.deficit }

// Categories returns category names in first-seen order.
func (l *Ledger) Categories() []string {
	return append([]string(nil), l.categories...)
}

// Expenses returns a copy of the category to entries mapping.
func (l *Ledger) Expenses() map[string][]model.Entry {
	out := make(map[string][]model.Entry, len(l.expenses))
	for c, entries := range l.expenses {
		out[c] = append([]model.Entry(nil), entries...)
	}
	return out
}
