package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/model"
)

// WriteText writes the plain line-per-field summary.
func WriteText(w io.Writer, s model.Summary, currency string) error {
	bw := bufio.NewWriter(w)
	f := func(format string, args ...any) { fmt.Fprintf(bw, format, args...) }

	f("Financial Summary:\n")
	f("Total Income: %s\n", cli.FormatAmount(s.Income, currency))
	f("Original Savings: %s\n", cli.FormatAmount(s.OriginalSavings, currency))
	f("Current Savings: %s\n", cli.FormatAmount(s.Savings, currency))
	f("Expenses:\n")
	for _, e := range s.Items {
		f("%s: %s - %s\n", e.Category, e.Description, cli.FormatAmount(e.Amount, currency))
	}
	f("Total Expenses: %s\n", cli.FormatAmount(s.TotalExpenses, currency))
	f("Deficit: %s\n", cli.FormatAmount(s.Deficit, currency))
	f("Remaining Budget: %s\n", cli.FormatAmount(s.RemainingBudget, currency))
	f("Savings Goal: %s\n", cli.FormatAmount(s.SavingsGoal, currency))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
