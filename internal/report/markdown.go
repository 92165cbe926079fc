package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/model"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "#", `\#`, "|", `\|`, "<", `\<`,
)

// Markdown renders the summary as a markdown document: a totals table, the
// itemised expenses and the overview breakdown.
func Markdown(s model.Summary, currency string) string {
	row := func(label string, d decimal.Decimal) string {
		return fmt.Sprintf("| %s | %s |\n", label, cli.FormatAmount(d, currency))
	}

	var b strings.Builder
	b.WriteString("# Financial Summary\n\n")
	b.WriteString("| | Amount |\n|---|---:|\n")
	b.WriteString(row("Total Income", s.Income))
	b.WriteString(row("Original Savings", s.OriginalSavings))
	b.WriteString(row("Current Savings", s.Savings))
	b.WriteString(row("Total Expenses", s.TotalExpenses))
	b.WriteString(row("Deficit", s.Deficit))
	b.WriteString(row("Remaining Budget", s.RemainingBudget))
	b.WriteString(row("Savings Goal", s.SavingsGoal))

	b.WriteString("\n## Expenses\n\n")
	if len(s.Items) == 0 {
		b.WriteString("_No expenses recorded._\n")
	}
	for _, e := range s.Items {
		fmt.Fprintf(&b, "- **%s**: %s - %s\n",
			mdEscaper.Replace(e.Category),
			mdEscaper.Replace(e.Description),
			cli.FormatAmount(e.Amount, currency))
	}

	b.WriteString("\n## Overview\n\n")
	parts := Breakdown(s)
	if len(parts) == 0 {
		b.WriteString("_Nothing to show._\n")
	}
	for _, p := range parts {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", p.Label, cli.FormatAmount(p.Value, currency), cli.FormatPercent(p.Share))
	}
	return b.String()
}
