package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/report"
	"github.com/theirongolddev/finledger/internal/tui/components"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

func (a App) renderExpensesTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	bars := report.ExpenseBars(a.summary)
	if len(bars) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses recorded.")
		return components.ContentCard("Expense Breakdown", empty, cw)
	}

	rows := make([]components.Bar, len(bars))
	for i, b := range bars {
		rows[i] = components.Bar{
			Label:   b.Label,
			Value:   b.Value.InexactFloat64(),
			Caption: cli.FormatAmount(b.Value, a.currency),
		}
	}

	total := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Total ") +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).
			Render(cli.FormatAmount(a.summary.TotalExpenses, a.currency))

	body := components.HBarChart(rows, t.Blue, innerW) + "\n\n" + total
	return components.ContentCard("Expense Breakdown", body, cw)
}
