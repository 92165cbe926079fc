package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/finledger/internal/cli"
	"github.com/theirongolddev/finledger/internal/report"
	"github.com/theirongolddev/finledger/internal/tui/components"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	stats := []components.Stat{
		{Label: "Income", Value: cli.FormatAmount(s.Income, a.currency),
			Note: "spent " + cli.FormatAmount(s.TotalExpenses, a.currency)},
		{Label: "Savings", Value: cli.FormatAmount(s.Savings, a.currency),
			Note: "was " + cli.FormatAmount(s.OriginalSavings, a.currency)},
		{Label: "Deficit", Value: cli.FormatAmount(s.Deficit, a.currency),
			Note: "left " + cli.FormatAmount(s.RemainingBudget, a.currency)},
	}
	b.WriteString(components.StatRow(stats, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	labelW := 16
	captionW := 14
	barW := max(innerW-labelW-captionW-10, 10)

	parts := report.Breakdown(s)
	var body string
	if len(parts) == 0 {
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing to show.")
	} else {
		lines := make([]string, len(parts))
		for i, p := range parts {
			lines[i] = components.ShareBar(p.Label, p.Share, partColor(p.Label), cli.FormatAmount(p.Value, a.currency), labelW, barW)
		}
		body = strings.Join(lines, "\n")
	}
	b.WriteString(components.ContentCard("Financial Overview", body, cw))
	b.WriteString("\n")

	pct := cli.GoalProgress(s.Savings, s.SavingsGoal)
	goal := components.ShareBar("Savings goal", pct, components.GoalColor(pct),
		cli.FormatAmount(s.SavingsGoal, a.currency), labelW, barW)
	b.WriteString(components.ContentCard("Goal", goal, cw))

	return b.String()
}

func partColor(label string) lipgloss.Color {
	t := theme.Active
	switch label {
	case report.LabelSavings:
		return t.Green
	case report.LabelDeficit:
		return t.Red
	default:
		return t.Accent
	}
}
