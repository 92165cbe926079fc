package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label   string
	Value   float64
	Caption string // printed after the bar, usually the formatted amount
}

// HBarChart renders one labelled horizontal bar per row, scaled against the
// largest value, fitting width columns. Labels longer than a third of the
// width are truncated.
func HBarChart(bars []Bar, color lipgloss.Color, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW, captionW := 0, 0
	peak := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		captionW = max(captionW, lipgloss.Width(b.Caption))
		peak = max(peak, b.Value)
	}
	labelW = min(labelW, max(width/3, 8))
	barW := max(width-labelW-captionW-3, 5)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	captionStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, len(bars))
	for i, b := range bars {
		filled := 0
		if peak > 0 {
			filled = int(b.Value / peak * float64(barW))
		}
		if b.Value > 0 && filled == 0 {
			filled = 1
		}
		filled = min(max(filled, 0), barW)

		label := Truncate(b.Label, labelW)
		label += strings.Repeat(" ", labelW-lipgloss.Width(label))
		lines[i] = labelStyle.Render(label) + " " +
			barStyle.Render(strings.Repeat("█", filled)) +
			trackStyle.Render(strings.Repeat("·", barW-filled)) + " " +
			captionStyle.Render(b.Caption)
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most limit cells, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
