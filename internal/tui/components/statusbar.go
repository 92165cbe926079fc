package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// info on the right.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	left := " [tab]switch  [e]xpenses  [o]verview  [q]uit"
	right := ""
	if info != "" {
		right = info + " "
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width).
		Render(left + strings.Repeat(" ", gap) + right)
}
