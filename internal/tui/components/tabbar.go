package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut, always the lower-cased first letter
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Expenses", Key: 'e'},
	{Name: "Overview", Key: 'o'},
}

const tabSeparator = "│"

func tabStyles() (active, inactive, key lipgloss.Style) {
	t := theme.Active
	active = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
	inactive = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 1)
	key = lipgloss.NewStyle().Foreground(t.Accent).Underline(true)
	return active, inactive, key
}

func renderTab(tab Tab, active bool) string {
	activeStyle, inactiveStyle, keyStyle := tabStyles()
	if active {
		return activeStyle.Render(tab.Name)
	}
	first, rest := tab.Name[:1], tab.Name[1:]
	return inactiveStyle.Render(keyStyle.Render(first) + rest)
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	sep := lipgloss.NewStyle().Foreground(theme.Active.Border).Render(tabSeparator)
	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, sep))
}

// TabVisualWidth returns the rendered width of a tab.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
