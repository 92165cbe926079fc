// Package tui provides the interactive Bubble Tea chart viewer for finledger.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/finledger/internal/model"
	"github.com/theirongolddev/finledger/internal/tui/components"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

const (
	tabExpenses = iota
	tabOverview
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

// App is the root Bubble Tea model. It only reads the summary it was built
// with.
type App struct {
	summary  model.Summary
	currency string
	info     string // right side of the status bar

	width     int
	height    int
	activeTab int
}

// NewApp creates a chart viewer over a ledger summary.
func NewApp(s model.Summary, currency, info string) App {
	return App{summary: s, currency: currency, info: info}
}

// Run shows the chart viewer full screen until the user quits.
func Run(s model.Summary, currency, info string) error {
	p := tea.NewProgram(NewApp(s, currency, info), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chart viewer: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		default:
			if len(msg.Runes) == 1 {
				if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}
	return a, nil
}

// ActiveTab returns the index of the visible tab.
func (a App) ActiveTab() int {
	return a.activeTab
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  The chart needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(msg, max(a.height, 5))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.info)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabExpenses:
		content = a.renderExpensesTab(cw)
	case tabOverview:
		content = a.renderOverviewTab(cw)
	}
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// RenderStatic renders both tabs one after the other for non-interactive
// output.
func RenderStatic(s model.Summary, currency string, width int) string {
	a := NewApp(s, currency, "")
	a.width = width
	cw := a.contentWidth()
	return a.renderExpensesTab(cw) + "\n" + a.renderOverviewTab(cw) + "\n"
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
