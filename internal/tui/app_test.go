package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/finledger/internal/model"
	"github.com/theirongolddev/finledger/internal/tui/components"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSummary() model.Summary {
	return model.Summary{
		Income:          d("1000"),
		OriginalSavings: d("2000"),
		Savings:         d("1500"),
		SavingsGoal:     d("6000"),
		Deficit:         d("500"),
		Items: []model.Expense{
			{Category: "Rent", Description: "April", Amount: d("1200")},
			{Category: "Food", Description: "Groceries", Amount: d("300")},
		},
		TotalExpenses: d("1500"),
	}
}

func sized(a App, w, h int) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(App)
}

func press(a App, msg tea.KeyMsg) (App, tea.Cmd) {
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	a := sized(NewApp(testSummary(), "USD", ""), 100, 40)
	if a.ActiveTab() != tabExpenses {
		t.Fatalf("initial tab = %d, want expenses", a.ActiveTab())
	}

	a, _ = press(a, tea.KeyMsg{Type: tea.KeyTab})
	if a.ActiveTab() != tabOverview {
		t.Errorf("after tab: %d, want overview", a.ActiveTab())
	}
	a, _ = press(a, tea.KeyMsg{Type: tea.KeyRight})
	if a.ActiveTab() != tabExpenses {
		t.Errorf("right should wrap to expenses, got %d", a.ActiveTab())
	}
	a, _ = press(a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.ActiveTab() != tabOverview {
		t.Errorf("left should wrap to overview, got %d", a.ActiveTab())
	}
	a, _ = press(a, runes("e"))
	if a.ActiveTab() != tabExpenses {
		t.Errorf("'e' should select expenses, got %d", a.ActiveTab())
	}
}

func TestQuitKeys(t *testing.T) {
	a := sized(NewApp(testSummary(), "USD", ""), 100, 40)
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := press(a, msg)
		if cmd == nil {
			t.Fatalf("%q returned no command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q did not quit", msg.String())
		}
	}
}

func TestViewExpensesTab(t *testing.T) {
	a := sized(NewApp(testSummary(), "USD", "finance_data.txt"), 100, 30)
	view := a.View()

	for _, want := range []string{"Expense Breakdown", "Rent: April", "$1,200.00", "Food: Groceries", "finance_data.txt"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := lipgloss.Height(view); got != 30 {
		t.Errorf("view height = %d, want 30", got)
	}
}

func TestViewOverviewTab(t *testing.T) {
	a := sized(NewApp(testSummary(), "USD", ""), 100, 40)
	a, _ = press(a, runes("o"))
	view := a.View()

	for _, want := range []string{"Financial Overview", "Savings", "75.0%", "Deficit", "25.0%", "Savings goal", "$6,000.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Remaining Income") {
		t.Error("zero remaining income should not be charted")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := sized(NewApp(testSummary(), "USD", ""), 40, 10)
	if !strings.Contains(a.View(), "too narrow") {
		t.Errorf("narrow view = %q", a.View())
	}
}

func TestViewBeforeSize(t *testing.T) {
	if v := NewApp(testSummary(), "USD", "").View(); v != "" {
		t.Errorf("View before WindowSizeMsg = %q, want empty", v)
	}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Errorf("x past last tab = %d, want -1", got)
		}
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := sized(NewApp(testSummary(), "USD", ""), 100, 40)
	x := components.TabVisualWidth(components.Tabs[0], true) + 2
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.(App).ActiveTab(); got != tabOverview {
		t.Errorf("click at x=%d selected %d, want overview", x, got)
	}
}

func TestRenderStatic_Empty(t *testing.T) {
	out := RenderStatic(model.Summary{}, "USD", 80)
	for _, want := range []string{"No expenses recorded.", "Nothing to show."} {
		if !strings.Contains(out, want) {
			t.Errorf("static output missing %q:\n%s", want, out)
		}
	}
}
