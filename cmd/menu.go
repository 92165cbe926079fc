package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/ledger"
	"github.com/theirongolddev/finledger/internal/model"
)

// Menu actions, also the names of the matching subcommands.
const (
	actionIncome  = "add-income"
	actionExpense = "add-expense"
	actionGoal    = "set-goal"
	actionSummary = "show-summary"
	actionChart   = "show-chart"
	actionRows    = "show-raw-rows"
	actionExit    = "exit"
)

var menuOptions = []huh.Option[string]{
	huh.NewOption("Add Income", actionIncome),
	huh.NewOption("Add Expense", actionExpense),
	huh.NewOption("Set Savings Goal", actionGoal),
	huh.NewOption("Display Financial Summary", actionSummary),
	huh.NewOption("Visualize Expenses", actionChart),
	huh.NewOption("Print Database Contents", actionRows),
	huh.NewOption("Exit", actionExit),
}

const msgInvalidNumber = "Invalid input. Please enter a numeric value."

// prompter asks the user for a menu choice or a line of input.
// Implementations return huh.ErrUserAborted when the user cancels.
type prompter interface {
	Choose(title string, options []huh.Option[string]) (string, error)
	Input(title string) (string, error)
}

type huhPrompter struct {
	theme *huh.Theme
}

func (p huhPrompter) Choose(title string, options []huh.Option[string]) (string, error) {
	var choice string
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&choice),
	)).WithTheme(p.theme).Run()
	return choice, err
}

func (p huhPrompter) Input(title string) (string, error) {
	var value string
	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Value(&value),
	)).WithTheme(p.theme).Run()
	return value, err
}

// menu drives the interactive loop over a single open ledger.
type menu struct {
	ledger   *ledger.Ledger
	prompt   prompter
	out      io.Writer
	currency string
	chart    func(model.Summary) error
}

func runMenu(cmd *cobra.Command, _ []string) error {
	return withLedger(func(l *ledger.Ledger) error {
		m := menu{
			ledger:   l,
			prompt:   huhPrompter{theme: huh.ThemeCharm()},
			out:      cmd.OutOrStdout(),
			currency: cfg.General.Currency,
			chart:    showChart,
		}
		return m.run()
	})
}

// run shows the menu until the user exits. Bad input abandons the current
// action; storage failures end the loop.
func (m menu) run() error {
	for {
		choice, err := m.prompt.Choose("Personal Finance Assistant", menuOptions)
		if errors.Is(err, huh.ErrUserAborted) {
			choice = actionExit
		} else if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		if choice == actionExit {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}
		if err := m.dispatch(choice); err != nil {
			return err
		}
	}
}

func (m menu) dispatch(choice string) error {
	switch choice {
	case actionIncome:
		amount, ok, err := m.amount("Enter the income amount")
		if !ok || err != nil {
			return err
		}
		if err := m.ledger.AddIncome(amount); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "Income added successfully.")

	case actionExpense:
		category, ok, err := m.input("Enter expense category")
		if !ok || err != nil {
			return err
		}
		description, ok, err := m.input("Enter expense description")
		if !ok || err != nil {
			return err
		}
		amount, ok, err := m.amount("Enter the expense amount")
		if !ok || err != nil {
			return err
		}
		err = m.ledger.AddExpense(category, description, amount)
		if errors.Is(err, ledger.ErrInvalidField) {
			fmt.Fprintf(m.out, "Invalid input. %v\n", err)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, "Expense added successfully.")

	case actionGoal:
		goal, ok, err := m.amount("Enter your savings goal")
		if !ok || err != nil {
			return err
		}
		if err := m.ledger.SetSavingsGoal(goal); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "Savings goal set successfully.")

	case actionSummary:
		fmt.Fprint(m.out, renderSummary(m.ledger.Summary(), m.currency))

	case actionChart:
		if err := m.chart(m.ledger.Summary()); err != nil {
			return err
		}

	case actionRows:
		rows, err := m.ledger.DatabaseRows()
		if err != nil {
			return err
		}
		count, err := m.ledger.RowCount()
		if err != nil {
			return err
		}
		return printRows(m.out, rows, count, false)

	default:
		fmt.Fprintln(m.out, "Invalid choice. Please choose a valid option.")
	}
	return nil
}

// input returns ok=false when the user cancels the prompt.
func (m menu) input(title string) (string, bool, error) {
	v, err := m.prompt.Input(title)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return v, true, nil
}

// amount reads a number, reporting unparsable input and returning ok=false.
func (m menu) amount(title string) (d decimal.Decimal, ok bool, err error) {
	raw, ok, err := m.input(title)
	if !ok || err != nil {
		return d, false, err
	}
	d, err = parseAmount(raw)
	if err != nil {
		fmt.Fprintln(m.out, msgInvalidNumber)
		return d, false, nil
	}
	return d, true, nil
}
