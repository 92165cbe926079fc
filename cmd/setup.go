package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/finledger/internal/config"
	"github.com/theirongolddev/finledger/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose currency, theme and data location",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Start from the file and environment so flag overrides are not persisted.
	c, err := config.Load()
	if err != nil {
		return err
	}
	width := strconv.Itoa(c.Appearance.ChartWidth)

	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Currency").
				Description("ISO 4217 code used to display amounts").
				Value(&c.General.Currency).
				Validate(validateCurrency),
			huh.NewInput().
				Title("Data directory").
				Description("Leave blank for " + config.DefaultDataDir()).
				Value(&c.General.DataDir),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&c.Appearance.Theme),
			huh.NewInput().
				Title("Chart width").
				Value(&width).
				Validate(validateWidth),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	c.General.Currency = strings.ToUpper(strings.TrimSpace(c.General.Currency))
	c.General.DataDir = strings.TrimSpace(c.General.DataDir)
	c.Appearance.ChartWidth, _ = strconv.Atoi(strings.TrimSpace(width))
	if err := c.Validate(); err != nil {
		return err
	}
	if err := config.Save(c); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	say(cmd, "Saved to %s", config.ConfigPath())
	return nil
}

func validateCurrency(s string) error {
	if money.GetCurrency(strings.ToUpper(strings.TrimSpace(s))) == nil {
		return fmt.Errorf("unknown currency %q", s)
	}
	return nil
}

func validateWidth(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 10 {
		return fmt.Errorf("enter a whole number of at least 10")
	}
	return nil
}
