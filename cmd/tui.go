package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/mealtab/internal/config"
	"github.com/theirongolddev/mealtab/internal/tui"
	"github.com/theirongolddev/mealtab/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Load config for theme
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	username := flagUser
	if username == "" {
		username = cfg.General.DefaultUser
	}

	var clock func() time.Time
	if flagDate != "" {
		asOf, err := time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDate)
		}
		clock = func() time.Time { return asOf }
	}

	app := tui.NewApp(tui.Options{
		Username: username,
		DBPath:   dbPath(cfg),
		Catalog:  loadCatalog(cfg),
		Clock:    clock,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
