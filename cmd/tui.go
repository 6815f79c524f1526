package cmd

import (
	"fmt"

	"github.com/theirongolddev/osacorpus/internal/tui"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Out-of-range inputs are clamped by the dashboard rather than rejected.
	in, cfg, err := mergedInputs(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	path := configPath()
	app := tui.NewApp(in, tui.Options{
		ConfigPath: path,
		Theme:      cfg.Appearance.Theme,
		NeedSetup:  !fileExists(path),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
