package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/osacorpus/internal/config"
	"github.com/theirongolddev/osacorpus/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	in := cfg.Inputs().Clamp()

	vals := tui.SetupValuesFrom(in, cfg.Appearance.Theme)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	themeName, err := vals.Apply(&in)
	if err != nil {
		return err
	}

	path := configPath()
	if err := config.SaveFile(path, config.FromInputs(in, themeName)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `osacorpus setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
