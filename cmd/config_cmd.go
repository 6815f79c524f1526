package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/osacorpus/internal/cli"
	"github.com/theirongolddev/osacorpus/internal/config"

	"github.com/spf13/cobra"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default inputs",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := configPath()
	fmt.Printf("  Config file: %s\n", path)
	if fileExists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Scenario:          %s\n", cfg.General.Scenario)
	fmt.Printf("    Horizon:           %d years\n", cfg.General.HorizonYears)
	fmt.Println()

	fmt.Println("  [Alumni]")
	fmt.Printf("    Pool:              %s\n", cli.FormatNumber(int64(cfg.Alumni.Pool)))
	fmt.Printf("    Graduates / year:  %s\n", cli.FormatNumber(int64(cfg.Alumni.GraduatesPerYear)))
	fmt.Println()

	fmt.Println("  [Fees]")
	fmt.Printf("    Fresh:             %s\n", cli.FormatRupees(cfg.Fees.Fresh))
	fmt.Printf("    Lifetime:          %s\n", cli.FormatRupees(cfg.Fees.Lifetime))
	fmt.Printf("    Renewable:         %s every %d years\n", cli.FormatRupees(cfg.Fees.Renewable), cfg.Fees.RenewalCycleYears)
	fmt.Println()

	fmt.Println("  [Costs]")
	fmt.Printf("    Portal:            %s\n", cli.FormatRupees(cfg.Costs.Portal))
	fmt.Printf("    Audit:             %s\n", cli.FormatRupees(cfg.Costs.Audit))
	fmt.Printf("    Meeting:           %s\n", cli.FormatRupees(cfg.Costs.Meeting))
	fmt.Println()

	fmt.Println("  [Finance]")
	fmt.Printf("    Interest:          %s\n", cli.FormatPercent(cfg.Finance.InterestPercent))
	fmt.Printf("    Donations / year:  %s\n", cli.FormatRupees(cfg.Finance.Donations))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `osacorpus setup` to reconfigure.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := configPath()
	if fileExists(path) && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveFile(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  Wrote %s\n", path)
	return nil
}
