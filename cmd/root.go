// Package cmd implements the osacorpus CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/theirongolddev/osacorpus/internal/config"
	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagScenario string
	flagInputs   model.Inputs
)

var rootCmd = &cobra.Command{
	Use:   "osacorpus",
	Short: "Alumni association corpus projection",
	Long: "Project the growth of the alumni association corpus under a one-time\n" +
		"lifetime fee and a periodically renewed fee, side by side.",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(flagVerbose)
		// Flags parsed fine; anything from here on is not a usage problem.
		cmd.SilenceUsage = true
	},
	RunE:          runCompare,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if errors.Is(err, projection.ErrInvalidParameter) {
			fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	def := model.DefaultInputs()
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")

	pf.IntVar(&flagInputs.AlumniPool, "alumni", def.AlumniPool, "Existing alumni who could join")
	pf.IntVar(&flagInputs.GraduatesPerYear, "graduates", def.GraduatesPerYear, "Fresh graduates per year")
	pf.Float64Var(&flagInputs.FreshFee, "fresh-fee", def.FreshFee, "One-time fee for fresh graduates (₹)")
	pf.Float64Var(&flagInputs.LifetimeFee, "lifetime-fee", def.LifetimeFee, "Lifetime membership fee (₹)")
	pf.Float64Var(&flagInputs.RenewableFee, "renewable-fee", def.RenewableFee, "Renewable membership fee (₹)")
	pf.IntVar(&flagInputs.RenewalCycleYears, "renewal-cycle", def.RenewalCycleYears, "Years between renewals")
	pf.StringVarP(&flagScenario, "scenario", "s", string(def.Scenario), "Signup scenario: Conservative, Moderate or Optimistic")
	pf.Float64Var(&flagInputs.PortalCost, "portal-cost", def.PortalCost, "Portal cost per year (₹)")
	pf.Float64Var(&flagInputs.AuditCost, "audit-cost", def.AuditCost, "Audit cost per year (₹)")
	pf.Float64Var(&flagInputs.MeetingCost, "meeting-cost", def.MeetingCost, "Meeting cost per year (₹)")
	pf.Float64Var(&flagInputs.InterestPercent, "interest", def.InterestPercent, "Annual interest on the corpus (%)")
	pf.Float64Var(&flagInputs.Donations, "donations", def.Donations, "Donations per year (₹)")
	pf.IntVarP(&flagInputs.HorizonYears, "years", "y", def.HorizonYears, "Projection horizon in years")
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// configPath is the --config flag, falling back to the default location.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// loadConfig reads the config file. A missing file yields defaults.
func loadConfig() (config.Config, error) {
	path := configPath()
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	slog.Debug("config loaded", "path", path, "exists", fileExists(path))
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergedInputs layers the flags the user set over the config file.
func mergedInputs(cmd *cobra.Command) (model.Inputs, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return model.Inputs{}, cfg, err
	}
	in := cfg.Inputs()

	flags := cmd.Flags()
	set := flagInputs.Fields()
	for _, b := range model.InputBounds {
		if flags.Changed(b.Field) {
			in.Set(b.Field, set[b.Field])
		}
	}
	if flags.Changed("scenario") {
		in.Scenario = model.Scenario(flagScenario)
		if s, err := model.ParseScenario(flagScenario); err == nil {
			in.Scenario = s
		}
	}

	slog.Debug("inputs resolved", "scenario", in.Scenario, "years", in.HorizonYears,
		"alumni", in.AlumniPool, "renewal_cycle", in.RenewalCycleYears)
	return in, cfg, nil
}

// resolveInputs is mergedInputs followed by the input range check.
func resolveInputs(cmd *cobra.Command) (model.Inputs, error) {
	in, _, err := mergedInputs(cmd)
	if err != nil {
		return in, err
	}
	if err := projection.CheckInputs(in); err != nil {
		return in, err
	}
	return in, nil
}

// project resolves the inputs and runs both fee models.
func project(cmd *cobra.Command) (*projection.Comparison, error) {
	in, err := resolveInputs(cmd)
	if err != nil {
		return nil, err
	}
	c, err := projection.Compare(cmd.Context(), in)
	if err != nil {
		return nil, err
	}
	slog.Debug("projection done", "years", c.Years(),
		"lifetime_final", c.Lifetime.Trajectory.Final(),
		"renewable_final", c.Renewable.Trajectory.Final())
	return c, nil
}
