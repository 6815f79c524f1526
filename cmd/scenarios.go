package cmd

import (
	"fmt"

	"github.com/theirongolddev/osacorpus/internal/cli"
	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Signup presets and how each plays out with the current inputs",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(model.Scenarios))
	for _, s := range model.Scenarios {
		run := in
		run.Scenario = s
		c, err := projection.Compare(cmd.Context(), run)
		if err != nil {
			return fmt.Errorf("%s scenario: %w", s, err)
		}

		r := s.Rates()
		name := string(s)
		if s == in.Scenario {
			name += " *"
		}
		lead := "renewable"
		if c.Leader() == model.Lifetime {
			lead = "lifetime"
		}
		rows = append(rows, []string{
			name,
			cli.FormatPercent(r.Fresh),
			cli.FormatPercent(r.OldLifetime),
			cli.FormatPercent(r.OldRenewable),
			cli.FormatLakhs(c.Lifetime.Trajectory.Final()),
			cli.FormatLakhs(c.Renewable.Trajectory.Final()),
			lead,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIOS  %d years", in.HorizonYears)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Fresh", "Old (L)", "Old (R)", "Final (L)", "Final (R)", "Higher peak"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Print(cli.RenderNotes([]string{"* selected scenario", "L = lifetime fee, R = renewable fee"}))
	fmt.Println()
	return nil
}
