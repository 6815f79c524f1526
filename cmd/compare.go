package cmd

import (
	"fmt"

	"github.com/theirongolddev/osacorpus/internal/cli"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the lifetime and renewable fee models (default)",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	c, err := project(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("OSA CORPUS  %s  %d years", c.Inputs.Scenario, c.Inputs.HorizonYears)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ParamsTable(c.Inputs)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.SummaryTable(c)))
	fmt.Println()
	fmt.Print(cli.FinalBars(c, 40))
	fmt.Println()

	notes := c.Notes()
	if y := c.Crossover(); y >= 0 {
		notes = append(notes, fmt.Sprintf("Renewable corpus moves ahead in year %d.", y))
	}
	fmt.Print(cli.RenderNotes(notes))
	fmt.Println()

	return nil
}
