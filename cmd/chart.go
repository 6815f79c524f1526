package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/osacorpus/internal/cli"
	"github.com/theirongolddev/osacorpus/internal/tui/components"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagChartWidth  int
	flagChartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Bar chart of both corpora in lakhs",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 72, "Chart width in columns")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", 12, "Chart height in rows")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	c, err := project(cmd)
	if err != nil {
		return err
	}

	cfg, _ := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)
	t := theme.Active

	series := []components.ChartSeries{
		{Name: c.Lifetime.Label(), Values: c.Lifetime.Trajectory.Lakhs(), Color: t.Lifetime},
		{Name: c.Renewable.Label(), Values: c.Renewable.Trajectory.Lakhs(), Color: t.Renewable},
	}
	labels := make([]string, c.Years())
	for y := range labels {
		labels[y] = strconv.Itoa(y)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("Corpus Growth Over Time (lakhs)"))
	fmt.Println()
	fmt.Println(components.CorpusChart(series, labels, flagChartWidth, flagChartHeight))
	fmt.Println()
	fmt.Println("  " + components.ChartLegend(series))
	fmt.Println()
	fmt.Print(cli.RenderNotes(c.Notes()))
	fmt.Println()
	return nil
}
