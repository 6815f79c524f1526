package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/osacorpus/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagDetail bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Year-by-year corpus of both fee models",
	Example: "  osacorpus table --years 10\n" +
		"  osacorpus table --format csv --detail > corpus.csv",
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVarP(&flagFormat, "format", "f", cli.FormatTable, "Output format: table, csv, json or yaml")
	tableCmd.Flags().BoolVar(&flagDetail, "detail", false, "Include membership and fee columns")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	c, err := project(cmd)
	if err != nil {
		return err
	}

	if flagFormat == cli.FormatTable || flagFormat == "" {
		fmt.Println()
		if err := cli.WriteComparison(os.Stdout, c, cli.FormatTable, flagDetail); err != nil {
			return err
		}
		fmt.Println(cli.RenderNotes([]string{"* renewal year"}))
		return nil
	}

	return cli.WriteComparison(os.Stdout, c, flagFormat, flagDetail)
}
