package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteComparison.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ExportDoc is the machine-readable form of a comparison.
type ExportDoc struct {
	Scenario     string         `json:"scenario" yaml:"scenario"`
	HorizonYears int            `json:"horizon_years" yaml:"horizon_years"`
	Insight      string         `json:"insight" yaml:"insight"`
	Crossover    int            `json:"crossover_year" yaml:"crossover_year"`
	Series       []ExportSeries `json:"series" yaml:"series"`
}

// ExportSeries carries one trajectory with its metadata.
type ExportSeries struct {
	Model             string                `json:"model" yaml:"model"`
	Label             string                `json:"label" yaml:"label"`
	Fee               float64               `json:"fee" yaml:"fee"`
	RenewalCycleYears *int                  `json:"renewal_cycle_years,omitempty" yaml:"renewal_cycle_years,omitempty"`
	Corpus            []float64             `json:"corpus" yaml:"corpus"`
	Breakdown         []model.YearBreakdown `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
}

// NewExportDoc converts a comparison; breakdown rows are included with detail.
func NewExportDoc(c *projection.Comparison, detail bool) ExportDoc {
	doc := ExportDoc{
		Scenario:     string(c.Inputs.Scenario),
		HorizonYears: c.Years() - 1,
		Insight:      c.Insight(),
		Crossover:    c.Crossover(),
	}
	for _, s := range []model.Series{c.Lifetime, c.Renewable} {
		es := ExportSeries{
			Model:             s.Model.String(),
			Label:             s.Label(),
			Fee:               s.Fee,
			RenewalCycleYears: s.RenewalCycleYears,
			Corpus:            []float64(s.Trajectory),
		}
		if detail {
			es.Breakdown = s.Breakdown
		}
		doc.Series = append(doc.Series, es)
	}
	return doc
}

// WriteComparison writes the year table in the named format.
func WriteComparison(w io.Writer, c *projection.Comparison, format string, detail bool) error {
	switch format {
	case FormatTable, "":
		_, err := io.WriteString(w, RenderTable(YearTable(c, detail)))
		return err
	case FormatCSV:
		return WriteCSV(w, c, detail)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewExportDoc(c, detail))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewExportDoc(c, detail)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, csv, json or yaml)", format)
	}
}

// WriteCSV writes one row per year with unformatted amounts.
func WriteCSV(w io.Writer, c *projection.Comparison, detail bool) error {
	cw := csv.NewWriter(w)

	header := []string{"year", "lifetime_corpus", "renewable_corpus"}
	if detail {
		header = append(header,
			"lifetime_members", "renewable_members",
			"lifetime_fees", "renewable_fees",
			"renewal_year",
		)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for y := 0; y < c.Years(); y++ {
		lb, rb := c.Lifetime.Breakdown[y], c.Renewable.Breakdown[y]
		rec := []string{strconv.Itoa(y), formatAmount(lb.Corpus), formatAmount(rb.Corpus)}
		if detail {
			rec = append(rec,
				strconv.Itoa(lb.MembersTotal), strconv.Itoa(rb.MembersTotal),
				formatAmount(lb.FeeIncome()), formatAmount(rb.FeeIncome()),
				strconv.FormatBool(rb.Renewal),
			)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row %d: %w", y, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
