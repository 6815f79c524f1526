package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"

	"gopkg.in/yaml.v3"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{5_448_000, "₹5,448,000"},
		{11_109_931.32, "₹11,109,931"},
		{-150_000, "-₹150,000"},
	}
	for _, tt := range tests {
		if got := FormatRupees(tt.in); got != tt.want {
			t.Errorf("FormatRupees(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatLakhs(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2_700_000, "27 L"},
		{5_448_000, "54.5 L"},
		{100_000, "1 L"},
		{16_123_707.88, "161.2 L"},
	}
	for _, tt := range tests {
		if got := FormatLakhs(tt.in); got != tt.want {
			t.Errorf("FormatLakhs(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMisc(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q", got)
	}
	if got := FormatPercent(35); got != "35%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatDelta(100, 250); got != "-₹150" {
		t.Errorf("FormatDelta = %q", got)
	}
	if got := FormatCycle(nil); got != "never" {
		t.Errorf("FormatCycle(nil) = %q", got)
	}
	if got := FormatCycle(model.Cycle(10)); got != "every 10 years" {
		t.Errorf("FormatCycle(10) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{0, 50, 100})
	if got != "▁▄█" {
		t.Fatalf("RenderSparkline = %q, want ▁▄█", got)
	}
	if RenderSparkline(nil) != "" {
		t.Fatal("empty sparkline should be empty")
	}
}

func TestRenderTableShape(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Year", "Corpus"},
		Rows:    [][]string{{"0", "₹2,700,000"}, {"---"}, {"1", "₹5,448,000"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, header, header rule, row, separator, row, bottom
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "₹5,448,000") {
		t.Fatalf("table missing a cell:\n%s", out)
	}
}

func comparison(t *testing.T, years int) *projection.Comparison {
	t.Helper()
	in := model.DefaultInputs()
	in.HorizonYears = years
	c, err := projection.Compare(context.Background(), in)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	return c
}

func TestWriteCSV(t *testing.T) {
	c := comparison(t, 10)

	var buf bytes.Buffer
	if err := WriteComparison(&buf, c, FormatCSV, true); err != nil {
		t.Fatalf("WriteComparison: %v", err)
	}

	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(recs) != 12 {
		t.Fatalf("csv rows = %d, want 12 (header + 11 years)", len(recs))
	}
	if recs[1][1] != "2700000.00" || recs[1][2] != "1890000.00" {
		t.Fatalf("year 0 row = %v", recs[1])
	}
	if recs[11][7] != "true" {
		t.Fatalf("year 10 should be a renewal year: %v", recs[11])
	}
}

func TestWriteJSONAndYAML(t *testing.T) {
	c := comparison(t, 5)

	var jbuf bytes.Buffer
	if err := WriteComparison(&jbuf, c, FormatJSON, false); err != nil {
		t.Fatalf("json: %v", err)
	}
	var doc ExportDoc
	if err := json.Unmarshal(jbuf.Bytes(), &doc); err != nil {
		t.Fatalf("decoding json: %v", err)
	}
	if len(doc.Series) != 2 || len(doc.Series[0].Corpus) != 6 {
		t.Fatalf("json doc = %+v", doc)
	}
	if doc.Series[0].RenewalCycleYears != nil {
		t.Fatal("lifetime series should omit the renewal cycle")
	}
	if doc.Series[1].Breakdown != nil {
		t.Fatal("breakdown should be omitted without detail")
	}

	var ybuf bytes.Buffer
	if err := WriteComparison(&ybuf, c, FormatYAML, true); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var ydoc ExportDoc
	if err := yaml.Unmarshal(ybuf.Bytes(), &ydoc); err != nil {
		t.Fatalf("decoding yaml: %v", err)
	}
	if ydoc.Scenario != "Moderate" || ydoc.HorizonYears != 5 {
		t.Fatalf("yaml doc header = %+v", ydoc)
	}
	if len(ydoc.Series[1].Breakdown) != 6 {
		t.Fatalf("yaml breakdown rows = %d, want 6", len(ydoc.Series[1].Breakdown))
	}
}

func TestWriteComparisonUnknownFormat(t *testing.T) {
	c := comparison(t, 5)
	if err := WriteComparison(&bytes.Buffer{}, c, "xml", false); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestYearTableMarksRenewals(t *testing.T) {
	c := comparison(t, 20)
	tbl := YearTable(c, false)
	if len(tbl.Rows) != 21 {
		t.Fatalf("rows = %d, want 21", len(tbl.Rows))
	}
	if tbl.Rows[10][0] != "10 *" || tbl.Rows[20][0] != "20 *" {
		t.Fatalf("renewal years not marked: %q %q", tbl.Rows[10][0], tbl.Rows[20][0])
	}
	if tbl.Headers[1] != "₹2500 Lifetime" {
		t.Fatalf("header = %q", tbl.Headers[1])
	}
}

func TestFinalBars(t *testing.T) {
	c := comparison(t, 20)
	out := FinalBars(c, 30)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "₹2500") || !strings.Contains(lines[1], "₹1000") {
		t.Fatalf("bars not labelled:\n%s", out)
	}
	// renewable finishes ahead over 20 years
	if !strings.Contains(lines[2], "+₹") {
		t.Fatalf("gap line = %q, want a positive delta", lines[2])
	}
}
