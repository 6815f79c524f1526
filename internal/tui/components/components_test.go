package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToWidth(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 4}, {7, 7}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4", 22)

	tallLines := len(strings.Split(tallCard, "\n"))
	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Fatalf("joined height = %d, want %d", got, tallLines)
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Lifetime", Value: "111.1 L"},
		{Label: "Renewable", Value: "161.2 L", Detail: "peak", Accent: theme.Active.Green},
	}, 60)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Fatalf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestCorpusChartShape(t *testing.T) {
	series := []ChartSeries{
		{Name: "₹2500 Lifetime", Values: []float64{27, 54.5, 56.3, 58.3}, Color: theme.Active.Blue},
		{Name: "₹1000 (Every 2 Years)", Values: []float64{18.9, 37.9, 58, 60}, Color: theme.Active.Green},
	}
	labels := []string{"0", "1", "2", "3"}

	out := CorpusChart(series, labels, 60, 8)
	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Fatalf("chart too short:\n%s", out)
	}
	if !strings.Contains(out, " L") {
		t.Fatalf("y axis should be labelled in lakhs:\n%s", out)
	}
	last := lines[len(lines)-1]
	for _, l := range labels {
		if !strings.Contains(last, l) {
			t.Fatalf("x labels missing %q: %q", l, last)
		}
	}
}

func TestCorpusChartSamplesWhenNarrow(t *testing.T) {
	vals := make([]float64, 31)
	labels := make([]string, 31)
	for i := range vals {
		vals[i] = float64(i)
		labels[i] = ""
	}
	series := []ChartSeries{
		{Values: vals, Color: theme.Active.Blue},
		{Values: vals, Color: theme.Active.Green},
	}
	out := CorpusChart(series, labels, 40, 6)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Fatalf("line %d width %d exceeds 40", i, w)
		}
	}
}

func TestSampleIndicesKeepsEnds(t *testing.T) {
	idx := sampleIndices(21, 5)
	if len(idx) != 5 || idx[0] != 0 || idx[4] != 20 {
		t.Fatalf("sampleIndices = %v", idx)
	}
	if got := sampleIndices(3, 10); len(got) != 3 {
		t.Fatalf("sampleIndices(3, 10) = %v", got)
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := map[float64]string{
		20:  "20 L",
		2.5: "2.5 L",
		0.5: "0.50 L",
	}
	for in, want := range tests {
		if got := formatChartLabel(in); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if TabIdxByKey('t') != 1 || TabIdxByKey('z') != -1 {
		t.Fatal("TabIdxByKey mismatch")
	}
}
