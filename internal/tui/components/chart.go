package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ChartSeries is one set of bars in a grouped chart.
type ChartSeries struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// CorpusChart renders side-by-side bars for each series at every x label.
// Values are expected in lakhs; the y axis is labelled with an "L" suffix.
// Negative values are drawn as empty bars.
func CorpusChart(series []ChartSeries, labels []string, width, height int) string {
	if len(series) == 0 || len(series[0].Values) == 0 {
		return ""
	}
	if width < 20 || height < 3 {
		return Sparkline(series[0].Values, series[0].Color)
	}

	t := theme.Active

	n := len(series[0].Values)
	for _, s := range series[1:] {
		n = min(n, len(s.Values))
	}

	maxVal := 0.0
	for _, s := range series {
		for _, v := range s.Values[:n] {
			maxVal = math.Max(maxVal, v)
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)

	rowsPerTick := max(height/numIntervals, 2)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(len(formatChartLabel(ceiling))+1, 5)
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := max(width-yLabelW-1, 5)

	// Each group holds one bar per series; groups are separated by a gap.
	groups := len(series)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	gap := 1
	barW := (chartW - (n - 1)) / (n * groups)
	if barW < 1 {
		maxN := max((chartW+1)/(groups+1), 2)
		indices = sampleIndices(n, maxN)
		barW = 1
	}
	barW = min(barW, 4)
	groupW := barW * groups
	shown := len(indices)
	axisLen := shown*groupW + max(0, shown-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for gi, idx := range indices {
			if gi > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			for _, s := range series {
				barStyle := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface)
				v := s.Values[idx]
				switch {
				case v >= rowTop:
					b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
				case v > rowBottom:
					frac := (v - rowBottom) / (rowTop - rowBottom)
					bi := min(max(int(frac*8), 1), 8)
					b.WriteString(barStyle.Render(strings.Repeat(string(blocks[bi]), barW)))
				default:
					b.WriteString(blank.Render(strings.Repeat(" ", barW)))
				}
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) >= n {
		buf := []byte(strings.Repeat(" ", axisLen))
		lastEnd := -1
		for gi, idx := range indices {
			lbl := labels[idx]
			pos := gi * (groupW + gap)
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end
		}
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// ChartLegend renders a colored key for each series.
func ChartLegend(series []ChartSeries) string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	parts := make([]string, 0, len(series))
	for _, s := range series {
		swatch := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("██")
		parts = append(parts, swatch+textStyle.Render(" "+s.Name))
	}
	return strings.Join(parts, textStyle.Render("   "))
}

// sampleIndices picks want evenly spaced indices from [0, n), always
// keeping the first and last.
func sampleIndices(n, want int) []int {
	if want >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, want)
	for i := range out {
		out[i] = i * (n - 1) / (want - 1)
	}
	return out
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel labels a tick given in lakhs.
func formatChartLabel(v float64) string {
	switch {
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f L", v)
	case v >= 1:
		return fmt.Sprintf("%.1f L", v)
	default:
		return fmt.Sprintf("%.2f L", v)
	}
}
