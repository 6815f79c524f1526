// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/theirongolddev/osacorpus/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatRupees formats an amount rounded to whole rupees.
// e.g., 5448000.4 -> "₹5,448,000", -120 -> "-₹120"
func FormatRupees(v float64) string {
	r := int64(math.Round(v))
	if r < 0 {
		return "-₹" + humanize.Comma(-r)
	}
	return "₹" + humanize.Comma(r)
}

// FormatLakhs formats an amount in lakhs with the "L" suffix.
// Whole lakhs drop the decimal: 2700000 -> "27 L", 5448000 -> "54.5 L".
func FormatLakhs(v float64) string {
	l := v / model.LakhDivisor
	if math.Abs(l-math.Round(l)) < 0.05 {
		return fmt.Sprintf("%.0f L", math.Round(l))
	}
	return fmt.Sprintf("%.1f L", l)
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	if pct == math.Trunc(pct) {
		return fmt.Sprintf("%.0f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats the difference between two amounts with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatRupees(delta)
	}
	return "-" + FormatRupees(-delta)
}

// FormatCycle renders a renewal cycle, e.g. "every 10 years" or "never".
func FormatCycle(cycle *int) string {
	if cycle == nil {
		return "never"
	}
	if *cycle == 1 {
		return "every year"
	}
	return fmt.Sprintf("every %d years", *cycle)
}
