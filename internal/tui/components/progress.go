package components

import (
	"fmt"

	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a labelled bar showing value as a fraction of ref, with
// the amount text printed after it. Values at or below zero render empty.
func ShareBar(label, amount string, value, ref float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	pct := 0.0
	if ref > 0 {
		pct = value / ref
	}
	pct = min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render("  ") +
		amountStyle.Render(amount)
}
