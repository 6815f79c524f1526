package components

import (
	"strings"

	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and the active scenario on the right.
func RenderStatusBar(width int, hints, scenario string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " " + hints
	right := ""
	if scenario != "" {
		right = "Scenario: " + scenario + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
