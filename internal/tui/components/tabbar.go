package components

import (
	"strings"

	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Table", Key: 't', KeyPos: 0},
	{Name: "Parameters", Key: 'p', KeyPos: 0},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Highlight the shortcut letter
		name := tab.Name
		if tab.KeyPos >= 0 && tab.KeyPos < len(name) {
			name = name[:tab.KeyPos] + keyStyle.Render(string(name[tab.KeyPos])) +
				lipgloss.NewStyle().Foreground(t.TextMuted).Render(name[tab.KeyPos+1:])
		}
		parts = append(parts, inactiveStyle.Render(name))
	}

	bar := strings.Join(parts, " ")
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// TabWidth is the rendered width of tab i, padding included.
func TabWidth(i int) int {
	if i < 0 || i >= len(Tabs) {
		return 0
	}
	return len(Tabs[i].Name) + 2
}
