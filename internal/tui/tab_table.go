package tui

import (
	"fmt"

	"github.com/theirongolddev/osacorpus/internal/cli"
	"github.com/theirongolddev/osacorpus/internal/tui/components"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// tableChrome is the number of lines the card and table frame take around
// the data rows.
const tableChrome = 8

// updateTableKeys handles scrolling keys on the table tab. It reports
// whether the key was consumed.
func (a *App) updateTableKeys(key string) bool {
	halfPage := max((a.height-scrollOverhead)/2, minHalfPageScroll)
	switch key {
	case "j", "down":
		a.scrollTable(1)
	case "k", "up":
		a.scrollTable(-1)
	case "ctrl+d":
		a.scrollTable(halfPage)
	case "ctrl+u":
		a.scrollTable(-halfPage)
	case "g":
		a.tableOffset = 0
	case "G":
		a.scrollTable(a.tableRows())
	case "d":
		a.tableDetail = !a.tableDetail
	default:
		return false
	}
	return true
}

func (a App) tableRows() int {
	if a.cmp == nil {
		return 0
	}
	return a.cmp.Years()
}

func (a *App) scrollTable(delta int) {
	a.tableOffset = min(max(a.tableOffset+delta, 0), max(a.tableRows()-1, 0))
}

func (a App) renderTableTab(cw, contentH int) string {
	t := theme.Active

	full := cli.YearTable(a.cmp, a.tableDetail)
	widths := columnWidths(full)

	visible := max(contentH-tableChrome, 1)
	offset := min(a.tableOffset, max(len(full.Rows)-visible, 0))
	end := min(offset+visible, len(full.Rows))

	window := cli.Table{
		Headers: full.Headers,
		Rows:    full.Rows[offset:end],
		Widths:  widths,
	}

	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	footer := dim.Render(fmt.Sprintf("years %d-%d of %d  ·  * renewal year", offset, end-1, len(full.Rows)-1))

	return components.ContentCard(full.Title, cli.RenderTable(window)+footer, cw)
}

// columnWidths sizes columns over every row so scrolling keeps them stable.
func columnWidths(tbl cli.Table) []int {
	widths := make([]int, len(tbl.Headers))
	for i, h := range tbl.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range tbl.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}
