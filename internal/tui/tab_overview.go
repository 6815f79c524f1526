package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/osacorpus/internal/cli"
	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"
	"github.com/theirongolddev/osacorpus/internal/tui/components"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab indices, matching components.Tabs.
const (
	tabOverview = iota
	tabTable
	tabParams
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	c := a.cmp
	life, renew := c.Lifetime, c.Renewable

	lead := "Renewable"
	leadColor := t.Renewable
	if c.Leader() == model.Lifetime {
		lead = "Lifetime"
		leadColor = t.Lifetime
	}

	crossover := "never"
	if y := c.Crossover(); y >= 0 {
		crossover = "year " + strconv.Itoa(y)
	}

	metrics := []components.Metric{
		{Label: life.Label(), Value: cli.FormatLakhs(life.Trajectory.Final()), Detail: "peak " + cli.FormatLakhs(life.Trajectory.Max()), Accent: t.Lifetime},
		{Label: renew.Label(), Value: cli.FormatLakhs(renew.Trajectory.Final()), Detail: "peak " + cli.FormatLakhs(renew.Trajectory.Max()), Accent: t.Renewable},
		{Label: "Higher peak", Value: lead, Detail: "renewable overtakes: " + crossover, Accent: leadColor},
	}
	if !a.isCompactLayout() {
		metrics = append(metrics, components.Metric{
			Label:  "Members at horizon",
			Value:  cli.FormatNumber(int64(renew.Breakdown[len(renew.Breakdown)-1].MembersTotal)),
			Detail: "lifetime " + cli.FormatNumber(int64(life.Breakdown[len(life.Breakdown)-1].MembersTotal)),
		})
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")
	b.WriteString(a.renderCorpusChart(c, cw))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(renderFinalCard(c, cw))
		b.WriteString("\n")
		b.WriteString(renderNotesCard(c, cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		renderFinalCard(c, widths[0]),
		renderNotesCard(c, widths[1]),
	}))
	return b.String()
}

func (a App) renderCorpusChart(c *projection.Comparison, cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	series := []components.ChartSeries{
		{Name: c.Lifetime.Label(), Values: c.Lifetime.Trajectory.Lakhs(), Color: t.Lifetime},
		{Name: c.Renewable.Label(), Values: c.Renewable.Trajectory.Lakhs(), Color: t.Renewable},
	}
	labels := make([]string, c.Years())
	for y := range labels {
		labels[y] = strconv.Itoa(y)
	}

	chartH := 10
	if a.height > 40 {
		chartH = 14
	}

	body := components.CorpusChart(series, labels, innerW, chartH) + "\n" +
		components.ChartLegend(series)
	return components.ContentCard("Corpus Growth Over Time (lakhs)", body, cw)
}

func renderFinalCard(c *projection.Comparison, cw int) string {
	t := theme.Active
	life, renew := c.Lifetime, c.Renewable

	ref := max(life.Trajectory.Final(), renew.Trajectory.Final())
	labelW := max(lipgloss.Width(life.ShortLabel()), lipgloss.Width(renew.ShortLabel()))
	barW := max(components.CardInnerWidth(cw)-labelW-16, 10)

	var body strings.Builder
	body.WriteString(components.ShareBar(life.ShortLabel(), cli.FormatLakhs(life.Trajectory.Final()),
		life.Trajectory.Final(), ref, t.Lifetime, labelW, barW))
	body.WriteString("\n")
	body.WriteString(components.ShareBar(renew.ShortLabel(), cli.FormatLakhs(renew.Trajectory.Final()),
		renew.Trajectory.Final(), ref, t.Renewable, labelW, barW))

	title := fmt.Sprintf("Corpus at Year %d", c.Years()-1)
	return components.ContentCard(title, body.String(), cw)
}

func renderNotesCard(c *projection.Comparison, cw int) string {
	t := theme.Active
	markerStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).
		Width(components.CardInnerWidth(cw) - 2)
	mutedStyle := textStyle.Foreground(t.TextMuted)

	var body strings.Builder
	for i, note := range c.Notes() {
		if i > 0 {
			body.WriteString("\n")
			body.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, markerStyle.Render("· "), mutedStyle.Render(note)))
			continue
		}
		body.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, markerStyle.Render("› "), textStyle.Render(note)))
	}
	return components.ContentCard("Insight", body.String(), cw)
}
