package cli

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"

	"github.com/charmbracelet/lipgloss"
)

// SummaryTable lays out the headline figures of both fee models.
func SummaryTable(c *projection.Comparison) Table {
	life, renew := c.Lifetime, c.Renewable
	last := c.Years() - 1

	rows := [][]string{
		{"Old alumni joining", FormatNumber(int64(life.Breakdown[0].MembersTotal)), FormatNumber(int64(renew.Breakdown[0].MembersTotal))},
		{"Members (year " + strconv.Itoa(last) + ")", FormatNumber(int64(life.Breakdown[last].MembersTotal)), FormatNumber(int64(renew.Breakdown[last].MembersTotal))},
		{"Renewal", FormatCycle(life.RenewalCycleYears), FormatCycle(renew.RenewalCycleYears)},
		{"---"},
		{"Year 0 corpus", FormatRupees(life.Trajectory.Initial()), FormatRupees(renew.Trajectory.Initial())},
		{"Final corpus", FormatRupees(life.Trajectory.Final()), FormatRupees(renew.Trajectory.Final())},
		{"Peak corpus", FormatRupees(life.Trajectory.Max()), FormatRupees(renew.Trajectory.Max())},
		{"Fees collected", FormatRupees(totalFees(life.Breakdown)), FormatRupees(totalFees(renew.Breakdown))},
		{"---"},
		{"Trend", lifetimeStyle.Render(RenderSparkline(life.Trajectory)), renewableStyle.Render(RenderSparkline(renew.Trajectory))},
	}

	return Table{
		Headers: []string{"Metric", life.Label(), renew.Label()},
		Rows:    rows,
	}
}

// YearTable lists the corpus of both models for every year. With detail it
// adds membership and fee income columns.
func YearTable(c *projection.Comparison, detail bool) Table {
	life, renew := c.Lifetime, c.Renewable

	headers := []string{"Year", life.Label(), renew.Label()}
	if detail {
		headers = append(headers, "Members (L)", "Members (R)", "Fees (L)", "Fees (R)")
	}

	rows := make([][]string, 0, c.Years())
	for y := 0; y < c.Years(); y++ {
		year := strconv.Itoa(y)
		if renew.Breakdown[y].Renewal {
			year += " *"
		}
		row := []string{year, FormatRupees(life.Trajectory[y]), FormatRupees(renew.Trajectory[y])}
		if detail {
			lb, rb := life.Breakdown[y], renew.Breakdown[y]
			row = append(row,
				FormatNumber(int64(lb.MembersTotal)),
				FormatNumber(int64(rb.MembersTotal)),
				FormatRupees(lb.FeeIncome()),
				FormatRupees(rb.FeeIncome()),
			)
		}
		rows = append(rows, row)
	}

	return Table{
		Title:   "Corpus Growth Over Time",
		Headers: headers,
		Rows:    rows,
	}
}

// ParamsTable shows the resolved inputs behind a comparison.
func ParamsTable(in model.Inputs) Table {
	rates := in.Scenario.Rates()
	return Table{
		Title:   "Inputs (" + string(in.Scenario) + ")",
		Headers: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Alumni pool", FormatNumber(int64(in.AlumniPool))},
			{"Graduates / year", FormatNumber(int64(in.GraduatesPerYear))},
			{"Signup fresh", FormatPercent(rates.Fresh)},
			{"Signup old @ " + FormatRupees(in.LifetimeFee), FormatPercent(rates.OldLifetime)},
			{"Signup old @ " + FormatRupees(in.RenewableFee), FormatPercent(rates.OldRenewable)},
			{"---"},
			{"Fresh fee", FormatRupees(in.FreshFee)},
			{"Annual costs", FormatRupees(in.AnnualFixedCost())},
			{"Donations / year", FormatRupees(in.Donations)},
			{"Interest", FormatPercent(in.InterestPercent)},
			{"Horizon", strconv.Itoa(in.HorizonYears) + " years"},
		},
	}
}

func totalFees(rows []model.YearBreakdown) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.FeeIncome()
	}
	return total
}

// FinalBars draws the closing corpus of each model as horizontal bars scaled
// to the larger one, followed by the renewable-minus-lifetime gap.
func FinalBars(c *projection.Comparison, width int) string {
	life, renew := c.Lifetime, c.Renewable
	lf, rf := life.Trajectory.Final(), renew.Trajectory.Final()
	ref := max(lf, rf)

	labelW := max(lipgloss.Width(life.ShortLabel()), lipgloss.Width(renew.ShortLabel()))

	var b strings.Builder
	b.WriteString(lifetimeStyle.Render(RenderHorizontalBar(padRight(life.ShortLabel(), labelW), lf, ref, width)))
	b.WriteString("  " + valueStyle.Render(FormatLakhs(lf)) + "\n")
	b.WriteString(renewableStyle.Render(RenderHorizontalBar(padRight(renew.ShortLabel(), labelW), rf, ref, width)))
	b.WriteString("  " + valueStyle.Render(FormatLakhs(rf)) + "\n")
	b.WriteString(mutedStyle.Render("  Renewable vs lifetime at year "+strconv.Itoa(c.Years()-1)+": ") +
		valueStyle.Render(FormatDelta(rf, lf)) + "\n")
	return b.String()
}
