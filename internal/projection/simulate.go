// Package projection simulates the year-by-year growth of the association corpus.
package projection

import (
	"math"

	"github.com/theirongolddev/osacorpus/internal/model"
)

// Simulate projects the corpus balance for year 0 through p.HorizonYears.
// The result always has p.HorizonYears+1 entries.
func Simulate(p model.SimulationParams) (model.Trajectory, error) {
	rows, err := SimulateBreakdown(p)
	if err != nil {
		return nil, err
	}
	traj := make(model.Trajectory, len(rows))
	for i, r := range rows {
		traj[i] = r.Corpus
	}
	return traj, nil
}

// SimulateBreakdown runs the same recurrence as Simulate and records every
// term of each year's update.
//
// Each year new graduates pay the fresh fee. On a renewal year every member
// accumulated so far re-pays the model fee; otherwise in year 1 only, the
// initial old-alumni batch pays it. A renewal in year 1 takes precedence over
// the initial batch. Membership grows after the fees are computed, and
// interest accrues on the prior balance before the year's flows land.
func SimulateBreakdown(p model.SimulationParams) ([]model.YearBreakdown, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	membersOld := floorMembers(p.AlumniPool, p.OldSignupRate)
	newFresh := floorMembers(p.FreshGraduatesPerYear, p.FreshSignupRate)

	corpus := float64(membersOld) * p.ModelFee
	membersTotal := membersOld

	rows := make([]model.YearBreakdown, 0, p.HorizonYears+1)
	rows = append(rows, model.YearBreakdown{
		Year:         0,
		NewMembers:   membersOld,
		MembersTotal: membersOld,
		BatchFees:    corpus,
		Corpus:       corpus,
	})

	for year := 1; year <= p.HorizonYears; year++ {
		row := model.YearBreakdown{
			Year:       year,
			NewMembers: newFresh,
			FreshFees:  float64(newFresh) * p.FreshFee,
			Donations:  p.AnnualDonations,
			FixedCost:  p.AnnualFixedCost,
		}

		yearlyFee := row.FreshFees
		switch {
		case p.IsRenewalYear(year):
			row.BatchFees = float64(membersTotal) * p.ModelFee
			row.Renewal = true
		case year == 1:
			row.BatchFees = float64(membersOld) * p.ModelFee
		}
		yearlyFee += row.BatchFees

		membersTotal += newFresh
		row.MembersTotal = membersTotal

		row.Interest = corpus * p.InterestRate
		corpus = corpus*(1+p.InterestRate) + yearlyFee + p.AnnualDonations - p.AnnualFixedCost
		row.Corpus = corpus

		rows = append(rows, row)
	}

	return rows, nil
}

// floorMembers applies a 0-100 percentage to a head count, rounding down.
func floorMembers(count int, pct float64) int {
	return int(math.Floor(float64(count) * pct / 100))
}
