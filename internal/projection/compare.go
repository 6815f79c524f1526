package projection

import (
	"context"
	"fmt"
	"math"

	"github.com/theirongolddev/osacorpus/internal/model"

	"golang.org/x/sync/errgroup"
)

// EngagementNote is appended to every comparison regardless of outcome.
const EngagementNote = "More members = more engagement, which also means more donations and sponsorships beyond just fees."

// BuildParams resolves the scenario preset in `in` into one parameter set per
// fee model. Fresh-graduate terms, costs and finance terms are shared.
func BuildParams(in model.Inputs) (lifetime, renewable model.SimulationParams) {
	rates := in.Scenario.Rates()

	base := model.SimulationParams{
		AlumniPool:            in.AlumniPool,
		FreshGraduatesPerYear: in.GraduatesPerYear,
		FreshFee:              in.FreshFee,
		FreshSignupRate:       rates.Fresh,
		AnnualFixedCost:       in.AnnualFixedCost(),
		InterestRate:          in.InterestPercent / 100,
		AnnualDonations:       in.Donations,
		HorizonYears:          in.HorizonYears,
	}

	lifetime = base
	lifetime.ModelFee = in.LifetimeFee
	lifetime.OldSignupRate = rates.OldLifetime

	renewable = base
	renewable.ModelFee = in.RenewableFee
	renewable.OldSignupRate = rates.OldRenewable
	renewable.RenewalCycleYears = model.Cycle(in.RenewalCycleYears)

	return lifetime, renewable
}

// CheckInputs reports the first input outside model.InputBounds, or an
// unknown scenario, as an *InvalidParameterError.
func CheckInputs(in model.Inputs) error {
	if !in.Scenario.Valid() {
		return invalid("scenario", string(in.Scenario), "unknown scenario")
	}
	fields := in.Fields()
	for _, b := range model.InputBounds {
		v := fields[b.Field]
		if math.IsNaN(v) || math.IsInf(v, 0) || !b.Contains(v) {
			reason := fmt.Sprintf("must be at least %g", b.Min)
			if b.Max > 0 {
				reason = fmt.Sprintf("must be between %g and %g", b.Min, b.Max)
			}
			return invalid(b.Field, v, reason)
		}
	}
	return nil
}

// Comparison holds the two simulated fee models side by side.
type Comparison struct {
	Inputs    model.Inputs
	Lifetime  model.Series
	Renewable model.Series
}

// Compare simulates both fee models concurrently. The runs share nothing
// but the read-only inputs.
func Compare(ctx context.Context, in model.Inputs) (*Comparison, error) {
	lifeParams, renewParams := BuildParams(in)

	c := &Comparison{
		Inputs: in,
		Lifetime: model.Series{
			Model: model.Lifetime,
			Fee:   lifeParams.ModelFee,
		},
		Renewable: model.Series{
			Model:             model.Renewable,
			Fee:               renewParams.ModelFee,
			RenewalCycleYears: renewParams.RenewalCycleYears,
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	run := func(p model.SimulationParams, s *model.Series) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := SimulateBreakdown(p)
			if err != nil {
				return fmt.Errorf("%s model: %w", s.Model, err)
			}
			s.Breakdown = rows
			s.Trajectory = make(model.Trajectory, len(rows))
			for i, r := range rows {
				s.Trajectory[i] = r.Corpus
			}
			return nil
		}
	}
	g.Go(run(lifeParams, &c.Lifetime))
	g.Go(run(renewParams, &c.Renewable))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

// Leader returns the fee model whose peak corpus is higher. Lifetime must be
// strictly ahead to lead.
func (c *Comparison) Leader() model.FeeModel {
	if c.Lifetime.Trajectory.Max() > c.Renewable.Trajectory.Max() {
		return model.Lifetime
	}
	return model.Renewable
}

// Insight is the one-line verdict on the peak corpus of each model.
func (c *Comparison) Insight() string {
	if c.Leader() == model.Lifetime {
		return fmt.Sprintf("%s Lifetime model builds corpus faster in the short term.", c.Lifetime.ShortLabel())
	}
	cycle := 0
	if c.Renewable.RenewalCycleYears != nil {
		cycle = *c.Renewable.RenewalCycleYears
	}
	return fmt.Sprintf("%s model with %d-year renewal grows slower initially but overtakes long-term due to renewals and higher adoption.",
		c.Renewable.ShortLabel(), cycle)
}

// Notes returns the insight followed by the engagement note.
func (c *Comparison) Notes() []string {
	return []string{c.Insight(), EngagementNote}
}

// Crossover returns the first year the renewable corpus moves ahead of the
// lifetime corpus after not leading the year before, or -1 if it never does.
func (c *Comparison) Crossover() int {
	life, renew := c.Lifetime.Trajectory, c.Renewable.Trajectory
	n := min(len(life), len(renew))
	for y := 1; y < n; y++ {
		if renew[y] > life[y] && renew[y-1] <= life[y-1] {
			return y
		}
	}
	return -1
}

// Years is the number of rows in each series (horizon + 1).
func (c *Comparison) Years() int {
	return len(c.Lifetime.Trajectory)
}
