package projection

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/theirongolddev/osacorpus/internal/model"
)

func TestBuildParams_ResolvesScenario(t *testing.T) {
	in := model.DefaultInputs()
	in.Scenario = model.Optimistic

	life, renew := BuildParams(in)

	if life.FreshSignupRate != 85 || renew.FreshSignupRate != 85 {
		t.Fatalf("fresh rates = %.0f/%.0f, want 85/85", life.FreshSignupRate, renew.FreshSignupRate)
	}
	if life.OldSignupRate != 30 {
		t.Fatalf("lifetime old rate = %.0f, want 30", life.OldSignupRate)
	}
	if renew.OldSignupRate != 50 {
		t.Fatalf("renewable old rate = %.0f, want 50", renew.OldSignupRate)
	}
	if life.ModelFee != 2500 || renew.ModelFee != 1000 {
		t.Fatalf("model fees = %.0f/%.0f, want 2500/1000", life.ModelFee, renew.ModelFee)
	}
	if life.RenewalCycleYears != nil {
		t.Fatalf("lifetime renewal cycle = %d, want nil", *life.RenewalCycleYears)
	}
	if renew.RenewalCycleYears == nil || *renew.RenewalCycleYears != 10 {
		t.Fatalf("renewable renewal cycle = %v, want 10", renew.RenewalCycleYears)
	}
	if life.AnnualFixedCost != 250_000 {
		t.Fatalf("fixed cost = %.0f, want 250000", life.AnnualFixedCost)
	}
	if math.Abs(life.InterestRate-0.05) > 1e-12 {
		t.Fatalf("interest rate = %v, want 0.05", life.InterestRate)
	}
}

func TestBuildParams_ScenarioTable(t *testing.T) {
	tests := []struct {
		scenario           model.Scenario
		fresh, life, renew float64
	}{
		{model.Conservative, 50, 15, 25},
		{model.Moderate, 70, 20, 35},
		{model.Optimistic, 85, 30, 50},
	}
	for _, tt := range tests {
		in := model.DefaultInputs()
		in.Scenario = tt.scenario
		l, r := BuildParams(in)
		if l.FreshSignupRate != tt.fresh || l.OldSignupRate != tt.life || r.OldSignupRate != tt.renew {
			t.Errorf("%s: got fresh=%.0f life=%.0f renew=%.0f, want %.0f/%.0f/%.0f",
				tt.scenario, l.FreshSignupRate, l.OldSignupRate, r.OldSignupRate, tt.fresh, tt.life, tt.renew)
		}
	}
}

func TestCompare_DefaultsRenewableLeads(t *testing.T) {
	c, err := Compare(context.Background(), model.DefaultInputs())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if c.Years() != 21 {
		t.Fatalf("Years = %d, want 21", c.Years())
	}
	if got := c.Lifetime.Trajectory.Initial(); got != 2_700_000 {
		t.Fatalf("lifetime year 0 = %.0f, want 2700000", got)
	}
	if got := c.Renewable.Trajectory.Initial(); got != 1_890_000 {
		t.Fatalf("renewable year 0 = %.0f, want 1890000", got)
	}
	if math.Abs(c.Lifetime.Trajectory.Max()-11_109_931.324452871) > 1e-3 {
		t.Fatalf("lifetime peak = %.4f", c.Lifetime.Trajectory.Max())
	}
	if math.Abs(c.Renewable.Trajectory.Max()-16_123_707.87640661) > 1e-3 {
		t.Fatalf("renewable peak = %.4f", c.Renewable.Trajectory.Max())
	}

	if c.Leader() != model.Renewable {
		t.Fatalf("Leader = %s, want renewable", c.Leader())
	}
	want := "₹1000 model with 10-year renewal grows slower initially but overtakes long-term due to renewals and higher adoption."
	if c.Insight() != want {
		t.Fatalf("Insight = %q, want %q", c.Insight(), want)
	}
	if c.Crossover() != 10 {
		t.Fatalf("Crossover = %d, want 10", c.Crossover())
	}

	notes := c.Notes()
	if len(notes) != 2 || notes[1] != EngagementNote {
		t.Fatalf("Notes = %v", notes)
	}
}

func TestCompare_ShortHorizonLifetimeLeads(t *testing.T) {
	in := model.DefaultInputs()
	in.HorizonYears = 5

	c, err := Compare(context.Background(), in)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c.Leader() != model.Lifetime {
		t.Fatalf("Leader = %s, want lifetime", c.Leader())
	}
	if !strings.HasPrefix(c.Insight(), "₹2500 Lifetime model builds corpus faster") {
		t.Fatalf("Insight = %q", c.Insight())
	}
	if c.Crossover() != -1 {
		t.Fatalf("Crossover = %d, want -1", c.Crossover())
	}
}

func TestCompare_SeriesMetadata(t *testing.T) {
	c, err := Compare(context.Background(), model.DefaultInputs())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c.Lifetime.Label() != "₹2500 Lifetime" {
		t.Fatalf("lifetime label = %q", c.Lifetime.Label())
	}
	if c.Renewable.Label() != "₹1000 (Every 10 Years)" {
		t.Fatalf("renewable label = %q", c.Renewable.Label())
	}
	if len(c.Renewable.Breakdown) != len(c.Renewable.Trajectory) {
		t.Fatalf("breakdown rows = %d, trajectory = %d", len(c.Renewable.Breakdown), len(c.Renewable.Trajectory))
	}
}

func TestCompare_PropagatesInvalidParameter(t *testing.T) {
	in := model.DefaultInputs()
	in.HorizonYears = 0

	_, err := Compare(context.Background(), in)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Compare error = %v, want ErrInvalidParameter", err)
	}
}

func TestCompare_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Compare(ctx, model.DefaultInputs()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Compare error = %v, want context.Canceled", err)
	}
}

func TestCheckInputs(t *testing.T) {
	if err := CheckInputs(model.DefaultInputs()); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}

	tests := []struct {
		name  string
		edit  func(*model.Inputs)
		field string
	}{
		{"cycle too short", func(in *model.Inputs) { in.RenewalCycleYears = 4 }, "renewal-cycle"},
		{"cycle too long", func(in *model.Inputs) { in.RenewalCycleYears = 21 }, "renewal-cycle"},
		{"interest too high", func(in *model.Inputs) { in.InterestPercent = 12 }, "interest"},
		{"horizon too short", func(in *model.Inputs) { in.HorizonYears = 0 }, "years"},
		{"negative donations", func(in *model.Inputs) { in.Donations = -1 }, "donations"},
		{"unknown scenario", func(in *model.Inputs) { in.Scenario = "Reckless" }, "scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := model.DefaultInputs()
			tt.edit(&in)
			err := CheckInputs(in)
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) || ipe.Field != tt.field {
				t.Fatalf("CheckInputs = %v, want field %s", err, tt.field)
			}
		})
	}
}
