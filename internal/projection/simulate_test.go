package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/osacorpus/internal/model"
)

func baseParams() model.SimulationParams {
	return model.SimulationParams{
		AlumniPool:            5400,
		FreshGraduatesPerYear: 180,
		FreshFee:              500,
		ModelFee:              2500,
		FreshSignupRate:       70,
		OldSignupRate:         20,
		AnnualFixedCost:       250_000,
		InterestRate:          0.05,
		AnnualDonations:       100_000,
		HorizonYears:          1,
	}
}

func assertTrajectory(t *testing.T, got model.Trajectory, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(trajectory) = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("year %d corpus = %.4f, want %.4f", i, got[i], want[i])
		}
	}
}

func TestSimulate_LifetimeOneYear(t *testing.T) {
	traj, err := Simulate(baseParams())
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	assertTrajectory(t, traj, []float64{2_700_000, 5_448_000})
}

func TestSimulate_LifetimeNoLaterBatch(t *testing.T) {
	p := baseParams()
	p.InterestRate = 0
	p.HorizonYears = 3

	rows, err := SimulateBreakdown(p)
	if err != nil {
		t.Fatalf("SimulateBreakdown: %v", err)
	}
	if rows[1].BatchFees != 1080*2500 {
		t.Fatalf("year 1 batch fees = %.0f, want %d", rows[1].BatchFees, 1080*2500)
	}
	for _, r := range rows[2:] {
		if r.BatchFees != 0 || r.Renewal {
			t.Errorf("year %d batch fees = %.0f renewal=%v, want none", r.Year, r.BatchFees, r.Renewal)
		}
		if r.FeeIncome() != 126*500 {
			t.Errorf("year %d fee income = %.0f, want %d", r.Year, r.FeeIncome(), 126*500)
		}
	}

	traj, _ := Simulate(p)
	assertTrajectory(t, traj, []float64{2_700_000, 5_313_000, 5_226_000, 5_139_000})
}

func TestSimulate_RenewalEveryTwoYears(t *testing.T) {
	p := baseParams()
	p.ModelFee = 1000
	p.OldSignupRate = 35
	p.InterestRate = 0
	p.HorizonYears = 4
	p.RenewalCycleYears = model.Cycle(2)

	rows, err := SimulateBreakdown(p)
	if err != nil {
		t.Fatalf("SimulateBreakdown: %v", err)
	}

	// 1890 old members, 126 fresh joiners a year.
	wantBatch := []float64{1_890_000, 1_890_000, 2_016_000, 0, 2_268_000}
	wantRenewal := []bool{false, false, true, false, true}
	for i, r := range rows {
		if r.BatchFees != wantBatch[i] {
			t.Errorf("year %d batch fees = %.0f, want %.0f", i, r.BatchFees, wantBatch[i])
		}
		if r.Renewal != wantRenewal[i] {
			t.Errorf("year %d renewal = %v, want %v", i, r.Renewal, wantRenewal[i])
		}
	}

	traj, _ := Simulate(p)
	assertTrajectory(t, traj, []float64{1_890_000, 3_693_000, 5_622_000, 5_535_000, 7_716_000})
}

func TestSimulate_CycleOneRenewalWinsYearOne(t *testing.T) {
	p := baseParams()
	p.ModelFee = 1000
	p.OldSignupRate = 35
	p.InterestRate = 0
	p.HorizonYears = 2
	p.RenewalCycleYears = model.Cycle(1)

	rows, err := SimulateBreakdown(p)
	if err != nil {
		t.Fatalf("SimulateBreakdown: %v", err)
	}
	if !rows[1].Renewal {
		t.Fatal("year 1 should be billed as a renewal when the cycle is 1")
	}
	if rows[1].BatchFees != 1_890_000 {
		t.Fatalf("year 1 batch fees = %.0f, want 1890000", rows[1].BatchFees)
	}
	if rows[2].BatchFees != 2_016_000 {
		t.Fatalf("year 2 batch fees = %.0f, want 2016000", rows[2].BatchFees)
	}

	traj, _ := Simulate(p)
	assertTrajectory(t, traj, []float64{1_890_000, 3_693_000, 5_622_000})
}

func TestSimulate_Deterministic(t *testing.T) {
	p := baseParams()
	p.HorizonYears = 25
	p.RenewalCycleYears = model.Cycle(7)

	a, err := Simulate(p)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, _ := Simulate(p)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("year %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSimulate_LengthAndMembership(t *testing.T) {
	for _, years := range []int{1, 5, 20, 30} {
		p := baseParams()
		p.HorizonYears = years
		p.RenewalCycleYears = model.Cycle(5)

		rows, err := SimulateBreakdown(p)
		if err != nil {
			t.Fatalf("years=%d: %v", years, err)
		}
		if len(rows) != years+1 {
			t.Fatalf("years=%d: len = %d, want %d", years, len(rows), years+1)
		}
		traj, _ := Simulate(p)
		if len(traj) != years+1 {
			t.Fatalf("years=%d: trajectory len = %d, want %d", years, len(traj), years+1)
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].MembersTotal < rows[i-1].MembersTotal {
				t.Fatalf("years=%d: members fell from %d to %d in year %d",
					years, rows[i-1].MembersTotal, rows[i].MembersTotal, i)
			}
			if rows[i].Corpus != traj[i] {
				t.Fatalf("years=%d: breakdown corpus %v != trajectory %v at year %d", years, rows[i].Corpus, traj[i], i)
			}
		}
	}
}

func TestSimulate_RenewalUsesMembersAtStartOfYear(t *testing.T) {
	p := baseParams()
	p.HorizonYears = 12
	p.RenewalCycleYears = model.Cycle(4)

	rows, err := SimulateBreakdown(p)
	if err != nil {
		t.Fatalf("SimulateBreakdown: %v", err)
	}
	for _, y := range []int{4, 8, 12} {
		startMembers := rows[y-1].MembersTotal
		want := float64(startMembers) * p.ModelFee
		if rows[y].BatchFees != want {
			t.Errorf("year %d batch fees = %.0f, want %.0f (%d members)", y, rows[y].BatchFees, want, startMembers)
		}
	}
}

func TestSimulate_HorizonZeroRejected(t *testing.T) {
	p := baseParams()
	p.HorizonYears = 0

	traj, err := Simulate(p)
	if err == nil {
		t.Fatalf("expected error for zero horizon, got %v", traj)
	}
	var ipe *InvalidParameterError
	if !errors.As(err, &ipe) {
		t.Fatalf("error %T is not *InvalidParameterError", err)
	}
	if ipe.Field != "HorizonYears" {
		t.Fatalf("Field = %q, want HorizonYears", ipe.Field)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*model.SimulationParams)
		field string
	}{
		{"small pool", func(p *model.SimulationParams) { p.AlumniPool = 999 }, "AlumniPool"},
		{"few graduates", func(p *model.SimulationParams) { p.FreshGraduatesPerYear = 49 }, "FreshGraduatesPerYear"},
		{"negative fresh fee", func(p *model.SimulationParams) { p.FreshFee = -1 }, "FreshFee"},
		{"negative model fee", func(p *model.SimulationParams) { p.ModelFee = -500 }, "ModelFee"},
		{"nan cost", func(p *model.SimulationParams) { p.AnnualFixedCost = math.NaN() }, "AnnualFixedCost"},
		{"negative donations", func(p *model.SimulationParams) { p.AnnualDonations = -10 }, "AnnualDonations"},
		{"fresh rate over 100", func(p *model.SimulationParams) { p.FreshSignupRate = 101 }, "FreshSignupRate"},
		{"old rate negative", func(p *model.SimulationParams) { p.OldSignupRate = -0.5 }, "OldSignupRate"},
		{"interest over 1", func(p *model.SimulationParams) { p.InterestRate = 5 }, "InterestRate"},
		{"zero cycle", func(p *model.SimulationParams) { p.RenewalCycleYears = model.Cycle(0) }, "RenewalCycleYears"},
		{"negative cycle", func(p *model.SimulationParams) { p.RenewalCycleYears = model.Cycle(-3) }, "RenewalCycleYears"},
		{"negative horizon", func(p *model.SimulationParams) { p.HorizonYears = -1 }, "HorizonYears"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.edit(&p)

			err := Validate(p)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Validate error = %v, want ErrInvalidParameter", err)
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) || ipe.Field != tt.field {
				t.Fatalf("Validate error = %v, want field %s", err, tt.field)
			}
			if _, err := Simulate(p); err == nil {
				t.Fatal("Simulate accepted invalid params")
			}
		})
	}
}

func TestValidate_BoundaryValuesAccepted(t *testing.T) {
	p := baseParams()
	p.AlumniPool = 1000
	p.FreshGraduatesPerYear = 50
	p.FreshFee = 0
	p.ModelFee = 0
	p.FreshSignupRate = 100
	p.OldSignupRate = 0
	p.InterestRate = 1
	p.AnnualFixedCost = 0
	p.AnnualDonations = 0
	p.RenewalCycleYears = model.Cycle(1)

	if err := Validate(p); err != nil {
		t.Fatalf("Validate rejected boundary params: %v", err)
	}
}
