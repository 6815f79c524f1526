package projection

import (
	"fmt"
	"math"

	"github.com/theirongolddev/osacorpus/internal/model"
)

const (
	minAlumniPool     = 1000
	minFreshGraduates = 50
)

// Validate checks every field of p against its domain and returns the first
// violation as an *InvalidParameterError.
func Validate(p model.SimulationParams) error {
	if p.AlumniPool < minAlumniPool {
		return invalid("AlumniPool", p.AlumniPool, "must be at least 1000")
	}
	if p.FreshGraduatesPerYear < minFreshGraduates {
		return invalid("FreshGraduatesPerYear", p.FreshGraduatesPerYear, "must be at least 50")
	}

	amounts := []struct {
		name string
		v    float64
	}{
		{"FreshFee", p.FreshFee},
		{"ModelFee", p.ModelFee},
		{"AnnualFixedCost", p.AnnualFixedCost},
		{"AnnualDonations", p.AnnualDonations},
	}
	for _, a := range amounts {
		if err := checkAmount(a.name, a.v); err != nil {
			return err
		}
	}

	if err := checkRange("FreshSignupRate", p.FreshSignupRate, 0, 100); err != nil {
		return err
	}
	if err := checkRange("OldSignupRate", p.OldSignupRate, 0, 100); err != nil {
		return err
	}
	if err := checkRange("InterestRate", p.InterestRate, 0, 1); err != nil {
		return err
	}

	if p.RenewalCycleYears != nil && *p.RenewalCycleYears <= 0 {
		return invalid("RenewalCycleYears", *p.RenewalCycleYears, "must be positive when set")
	}
	if p.HorizonYears < 1 {
		return invalid("HorizonYears", p.HorizonYears, "must be at least 1")
	}
	return nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, v, "must be a finite amount")
	}
	if v < 0 {
		return invalid(field, v, "must not be negative")
	}
	return nil
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return invalid(field, v, fmt.Sprintf("must be within [%g, %g]", lo, hi))
	}
	return nil
}
