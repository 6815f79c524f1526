// Package model defines domain types for osacorpus projections.
package model

// SimulationParams is the complete input to one corpus simulation.
// Percent fields are on a 0-100 scale; InterestRate is a fraction.
type SimulationParams struct {
	AlumniPool            int
	FreshGraduatesPerYear int

	FreshFee float64 // paid by new graduates under either fee model
	ModelFee float64 // paid by existing alumni under the simulated model

	FreshSignupRate float64
	OldSignupRate   float64

	// RenewalCycleYears is nil for the lifetime model.
	RenewalCycleYears *int

	AnnualFixedCost float64
	InterestRate    float64
	AnnualDonations float64
	HorizonYears    int
}

// IsRenewalYear reports whether all accumulated members re-pay in the given year.
func (p SimulationParams) IsRenewalYear(year int) bool {
	if p.RenewalCycleYears == nil || *p.RenewalCycleYears <= 0 {
		return false
	}
	return year%*p.RenewalCycleYears == 0
}

// Cycle returns a pointer to a copy of n, for filling RenewalCycleYears.
func Cycle(n int) *int {
	return &n
}
