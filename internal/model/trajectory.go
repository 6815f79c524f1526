package model

import "fmt"

// LakhDivisor converts rupees to lakhs.
const LakhDivisor = 100_000

// Trajectory holds corpus balances for year 0 through the horizon.
type Trajectory []float64

// Max returns the largest balance, or 0 for an empty trajectory.
func (t Trajectory) Max() float64 {
	if len(t) == 0 {
		return 0
	}
	peak := t[0]
	for _, v := range t[1:] {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Final returns the balance at the end of the horizon.
func (t Trajectory) Final() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// Initial returns the year-0 balance.
func (t Trajectory) Initial() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[0]
}

// Lakhs returns a copy of the trajectory scaled to lakhs.
func (t Trajectory) Lakhs() []float64 {
	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = v / LakhDivisor
	}
	return out
}

// YearBreakdown records every term of one step of the corpus recurrence.
// Row 0 carries the initial membership and corpus only.
type YearBreakdown struct {
	Year         int     `json:"year" yaml:"year"`
	NewMembers   int     `json:"new_members" yaml:"new_members"`
	MembersTotal int     `json:"members_total" yaml:"members_total"`
	FreshFees    float64 `json:"fresh_fees" yaml:"fresh_fees"`
	BatchFees    float64 `json:"batch_fees" yaml:"batch_fees"`
	Renewal      bool    `json:"renewal" yaml:"renewal"`
	Interest     float64 `json:"interest" yaml:"interest"`
	Donations    float64 `json:"donations" yaml:"donations"`
	FixedCost    float64 `json:"fixed_cost" yaml:"fixed_cost"`
	Corpus       float64 `json:"corpus" yaml:"corpus"`
}

// FeeIncome is the total fee inflow for the year.
func (y YearBreakdown) FeeIncome() float64 {
	return y.FreshFees + y.BatchFees
}

// FeeModel identifies which fee structure a series was simulated under.
type FeeModel int

const (
	Lifetime FeeModel = iota
	Renewable
)

func (m FeeModel) String() string {
	switch m {
	case Lifetime:
		return "lifetime"
	case Renewable:
		return "renewable"
	default:
		return fmt.Sprintf("FeeModel(%d)", int(m))
	}
}

// Series is a simulated trajectory plus the metadata needed to label it.
type Series struct {
	Model             FeeModel
	Fee               float64
	RenewalCycleYears *int
	Trajectory        Trajectory
	Breakdown         []YearBreakdown
}

// Label renders the display name, e.g. "₹2500 Lifetime" or "₹1000 (Every 10 Years)".
func (s Series) Label() string {
	if s.RenewalCycleYears == nil {
		return fmt.Sprintf("₹%.0f Lifetime", s.Fee)
	}
	return fmt.Sprintf("₹%.0f (Every %d Years)", s.Fee, *s.RenewalCycleYears)
}

// ShortLabel is Label without the renewal detail.
func (s Series) ShortLabel() string {
	return fmt.Sprintf("₹%.0f", s.Fee)
}
