package model

// Inputs mirrors the administrator's controls before they are resolved
// into per-model SimulationParams.
type Inputs struct {
	AlumniPool        int
	GraduatesPerYear  int
	FreshFee          float64
	LifetimeFee       float64
	RenewableFee      float64
	RenewalCycleYears int
	Scenario          Scenario

	PortalCost  float64
	AuditCost   float64
	MeetingCost float64 // general body meetings

	InterestPercent float64
	Donations       float64
	HorizonYears    int
}

// AnnualFixedCost sums the recurring operating costs.
func (in Inputs) AnnualFixedCost() float64 {
	return in.PortalCost + in.AuditCost + in.MeetingCost
}

// DefaultInputs returns the stock what-if starting point.
func DefaultInputs() Inputs {
	return Inputs{
		AlumniPool:        5400,
		GraduatesPerYear:  180,
		FreshFee:          500,
		LifetimeFee:       2500,
		RenewableFee:      1000,
		RenewalCycleYears: 10,
		Scenario:          Moderate,
		PortalCost:        100_000,
		AuditCost:         50_000,
		MeetingCost:       100_000,
		InterestPercent:   5,
		Donations:         100_000,
		HorizonYears:      20,
	}
}

// Bound is an inclusive numeric range for one input control.
// A zero Max means unbounded above.
type Bound struct {
	Field string
	Min   float64
	Max   float64
	Step  float64
}

// InputBounds are the ranges the input controls accept.
var InputBounds = []Bound{
	{Field: "alumni", Min: 1000, Step: 100},
	{Field: "graduates", Min: 50, Step: 10},
	{Field: "fresh-fee", Min: 100, Step: 100},
	{Field: "lifetime-fee", Min: 500, Step: 100},
	{Field: "renewable-fee", Min: 500, Step: 100},
	{Field: "renewal-cycle", Min: 5, Max: 20, Step: 1},
	{Field: "portal-cost", Min: 0, Step: 10_000},
	{Field: "audit-cost", Min: 0, Step: 10_000},
	{Field: "meeting-cost", Min: 0, Step: 10_000},
	{Field: "interest", Min: 1, Max: 10, Step: 1},
	{Field: "donations", Min: 0, Step: 10_000},
	{Field: "years", Min: 5, Max: 30, Step: 1},
}

// BoundFor looks up the range for a field name.
func BoundFor(field string) (Bound, bool) {
	for _, b := range InputBounds {
		if b.Field == field {
			return b, true
		}
	}
	return Bound{}, false
}

// Clamp pulls v into the bound.
func (b Bound) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if b.Max > 0 && v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v lies within the bound.
func (b Bound) Contains(v float64) bool {
	return v >= b.Min && (b.Max == 0 || v <= b.Max)
}

// Fields returns the inputs keyed by bound field name.
func (in Inputs) Fields() map[string]float64 {
	return map[string]float64{
		"alumni":        float64(in.AlumniPool),
		"graduates":     float64(in.GraduatesPerYear),
		"fresh-fee":     in.FreshFee,
		"lifetime-fee":  in.LifetimeFee,
		"renewable-fee": in.RenewableFee,
		"renewal-cycle": float64(in.RenewalCycleYears),
		"portal-cost":   in.PortalCost,
		"audit-cost":    in.AuditCost,
		"meeting-cost":  in.MeetingCost,
		"interest":      in.InterestPercent,
		"donations":     in.Donations,
		"years":         float64(in.HorizonYears),
	}
}

// Set assigns a field by bound name. Unknown names are ignored and report false.
func (in *Inputs) Set(field string, v float64) bool {
	switch field {
	case "alumni":
		in.AlumniPool = int(v)
	case "graduates":
		in.GraduatesPerYear = int(v)
	case "fresh-fee":
		in.FreshFee = v
	case "lifetime-fee":
		in.LifetimeFee = v
	case "renewable-fee":
		in.RenewableFee = v
	case "renewal-cycle":
		in.RenewalCycleYears = int(v)
	case "portal-cost":
		in.PortalCost = v
	case "audit-cost":
		in.AuditCost = v
	case "meeting-cost":
		in.MeetingCost = v
	case "interest":
		in.InterestPercent = v
	case "donations":
		in.Donations = v
	case "years":
		in.HorizonYears = int(v)
	default:
		return false
	}
	return true
}

// Clamp returns a copy with every field pulled into InputBounds and an
// unknown scenario replaced by Moderate.
func (in Inputs) Clamp() Inputs {
	out := in
	fields := in.Fields()
	for _, b := range InputBounds {
		out.Set(b.Field, b.Clamp(fields[b.Field]))
	}
	if !out.Scenario.Valid() {
		out.Scenario = Moderate
	}
	return out
}
