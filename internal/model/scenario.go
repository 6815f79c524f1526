package model

import (
	"fmt"
	"strings"
)

// Scenario names a preset bundle of signup percentages.
type Scenario string

const (
	Conservative Scenario = "Conservative"
	Moderate     Scenario = "Moderate"
	Optimistic   Scenario = "Optimistic"
)

// Scenarios lists presets in display order.
var Scenarios = []Scenario{Conservative, Moderate, Optimistic}

// SignupRates are the percentages a scenario resolves to.
type SignupRates struct {
	Fresh        float64 // new graduates, either model
	OldLifetime  float64 // existing alumni under the lifetime fee
	OldRenewable float64 // existing alumni under the renewable fee
}

var presets = map[Scenario]SignupRates{
	Conservative: {Fresh: 50, OldLifetime: 15, OldRenewable: 25},
	Moderate:     {Fresh: 70, OldLifetime: 20, OldRenewable: 35},
	Optimistic:   {Fresh: 85, OldLifetime: 30, OldRenewable: 50},
}

// Rates returns the signup percentages for the scenario.
// Unknown scenarios resolve to Moderate.
func (s Scenario) Rates() SignupRates {
	if r, ok := presets[s]; ok {
		return r
	}
	return presets[Moderate]
}

// Valid reports whether s is one of the known presets.
func (s Scenario) Valid() bool {
	_, ok := presets[s]
	return ok
}

// Next cycles to the following preset, wrapping around.
func (s Scenario) Next() Scenario {
	for i, sc := range Scenarios {
		if sc == s {
			return Scenarios[(i+1)%len(Scenarios)]
		}
	}
	return Scenarios[0]
}

// ParseScenario matches a preset name case-insensitively.
func ParseScenario(name string) (Scenario, error) {
	name = strings.TrimSpace(name)
	for _, sc := range Scenarios {
		if strings.EqualFold(string(sc), name) {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown scenario %q (want conservative, moderate or optimistic)", name)
}
