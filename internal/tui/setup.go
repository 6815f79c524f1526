package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form. Numeric answers are kept
// as text so the form inputs can bind to them directly.
type SetupValues struct {
	Scenario     string
	AlumniPool   string
	Graduates    string
	RenewalCycle string
	HorizonYears string
	Theme        string
}

// SetupValuesFrom pre-fills the form from existing inputs.
func SetupValuesFrom(in model.Inputs, themeName string) SetupValues {
	return SetupValues{
		Scenario:     string(in.Scenario),
		AlumniPool:   strconv.Itoa(in.AlumniPool),
		Graduates:    strconv.Itoa(in.GraduatesPerYear),
		RenewalCycle: strconv.Itoa(in.RenewalCycleYears),
		HorizonYears: strconv.Itoa(in.HorizonYears),
		Theme:        themeName,
	}
}

// NewSetupForm builds the first-run wizard bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	scenarioOpts := make([]huh.Option[string], 0, len(model.Scenarios))
	for _, s := range model.Scenarios {
		r := s.Rates()
		label := fmt.Sprintf("%s  (fresh %.0f%%, old %.0f%% / %.0f%%)", s, r.Fresh, r.OldLifetime, r.OldRenewable)
		scenarioOpts = append(scenarioOpts, huh.NewOption(label, string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to osacorpus").
				Description("Compare a one-time lifetime fee with a renewable fee\nfor the alumni association corpus.\n\nA few defaults first. Everything can be changed later."),
			huh.NewSelect[string]().
				Title("Signup scenario").
				Options(scenarioOpts...).
				Value(&vals.Scenario),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Alumni pool").
				Description("Existing alumni who could join.").
				Value(&vals.AlumniPool).
				Validate(boundValidator("alumni")),
			huh.NewInput().
				Title("Graduates per year").
				Value(&vals.Graduates).
				Validate(boundValidator("graduates")),
			huh.NewInput().
				Title("Renewal cycle (years)").
				Value(&vals.RenewalCycle).
				Validate(boundValidator("renewal-cycle")),
			huh.NewInput().
				Title("Projection years").
				Value(&vals.HorizonYears).
				Validate(boundValidator("years")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeDracula())
}

// boundValidator accepts whole numbers inside the named control's range.
func boundValidator(field string) func(string) error {
	return func(s string) error {
		_, err := parseBounded(field, s)
		return err
	}
}

func parseBounded(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("enter a whole number")
	}
	b, ok := model.BoundFor(field)
	if ok && !b.Contains(float64(n)) {
		return 0, fmt.Errorf("must be %s", boundHint(b))
	}
	return n, nil
}

// Apply writes the answers into in and returns the chosen theme name.
func (v SetupValues) Apply(in *model.Inputs) (string, error) {
	scenario, err := model.ParseScenario(v.Scenario)
	if err != nil {
		return "", err
	}

	ints := []struct {
		field string
		raw   string
		dst   *int
	}{
		{"alumni", v.AlumniPool, &in.AlumniPool},
		{"graduates", v.Graduates, &in.GraduatesPerYear},
		{"renewal-cycle", v.RenewalCycle, &in.RenewalCycleYears},
		{"years", v.HorizonYears, &in.HorizonYears},
	}
	// Parse everything before touching in.
	parsed := make([]int, len(ints))
	for i, f := range ints {
		n, err := parseBounded(f.field, f.raw)
		if err != nil {
			return "", fmt.Errorf("%s: %w", f.field, err)
		}
		parsed[i] = n
	}

	in.Scenario = scenario
	for i, f := range ints {
		*f.dst = parsed[i]
	}

	themeName := v.Theme
	if themeName == "" {
		themeName = theme.FlexokiDark.Name
	}
	return themeName, nil
}
