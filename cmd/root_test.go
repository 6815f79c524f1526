package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/osacorpus/internal/config"
	"github.com/theirongolddev/osacorpus/internal/model"
	"github.com/theirongolddev/osacorpus/internal/projection"

	"github.com/spf13/pflag"
)

// parseRootFlags parses args onto the root command and restores every flag
// when the test ends.
func parseRootFlags(t *testing.T, args ...string) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
	if err := rootCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
}

func writeConfig(t *testing.T, mutate func(*model.Inputs)) string {
	t.Helper()
	in := model.DefaultInputs()
	mutate(&in)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.SaveFile(path, config.FromInputs(in, "tokyo-night")); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	return path
}

func TestMergedInputsFlagsOverConfig(t *testing.T) {
	path := writeConfig(t, func(in *model.Inputs) {
		in.AlumniPool = 8000
		in.HorizonYears = 15
	})
	parseRootFlags(t, "--config", path, "--years", "7", "--scenario", "optimistic")

	in, cfg, err := mergedInputs(rootCmd)
	if err != nil {
		t.Fatalf("mergedInputs: %v", err)
	}
	if in.AlumniPool != 8000 {
		t.Errorf("AlumniPool = %d, want 8000 from config", in.AlumniPool)
	}
	if in.HorizonYears != 7 {
		t.Errorf("HorizonYears = %d, want 7 from flag", in.HorizonYears)
	}
	if in.Scenario != model.Optimistic {
		t.Errorf("Scenario = %s, want Optimistic", in.Scenario)
	}
	if cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
}

func TestResolveInputsRejectsOutOfRange(t *testing.T) {
	parseRootFlags(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "--years", "2")

	_, err := resolveInputs(rootCmd)
	if !errors.Is(err, projection.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestResolveInputsRejectsUnknownScenario(t *testing.T) {
	parseRootFlags(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "-s", "wild")

	_, err := resolveInputs(rootCmd)
	var ipe *projection.InvalidParameterError
	if !errors.As(err, &ipe) || ipe.Field != "scenario" {
		t.Fatalf("err = %v, want scenario InvalidParameterError", err)
	}
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	parseRootFlags(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))

	in, err := resolveInputs(rootCmd)
	if err != nil {
		t.Fatalf("resolveInputs: %v", err)
	}
	if in != model.DefaultInputs() {
		t.Fatalf("inputs = %+v, want defaults", in)
	}
}
