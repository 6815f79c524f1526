// Package config loads and saves the osacorpus defaults file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/osacorpus/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all osacorpus configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Alumni     AlumniConfig     `toml:"alumni"`
	Fees       FeesConfig       `toml:"fees"`
	Costs      CostsConfig      `toml:"costs"`
	Finance    FinanceConfig    `toml:"finance"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds scenario and horizon defaults.
type GeneralConfig struct {
	Scenario     string `toml:"scenario"`
	HorizonYears int    `toml:"horizon_years"`
}

// AlumniConfig describes the eligible population.
type AlumniConfig struct {
	Pool             int `toml:"pool"`
	GraduatesPerYear int `toml:"graduates_per_year"`
}

// FeesConfig holds the fee amounts in rupees.
type FeesConfig struct {
	Fresh             float64 `toml:"fresh"`
	Lifetime          float64 `toml:"lifetime"`
	Renewable         float64 `toml:"renewable"`
	RenewalCycleYears int     `toml:"renewal_cycle_years"`
}

// CostsConfig holds recurring annual costs in rupees.
type CostsConfig struct {
	Portal  float64 `toml:"portal"`
	Audit   float64 `toml:"audit"`
	Meeting float64 `toml:"meeting"`
}

// FinanceConfig holds interest and donation assumptions.
type FinanceConfig struct {
	InterestPercent float64 `toml:"interest_percent"`
	Donations       float64 `toml:"donations"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return FromInputs(model.DefaultInputs(), "flexoki-dark")
}

// FromInputs builds a config that reproduces the given inputs.
func FromInputs(in model.Inputs, themeName string) Config {
	return Config{
		General: GeneralConfig{
			Scenario:     string(in.Scenario),
			HorizonYears: in.HorizonYears,
		},
		Alumni: AlumniConfig{
			Pool:             in.AlumniPool,
			GraduatesPerYear: in.GraduatesPerYear,
		},
		Fees: FeesConfig{
			Fresh:             in.FreshFee,
			Lifetime:          in.LifetimeFee,
			Renewable:         in.RenewableFee,
			RenewalCycleYears: in.RenewalCycleYears,
		},
		Costs: CostsConfig{
			Portal:  in.PortalCost,
			Audit:   in.AuditCost,
			Meeting: in.MeetingCost,
		},
		Finance: FinanceConfig{
			InterestPercent: in.InterestPercent,
			Donations:       in.Donations,
		},
		Appearance: AppearanceConfig{
			Theme: themeName,
		},
	}
}

// Inputs converts the config into the parameter-source record.
// An unrecognised scenario name is returned as-is for the caller to reject.
func (c Config) Inputs() model.Inputs {
	scenario := model.Scenario(c.General.Scenario)
	if s, err := model.ParseScenario(c.General.Scenario); err == nil {
		scenario = s
	}
	return model.Inputs{
		AlumniPool:        c.Alumni.Pool,
		GraduatesPerYear:  c.Alumni.GraduatesPerYear,
		FreshFee:          c.Fees.Fresh,
		LifetimeFee:       c.Fees.Lifetime,
		RenewableFee:      c.Fees.Renewable,
		RenewalCycleYears: c.Fees.RenewalCycleYears,
		Scenario:          scenario,
		PortalCost:        c.Costs.Portal,
		AuditCost:         c.Costs.Audit,
		MeetingCost:       c.Costs.Meeting,
		InterestPercent:   c.Finance.InterestPercent,
		Donations:         c.Finance.Donations,
		HorizonYears:      c.General.HorizonYears,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "osacorpus")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "osacorpus")
}

// Path returns the full path to the config file. OSACORPUS_CONFIG wins
// over the XDG location.
func Path() string {
	if p := os.Getenv("OSACORPUS_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Keys missing from the file keep their default values.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user or XDG dir
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to Path().
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating parent directories.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFile
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
