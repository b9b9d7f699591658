package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dampsim/internal/dynamo"
	"github.com/san-kum/dampsim/internal/regime"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 1.0
	DefaultPos       = 1.0
	DefaultVel       = 0.0
	DefaultDt        = 0.01
	DefaultDuration  = 20.0
	DefaultFormat    = "png"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Formats lists the accepted image formats.
var Formats = []string{"png", "svg", "pdf"}

type Config struct {
	Mass      float64         `yaml:"mass"`
	Stiffness float64         `yaml:"stiffness"`
	InitState InitStateConfig `yaml:"init_state"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	Regimes   []RegimeConfig  `yaml:"regimes"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

type InitStateConfig struct {
	Pos float64 `yaml:"pos"`
	Vel float64 `yaml:"vel"`
}

type RegimeConfig struct {
	Label   string  `yaml:"label"`
	Damping float64 `yaml:"damping"`
}

type OutputConfig struct {
	Dir     string `yaml:"dir" env:"DAMPSIM_OUT_DIR"`
	Format  string `yaml:"format" env:"DAMPSIM_FORMAT"`
	CSV     bool   `yaml:"csv"`
	JSON    bool   `yaml:"json"`
	ASCII   bool   `yaml:"ascii"`
	Summary bool   `yaml:"summary"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"DAMPSIM_LOG_LEVEL"`
	Format string `yaml:"format" env:"DAMPSIM_LOG_FORMAT"`
}

func DefaultConfig() *Config {
	return &Config{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
		InitState: InitStateConfig{
			Pos: DefaultPos,
			Vel: DefaultVel,
		},
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Regimes:  regimesFromTable(regime.DefaultTable()),
		Output: OutputConfig{
			Dir:    ".",
			Format: DefaultFormat,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a yaml file over the defaults. Keys absent from the file keep
// their default value; a regimes list replaces the default table.
func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads a yaml file over a copy of base.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides output and logging settings from DAMPSIM_* variables.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(&c.Output); err != nil {
		return fmt.Errorf("output env: %w", err)
	}
	if err := env.Parse(&c.Log); err != nil {
		return fmt.Errorf("log env: %w", err)
	}
	return nil
}

// Validate checks the settings that are not physical parameters; those are
// checked by the simulator itself.
func (c *Config) Validate() error {
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("unknown format: %s (available: %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if _, err := c.Table(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Table() (regime.Table, error) {
	table := make(regime.Table, 0, len(c.Regimes))
	for _, r := range c.Regimes {
		label, err := regime.ParseLabel(r.Label)
		if err != nil {
			return nil, err
		}
		table = append(table, regime.Entry{Label: label, Damping: r.Damping})
	}
	return table, nil
}

func (c *Config) Grid() dynamo.Grid {
	return dynamo.Grid{TMax: c.Duration, Dt: c.Dt}
}

// RegimeConfig converts the file layout into the driver's input.
func (c *Config) RegimeConfig() (regime.Config, error) {
	table, err := c.Table()
	if err != nil {
		return regime.Config{}, err
	}
	return regime.Config{
		Mass:      c.Mass,
		Stiffness: c.Stiffness,
		Table:     table,
		X0:        c.InitState.Pos,
		V0:        c.InitState.Vel,
		Grid:      c.Grid(),
	}, nil
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Regimes = append([]RegimeConfig(nil), c.Regimes...)
	return &cp
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func regimesFromTable(t regime.Table) []RegimeConfig {
	out := make([]RegimeConfig, len(t))
	for i, e := range t {
		out[i] = RegimeConfig{Label: e.Label.Key(), Damping: e.Damping}
	}
	return out
}
