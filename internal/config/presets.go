package config

import (
	"sort"

	"github.com/san-kum/dampsim/internal/regime"
)

// Presets maps a name to a complete configuration. Damping values are chosen
// so each table straddles the preset's critical damping 2√(km).
var Presets = map[string]*Config{
	"demo": DefaultConfig(),
	"stiff": withPhysics(25.0, 1.0, 0.005, 10.0, regime.Table{
		{Label: regime.Underdamped, Damping: 2.5},
		{Label: regime.CriticallyDamped, Damping: 10.0},
		{Label: regime.Overdamped, Damping: 25.0},
	}),
	"heavy": withPhysics(1.0, 4.0, 0.01, 40.0, regime.Table{
		{Label: regime.Underdamped, Damping: 1.0},
		{Label: regime.CriticallyDamped, Damping: 4.0},
		{Label: regime.Overdamped, Damping: 10.0},
	}),
	// dt is far above the stability limit; the trajectories diverge
	"unstable": withPhysics(1.0, 1.0, 2.5, 100.0, regime.DefaultTable()),
}

func withPhysics(stiffness, mass, dt, duration float64, table regime.Table) *Config {
	cfg := DefaultConfig()
	cfg.Stiffness = stiffness
	cfg.Mass = mass
	cfg.Dt = dt
	cfg.Duration = duration
	cfg.Regimes = regimesFromTable(table)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
