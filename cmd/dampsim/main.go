package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/dampsim/internal/config"
	"github.com/san-kum/dampsim/internal/physics"
)

type options struct {
	configFile string
	preset     string
	mass       float64
	stiffness  float64
	pos        float64
	vel        float64
	duration   float64
	dt         float64
	outDir     string
	format     string
	csv        bool
	json       bool
	ascii      bool
	summary    bool
	logLevel   string
	logFormat  string
}

// main runs the damping regime demonstration when no subcommand is given
// and exits with status 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "dampsim",
		Short:        "damped harmonic oscillator in three damping regimes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runDemo(cmd, cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.preset, "preset", "", "use preset configuration")
	pf.Float64Var(&opts.mass, "mass", config.DefaultMass, "mass m")
	pf.Float64Var(&opts.stiffness, "stiffness", config.DefaultStiffness, "spring constant k")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "log format (text|json)")

	f := rootCmd.Flags()
	f.Float64Var(&opts.pos, "x0", config.DefaultPos, "initial displacement")
	f.Float64Var(&opts.vel, "v0", config.DefaultVel, "initial velocity")
	f.Float64Var(&opts.duration, "time", config.DefaultDuration, "duration")
	f.Float64Var(&opts.dt, "dt", config.DefaultDt, "timestep")
	f.StringVar(&opts.outDir, "out", ".", "output directory")
	f.StringVar(&opts.format, "format", config.DefaultFormat, "image format ("+strings.Join(config.Formats, "|")+")")
	f.BoolVar(&opts.csv, "csv", false, "write trajectories.csv")
	f.BoolVar(&opts.json, "json", false, "write run.json")
	f.BoolVar(&opts.ascii, "ascii", false, "draw terminal charts")
	f.BoolVar(&opts.summary, "summary", false, "print per-regime metrics")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	criticalCmd := &cobra.Command{
		Use:   "critical",
		Short: "print the critical damping 2√(km)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			c, err := physics.CriticalDamping(cfg.Stiffness, cfg.Mass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", c)
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	rootCmd.AddCommand(presetsCmd, criticalCmd, configCmd)
	return rootCmd
}

// resolve layers defaults, preset, config file, environment and the flags
// set on the command line, in that order.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
	}

	if o.configFile != "" {
		loaded, err := config.LoadOnto(o.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Mass = o.mass
	}
	if flags.Changed("stiffness") {
		cfg.Stiffness = o.stiffness
	}
	if flags.Changed("x0") {
		cfg.InitState.Pos = o.pos
	}
	if flags.Changed("v0") {
		cfg.InitState.Vel = o.vel
	}
	if flags.Changed("time") {
		cfg.Duration = o.duration
	}
	if flags.Changed("dt") {
		cfg.Dt = o.dt
	}
	if flags.Changed("out") {
		cfg.Output.Dir = o.outDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("csv") {
		cfg.Output.CSV = o.csv
	}
	if flags.Changed("json") {
		cfg.Output.JSON = o.json
	}
	if flags.Changed("ascii") {
		cfg.Output.ASCII = o.ascii
	}
	if flags.Changed("summary") {
		cfg.Output.Summary = o.summary
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
