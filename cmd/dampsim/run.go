package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/dampsim/internal/config"
	"github.com/san-kum/dampsim/internal/export"
	"github.com/san-kum/dampsim/internal/logger"
	"github.com/san-kum/dampsim/internal/metrics"
	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/plot"
	"github.com/san-kum/dampsim/internal/regime"
	"github.com/san-kum/dampsim/internal/viz"
)

const (
	csvName  = "trajectories.csv"
	jsonName = "run.json"

	chartWidth  = 72
	chartHeight = 15
)

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	log := logger.ForFormat(cfg.Log.Format, cfg.Log.Level, cmd.ErrOrStderr())
	logger.SetDefault(log)
	out := cmd.OutOrStdout()

	rc, err := cfg.RegimeConfig()
	if err != nil {
		return err
	}

	log.Info("simulating",
		"mass", rc.Mass,
		"stiffness", rc.Stiffness,
		"x0", rc.X0,
		"v0", rc.V0,
		"t_max", rc.Grid.TMax,
		"dt", rc.Grid.Dt,
		"regimes", len(rc.Table))

	results, err := regime.RunAll(rc)
	if err != nil {
		return err
	}

	// fewer than ten steps per period
	period := physics.NewDampedOscillator(rc.Mass, rc.Stiffness, 0).NaturalPeriod()
	if rc.Grid.Dt > period/10 {
		log.Warn("timestep is coarse for the natural period",
			"dt", rc.Grid.Dt,
			"period", period)
	}

	reportResults(log, results)

	critical, err := physics.CriticalDamping(rc.Stiffness, rc.Mass)
	if err != nil {
		return err
	}

	if err := writeArtifacts(log, cfg, rc, critical, results); err != nil {
		return err
	}

	if cfg.Output.ASCII {
		fmt.Fprintln(out, viz.DisplacementChart(results, chartWidth, chartHeight))
		for _, res := range results {
			fmt.Fprintln(out, viz.PhasePortrait(res, chartWidth/2, chartHeight))
		}
	}
	if cfg.Output.Summary {
		fmt.Fprintln(out, viz.SummaryTable(metrics.SummarizeAll(results)))
	}

	fmt.Fprintf(out, "Answer: %g\n", critical)
	return nil
}

func reportResults(log *slog.Logger, results regime.Results) {
	for _, res := range results {
		final := res.Trajectory.Final()
		log.Info("regime complete",
			"regime", res.Label.String(),
			"damping", res.Damping,
			"samples", res.Trajectory.Len(),
			"final_displacement", final.X[physics.PositionIndex],
			"finite", res.Trajectory.Finite())

		if i := res.Trajectory.FirstNonFinite(); i >= 0 {
			log.Warn("trajectory diverged",
				"regime", res.Label.String(),
				"index", i,
				"time", res.Trajectory.Times[i])
		}

		osc := res.Oscillator
		if got := regime.Classify(osc.Mass, osc.Stiffness, osc.Damping); got != res.Label {
			log.Warn("damping does not match its label",
				"regime", res.Label.String(),
				"damping", res.Damping,
				"classified", got.String())
		}
	}
}

func writeArtifacts(log *slog.Logger, cfg *config.Config, rc regime.Config, critical float64, results regime.Results) error {
	dir := cfg.Output.Dir

	paths, err := plot.SaveAll(dir, cfg.Output.Format, results)
	if err != nil {
		return fmt.Errorf("failed to save plots: %w", err)
	}
	for _, p := range paths {
		log.Info("wrote figure", "path", p)
	}

	if cfg.Output.CSV {
		path := filepath.Join(dir, csvName)
		if err := export.SaveCSV(path, results); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}
		log.Info("wrote trajectories", "path", path)
	}

	if cfg.Output.JSON {
		path := filepath.Join(dir, jsonName)
		if err := export.SaveJSON(path, export.NewRun(rc, critical, results)); err != nil {
			return fmt.Errorf("failed to export json: %w", err)
		}
		log.Info("wrote run", "path", path)
	}

	return nil
}
