// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sgrams/config"
	"github.com/katalvlaran/sgrams/engine"
	"github.com/katalvlaran/sgrams/logging"
	"github.com/katalvlaran/sgrams/report"
)

// app is the state shared by every subcommand, built once per invocation
// in the root PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool
	format     string

	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	eng      *engine.Engine
	render   *report.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sgrams",
		Short: "Explore S-Gram state transformation tables",
		Long: "sgrams navigates the fixed catalog of S-Grams (indices 0-11): cyclic\n" +
			"fraction patterns, resolve/inform transitions, traces, analyses and\n" +
			"cross-structure comparison.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "Path to YAML config file")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVar(&a.format, "format", "", "Table format: ascii or markdown (overrides config)")

	root.AddCommand(
		newSummaryCmd(a),
		newShowCmd(a),
		newTransitionCmd(a),
		newTraceCmd(a),
		newAnalyzeCmd(a),
		newCompareCmd(a),
		newRouteCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	// export declares its own --format, which shadows this one.
	if cmd.Root().PersistentFlags().Changed("format") {
		cfg.Output.Format = a.format
	}
	mode, err := report.ParseMode(cfg.Output.Format)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	eng, err := engine.New(engine.WithLogger(log), engine.WithRegisterer(a.registry))
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	a.cfg, a.log, a.eng, a.render = cfg, log, eng, report.New(mode)
	log.Debug("ready", zap.String("command", cmd.Name()), zap.String("format", cfg.Output.Format))

	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// atoi parses positional integer arguments, naming the argument on failure.
func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}

	return n, nil
}
