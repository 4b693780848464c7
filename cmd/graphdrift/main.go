package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finnegancarroll/graphdrift/internal/config"
	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/finnegancarroll/graphdrift/internal/logging"
	"github.com/finnegancarroll/graphdrift/internal/metrics"
	"github.com/finnegancarroll/graphdrift/internal/motion"
	"github.com/finnegancarroll/graphdrift/internal/scene"
	"github.com/finnegancarroll/graphdrift/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir      string
	configFile   string
	preset       string
	seed         int64
	policy       string
	crossSeconds float64
	topology     string
	frames       int
	debug        bool
	// run
	realtime bool
	// export-csv / export-json
	outPath string
	// snapshot
	snapshotOut string
	// plot
	vertex int
	// live
	theme string

	logger = zap.NewNop()
)

// main runs the command tree under a signal-cancelled context and exits
// with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. With no subcommand the root
// opens the configured backend.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "graphdrift",
		Short:         "drifting line graph animation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New("graphdrift", debug)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runBackend,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".graphdrift", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&policy, "policy", "", "boundary policy: discard or commit")
	pf.Float64Var(&crossSeconds, "cross-seconds", 0, "seconds for an average vertex to cross the surface")
	pf.StringVar(&topology, "topology", "", "scene topology")
	pf.IntVar(&frames, "frames", 0, "stop after this many frames (0 runs until closed)")
	pf.BoolVar(&debug, "debug", false, "debug logging")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a desktop window",
		RunE:  runWindow,
	}

	glCmd := &cobra.Command{
		Use:   "gl",
		Short: "animate through the OpenGL line pipeline",
		RunE:  runGL,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", viz.ThemeMinimal.Name, fmt.Sprintf("colour theme %v", viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the trace",
		RunE:  runTrace,
	}
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames with the wall clock")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a vertex trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&vertex, "vertex", 0, "vertex index")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate bounce periods",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write one frame as SVG or PNG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshot.svg", "output file (.svg or .png)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	topologiesCmd := &cobra.Command{
		Use:   "topologies",
		Short: "list scene topologies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.ListTopologies() {
				t, _ := scene.GetTopology(name)
				fmt.Printf("  %-10s %3d points %3d edges\n", name, len(t.Points), len(t.Edges))
			}
		},
	}

	rootCmd.AddCommand(windowCmd, glCmd, liveCmd, runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, snapshotCmd, presetsCmd, topologiesCmd)
	return rootCmd
}

// resolveConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("policy") {
		cfg.Policy = policy
	}
	if flags.Changed("cross-seconds") {
		cfg.CrossSeconds = crossSeconds
	}
	if flags.Changed("topology") {
		cfg.Topology = topology
	}
	if flags.Changed("frames") {
		cfg.MaxFrames = frames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// newLoop seeds the configured topology and wires it to a frame loop with
// the default metrics.
func newLoop(cfg *config.Config, fc frame.Config) (*frame.Loop, error) {
	s, err := scene.FromTopology(cfg.Topology)
	if err != nil {
		return nil, err
	}
	s.Randomize(rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15)))

	loop, err := frame.New(s, motion.NewIntegrator(cfg.MotionPolicy()), nil, fc)
	if err != nil {
		return nil, err
	}
	loop.SetLogger(logger.Named("frame"))
	for _, m := range metrics.Defaults() {
		loop.AddMetric(m)
	}

	logger.Debug("scene ready",
		zap.String("topology", cfg.Topology),
		zap.Int64("seed", cfg.Seed),
		zap.String("policy", cfg.Policy),
		zap.Int("points", s.Len()),
		zap.Int("edges", len(s.Edges)),
	)
	return loop, nil
}
