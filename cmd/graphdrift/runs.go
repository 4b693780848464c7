package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/finnegancarroll/graphdrift/internal/analysis"
	"github.com/finnegancarroll/graphdrift/internal/config"
	"github.com/finnegancarroll/graphdrift/internal/frame"
	"github.com/finnegancarroll/graphdrift/internal/storage"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultRunFrames = 600

// simulatedLoop returns a loop whose clock advances one frame interval per
// rendered frame, so headless runs see the configured frame rate. With
// --realtime the wall clock is used instead.
func simulatedLoop(cfg *config.Config) (*frame.Loop, error) {
	fc := cfg.FrameConfig()
	if realtime {
		return newLoop(cfg, fc)
	}

	step := cfg.FrameInterval
	if step <= 0 {
		step = config.DefaultFrameInterval
	}
	mock := clock.NewMock()
	fc.Clock = mock

	loop, err := newLoop(cfg, fc)
	if err != nil {
		return nil, err
	}
	loop.SetRenderer(frame.RendererFunc(func([]float32) error {
		mock.Add(step)
		return nil
	}))
	return loop, nil
}

func frameRun(cfg *config.Config, record bool) frame.RunConfig {
	rc := frame.RunConfig{MaxFrames: cfg.MaxFrames, Record: record}
	if realtime {
		rc.Interval = cfg.FrameInterval
	}
	return rc
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = defaultRunFrames
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	loop, err := simulatedLoop(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s for %d frames...\n", cfg.Topology, cfg.MaxFrames)
	start := time.Now()

	result, err := loop.Run(cmd.Context(), frameRun(cfg, true))
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Warn("run interrupted, saving partial trace", zap.Int("frames", result.Frames))
	}

	runID, err := st.Save(storage.RunInfo{
		Topology:     cfg.Topology,
		Seed:         cfg.Seed,
		CrossSeconds: cfg.CrossSeconds,
		Policy:       cfg.Policy,
	}, result)
	if err != nil {
		return err
	}
	logger.Debug("trace saved", zap.String("run", runID), zap.String("dir", dataDir))

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTOPOLOGY\tTIME\tFRAMES\tCROSS\tPOLICY\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1fs\t%s\t%d\n",
			run.ID,
			run.Topology,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.CrossSeconds,
			run.Policy,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	records, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if vertex < 0 || vertex >= meta.Points {
		return fmt.Errorf("vertex %d out of range (run has %d points)", vertex, meta.Points)
	}

	xs := storage.Series(records, vertex, 0)
	ys := storage.Series(records, vertex, 1)
	if len(xs) < 2 {
		return fmt.Errorf("run %s has too few frames to plot", args[0])
	}

	graph := asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("vertex %d: x (red) y (blue) over %d frames", vertex, len(xs))),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Print(analysis.TrailToASCII(records, vertex, 41, 21))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	records, err := storage.New(dataDir).LoadFrames(args[0])
	if err != nil {
		return err
	}

	periods := analysis.BouncePeriods(records)
	if len(periods) == 0 {
		fmt.Println("no frames recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERTEX\tX FRAMES\tX SECONDS\tY FRAMES\tY SECONDS")
	for _, p := range periods {
		fmt.Fprintf(w, "%d\t%.1f\t%.2f\t%.1f\t%.2f\n", p.Vertex, p.XFrames, p.XSeconds, p.YFrames, p.YSeconds)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return withOutput(func(w io.Writer) error {
		return storage.New(dataDir).ExportCSV(w, args[0])
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return withOutput(func(w io.Writer) error {
		return storage.New(dataDir).ExportJSON(w, args[0])
	})
}

// withOutput hands write the --out file, or stdout when unset.
func withOutput(write func(io.Writer) error) error {
	if outPath == "" {
		return write(os.Stdout)
	}
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
