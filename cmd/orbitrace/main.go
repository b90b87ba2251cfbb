package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitrace/internal/config"
	"github.com/san-kum/orbitrace/internal/metrics"
	"github.com/san-kum/orbitrace/internal/race"
	"github.com/san-kum/orbitrace/internal/runner"
	"github.com/san-kum/orbitrace/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	maxTicks   int
	fps        int
	runs       int
	debugLog   string
	outPath    string
)

// main registers the commands and flags, runs the interactive race when no
// subcommand is given, and exits 1 if the command fails.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orbitrace",
		Short: "planets racing around the sun",
		RunE:  runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&debugLog, "debug", "", "write debug log to file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "race without a screen and print the result",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", config.DefaultMaxTicks, "give up after this many ticks")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "race many seeds and tally the winners",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 100, "number of races")
	ensembleCmd.Flags().IntVar(&maxTicks, "max-ticks", config.DefaultMaxTicks, "give up after this many ticks")

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

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print or write the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(runCmd, ensembleCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig resolves defaults, then the preset, then the config file, and
// lets explicitly set flags win over both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
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

	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("max-ticks"); f != nil && (f.Changed || configFile == "") {
		cfg.MaxTicks = maxTicks
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && (f.Changed || configFile == "") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r := race.New(cfg.Params(), cfg.BuildBodies(), rand.New(rand.NewSource(cfg.Seed)))
	return viz.Run(r, cfg.FPS, debugLog)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := runner.New()
	for _, m := range metrics.Defaults() {
		r.AddMetric(m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "racing %d planets to %d laps (seed %d)...\n", len(cfg.Bodies), cfg.Race.LapsToWin, cfg.Seed)
	start := time.Now()

	result, err := r.Run(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "completed in %v\n", time.Since(start))
	fmt.Fprintf(out, "Planet %d wins after %d ticks\n\n", result.Winner+1, result.Ticks)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tDISTANCE\tCOLOR\tORBITS")
	for i, b := range cfg.Bodies {
		fmt.Fprintf(w, "%d\t%.0f\t%s\t%d\n", i+1, b.Distance, b.Color, result.Laps[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range metrics.Defaults() {
		fmt.Fprintf(out, "  %s: %.6f\n", m.Name(), result.Metrics[m.Name()])
	}

	if result.Ticks > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.PlotMany(result.Progress,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.SeriesColors(seriesColors(len(result.Progress))...),
			asciigraph.Caption("progress (rad) per tick")))
	}
	return nil
}

var palette = []asciigraph.AnsiColor{
	asciigraph.Red, asciigraph.Blue, asciigraph.Green, asciigraph.Yellow,
	asciigraph.White,
}

func seriesColors(n int) []asciigraph.AnsiColor {
	colors := make([]asciigraph.AnsiColor, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := runner.NewEnsemble(runs, cfg.Seed)
	start := time.Now()
	results, err := e.Run(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d races in %v (seeds %d..%d)\n\n", runs, time.Since(start), cfg.Seed, cfg.Seed+int64(runs)-1)

	wins := runner.Tally(results, len(cfg.Bodies))
	spread, ticks := 0.0, 0
	for _, r := range results {
		spread += r.Metrics["mean_spread"]
		ticks += r.Ticks
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tDISTANCE\tWINS\tSHARE")
	for i, b := range cfg.Bodies {
		fmt.Fprintf(w, "%d\t%.0f\t%d\t%.1f%%\n", i+1, b.Distance, wins[i], 100*float64(wins[i])/float64(runs))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nmean ticks: %.1f\n", float64(ticks)/float64(runs))
	fmt.Fprintf(out, "mean spread: %.4f rad\n", spread/float64(runs))
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := config.Save(outPath, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
		return nil
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
