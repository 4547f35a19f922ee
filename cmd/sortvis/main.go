package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortvis/internal/algo"
	"github.com/san-kum/sortvis/internal/apperrors"
	"github.com/san-kum/sortvis/internal/bars"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/export"
	"github.com/san-kum/sortvis/internal/gui"
	"github.com/san-kum/sortvis/internal/present"
	"github.com/san-kum/sortvis/internal/scenario"
	"github.com/san-kum/sortvis/internal/sim"
	"github.com/san-kum/sortvis/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	os.Exit(apperrors.ExitCode(err))
}

type app struct {
	settings
	logger zerolog.Logger

	plot   bool
	svg    string
	trials int
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "sortvis",
		Short:         "step-by-step sorting algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(os.Stderr, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		// No subcommand opens the window.
		RunE: a.runGUI,
	}
	a.register(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the visualizer window",
		Args:  cobra.NoArgs,
		RunE:  a.runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the visualizer in the terminal",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort one shuffle headlessly and report counters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runHeadless,
	}
	runCmd.Flags().BoolVar(&a.plot, "plot", true, "plot the array and per-step swaps")
	runCmd.Flags().StringVar(&a.svg, "svg", "", "write the sorted frame as svg to this path (- for stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare every algorithm over the same shuffles",
		Args:  cobra.NoArgs,
		RunE:  a.runBench,
	}
	benchCmd.Flags().IntVar(&a.trials, "trials", 10, "shuffles per algorithm")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of headless sorts",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runScenario,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listKinds(cmd.OutOrStdout())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd.OutOrStdout())
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list colour themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range present.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "write the effective settings to a yaml config file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInitConfig,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, benchCmd, scenarioCmd, algorithmsCmd, presetsCmd, themesCmd, initCmd)
	return rootCmd
}

func (a *app) runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	c, err := newController(cfg, a.logger)
	if err != nil {
		return err
	}

	opts := gui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.Window.FPS,
	}
	layout := present.Layout{Margin: cfg.Window.Margin, Gap: 1}
	return gui.Run(cmd.Context(), c, opts, layout, present.GetTheme(cfg.Theme), a.logger)
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	if !a.explicitBars(cmd) {
		cfg.Bars = config.DefaultTUIBars
	}
	// the terminal belongs to the program, so nothing may log to it
	c, err := newController(cfg, zerolog.Nop())
	if err != nil {
		return err
	}
	if err := tui.Run(cmd.Context(), c, present.GetTheme(cfg.Theme)); err != nil {
		return apperrors.NewInitError("terminal", err)
	}
	return nil
}

// swapTrace records how many swaps and writes each step made.
type swapTrace struct {
	last  int
	moves []float64
}

func (t *swapTrace) OnStep(_ int, s bars.Counters) {
	total := s.Swaps + s.Writes
	t.moves = append(t.moves, float64(total-t.last))
	t.last = total
}

func (a *app) runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		kind, err := parseAlgorithm(args[0])
		if err != nil {
			return err
		}
		cfg.Algorithm = kind.String()
	}

	c, err := newController(cfg, a.logger)
	if err != nil {
		return err
	}
	trace := &swapTrace{}
	c.AddObserver(trace)

	before := toFloats(c.Values())
	res, err := c.RunToCompletion(cmd.Context(), sim.StepBudget(c.Len()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.svg == "-" {
		// stdout carries only the document
		_, err := renderSVG(c, cfg).WriteTo(out)
		return err
	}

	fmt.Fprintf(out, "%s on %d bars\n", res.Algorithm.Title(), res.Bars)
	fmt.Fprintf(out, "  steps:       %d\n", res.Steps)
	fmt.Fprintf(out, "  comparisons: %d\n", res.Comparisons)
	fmt.Fprintf(out, "  swaps:       %d\n", res.Swaps)
	fmt.Fprintf(out, "  writes:      %d\n", res.Writes)

	if a.svg != "" {
		if err := renderSVG(c, cfg).WriteFile(a.svg); err != nil {
			return err
		}
		fmt.Fprintf(out, "  frame:       %s\n", a.svg)
	}

	if !a.plot {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, plot(before, 10, "before"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, plot(toFloats(c.Values()), 10, "after"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, plot(trace.moves, 8, "swaps + writes per step"))
	return nil
}

func renderSVG(c *sim.Controller, cfg *config.Config) *export.SVG {
	frame := export.NewSVG(cfg.Window.Width, cfg.Window.Height)
	layout := present.Layout{Margin: cfg.Window.Margin, Gap: 1}
	present.DrawFrame(frame, c, layout, present.GetTheme(cfg.Theme).Palette)
	return frame
}

func plot(data []float64, height int, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func toFloats(vs []int) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func (a *app) runBench(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	tc := scenario.TrialConfig{Bars: cfg.Bars, Trials: a.trials, Seed: cfg.Seed}
	sums, err := scenario.Compare(cmd.Context(), algo.Kinds(), tc, a.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %d bars, %d trials\n\n", cfg.Bars, a.trials)
	return writeSummaries(out, sums)
}

func writeSummaries(out io.Writer, sums []scenario.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tMAX STEPS\tCOMPARISONS\tSWAPS\tWRITES")
	for _, s := range sums {
		fmt.Fprintf(w, "%s\t%.1f\t%d\t%.1f\t%.1f\t%.1f\n",
			s.Algorithm, s.MeanSteps, s.MaxSteps, s.MeanComparisons, s.MeanSwaps, s.MeanWrites)
	}
	return w.Flush()
}

func (a *app) runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.LoadScenario(args[0])
	if err != nil {
		return err
	}
	results, err := scenario.RunScenario(cmd.Context(), sc, a.logger)

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "%s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)
	if werr := writeResults(out, results); werr != nil && err == nil {
		err = werr
	}
	return err
}

func writeResults(out io.Writer, results []sim.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tBARS\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
			i+1, r.Algorithm, r.Bars, r.Steps, r.Comparisons, r.Swaps, r.Writes)
	}
	return w.Flush()
}

func (a *app) runInitConfig(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

func listKinds(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, k := range algo.Kinds() {
		fmt.Fprintf(w, "%s\t%s\n", k, k.Title())
	}
	w.Flush()
}

func listPresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBARS\tSPEED\tALGORITHM\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", name, p.Bars, p.Speed, p.Algorithm, p.Theme)
	}
	return w.Flush()
}
