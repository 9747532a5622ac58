package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/san-kum/povdisplay/internal/config"
	"github.com/san-kum/povdisplay/internal/control"
	"github.com/san-kum/povdisplay/internal/display"
	"github.com/san-kum/povdisplay/internal/export"
	"github.com/san-kum/povdisplay/internal/logging"
	"github.com/san-kum/povdisplay/internal/recorder"
	"github.com/san-kum/povdisplay/internal/trace"
	"github.com/san-kum/povdisplay/internal/tui"
	"github.com/san-kum/povdisplay/internal/window"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	width      int
	height     int
	logFile    string
	verbosity  int
	paused     bool
	theme      string
	// Window
	scale int
	// Record
	outFile     string
	recordScale int
	wireframe   bool
	// Trace
	plotWidth  int
	plotHeight int
)

// main registers the commands and runs the terminal presenter when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "povdisplay",
		Short:        "animated line, cube and text on a monochrome framebuffer",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	pf.IntVar(&width, "width", config.DefaultWidth, "buffer width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "buffer height in pixels")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
	pf.CountVarP(&verbosity, "verbose", "v", "log verbosity (repeat for more)")

	rootCmd.Flags().BoolVar(&paused, "paused", false, "start with the animation stopped")
	rootCmd.Flags().StringVar(&theme, "theme", tui.ThemePhosphor.Name, fmt.Sprintf("colour theme %v", tui.ThemeNames()))

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "animate in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&paused, "paused", false, "start with the animation stopped")
	tuiCmd.Flags().StringVar(&theme, "theme", tui.ThemePhosphor.Name, fmt.Sprintf("colour theme %v", tui.ThemeNames()))

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "animate in a resizable desktop window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	windowCmd.Flags().BoolVar(&paused, "paused", false, "start with the animation stopped")
	windowCmd.Flags().IntVar(&scale, "scale", 2, "initial window scale")

	recordCmd := &cobra.Command{
		Use:   "record [frames]",
		Short: "render frames headless and write an animated gif, or the last frame as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVar(&outFile, "out", "povdisplay.gif", "output file")
	recordCmd.Flags().IntVar(&recordScale, "scale", 1, "output scale")
	recordCmd.Flags().BoolVar(&wireframe, "wireframe", false, "svg output: draw the cube as vector lines instead of pixels")

	traceCmd := &cobra.Command{
		Use:   "trace [frames]",
		Short: "render frames headless and plot coverage and cube depth",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&plotWidth, "plot-width", 60, "plot width in columns (0 for one per frame)")
	traceCmd.Flags().IntVar(&plotHeight, "plot-height", 8, "plot height in rows")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "print the status line for the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			d, err := display.New(cfg)
			if err != nil {
				return err
			}
			fmt.Println(d.StatusMessage())
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, windowCmd, recordCmd, traceCmd, statusCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the preset, the config file and then any
// flags set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func frameCount(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("frames must be a positive integer, got %q", args[0])
	}
	return n, nil
}

func controlsFor(cfg *config.Config) control.Controls {
	ctl := control.Defaults()
	ctl.RandomLines = cfg.RandomLines
	return ctl
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.Open(logFile, verbosity, true)
	if err != nil {
		return err
	}
	defer closeLog()

	clock := tui.NewClock()
	d, err := display.New(cfg, display.WithClock(clock), display.WithLogger(log))
	if err != nil {
		return err
	}
	if !paused {
		d.StartAnimation()
	}
	m := tui.NewModel(d, clock, tui.WithControls(controlsFor(cfg)), tui.WithLogger(log), tui.WithTheme(theme))
	return tui.Run(m)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.Open(logFile, verbosity, false)
	if err != nil {
		return err
	}
	defer closeLog()

	g := window.NewGame(controlsFor(cfg), log)
	d, err := display.New(cfg, display.WithClock(g), display.WithLogger(log))
	if err != nil {
		return err
	}
	g.Attach(d)
	if !paused {
		d.StartAnimation()
	}
	return window.Run(g, "povdisplay", scale)
}

func headless(cmd *cobra.Command) (*config.Config, *display.Display, logr.Logger, func() error, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, logr.Discard(), nil, err
	}
	log, closeLog, err := logging.Open(logFile, verbosity, false)
	if err != nil {
		return nil, nil, logr.Discard(), nil, err
	}
	d, err := display.New(cfg, display.WithLogger(log))
	if err != nil {
		closeLog()
		return nil, nil, logr.Discard(), nil, err
	}
	return cfg, d, log, closeLog, nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	frames, err := frameCount(args, 120)
	if err != nil {
		return err
	}
	cfg, d, log, closeLog, err := headless(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if strings.EqualFold(filepath.Ext(outFile), ".svg") {
		return recordSVG(cfg, d, frames)
	}

	rec, err := recorder.New(cfg.Width, cfg.Height, recordScale, cfg.TickPeriod())
	if err != nil {
		return err
	}
	rec.MaxFrames = frames
	d.StartAnimation()
	for rec.Len() < rec.MaxFrames {
		d.NextFrame()
		rec.Capture(d)
	}
	if err := rec.Save(outFile); err != nil {
		return err
	}
	w, h := rec.Size()
	log.V(1).Info("recorded", "frames", rec.Len(), "out", outFile)
	fmt.Printf("wrote %d frames (%dx%d) to %s\n", rec.Len(), w, h, outFile)
	return nil
}

func recordSVG(cfg *config.Config, d *display.Display, frames int) error {
	d.StartAnimation()
	for i := 0; i < frames; i++ {
		d.NextFrame()
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	if wireframe {
		s := d.Cube().Solid()
		err = export.WireframeToSVG(f, &s, d.Cube().Focal, cfg.Width, cfg.Height, export.Foreground)
	} else {
		err = export.BufferToSVG(f, d.Buffer(), float64(recordScale))
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write svg: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote frame %d to %s\n", d.Frame(), outFile)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	frames, err := frameCount(args, 240)
	if err != nil {
		return err
	}
	_, d, _, closeLog, err := headless(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	tr, err := trace.Run(d, frames)
	if err != nil {
		return err
	}
	plot, err := tr.Plot(plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Print(plot)
	fmt.Println(tr.Summary())
	return nil
}
