package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"galaxyplot/app"
	"galaxyplot/catalog"
	"galaxyplot/hal"
	"galaxyplot/internal/buildinfo"
	"galaxyplot/internal/config"
	"galaxyplot/internal/logging"
)

// Execute runs the galaxyplot command line against the process streams.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return newRootCmd(cfg).Execute()
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "galaxyplot",
		Short:        "Plot galaxy rotation curves and enclosed mass",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, cfg)
		},
	}

	f := root.Flags()
	f.StringVar(&cfg.Galaxy, "galaxy", cfg.Galaxy, "galaxy to plot instead of prompting (M31 or \"Milky Way\")")
	f.BoolVar(&cfg.Headless, "headless", cfg.Headless, "prompt on the terminal and do not open a window")
	f.StringVar(&cfg.Out, "out", cfg.Out, "write the figure as PNG (requires --headless)")
	f.IntVar(&cfg.Width, "width", cfg.Width, "figure width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "figure height in pixels")
	f.IntVar(&cfg.Scale, "scale", cfg.Scale, "window scale factor")
	f.IntVar(&cfg.TPS, "tps", cfg.TPS, "window ticks per second")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostics level (debug, info, warn, error)")

	root.AddCommand(listCmd(), versionCmd())
	return root
}

func runPlot(cmd *cobra.Command, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.NewStructuredLogger(cmd.ErrOrStderr(), level)

	cat := catalog.Default()
	opts := app.Options{
		Galaxy:   cfg.Galaxy,
		Headless: cfg.Headless,
		Out:      cfg.Out,
		Log:      log,
	}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, cat, catalog.Cosmological(), opts)
	}

	logging.LogOperation(log, "starting",
		slog.String("version", buildinfo.Short()),
		slog.Bool("headless", cfg.Headless),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height))

	if cfg.Headless {
		return runHeadless(cmd, cfg, log, newApp)
	}

	err = hal.RunWindow(hal.WindowConfig{
		Title:  "galaxyplot " + buildinfo.Short(),
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		TPS:    cfg.TPS,
	}, newApp)
	if err != nil {
		logging.LogError(log, "window failed", err)
	}
	return err
}

func runHeadless(cmd *cobra.Command, cfg config.Config, log *slog.Logger, newApp func(hal.HAL) func() error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	err := hal.RunHeadless(ctx, hal.HeadlessConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Hz:     cfg.TPS,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
	}, newApp)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		logging.LogError(log, "headless run failed", err)
	}
	return err
}
