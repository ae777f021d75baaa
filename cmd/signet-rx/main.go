package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/five82/signet-rx/internal/app"
	"github.com/five82/signet-rx/internal/demo"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "signet-rx: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "signet-rx",
		Short:         "Live SDR receiver dashboard",
		Long:          "signet-rx shows receiver status pushed by the SIGNET backend, with a spectrum analyzer and S-meters.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/signet-rx/config.toml)")
	root.Flags().StringVar(&opts.Layout, "layout", "", "dashboard layout: alpha or beta")
	root.Flags().IntVar(&opts.FPS, "fps", 0, "frame rate, 1-120 (default from config)")

	root.AddCommand(newDemoServerCmd(), newSnapshotCmd())
	return root
}

func newDemoServerCmd() *cobra.Command {
	var (
		bind     string
		interval time.Duration
		manual   bool
		mode     string
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "demo-server",
		Short: "Serve a simulated receiver backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.New()
			logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			profile := demo.Broadcast
			if manual {
				profile = demo.Manual
			}
			gen := demo.NewGenerator(nil, profile, strings.ToUpper(mode))
			server := demo.NewServer(gen, demo.Options{Interval: interval, Logger: logger})
			return server.ListenAndServe(cmd.Context(), bind)
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "127.0.0.1:8088", "listen address")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "state publish interval")
	cmd.Flags().BoolVar(&manual, "manual", false, "emulate the manual narrowband profile")
	cmd.Flags().StringVar(&mode, "mode", "FM_WX", "receiver mode: FM_WX, WX_LIVE, WX_ALERT or SAME_ONLY")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every published event")
	return cmd
}

func newSnapshotCmd() *cobra.Command {
	var (
		out  string
		opts app.SnapshotOptions
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one demo spectrum frame to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.WriteSnapshot(out, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "spectrum.png", "output PNG path")
	cmd.Flags().IntVar(&opts.Width, "width", 640, "image width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 240, "image height in pixels")
	cmd.Flags().IntVar(&opts.Frames, "frames", 90, "animation frames to run before drawing")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "demo jitter seed")
	return cmd
}
