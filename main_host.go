//go:build !tinygo && !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"spincube/app"
	"spincube/gfx"
	"spincube/hal"
	"spincube/internal/buildinfo"
	"spincube/internal/snapshot"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

func main() {
	var (
		headless     bool
		hcfg         hal.HeadlessConfig
		snapshotPath string
		verbose      bool
		version      bool
	)
	cfg := app.DefaultConfig()
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write the last frame to `file` on exit (.png, .bmp, .tif, .tiff).")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the build id and frame counter.")
	flag.BoolVar(&cfg.Antialias, "aa", cfg.Antialias, "Antialias with 2x2 supersampling.")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging.")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println("spincube", buildinfo.String())
		return
	}
	if snapshotPath != "" {
		if _, err := snapshot.FormatFor(snapshotPath); err != nil {
			fatal(err)
		}
	}

	var bar *progressbar.ProgressBar
	if headless && hcfg.Ticks > 0 && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = progressbar.Default(int64(hcfg.Ticks), "rendering")
		hcfg.OnFrame = func(uint64) { _ = bar.Add(1) }
	}

	var h hal.HAL
	if headless {
		var err error
		if h, err = hal.NewHeadless(hcfg); err != nil {
			fatal(err)
		}
	} else {
		h = hal.New()
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(hal.LogWriter(h.Logger()), &slog.HandlerOptions{Level: level}))
	if verbose {
		gfx.SetLogger(cfg.Logger)
	}

	a, err := app.New(h, cfg)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if headless {
		err = hal.RunHeadless(ctx, h, a.Run)
	} else {
		err = hal.RunWindow(ctx, h, a.Run)
	}
	if bar != nil {
		_ = bar.Finish()
	}
	cfg.Logger.Info("stopped", "ticks", a.Ticks())

	if snapshotPath != "" {
		if serr := snapshot.WriteFile(snapshotPath, hal.Image(h.Display().Framebuffer())); serr != nil {
			fatal(serr)
		}
		cfg.Logger.Info("snapshot written", "path", snapshotPath)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
