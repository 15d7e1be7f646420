//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/hal"
	"sparkcalc/internal/config"
	"sparkcalc/sparkos/tasks/calculator"
)

func main() {
	var (
		headless   bool
		hz         int
		ticks      uint64
		configPath string
		keys       string
		audio      bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&configPath, "config", "", "YAML config file (default "+config.DefaultFile+" if present).")
	flag.StringVar(&keys, "keys", "", "Headless key script, e.g. '12 + 3 Enter CtrlC'.")
	flag.BoolVar(&audio, "audio", false, "Start with click audio on.")
	flag.Parse()

	if err := run(headless, hz, ticks, configPath, keys, audio); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(headless bool, hz int, ticks uint64, configPath, keys string, audio bool) error {
	path, optional := configPath, false
	if path == "" {
		path, optional = config.DefaultFile, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hz":
			cfg.Hz = hz
		case "audio":
			cfg.Audio = audio
		}
	})
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	host := hal.HostOptions{LogLevel: level}
	appCfg := app.Config{
		Calculator: calculator.Config{
			Locale:    cfg.Locale,
			Audio:     cfg.Audio,
			TapeLines: cfg.TapeLines,
		},
		ExitOnPanic: headless,
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, appCfg) }

	if !headless {
		return hal.RunWindow(newApp, hal.WindowConfig{Host: host, Scale: cfg.Scale})
	}

	script, err := hal.ParseKeyScript(keys)
	if err != nil {
		return err
	}
	// Headless runs must not touch the desktop clipboard.
	host.Clipboard = &hal.MemClipboard{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
		Host:   host,
		Hz:     cfg.Hz,
		Ticks:  ticks,
		Script: script,
	})
}
