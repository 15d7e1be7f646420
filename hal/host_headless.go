//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host  HostOptions
	Hz    int
	Ticks uint64
	// Script is replayed into the keyboard, one event every KeyInterval frames.
	Script      []KeyEvent
	KeyInterval int
	// Clock, if set, replaces the wall clock (reproducible runs).
	Clock func() time.Time
}

// RunHeadless runs the OS without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.KeyInterval <= 0 {
		cfg.KeyInterval = 2
	}

	h := newHost(cfg.Host)
	if cfg.Clock != nil {
		h.t.setClock(cfg.Clock)
	}
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	script := cfg.Script
	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(script) > 0 && frame%uint64(cfg.KeyInterval) == 0 {
				if h.kbd.inject(script[0]) {
					script = script[1:]
				}
			}
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			frame++
			if cfg.Ticks > 0 && frame >= cfg.Ticks {
				return nil
			}
		}
	}
}
