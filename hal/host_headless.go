package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	cfg = cfg.withDefaults()
	h := newHostHAL(os.Stdout, cfg.Width, cfg.Height)
	return runHeadless(ctx, h, newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick++
			for _, se := range cfg.Script {
				if se.Tick != tick {
					continue
				}
				if se.Event.Kind == EventResize {
					h.resize(se.Event.Width, se.Event.Height)
					continue
				}
				h.in.emit(se.Event)
			}

			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
