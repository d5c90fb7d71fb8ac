package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"cubegrid/app"
	"cubegrid/hal"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		click    string
	)
	cfg := app.DefaultConfig()

	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&window.Width, "width", 800, "Viewport width in pixels.")
	flag.IntVar(&window.Height, "height", 600, "Viewport height in pixels.")
	flag.IntVar(&cfg.RenderScale, "scale", cfg.RenderScale, "Render at 1/scale of the viewport resolution.")
	flag.StringVar(&cfg.Interaction.Ease, "ease", cfg.Interaction.Ease, "Ease curve for click animations (e.g. power2.inOut, none).")
	flag.StringVar(&click, "click", "", "Headless only: click at pixel x,y on the first tick.")
	flag.Parse()

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg)
	}

	if headless.Enabled {
		headless.Width, headless.Height = window.Width, window.Height
		if click != "" {
			x, y, err := parsePoint(click)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			headless.Script = append(headless.Script,
				hal.ScriptEvent{Tick: 1, Event: hal.Event{Kind: hal.EventPointerMove, X: x, Y: y}},
				hal.ScriptEvent{Tick: 1, Event: hal.Event{Kind: hal.EventClick, X: x, Y: y}},
			)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, window); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parsePoint(s string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q: want x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}
