package interact

import (
	"errors"
	"fmt"
	"math"
	"time"

	"cubegrid/internal/scene"
	"cubegrid/internal/tween"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoScene     = errors.New("interact: nil scene")
	ErrNoCamera    = errors.New("interact: nil camera")
	ErrNoTweens    = errors.New("interact: nil tween engine")
	ErrBadConfig   = errors.New("interact: invalid config")
	ErrBadViewport = errors.New("interact: viewport must be positive")
)

// Config holds the fixed parameters of hover and click handling.
type Config struct {
	HighlightColor scene.Color

	// Click sequence: camera to cell+CameraOffset, then a bob of BobHeight.
	CameraOffset   mgl32.Vec3
	CameraDuration time.Duration
	BobHeight      float32
	BobDuration    time.Duration

	// Focus moves the camera to cell+FocusOffset without a bob.
	FocusOffset   mgl32.Vec3
	FocusDuration time.Duration

	Ease string

	// Radians of orbit per viewport height of drag, and dolly factor per wheel notch.
	OrbitSpeed float32
	ZoomStep   float32
}

// DefaultConfig returns the stock highlight color, offsets and timings.
func DefaultConfig() Config {
	return Config{
		HighlightColor: scene.Red,
		CameraOffset:   mgl32.Vec3{1, 1, 1},
		CameraDuration: time.Second,
		BobHeight:      0.4,
		BobDuration:    500 * time.Millisecond,
		FocusOffset:    mgl32.Vec3{2, 1, 2},
		FocusDuration:  time.Second,
		Ease:           "power2.inOut",
		OrbitSpeed:     2 * math.Pi,
		ZoomStep:       0.95,
	}
}

func (c Config) validate() (tween.Ease, error) {
	if c.CameraDuration <= 0 || c.BobDuration <= 0 || c.FocusDuration <= 0 {
		return nil, fmt.Errorf("%w: durations must be positive", ErrBadConfig)
	}
	if c.ZoomStep <= 0 || c.ZoomStep > 1 {
		return nil, fmt.Errorf("%w: zoom step %v not in (0,1]", ErrBadConfig, c.ZoomStep)
	}
	ease, err := tween.ParseEase(c.Ease)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return ease, nil
}
