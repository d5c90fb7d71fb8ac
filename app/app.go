package app

import (
	"errors"
	"fmt"
	"time"

	"cubegrid/hal"
	"cubegrid/internal/buildinfo"
	"cubegrid/internal/interact"
	"cubegrid/internal/render"
	"cubegrid/internal/scene"
	"cubegrid/internal/tween"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoDisplay = errors.New("app: no framebuffer")

// Config selects the grid, renderer and camera settings of a system.
type Config struct {
	Interaction interact.Config
	GridSize    int
	RenderScale int

	FovY float32
	Near float32
	Far  float32
	Eye  mgl32.Vec3
}

// DefaultConfig returns the stock grid, camera and interaction settings.
func DefaultConfig() Config {
	return Config{
		Interaction: interact.DefaultConfig(),
		GridSize:    scene.GridSize,
		RenderScale: render.DefaultScale,
		FovY:        75,
		Near:        0.1,
		Far:         1000,
		Eye:         mgl32.Vec3{0, 0, 5},
	}
}

type system struct {
	log    hal.Logger
	fb     hal.Framebuffer
	events <-chan hal.Event
	ticks  <-chan uint64

	scene    *scene.Scene
	camera   *scene.Camera
	controls *scene.OrbitControls
	renderer *render.Renderer
	ctrl     *interact.Controller

	lastTick uint64
}

// New builds the scene on h and returns the per-frame step function.
func New(h hal.HAL, cfg Config) (func() error, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.step, nil
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	s := &system{log: h.Logger()}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb == nil {
		return nil, ErrNoDisplay
	}
	if in := h.Input(); in != nil {
		s.events = in.Events()
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}

	if cfg.GridSize <= 0 {
		cfg.GridSize = scene.GridSize
	}
	w, hgt := s.fb.Width(), s.fb.Height()

	s.scene = scene.New()
	scene.Populate(s.scene, cfg.GridSize)

	s.camera = scene.NewCamera(cfg.FovY, float32(w)/float32(hgt), cfg.Near, cfg.Far)
	s.camera.Position = cfg.Eye
	s.controls = scene.NewOrbitControls(s.camera)
	s.controls.Update()

	s.renderer = render.New(w, hgt, cfg.RenderScale)

	ctrl, err := interact.New(interact.Deps{
		Scene:    s.scene,
		Camera:   s.camera,
		Controls: s.controls,
		Tweens:   tween.NewEngine(),
		Surface:  s.renderer,
		Logger:   s.log,
	}, cfg.Interaction, w, hgt)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.ctrl = ctrl

	s.logf("cubegrid %s: %d cells, %dx%d", buildinfo.String(), s.scene.Len(), w, hgt)
	return s, nil
}

func (s *system) step() (err error) {
	defer s.recoverStep(&err)

	s.drainEvents()
	s.ctrl.Advance(s.elapsed())
	return s.renderer.Render(s.scene, s.camera, s.fb)
}

func (s *system) drainEvents() {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			s.handle(ev)
		default:
			return
		}
	}
}

func (s *system) handle(ev hal.Event) {
	switch ev.Kind {
	case hal.EventPointerMove:
		s.ctrl.PointerMove(ev.X, ev.Y)
	case hal.EventClick:
		s.ctrl.Click(ev.X, ev.Y)
	case hal.EventFocus:
		s.ctrl.Focus(ev.X, ev.Y)
	case hal.EventOrbit:
		s.ctrl.Orbit(ev.DX, ev.DY)
	case hal.EventZoom:
		s.ctrl.Zoom(ev.DY)
	case hal.EventResize:
		s.ctrl.Resize(ev.Width, ev.Height)
		s.logf("resize: %dx%d", ev.Width, ev.Height)
	}
}

// elapsed drains the tick stream and converts the progress since the last
// step into wall time.
func (s *system) elapsed() time.Duration {
	latest := s.lastTick
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return s.since(latest)
			}
			if seq > latest {
				latest = seq
			}
		default:
			return s.since(latest)
		}
	}
}

func (s *system) since(latest uint64) time.Duration {
	n := latest - s.lastTick
	s.lastTick = latest
	return time.Duration(n) * hal.TickDuration
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
