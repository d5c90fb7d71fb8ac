// Package interact turns pointer and window events into highlight changes and
// camera/cell animations on a cube grid.
package interact

import (
	"fmt"
	"math"
	"time"

	"cubegrid/hal"
	"cubegrid/internal/scene"
	"cubegrid/internal/tween"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is a render target that follows the viewport size.
type Surface interface {
	SetSize(width, height int)
}

// Deps are the collaborators a Controller drives. Controls, Surface and
// Logger are optional.
type Deps struct {
	Scene    *scene.Scene
	Camera   *scene.Camera
	Controls *scene.OrbitControls
	Tweens   *tween.Engine
	Surface  Surface
	Logger   hal.Logger
}

// Controller owns the interaction state of one scene.
//
// It is not safe for concurrent use; all methods run on the frame loop.
type Controller struct {
	cfg  Config
	ease tween.Ease

	scene    *scene.Scene
	camera   *scene.Camera
	controls *scene.OrbitControls
	tweens   *tween.Engine
	surface  Surface
	log      hal.Logger

	width   int
	height  int
	pointer mgl32.Vec2

	highlighted *scene.Cell
	inFlight    map[*scene.Cell]struct{}
}

// New wires a Controller to d and sizes it to the initial viewport.
func New(d Deps, cfg Config, width, height int) (*Controller, error) {
	switch {
	case d.Scene == nil:
		return nil, ErrNoScene
	case d.Camera == nil:
		return nil, ErrNoCamera
	case d.Tweens == nil:
		return nil, ErrNoTweens
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("%w: %dx%d", ErrBadViewport, width, height)
	}
	ease, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		ease:     ease,
		scene:    d.Scene,
		camera:   d.Camera,
		controls: d.Controls,
		tweens:   d.Tweens,
		surface:  d.Surface,
		log:      d.Logger,
		inFlight: make(map[*scene.Cell]struct{}),
	}
	c.Resize(width, height)
	return c, nil
}

// PointerMove updates the hover highlight for a cursor at pixel (x, y).
func (c *Controller) PointerMove(x, y int) {
	c.setPointer(x, y)
	hit, ok := c.pick()

	if c.highlighted != nil {
		c.highlighted.Restore()
	}
	if !ok {
		c.highlighted = nil
		return
	}
	hit.Display = c.cfg.HighlightColor
	c.highlighted = hit
}

// Click starts the camera-move and bob sequence on the cell under (x, y).
// It reports false when nothing was hit or the cell is already animating.
func (c *Controller) Click(x, y int) bool {
	c.setPointer(x, y)
	cell, ok := c.pick()
	if !ok {
		return false
	}
	if _, busy := c.inFlight[cell]; busy {
		return false
	}
	c.inFlight[cell] = struct{}{}

	origin := cell.Position
	raised := origin
	raised[1] += c.cfg.BobHeight

	tl := tween.NewTimeline().
		Then(c.aimStep(origin, c.cfg.CameraOffset, c.cfg.CameraDuration)).
		Then(tween.ToAxes(&cell.Position, raised, tween.AxisY, c.cfg.BobDuration, c.ease)).
		Then(tween.ToAxes(&cell.Position, origin, tween.AxisY, c.cfg.BobDuration, c.ease)).
		OnComplete(func() {
			delete(c.inFlight, cell)
			c.logf("click: %v done", cell)
		})
	c.tweens.Play(tl)
	c.logf("click: %v", cell)
	return true
}

// Focus moves the camera toward the cell under (x, y) without touching the cell.
func (c *Controller) Focus(x, y int) bool {
	c.setPointer(x, y)
	cell, ok := c.pick()
	if !ok {
		return false
	}
	c.MoveCamera(cell)
	return true
}

// MoveCamera glides the camera to cell+FocusOffset, aiming at the cell.
// Unlike Click it has no re-entry guard and no bob.
func (c *Controller) MoveCamera(cell *scene.Cell) {
	if cell == nil {
		return
	}
	c.tweens.Play(tween.NewTimeline().
		Then(c.aimStep(cell.Position, c.cfg.FocusOffset, c.cfg.FocusDuration)))
	c.logf("focus: %v", cell)
}

// aimStep moves the camera to target+offset and keeps it looking at target.
func (c *Controller) aimStep(target, offset mgl32.Vec3, d time.Duration) *tween.Step {
	return tween.To(&c.camera.Position, target.Add(offset), d, c.ease).OnUpdate(func() {
		c.camera.LookAt(target)
		if c.controls != nil {
			c.controls.Target = target
			c.controls.Update()
		}
	})
}

// Orbit rotates the camera around the controls target for a drag of (dx, dy) pixels.
func (c *Controller) Orbit(dx, dy float64) {
	if c.controls == nil {
		return
	}
	k := c.cfg.OrbitSpeed / float32(c.height)
	c.controls.Rotate(-float32(dx)*k, -float32(dy)*k)
	c.controls.Update()
}

// Zoom dollies toward the controls target for positive notches and away for negative.
func (c *Controller) Zoom(notches float64) {
	if c.controls == nil || notches == 0 {
		return
	}
	c.controls.Dolly(float32(math.Pow(float64(c.cfg.ZoomStep), notches)))
	c.controls.Update()
}

// Resize follows a viewport change. Non-positive sizes (a minimized window) are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.camera.Aspect = float32(width) / float32(height)
	c.camera.UpdateProjection()
	if c.surface != nil {
		c.surface.SetSize(width, height)
	}
}

// Advance moves every running animation forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	c.tweens.Advance(dt)
}

// Highlighted returns the cell under the pointer, or nil.
func (c *Controller) Highlighted() *scene.Cell { return c.highlighted }

// Animating reports whether cell is inside a click sequence.
func (c *Controller) Animating(cell *scene.Cell) bool {
	_, ok := c.inFlight[cell]
	return ok
}

// InFlight reports how many cells are inside a click sequence.
func (c *Controller) InFlight() int { return len(c.inFlight) }

// Pointer returns the last pointer position in normalized device coordinates.
func (c *Controller) Pointer() mgl32.Vec2 { return c.pointer }

// Viewport returns the current viewport size in pixels.
func (c *Controller) Viewport() (width, height int) { return c.width, c.height }

func (c *Controller) setPointer(x, y int) {
	c.pointer = scene.PixelToNDC(float32(x), float32(y), c.width, c.height)
}

func (c *Controller) pick() (*scene.Cell, bool) {
	hit, ok := c.scene.Intersect(c.camera.Ray(c.pointer))
	if !ok {
		return nil, false
	}
	return hit.Cell, true
}

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}
