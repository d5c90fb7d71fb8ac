package tween

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
)

// Axis selects the vector components a Step writes.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ

	AxisAll = AxisX | AxisY | AxisZ
)

// Step interpolates the selected components of a vector toward a destination.
//
// The start value is sampled when the step first advances, not when it is built,
// so a step queued behind others starts from wherever its target was left.
type Step struct {
	target   *mgl32.Vec3
	to       mgl32.Vec3
	axes     Axis
	duration time.Duration
	ease     Ease
	update   func()

	tweens  [3]*gween.Tween
	elapsed time.Duration
	started bool
}

// To animates every component of target to dest.
func To(target *mgl32.Vec3, dest mgl32.Vec3, d time.Duration, ease Ease) *Step {
	return ToAxes(target, dest, AxisAll, d, ease)
}

// ToAxes animates only the components of target named by axes.
func ToAxes(target *mgl32.Vec3, dest mgl32.Vec3, axes Axis, d time.Duration, ease Ease) *Step {
	if ease == nil {
		ease = Linear
	}
	return &Step{target: target, to: dest, axes: axes, duration: d, ease: ease}
}

// OnUpdate registers fn to run after every write, including the final one.
func (s *Step) OnUpdate(fn func()) *Step {
	s.update = fn
	return s
}

// Duration reports the configured length of the step.
func (s *Step) Duration() time.Duration { return s.duration }

// advance moves the step forward by dt. When the step finishes it returns the
// unused part of dt so the next step can consume it in the same frame.
func (s *Step) advance(dt time.Duration) (leftover time.Duration, finished bool) {
	if !s.started {
		s.start()
	}
	s.elapsed += dt

	if s.elapsed >= s.duration {
		s.finish()
		return s.elapsed - s.duration, true
	}

	at := float32(s.elapsed.Seconds())
	for i, tw := range s.tweens {
		if tw != nil {
			s.target[i], _ = tw.Set(at)
		}
	}
	s.notify()
	return 0, false
}

// start builds one tween per selected axis from the target's current value.
func (s *Step) start() {
	s.started = true
	d := float32(s.duration.Seconds())
	for i := range s.tweens {
		if s.axes&(1<<i) != 0 {
			s.tweens[i] = gween.New(s.target[i], s.to[i], d, s.ease)
		}
	}
}

// finish lands exactly on the destination; easing rounding must not leak into it.
func (s *Step) finish() {
	for i := range s.tweens {
		if s.axes&(1<<i) != 0 {
			s.target[i] = s.to[i]
		}
	}
	s.notify()
}

func (s *Step) notify() {
	if s.update != nil {
		s.update()
	}
}
