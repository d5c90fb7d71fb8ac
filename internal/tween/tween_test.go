package tween

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseEase(t *testing.T) {
	tests := []struct {
		name string
		p    float32
		want float64
	}{
		{"none", 0.3, 0.3},
		{"linear", 0.7, 0.7},
		{"power1.in", 0.5, 0.25},
		{"power2.in", 0.5, 0.125},
		{"power2.out", 0.5, 0.875},
		{"power2", 0.5, 0.875},
		{"power2.inOut", 0.25, 0.0625},
		{"power2.inOut", 0.5, 0.5},
		{"power2.inOut", 0.75, 0.9375},
		{"power1.inOut", 0.25, 0.125},
	}
	for _, tt := range tests {
		ease, err := ParseEase(tt.name)
		if err != nil {
			t.Fatalf("ParseEase(%q): %v", tt.name, err)
		}
		if got := Progress(ease, tt.p); math.Abs(float64(got)-tt.want) > 1e-6 {
			t.Fatalf("%s(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestParseEaseRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "bounce", "power0.in", "power5.inOut", "power2.sideways", "powerX"} {
		if _, err := ParseEase(name); !errors.Is(err, ErrUnknownEase) {
			t.Fatalf("ParseEase(%q) err = %v, want ErrUnknownEase", name, err)
		}
	}
}

func TestEaseEndpoints(t *testing.T) {
	for name, e := range powerEases {
		lo, hi := Progress(e, 0), Progress(e, 1)
		if math.Abs(float64(lo)) > 1e-6 || math.Abs(float64(hi)-1) > 1e-6 {
			t.Fatalf("%s endpoints = %v,%v", name, lo, hi)
		}
	}
}

func TestEaseDurationScales(t *testing.T) {
	e, err := ParseEase("power2.inOut")
	if err != nil {
		t.Fatalf("ParseEase: %v", err)
	}
	// A quarter of a 0.5s tween from 1 to 1.4 is 1 + 0.4*0.0625.
	if got := e(0.125, 1, 0.4, 0.5); math.Abs(float64(got)-1.025) > 1e-6 {
		t.Fatalf("eased value = %v, want 1.025", got)
	}
}

func mustEase(t *testing.T, name string) Ease {
	t.Helper()
	e, err := ParseEase(name)
	if err != nil {
		t.Fatalf("ParseEase(%q): %v", name, err)
	}
	return e
}

func TestStepLandsExactlyOnDestination(t *testing.T) {
	v := mgl32.Vec3{0, 0, 5}
	dest := mgl32.Vec3{3.1, 2.2, 4.3}
	s := To(&v, dest, time.Second, mustEase(t, "power2.inOut"))

	for i := 0; i < 9; i++ {
		if _, done := s.advance(100 * time.Millisecond); done {
			t.Fatalf("finished early at frame %d", i)
		}
	}
	if _, done := s.advance(100 * time.Millisecond); !done {
		t.Fatal("expected step to finish")
	}
	if v != dest {
		t.Fatalf("v = %v, want %v", v, dest)
	}
}

func TestStepOnlyWritesSelectedAxes(t *testing.T) {
	v := mgl32.Vec3{1, 1, 1}
	s := ToAxes(&v, mgl32.Vec3{9, 5, 9}, AxisY, time.Second, Linear)
	s.advance(500 * time.Millisecond)
	if v.X() != 1 || v.Z() != 1 {
		t.Fatalf("unselected axes moved: %v", v)
	}
	if v.Y() != 3 {
		t.Fatalf("y = %v, want 3", v.Y())
	}
}

func TestStepZeroDurationJumps(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	s := To(&v, mgl32.Vec3{4, 5, 6}, 0, Linear)
	left, done := s.advance(10 * time.Millisecond)
	if !done || left != 10*time.Millisecond {
		t.Fatalf("done = %v leftover = %v", done, left)
	}
	if v != (mgl32.Vec3{4, 5, 6}) {
		t.Fatalf("v = %v", v)
	}
}

func TestStepSamplesStartWhenFirstAdvanced(t *testing.T) {
	v := mgl32.Vec3{}
	s := To(&v, mgl32.Vec3{10, 0, 0}, time.Second, Linear)
	v = mgl32.Vec3{4, 0, 0}
	s.advance(500 * time.Millisecond)
	if v.X() != 7 {
		t.Fatalf("x = %v, want 7", v.X())
	}
}

func TestTimelineRunsStepsInOrder(t *testing.T) {
	a := mgl32.Vec3{}
	b := mgl32.Vec3{}
	var order []string
	completed := 0

	tl := NewTimeline().
		Then(To(&a, mgl32.Vec3{1, 1, 1}, time.Second, Linear).OnUpdate(func() { order = append(order, "a") })).
		Then(To(&b, mgl32.Vec3{2, 2, 2}, 500*time.Millisecond, Linear).OnUpdate(func() { order = append(order, "b") })).
		OnComplete(func() { completed++ })

	tl.Advance(600 * time.Millisecond)
	if b != (mgl32.Vec3{}) {
		t.Fatalf("second step started before first finished: %v", b)
	}
	if tl.Index() != 0 {
		t.Fatalf("index = %d, want 0", tl.Index())
	}

	// 400ms finishes the first step, the remaining 200ms go to the second.
	tl.Advance(600 * time.Millisecond)
	if a != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("a = %v", a)
	}
	if got := b.X(); math.Abs(float64(got)-0.8) > 1e-6 {
		t.Fatalf("b.x = %v, want 0.8", got)
	}

	if !tl.Advance(time.Second) {
		t.Fatal("expected timeline to finish")
	}
	if !tl.Advance(time.Second) || completed != 1 {
		t.Fatalf("completed = %d, want 1", completed)
	}

	seenB := false
	for _, s := range order {
		if s == "b" {
			seenB = true
		} else if seenB {
			t.Fatalf("step a updated after step b started: %v", order)
		}
	}
}

func TestEngineAdvancesTimelinesIndependently(t *testing.T) {
	e := NewEngine()
	a := mgl32.Vec3{}
	b := mgl32.Vec3{}
	e.Play(NewTimeline().Then(To(&a, mgl32.Vec3{1, 0, 0}, time.Second, Linear)))
	e.Play(NewTimeline().Then(To(&b, mgl32.Vec3{0, 1, 0}, 2*time.Second, Linear)))

	e.Advance(time.Second)
	if e.Active() != 1 {
		t.Fatalf("active = %d, want 1", e.Active())
	}
	if a.X() != 1 || b.Y() != 0.5 {
		t.Fatalf("a = %v, b = %v", a, b)
	}

	e.Advance(time.Second)
	if e.Active() != 0 {
		t.Fatalf("active = %d, want 0", e.Active())
	}
}

func TestEngineLastWriterWins(t *testing.T) {
	e := NewEngine()
	v := mgl32.Vec3{}
	e.Play(NewTimeline().Then(To(&v, mgl32.Vec3{1, 1, 1}, time.Second, Linear)))
	e.Play(NewTimeline().Then(To(&v, mgl32.Vec3{9, 9, 9}, time.Second, Linear)))

	e.Advance(time.Second)
	if v != (mgl32.Vec3{9, 9, 9}) {
		t.Fatalf("v = %v, want the later timeline's destination", v)
	}
}

func TestEnginePlayFromCompletion(t *testing.T) {
	e := NewEngine()
	v := mgl32.Vec3{}
	first := NewTimeline().Then(To(&v, mgl32.Vec3{1, 0, 0}, time.Second, Linear))
	first.OnComplete(func() {
		e.Play(NewTimeline().Then(To(&v, mgl32.Vec3{2, 0, 0}, time.Second, Linear)))
	})
	e.Play(first)

	e.Advance(time.Second)
	if e.Active() != 1 {
		t.Fatalf("active = %d, want 1", e.Active())
	}
	e.Advance(time.Second)
	if v.X() != 2 || e.Active() != 0 {
		t.Fatalf("v = %v active = %d", v, e.Active())
	}
}
