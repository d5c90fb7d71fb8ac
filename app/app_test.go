package app

import (
	"errors"
	"strings"
	"testing"

	"cubegrid/hal"
	"cubegrid/internal/interact"
)

type testLog struct {
	lines []string
}

func (l *testLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLog) has(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type testFB struct {
	w, h       int
	buf        []byte
	cleared    bool
	panicOnPut bool
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)  { f.cleared = true }

func (f *testFB) Present() error {
	if f.panicOnPut {
		panic("present failed")
	}
	return nil
}

type testHAL struct {
	log    *testLog
	fb     *testFB
	events chan hal.Event
	ticks  chan uint64
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		log:    &testLog{},
		fb:     &testFB{w: w, h: h, buf: make([]byte, w*h*2)},
		events: make(chan hal.Event, 16),
		ticks:  make(chan uint64, 16),
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Time() hal.Time       { return h }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Events() <-chan hal.Event     { return h.events }
func (h *testHAL) Ticks() <-chan uint64         { return h.ticks }

func TestClickRunsToCompletion(t *testing.T) {
	h := newTestHAL(800, 600)
	s, err := newSystem(h, DefaultConfig())
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}
	if !h.log.has("64 cells, 800x600") {
		t.Fatalf("missing startup line: %q", h.log.lines)
	}

	h.events <- hal.Event{Kind: hal.EventPointerMove, X: 400, Y: 300}
	h.events <- hal.Event{Kind: hal.EventClick, X: 400, Y: 300}
	h.ticks <- 1
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.ctrl.InFlight() != 1 {
		t.Fatalf("in flight = %d, want 1", s.ctrl.InFlight())
	}
	if r, _, _ := hal.PixelAt(h.fb, 400, 300); r != 255 {
		t.Fatalf("hovered cell not drawn red: r=%d", r)
	}

	// Ticks are milliseconds; the whole sequence takes two seconds.
	h.ticks <- 2001
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.ctrl.InFlight() != 0 {
		t.Fatalf("in flight = %d, want 0", s.ctrl.InFlight())
	}
	if !h.log.has("click: cell(0,0,3) done") {
		t.Fatalf("missing completion line: %q", h.log.lines)
	}
}

func TestResizeEvent(t *testing.T) {
	h := newTestHAL(800, 600)
	s, err := newSystem(h, DefaultConfig())
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}

	h.events <- hal.Event{Kind: hal.EventResize, Width: 1024, Height: 768}
	if err := s.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if s.camera.Aspect != float32(1024)/float32(768) {
		t.Fatalf("aspect = %v", s.camera.Aspect)
	}
	if w, hh := s.renderer.Size(); w != 1024 || hh != 768 {
		t.Fatalf("renderer = %dx%d", w, hh)
	}
	if !h.log.has("resize: 1024x768") {
		t.Fatalf("missing resize line: %q", h.log.lines)
	}
}

func TestElapsedUsesLatestTick(t *testing.T) {
	h := newTestHAL(80, 60)
	s, err := newSystem(h, DefaultConfig())
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}
	h.ticks <- 5
	h.ticks <- 16
	if d := s.elapsed(); d.Milliseconds() != 16 {
		t.Fatalf("elapsed = %v, want 16ms", d)
	}
	if d := s.elapsed(); d != 0 {
		t.Fatalf("elapsed without ticks = %v", d)
	}
}

func TestBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interaction.Ease = "wobble"
	if _, err := New(newTestHAL(80, 60), cfg); !errors.Is(err, interact.ErrBadConfig) {
		t.Fatalf("err = %v, want ErrBadConfig", err)
	}
}

func TestPanicInFrameBecomesError(t *testing.T) {
	h := newTestHAL(80, 60)
	step, err := New(h, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.fb.panicOnPut = true
	if err := step(); err == nil {
		t.Fatal("expected error from panicking frame")
	}
	if !h.fb.cleared || !h.log.has("cubegrid panic: present failed") {
		t.Fatalf("panic not reported: cleared=%v log=%q", h.fb.cleared, h.log.lines)
	}
}
