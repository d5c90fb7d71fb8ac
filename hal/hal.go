package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Its size follows the host window, so callers must re-read Width and Height
// every frame.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// EventKind identifies a host input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	// EventPointerMove carries the cursor position in X, Y.
	EventPointerMove
	// EventClick is a primary-button click at X, Y.
	EventClick
	// EventFocus is a middle-button click at X, Y.
	EventFocus
	// EventOrbit is a secondary-button drag by DX, DY pixels.
	EventOrbit
	// EventZoom is a wheel movement of DY notches, positive away from the user.
	EventZoom
	// EventResize reports the new viewport in Width, Height.
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "move"
	case EventClick:
		return "click"
	case EventFocus:
		return "focus"
	case EventOrbit:
		return "orbit"
	case EventZoom:
		return "zoom"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is a pointer or window event in viewport pixels.
type Event struct {
	Kind   EventKind
	X, Y   int
	DX, DY float64
	Width  int
	Height int
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides pointer and window events (best-effort on each platform).
type Input interface {
	Events() <-chan Event
}

// TickDuration is the wall time represented by one Time tick.
const TickDuration = time.Millisecond

// Time provides a base tick stream.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the program and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
