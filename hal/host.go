package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	in     *hostInput
	t      *hostTime
}

// New returns a host HAL with a width×height framebuffer.
func New(width, height int) HAL {
	return newHostHAL(os.Stdout, width, height)
}

func newHostHAL(w io.Writer, width, height int) *hostHAL {
	h := &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(width, height),
		in:     newHostInput(),
		t:      newHostTime(),
	}
	// Seed the viewport so the first real resize is detected as a change.
	h.in.width, h.in.height = h.fb.Width(), h.fb.Height()
	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return h.in }
func (h *hostHAL) Time() Time       { return h.t }

// resize follows the host viewport and tells the app about it.
func (h *hostHAL) resize(width, height int) {
	if h.fb.resize(width, height) {
		h.in.resizeTo(h.fb.Width(), h.fb.Height())
	}
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
