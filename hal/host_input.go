package hal

// hostInput queues pointer and window events for the app.
type hostInput struct {
	ch chan Event

	seen   bool
	lastX  int
	lastY  int
	width  int
	height int
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan Event, 256)}
}

func (in *hostInput) Events() <-chan Event { return in.ch }

// emit never blocks; with a full queue the event is dropped.
func (in *hostInput) emit(ev Event) {
	select {
	case in.ch <- ev:
	default:
	}
}

// moveTo reports a cursor move when the position actually changed.
func (in *hostInput) moveTo(x, y int) (dx, dy int, moved bool) {
	if in.seen && x == in.lastX && y == in.lastY {
		return 0, 0, false
	}
	if in.seen {
		dx, dy = x-in.lastX, y-in.lastY
	}
	in.seen = true
	in.lastX, in.lastY = x, y
	in.emit(Event{Kind: EventPointerMove, X: x, Y: y})
	return dx, dy, true
}

// resizeTo reports a viewport change when the size actually changed.
func (in *hostInput) resizeTo(width, height int) bool {
	if width == in.width && height == in.height {
		return false
	}
	in.width, in.height = width, height
	in.emit(Event{Kind: EventResize, Width: width, Height: height})
	return true
}
