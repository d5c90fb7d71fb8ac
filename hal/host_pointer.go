//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll samples Ebiten's mouse state once per tick.
func (in *hostInput) poll() {
	x, y := ebiten.CursorPosition()
	if dx, dy, moved := in.moveTo(x, y); moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		in.emit(Event{Kind: EventOrbit, X: x, Y: y, DX: float64(dx), DY: float64(dy)})
	}

	// A click completes on release, like a browser click.
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.emit(Event{Kind: EventClick, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		in.emit(Event{Kind: EventFocus, X: x, Y: y})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		in.emit(Event{Kind: EventZoom, X: x, Y: y, DY: wy})
	}
}
