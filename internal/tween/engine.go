package tween

import "time"

// Engine drives every playing timeline with the same frame delta.
//
// Timelines are independent: they advance in the order they were played and
// nothing stops two of them from writing the same value in one frame.
type Engine struct {
	playing []*Timeline
}

// NewEngine returns an engine with nothing playing.
func NewEngine() *Engine {
	return &Engine{}
}

// Play starts tl on the next Advance. Nil or finished timelines are ignored.
func (e *Engine) Play(tl *Timeline) {
	if tl == nil || tl.Done() {
		return
	}
	e.playing = append(e.playing, tl)
}

// Active reports how many timelines are still running.
func (e *Engine) Active() int { return len(e.playing) }

// Advance steps all timelines by dt and drops the finished ones.
// Timelines played from a completion callback start on the next Advance.
func (e *Engine) Advance(dt time.Duration) {
	if dt <= 0 || len(e.playing) == 0 {
		return
	}

	running := e.playing
	e.playing = nil

	var kept []*Timeline
	for _, tl := range running {
		if !tl.Advance(dt) {
			kept = append(kept, tl)
		}
	}
	e.playing = append(kept, e.playing...)
}
