package tween

import "time"

// Timeline runs its steps strictly one after another.
type Timeline struct {
	steps      []*Step
	cur        int
	done       bool
	onComplete func()
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Then appends a step that starts once every previous step has finished.
func (tl *Timeline) Then(s *Step) *Timeline {
	tl.steps = append(tl.steps, s)
	return tl
}

// OnComplete registers fn to run once, after the last step finishes.
func (tl *Timeline) OnComplete(fn func()) *Timeline {
	tl.onComplete = fn
	return tl
}

// Index reports the position of the running step, or len(steps) once done.
func (tl *Timeline) Index() int { return tl.cur }

func (tl *Timeline) Len() int { return len(tl.steps) }

func (tl *Timeline) Done() bool { return tl.done }

// Advance moves the timeline forward by dt and reports whether it has finished.
func (tl *Timeline) Advance(dt time.Duration) bool {
	if tl.done {
		return true
	}
	for tl.cur < len(tl.steps) {
		left, finished := tl.steps[tl.cur].advance(dt)
		if !finished {
			return false
		}
		tl.cur++
		dt = left
	}

	tl.done = true
	if tl.onComplete != nil {
		tl.onComplete()
	}
	return true
}
