package hal

import "time"

// hostTime turns wall-clock progress between steps into TickDuration ticks.
type hostTime struct {
	ch  chan uint64
	seq uint64
	now func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(now func() time.Time) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits the ticks that elapsed since the previous call. The very first
// call emits n ticks so the first frame has something to advance.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / TickDuration)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % TickDuration
	t.stepN(ticks)
}

// stepN advances the sequence by n. When the reader falls behind the oldest
// queued values are discarded, so the newest sequence is always readable.
func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		t.push(t.seq)
	}
}

func (t *hostTime) push(seq uint64) {
	for {
		select {
		case t.ch <- seq:
			return
		default:
		}
		select {
		case <-t.ch:
		default:
		}
	}
}
