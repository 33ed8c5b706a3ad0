// Package schedule runs one-shot and repeating callbacks against a clock that
// the caller advances. Everything fires on the goroutine that calls Advance,
// so callbacks may touch game state without locking.
package schedule

import "time"

// Handle refers to a scheduled callback.
type Handle struct {
	due     time.Time
	period  time.Duration
	fn      func()
	seq     uint64
	stopped bool
	fired   bool
}

// Stop cancels the callback. Stopping a nil, fired or stopped handle is a no-op.
func (h *Handle) Stop() {
	if h != nil {
		h.stopped = true
	}
}

// Active reports whether the callback can still fire.
func (h *Handle) Active() bool {
	return h != nil && !h.stopped && !h.fired
}

// Queue holds pending callbacks ordered by due time.
type Queue struct {
	now   time.Time
	seq   uint64
	tasks []*Handle
}

func NewQueue(now time.Time) *Queue {
	return &Queue{now: now}
}

// Now returns the time of the last Advance.
func (q *Queue) Now() time.Time { return q.now }

// After runs fn once, d after the current time.
func (q *Queue) After(d time.Duration, fn func()) *Handle {
	return q.add(d, 0, fn)
}

// Every runs fn each period d until stopped. A non-positive d is raised to one
// millisecond.
func (q *Queue) Every(d time.Duration, fn func()) *Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	return q.add(d, d, fn)
}

func (q *Queue) add(d, period time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	q.seq++
	h := &Handle{
		due:    q.now.Add(d),
		period: period,
		fn:     fn,
		seq:    q.seq,
	}
	q.tasks = append(q.tasks, h)
	return h
}

// Advance moves the clock to now and fires every callback that is due, in due
// order; ties fire in scheduling order. A repeating callback that fell more than
// one period behind fires once and is re-armed from now rather than catching up.
// The clock never moves backwards.
func (q *Queue) Advance(now time.Time) {
	if now.Before(q.now) {
		now = q.now
	}
	q.now = now

	for {
		h := q.nextDue()
		if h == nil {
			break
		}
		if h.period > 0 {
			next := h.due.Add(h.period)
			if !next.After(now) {
				next = now.Add(h.period)
			}
			h.due = next
		} else {
			h.fired = true
		}
		h.fn()
	}
	q.prune()
}

// Pending reports how many callbacks can still fire.
func (q *Queue) Pending() int {
	n := 0
	for _, h := range q.tasks {
		if h.Active() {
			n++
		}
	}
	return n
}

func (q *Queue) nextDue() *Handle {
	var best *Handle
	for _, h := range q.tasks {
		if !h.Active() || h.due.After(q.now) {
			continue
		}
		if best == nil || h.due.Before(best.due) || (h.due.Equal(best.due) && h.seq < best.seq) {
			best = h
		}
	}
	return best
}

func (q *Queue) prune() {
	live := q.tasks[:0]
	for _, h := range q.tasks {
		if h.Active() {
			live = append(live, h)
		}
	}
	clear(q.tasks[len(live):])
	q.tasks = live
}
