// Package clock provides a cooperative, single-threaded timer wheel driven by
// the game's frame clock. Callbacks run inside Advance, in due-time order,
// interleaved between ticks; nothing runs concurrently.
package clock

import (
	"container/heap"
	"time"
)

// TimerID identifies a scheduled task. The zero value is never issued.
type TimerID uint64

type task struct {
	id       TimerID
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	index    int
}

// Clock is a logical clock with delayed and repeating callbacks.
type Clock struct {
	now     time.Duration
	nextID  TimerID
	seq     uint64
	queue   taskQueue
	byID    map[TimerID]*task
	stopped bool
}

func New() *Clock {
	return &Clock{byID: make(map[TimerID]*task)}
}

// Now returns the logical time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After runs fn once, d after the current logical time.
func (c *Clock) After(d time.Duration, fn func()) TimerID {
	return c.schedule(d, 0, fn)
}

// Every runs fn every d, first firing d from now. d must be positive.
func (c *Clock) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		return 0
	}
	return c.schedule(d, d, fn)
}

func (c *Clock) schedule(d, interval time.Duration, fn func()) TimerID {
	if fn == nil || c.stopped {
		return 0
	}
	if d < 0 {
		d = 0
	}
	c.nextID++
	c.seq++
	t := &task{id: c.nextID, due: c.now + d, interval: interval, seq: c.seq, fn: fn}
	heap.Push(&c.queue, t)
	c.byID[t.id] = t
	return t.id
}

// Cancel removes a pending task. It reports whether the task was pending.
func (c *Clock) Cancel(id TimerID) bool {
	t, ok := c.byID[id]
	if !ok {
		return false
	}
	delete(c.byID, id)
	if t.index >= 0 {
		heap.Remove(&c.queue, t.index)
	}
	return true
}

// CancelAll drops every pending task.
func (c *Clock) CancelAll() {
	c.queue = nil
	c.byID = make(map[TimerID]*task)
}

// Stop cancels everything and refuses further scheduling. Used on teardown so
// that callbacks captured by a dead session can never re-arm themselves.
func (c *Clock) Stop() {
	c.CancelAll()
	c.stopped = true
}

// Pending reports the number of scheduled tasks.
func (c *Clock) Pending() int {
	return len(c.byID)
}

// Advance moves the clock forward by dt, running every task that falls due
// in order. Tasks scheduled by callbacks run in the same call if they fall
// inside the window.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := c.now + dt
	for len(c.queue) > 0 && !c.stopped {
		next := c.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&c.queue)
		c.now = next.due
		if next.interval > 0 {
			c.seq++
			next.due += next.interval
			next.seq = c.seq
			heap.Push(&c.queue, next)
		} else {
			delete(c.byID, next.id)
		}
		next.fn()
	}
	if !c.stopped {
		c.now = target
	}
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
