package clock

import (
	"testing"
	"time"
)

func TestAfterFiresOnce(t *testing.T) {
	c := New()
	fired := 0
	c.After(100*time.Millisecond, func() { fired++ })

	c.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early")
	}
	c.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected one firing, got %d", fired)
	}
	c.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("one-shot fired again: %d", fired)
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", c.Pending())
	}
}

func TestEveryFiresPerInterval(t *testing.T) {
	c := New()
	var at []time.Duration
	c.Every(250*time.Millisecond, func() { at = append(at, c.Now()) })

	// one large step still fires every due occurrence, in order
	c.Advance(time.Second)
	want := []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond, time.Second}
	if len(at) != len(want) {
		t.Fatalf("expected %d firings, got %v", len(want), at)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Fatalf("firing %d at %v, want %v", i, at[i], want[i])
		}
	}
	if c.Now() != time.Second {
		t.Fatalf("expected now=1s, got %v", c.Now())
	}
}

func TestEveryRejectsNonPositive(t *testing.T) {
	c := New()
	if id := c.Every(0, func() {}); id != 0 {
		t.Fatalf("expected zero id, got %d", id)
	}
}

func TestCancel(t *testing.T) {
	c := New()
	fired := false
	id := c.After(10*time.Millisecond, func() { fired = true })
	if !c.Cancel(id) {
		t.Fatalf("expected cancel to report pending task")
	}
	if c.Cancel(id) {
		t.Fatalf("second cancel should report false")
	}
	c.Advance(time.Second)
	if fired {
		t.Fatalf("cancelled task fired")
	}
}

func TestCallbackCanCancelRepeatingTask(t *testing.T) {
	c := New()
	count := 0
	var id TimerID
	id = c.Every(10*time.Millisecond, func() {
		count++
		if count == 3 {
			c.Cancel(id)
		}
	})
	c.Advance(time.Second)
	if count != 3 {
		t.Fatalf("expected 3 firings, got %d", count)
	}
}

func TestSameDueTimeRunsInScheduleOrder(t *testing.T) {
	c := New()
	var order []int
	c.After(5*time.Millisecond, func() { order = append(order, 1) })
	c.After(5*time.Millisecond, func() { order = append(order, 2) })
	c.After(1*time.Millisecond, func() { order = append(order, 0) })
	c.Advance(5 * time.Millisecond)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestStopDiscardsEverything(t *testing.T) {
	c := New()
	fired := 0
	c.Every(10*time.Millisecond, func() { fired++ })
	c.After(20*time.Millisecond, func() { fired++ })
	c.Stop()
	if c.After(1*time.Millisecond, func() { fired++ }) != 0 {
		t.Fatalf("stopped clock accepted a task")
	}
	c.Advance(time.Second)
	if fired != 0 {
		t.Fatalf("expected no callbacks after stop, got %d", fired)
	}
}

func TestCallbackStoppingClockHaltsAdvance(t *testing.T) {
	c := New()
	fired := 0
	c.After(10*time.Millisecond, func() {
		fired++
		c.Stop()
	})
	c.After(20*time.Millisecond, func() { fired++ })
	c.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("expected 1 callback, got %d", fired)
	}
}
