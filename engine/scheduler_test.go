package engine

import "testing"

func TestFrameSchedulerRunsPendingOnce(t *testing.T) {
	s := NewFrameScheduler()

	runs := 0
	s.Schedule(func() { runs++ })

	s.RunPending()
	s.RunPending()

	if runs != 1 {
		t.Errorf("tick ran %d times, want 1", runs)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler()

	runs := 0
	s.Schedule(func() { runs++ })
	s.Cancel()
	s.RunPending()

	if runs != 0 {
		t.Errorf("cancelled tick ran %d times, want 0", runs)
	}
}

func TestFrameSchedulerRescheduleFromTick(t *testing.T) {
	s := NewFrameScheduler()

	runs := 0
	var tick func()
	tick = func() {
		runs++
		if runs < 3 {
			s.Schedule(tick)
		}
	}

	s.Schedule(tick)
	for i := 0; i < 10; i++ {
		s.RunPending()
	}

	if runs != 3 {
		t.Errorf("tick chain ran %d times, want 3", runs)
	}
}

func TestFrameSchedulerReplacePending(t *testing.T) {
	s := NewFrameScheduler()

	first, second := 0, 0
	s.Schedule(func() { first++ })
	s.Schedule(func() { second++ })
	s.RunPending()

	if first != 0 || second != 1 {
		t.Errorf("got first=%d second=%d, want 0 and 1", first, second)
	}
}
