package fx

import (
	"slices"
	"testing"
	"time"
)

func TestRunDueRunsInTimeOrder(t *testing.T) {
	s := NewScheduler()
	base := time.Unix(1000, 0)
	var ran []string
	s.After(base, 300*time.Millisecond, "card", func() { ran = append(ran, "late") })
	s.After(base, 100*time.Millisecond, "card", func() { ran = append(ran, "early") })
	s.After(base, 100*time.Millisecond, "card", func() { ran = append(ran, "early-2") })

	if n := s.RunDue(base.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("expected nothing due yet, ran %d", n)
	}
	if n := s.RunDue(base.Add(100 * time.Millisecond)); n != 2 {
		t.Fatalf("expected 2 tasks due, ran %d", n)
	}
	if !slices.Equal(ran, []string{"early", "early-2"}) {
		t.Fatalf("unexpected order: %v", ran)
	}
	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending task, got %d", s.Pending())
	}
	s.RunDue(base.Add(time.Second))
	if !slices.Equal(ran, []string{"early", "early-2", "late"}) {
		t.Fatalf("unexpected order: %v", ran)
	}
}

func TestCancelDropsTasks(t *testing.T) {
	s := NewScheduler()
	base := time.Unix(0, 0)
	fired := 0
	id := s.After(base, time.Millisecond, "a", func() { fired++ })
	s.After(base, time.Millisecond, "b", func() { fired++ })
	s.After(base, time.Millisecond, "b", func() { fired++ })

	if !s.Cancel(id) {
		t.Fatalf("expected cancel to find task %d", id)
	}
	if s.Cancel(id) {
		t.Fatalf("second cancel must report nothing removed")
	}
	if n := s.CancelTag("b"); n != 2 {
		t.Fatalf("expected 2 tagged tasks dropped, got %d", n)
	}
	s.RunDue(base.Add(time.Hour))
	if fired != 0 {
		t.Fatalf("cancelled tasks ran %d times", fired)
	}
}

func TestTasksScheduledWhileRunningWait(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(50, 0)
	second := false
	s.At(now, "", func() {
		s.At(now, "", func() { second = true })
	})
	s.RunDue(now)
	if second {
		t.Fatalf("task scheduled during RunDue must wait for the next call")
	}
	s.RunDue(now)
	if !second {
		t.Fatalf("expected follow-up task to run on the next call")
	}
}

func TestNilSchedulerIsInert(t *testing.T) {
	var s *Scheduler
	if id := s.At(time.Now(), "", func() {}); id != 0 {
		t.Fatalf("nil scheduler returned id %d", id)
	}
	if s.RunDue(time.Now()) != 0 || s.Pending() != 0 || s.Cancel(1) || s.CancelTag("x") != 0 {
		t.Fatalf("nil scheduler should do nothing")
	}
}
