// Package fx sequences cosmetic feedback: delayed card removal, flashes and
// the tones played for game effects. Nothing here changes game state.
package fx

import (
	"sort"
	"time"
)

type TaskID uint64

type task struct {
	id  TaskID
	at  time.Time
	tag string
	run func()
}

// Scheduler is a deferred task list polled by the UI loop. Tasks whose target
// has already gone away are expected to be harmless no-ops.
type Scheduler struct {
	next  TaskID
	tasks []task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) At(at time.Time, tag string, run func()) TaskID {
	if s == nil || run == nil {
		return 0
	}
	s.next++
	t := task{id: s.next, at: at, tag: tag, run: run}
	i := sort.Search(len(s.tasks), func(i int) bool { return s.tasks[i].at.After(at) })
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	return t.id
}

func (s *Scheduler) After(now time.Time, d time.Duration, tag string, run func()) TaskID {
	return s.At(now.Add(d), tag, run)
}

func (s *Scheduler) Cancel(id TaskID) bool {
	if s == nil {
		return false
	}
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelTag drops every pending task with the tag, e.g. all of a board's
// animations when a new game is dealt.
func (s *Scheduler) CancelTag(tag string) int {
	if s == nil {
		return 0
	}
	kept := s.tasks[:0]
	dropped := 0
	for _, t := range s.tasks {
		if t.tag == tag {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return dropped
}

// RunDue runs every task due at or before now, oldest first. Tasks scheduled
// by a running task wait for the next call.
func (s *Scheduler) RunDue(now time.Time) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, t := range s.tasks {
		if t.at.After(now) {
			break
		}
		n++
	}
	if n == 0 {
		return 0
	}
	due := append([]task(nil), s.tasks[:n]...)
	s.tasks = append(s.tasks[:0], s.tasks[n:]...)
	for _, t := range due {
		t.run()
	}
	return n
}

func (s *Scheduler) Pending() int {
	if s == nil {
		return 0
	}
	return len(s.tasks)
}
