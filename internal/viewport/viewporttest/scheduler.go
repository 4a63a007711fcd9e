// Package viewporttest содержит планировщик с виртуальным временем для тестов
package viewporttest

import (
	"sort"
	"sync"
	"time"

	"github.com/shenikar/wildfire_console/internal/viewport"
)

type task struct {
	due       time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// Scheduler выполняет колбэки только внутри Advance, в порядке срока и постановки
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

type timer struct {
	s *Scheduler
	t *task
}

func (tm timer) Stop() bool {
	tm.s.mu.Lock()
	defer tm.s.mu.Unlock()

	if tm.t.cancelled {
		return false
	}
	tm.t.cancelled = true
	return true
}

func (s *Scheduler) NextFrame(fn func()) viewport.Timer {
	return s.AfterFunc(viewport.FrameInterval, fn)
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) viewport.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &task{due: s.now + d, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return timer{s: s, t: t}
}

// Advance сдвигает виртуальное время, выполняя все наступившие колбэки,
// включая поставленные самими колбэками
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// Pending - число неотмененных ожидающих колбэков
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) popDue(target time.Duration) *task {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live
	if len(s.tasks) == 0 {
		return nil
	}

	sort.Slice(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	next := s.tasks[0]
	if next.due > target {
		return nil
	}
	s.tasks = s.tasks[1:]
	s.now = next.due
	next.cancelled = true
	return next
}
