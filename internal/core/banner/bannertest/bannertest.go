// Package bannertest provides a manual clock scheduler and a recording
// surface for driving a banner.Engine deterministically in tests.
package bannertest

import (
	"sort"
	"time"

	"github.com/hay-kot/banners/internal/core/banner"
)

// Epoch is the start time of every Scheduler.
var Epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type task struct {
	at      time.Time
	seq     int
	fn      func()
	stopped bool
}

func (t *task) Stop() { t.stopped = true }

// Scheduler is a banner.Scheduler whose clock only moves on Advance.
// Callbacks run inside Advance, in due-time order, on the caller's goroutine.
type Scheduler struct {
	now   time.Time
	seq   int
	tasks []*task
}

// NewScheduler returns a scheduler whose clock starts at Epoch.
func NewScheduler() *Scheduler {
	return &Scheduler{now: Epoch}
}

func (s *Scheduler) Now() time.Time {
	return s.now
}

func (s *Scheduler) After(d time.Duration, fn func()) banner.Timer {
	s.seq++
	t := &task{at: s.now.Add(d), seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every callback that comes
// due, including callbacks scheduled by earlier callbacks.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now.Add(d)
	for {
		t := s.nextDue(end)
		if t == nil {
			break
		}
		s.now = t.at
		t.fn()
	}
	s.now = end
}

// Elapsed returns the time since Epoch.
func (s *Scheduler) Elapsed() time.Duration {
	return s.now.Sub(Epoch)
}

// Pending returns the number of scheduled callbacks that were neither run
// nor stopped.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDue(end time.Time) *task {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.tasks = live
	if len(s.tasks) == 0 {
		return nil
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at.Equal(s.tasks[j].at) {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].at.Before(s.tasks[j].at)
	})

	t := s.tasks[0]
	if t.at.After(end) {
		return nil
	}
	s.tasks = s.tasks[1:]
	return t
}

// Op is a surface operation recorded by Surface.
type Op struct {
	Attach bool
	Text   string
	ID     uint64
}

// Surface records attach and detach calls. With Deferred unset, detachment
// completes immediately; otherwise Finish completes it.
type Surface struct {
	Deferred bool

	Ops     []Op
	visible []*banner.Banner
	done    []func()
}

func (s *Surface) Attach(b *banner.Banner) {
	s.Ops = append(s.Ops, Op{Attach: true, Text: b.Request.Text, ID: b.ID})
	s.visible = append(s.visible, b)
}

func (s *Surface) Detach(b *banner.Banner, done func()) {
	s.Ops = append(s.Ops, Op{Text: b.Request.Text, ID: b.ID})
	for i, v := range s.visible {
		if v == b {
			s.visible = append(s.visible[:i], s.visible[i+1:]...)
			break
		}
	}

	if s.Deferred {
		s.done = append(s.done, done)
		return
	}
	done()
}

// Finish completes every deferred detachment.
func (s *Surface) Finish() {
	done := s.done
	s.done = nil
	for _, fn := range done {
		fn()
	}
}

// Visible returns the attached banners.
func (s *Surface) Visible() []*banner.Banner {
	return s.visible
}

// VisibleText returns the text of the single visible banner, or "" when
// nothing is attached.
func (s *Surface) VisibleText() string {
	if len(s.visible) == 0 {
		return ""
	}
	return s.visible[len(s.visible)-1].Request.Text
}

// Attached returns the texts of every attach call in order.
func (s *Surface) Attached() []string {
	var out []string
	for _, op := range s.Ops {
		if op.Attach {
			out = append(out, op.Text)
		}
	}
	return out
}

// Recorder collects engine events.
type Recorder struct {
	Events []banner.Event
}

// Observe is a banner.WithObserver callback.
func (r *Recorder) Observe(ev banner.Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []banner.EventKind {
	out := make([]banner.EventKind, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Kind
	}
	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k banner.EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
