package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/banners/internal/core/banner"
)

// timerFiredMsg is delivered by the tick command of a scheduled callback.
type timerFiredMsg struct {
	id uint64
}

// teaScheduler implements banner.Scheduler on top of Bubble Tea. After
// queues a tea.Tick command; the model collects queued commands with Drain
// after every Update and runs the callback when the tick message arrives,
// so every callback runs inside Update.
type teaScheduler struct {
	now     func() time.Time
	nextID  uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		now:     time.Now,
		pending: make(map[uint64]func()),
	}
}

func (s *teaScheduler) Now() time.Time {
	return s.now()
}

func (s *teaScheduler) After(d time.Duration, fn func()) banner.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return &teaTimer{sched: s, id: id}
}

// Fire runs the callback for msg. Stopped or already fired timers are
// ignored.
func (s *teaScheduler) Fire(msg timerFiredMsg) {
	fn, ok := s.pending[msg.id]
	if !ok {
		return
	}
	delete(s.pending, msg.id)
	fn()
}

// Drain returns the tick commands queued since the last call.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Pending returns the number of callbacks waiting to fire.
func (s *teaScheduler) Pending() int {
	return len(s.pending)
}

type teaTimer struct {
	sched *teaScheduler
	id    uint64
}

func (t *teaTimer) Stop() {
	delete(t.sched.pending, t.id)
}
