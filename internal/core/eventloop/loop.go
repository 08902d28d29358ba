// Package eventloop runs callbacks one at a time on a single goroutine. It
// implements banner.Scheduler for hosts that have no UI loop of their own.
package eventloop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hay-kot/banners/internal/core/banner"
)

// Loop serialises callbacks. Post and After may be called from any
// goroutine; the callbacks themselves only ever run inside Run.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	now   func() time.Time
}

// New returns a loop with room for size queued callbacks before Post blocks.
func New(size int) *Loop {
	if size < 1 {
		size = 1
	}
	return &Loop{
		tasks: make(chan func(), size),
		done:  make(chan struct{}),
		now:   time.Now,
	}
}

// Run executes posted callbacks until ctx is cancelled. It returns the
// context error.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Post queues fn to run on the loop. It reports false when the loop has
// stopped and fn will never run.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

func (l *Loop) Now() time.Time {
	return l.now()
}

// After runs fn on the loop once d has elapsed unless the returned timer is
// stopped first. A timer stopped from the loop never runs its callback.
func (l *Loop) After(d time.Duration, fn func()) banner.Timer {
	t := &timer{}
	t.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.stopped.Load() {
				return
			}
			fn()
		})
	})
	return t
}

type timer struct {
	t       *time.Timer
	stopped atomic.Bool
}

func (t *timer) Stop() {
	t.stopped.Store(true)
	t.t.Stop()
}
