package tui

import (
	"time"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/tui/components/bannerview"
)

// Surface is the single banner slot drawn over the demo view. A detached
// banner stays on screen, faded, for the leave animation before the engine
// is told it is gone.
type Surface struct {
	sched     banner.Scheduler
	animation time.Duration

	current *banner.Banner
	leaving *banner.Banner
	leave   banner.Timer
}

// NewSurface returns an empty slot. A zero animation detaches immediately.
func NewSurface(sched banner.Scheduler, animation time.Duration) *Surface {
	return &Surface{sched: sched, animation: animation}
}

func (s *Surface) Attach(b *banner.Banner) {
	s.current = b
}

func (s *Surface) Detach(b *banner.Banner, done func()) {
	if s.current == b {
		s.current = nil
	}

	if s.animation <= 0 {
		done()
		return
	}

	if s.leave != nil {
		s.leave.Stop()
	}
	s.leaving = b
	s.leave = s.sched.After(s.animation, func() {
		s.leaving = nil
		s.leave = nil
		done()
	})
}

// SetAnimation changes the leave animation for later detachments.
func (s *Surface) SetAnimation(d time.Duration) {
	s.animation = d
}

// Visible returns the banner to draw and whether it is leaving.
func (s *Surface) Visible() (*banner.Banner, bool) {
	if s.current != nil {
		return s.current, false
	}
	if s.leaving != nil {
		return s.leaving, true
	}
	return nil, false
}

// Render draws the visible banner, or "" when the slot is empty.
func (s *Surface) Render(opts bannerview.Options) string {
	b, leaving := s.Visible()
	if b == nil {
		return ""
	}
	opts.Leaving = leaving
	return bannerview.Render(b, opts)
}
