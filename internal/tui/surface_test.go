package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/banners/internal/core/banner"
	"github.com/hay-kot/banners/internal/core/banner/bannertest"
	"github.com/hay-kot/banners/internal/tui/components/bannerview"
	"github.com/hay-kot/banners/pkg/tuitest"
)

func testBanner(id uint64, text string) *banner.Banner {
	r := banner.NewRequest(text, banner.WithGlyph(false))
	return &banner.Banner{ID: id, Request: r, Visual: r.Visual()}
}

func TestSurface_detach_without_animation(t *testing.T) {
	s := NewSurface(bannertest.NewScheduler(), 0)
	b := testBanner(1, "hi")

	s.Attach(b)
	got, leaving := s.Visible()
	assert.Same(t, b, got)
	assert.False(t, leaving)

	done := false
	s.Detach(b, func() { done = true })

	assert.True(t, done)
	got, _ = s.Visible()
	assert.Nil(t, got)
	assert.Empty(t, s.Render(bannerview.Options{}))
}

func TestSurface_leave_animation(t *testing.T) {
	sched := bannertest.NewScheduler()
	s := NewSurface(sched, 150*time.Millisecond)
	b := testBanner(1, "bye")

	s.Attach(b)
	done := false
	s.Detach(b, func() { done = true })

	got, leaving := s.Visible()
	assert.Same(t, b, got)
	assert.True(t, leaving)
	assert.False(t, done)
	assert.Equal(t, " bye", tuitest.StripANSI(s.Render(bannerview.Options{})))

	sched.Advance(150 * time.Millisecond)

	assert.True(t, done)
	got, _ = s.Visible()
	assert.Nil(t, got)
}

func TestSurface_with_engine_keeps_one_banner(t *testing.T) {
	sched := bannertest.NewScheduler()
	s := NewSurface(sched, 100*time.Millisecond)
	e := banner.NewEngine(s, sched)

	e.Show(banner.NewRequest("first"))
	e.Show(banner.NewRequest("second"))

	got, leaving := s.Visible()
	assert.Equal(t, "first", got.Request.Text)
	assert.True(t, leaving)

	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, banner.StateThrottled, e.State())

	sched.Advance(400 * time.Millisecond)
	got, leaving = s.Visible()
	assert.Equal(t, "second", got.Request.Text)
	assert.False(t, leaving)
}
