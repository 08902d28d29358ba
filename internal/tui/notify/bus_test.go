package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/banners/internal/core/banner"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus()

	var received []banner.Request
	bus.Subscribe(func(r banner.Request) {
		received = append(received, r)
	})

	bus.Errorf("test error: %d", 42)
	bus.Warnf("warn msg")
	bus.Infof("info msg")
	bus.Successf("saved")

	require.Len(t, received, 4)
	assert.Equal(t, "test error: 42", received[0].Text)
	assert.Equal(t, banner.Negative{}, received[0].Style)
	assert.Equal(t, banner.Neutral{}, received[1].Style)
	assert.Equal(t, banner.Neutral{}, received[2].Style)
	assert.False(t, received[2].ShowGlyph)
	assert.Equal(t, banner.Positive{}, received[3].Style)
}

func TestBus_multiple_subscribers(t *testing.T) {
	bus := NewBus()

	var a, b int
	bus.Subscribe(func(banner.Request) { a++ })
	bus.Subscribe(func(banner.Request) { b++ })

	bus.Publish(banner.NewRequest("x"))

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestBus_defaults_apply_before_helper_style(t *testing.T) {
	bus := NewBus(
		banner.WithTimeout(time.Second),
		banner.WithGlyph(true),
		banner.WithStyle(banner.Positive{}),
	)

	var got banner.Request
	bus.Subscribe(func(r banner.Request) { got = r })

	bus.Errorf("boom")
	assert.Equal(t, time.Second, got.Timeout)
	assert.True(t, got.ShowGlyph)
	assert.Equal(t, banner.Negative{}, got.Style)

	bus.Infof("quiet")
	assert.False(t, got.ShowGlyph)
}

func TestBus_SetDefaults(t *testing.T) {
	bus := NewBus(banner.WithTimeout(time.Second))

	var got banner.Request
	bus.Subscribe(func(r banner.Request) { got = r })

	bus.SetDefaults(banner.WithTimeout(0))
	bus.Warnf("sticky")

	assert.False(t, got.HasTimeout())
}

func TestBus_no_subscribers(t *testing.T) {
	assert.NotPanics(t, func() { NewBus().Errorf("nobody listening") })
}
