package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaScheduler_After_queues_tick(t *testing.T) {
	s := newTeaScheduler()

	ran := 0
	s.After(time.Millisecond, func() { ran++ })

	assert.Equal(t, 1, s.Pending())
	require.NotNil(t, s.Drain())
	assert.Nil(t, s.Drain(), "drain empties the queue")

	s.Fire(timerFiredMsg{id: 1})
	assert.Equal(t, 1, ran)
	assert.Equal(t, 0, s.Pending())

	s.Fire(timerFiredMsg{id: 1})
	assert.Equal(t, 1, ran, "a timer fires once")
}

func TestTeaScheduler_Stop(t *testing.T) {
	s := newTeaScheduler()

	ran := false
	tm := s.After(time.Millisecond, func() { ran = true })
	tm.Stop()

	s.Fire(timerFiredMsg{id: 1})
	assert.False(t, ran)
}

func TestTeaScheduler_tick_message(t *testing.T) {
	s := newTeaScheduler()
	s.After(time.Millisecond, func() {})

	cmd := s.Drain()
	require.NotNil(t, cmd)

	assert.Equal(t, timerFiredMsg{id: 1}, cmd())
}

func TestTeaScheduler_Now(t *testing.T) {
	s := newTeaScheduler()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	assert.Equal(t, fixed, s.Now())
}
