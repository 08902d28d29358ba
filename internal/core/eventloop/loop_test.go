package eventloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()

	l := New(16)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-errCh
	})
	return l, cancel
}

func TestLoop_Post_runs_in_order(t *testing.T) {
	l, _ := startLoop(t)

	var (
		mu  sync.Mutex
		got []int
	)
	done := make(chan struct{})

	for i := range 5 {
		require.True(t, l.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 4 {
				close(done)
			}
		}))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("posted callbacks did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoop_After_fires_on_loop(t *testing.T) {
	l, _ := startLoop(t)

	fired := make(chan time.Duration, 1)
	start := time.Now()
	l.Post(func() {
		l.After(20*time.Millisecond, func() {
			fired <- time.Since(start)
		})
	})

	select {
	case elapsed := <-fired:
		assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestLoop_After_stop_prevents_callback(t *testing.T) {
	l, _ := startLoop(t)

	fired := make(chan struct{}, 1)
	stopped := make(chan struct{})
	l.Post(func() {
		tm := l.After(20*time.Millisecond, func() { fired <- struct{}{} })
		tm.Stop()
		close(stopped)
	})
	<-stopped

	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestLoop_Post_after_stop_reports_false(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.False(t, l.Post(func() {}))
}

func TestLoop_Now(t *testing.T) {
	l := New(0)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	assert.Equal(t, fixed, l.Now())
}
