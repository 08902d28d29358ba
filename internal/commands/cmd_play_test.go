package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/banners/internal/core/config"
	"github.com/hay-kot/banners/internal/core/scenario"
)

func playConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := loadDefaults(t)
	cfg.Banner.ThrottleDelay = 0
	cfg.Banner.LeaveAnimation = 0
	cfg.Icons = "none"
	return cfg
}

func dur(d time.Duration) *time.Duration { return &d }

func TestPlay_runs_scenario_to_completion(t *testing.T) {
	sc := scenario.Scenario{Steps: []scenario.Step{
		{At: 0, Show: &scenario.Show{Text: "first", Timeout: dur(0), Action: "open"}},
		{At: 20 * time.Millisecond, Tap: true},
		{At: 40 * time.Millisecond, Show: &scenario.Show{Text: "second", Timeout: dur(20 * time.Millisecond)}},
	}}

	var buf bytes.Buffer
	summary, err := play(context.Background(), &buf, playConfig(t), sc, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Presented)
	assert.Equal(t, 1, summary.Actions)

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, `presented  #1 "first"`)
	assert.Contains(t, out, "run        open")
	assert.Contains(t, out, `#1 "first" reason=tap`)
	assert.Contains(t, out, `presented  #2 "second"`)
	assert.Contains(t, out, `#2 "second" reason=timeout`)
}

func TestPlay_gives_up_after_limit(t *testing.T) {
	sc := scenario.Scenario{Steps: []scenario.Step{
		{At: 0, Show: &scenario.Show{Text: "sticky", Timeout: dur(0)}},
	}}

	var buf bytes.Buffer
	_, err := play(context.Background(), &buf, playConfig(t), sc, 50*time.Millisecond)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not finish")
}

func TestPlay_deferred_request_is_reported(t *testing.T) {
	cfg := playConfig(t)
	cfg.Banner.ThrottleDelay = 50 * time.Millisecond

	sc := scenario.Scenario{Steps: []scenario.Step{
		{At: 0, Show: &scenario.Show{Text: "a", Timeout: dur(0)}},
		{At: 0, Dismiss: true},
		{At: 10 * time.Millisecond, Show: &scenario.Show{Text: "b", Timeout: dur(10 * time.Millisecond)}},
	}}

	var buf bytes.Buffer
	summary, err := play(context.Background(), &buf, cfg, sc, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Deferred)

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, `deferred   "b" wait=`)
	assert.Contains(t, out, `presented  #2 "b"`)
}

func TestRenderSummary(t *testing.T) {
	s := scenario.NewSummary("checkout")
	s.Presented = 3

	out := ansi.Strip(renderSummary(s, 60))
	assert.Contains(t, out, "checkout")
	assert.Contains(t, out, "presented")
}
