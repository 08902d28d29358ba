package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithScenario(t *testing.T) {
	ctx := WithScenario(context.Background(), "burst.yaml")
	assert.Equal(t, "burst.yaml", GetScenario(ctx))
}

func TestWithStep(t *testing.T) {
	ctx := WithStep(context.Background(), 3)

	step, ok := GetStep(ctx)
	assert.True(t, ok)
	assert.Equal(t, 3, step)
}

func TestGetScenario_NotPresent(t *testing.T) {
	assert.Empty(t, GetScenario(context.Background()))
}

func TestGetStep_NotPresent(t *testing.T) {
	_, ok := GetStep(context.Background())
	assert.False(t, ok)
}

func TestWithStep_zero_is_present(t *testing.T) {
	ctx := WithStep(WithScenario(context.Background(), "s"), 0)

	step, ok := GetStep(ctx)
	assert.True(t, ok)
	assert.Equal(t, 0, step)
	assert.Equal(t, "s", GetScenario(ctx))
}
