package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "scenario and step",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithScenario(ctx, "burst")
				ctx = WithStep(ctx, 2)
				return ctx
			},
			wantKeys: []string{"scenario", "step"},
		},
		{
			name: "only scenario",
			setupCtx: func() context.Context {
				return WithScenario(context.Background(), "burst")
			},
			wantKeys:  []string{"scenario"},
			wantEmpty: []string{"step"},
		},
		{
			name: "only step",
			setupCtx: func() context.Context {
				return WithStep(context.Background(), 1)
			},
			wantKeys:  []string{"step"},
			wantEmpty: []string{"scenario"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"scenario", "step"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

			for _, key := range tt.wantKeys {
				assert.Contains(t, logEntry, key)
			}

			for _, key := range tt.wantEmpty {
				assert.NotContains(t, logEntry, key)
			}
		})
	}
}
