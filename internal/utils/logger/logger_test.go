package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"watchlater/internal/app/server/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		debugEnabled bool
	}{
		{"local environment", config.EnvLocal, true},
		{"dev environment", config.EnvDev, true},
		{"prod environment", config.EnvProd, false},
		{"unknown environment defaults to prod", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, log.Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}
