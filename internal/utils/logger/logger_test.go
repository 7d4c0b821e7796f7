package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		debugEnabled bool
	}{
		{name: "local logs debug", env: "local", debugEnabled: true},
		{name: "dev logs debug", env: "dev", debugEnabled: true},
		{name: "prod logs info only", env: "prod", debugEnabled: false},
		{name: "unknown env falls back to local", env: "altceva", debugEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.env)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, log.Handler().Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Handler().Enabled(ctx, slog.LevelInfo))
		})
	}
}
