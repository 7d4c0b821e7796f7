package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: Config{APIURL: "http://localhost:3000/api/v1", ConvertDelaySeconds: 2},
		},
		{
			name:   "zero delay is allowed",
			config: Config{APIURL: "http://localhost:3000/api/v1"},
		},
		{
			name:    "empty api url",
			config:  Config{ConvertDelaySeconds: 2},
			wantErr: true,
		},
		{
			name:    "negative delay",
			config:  Config{APIURL: "http://localhost:3000/api/v1", ConvertDelaySeconds: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Environments(t *testing.T) {
	assert.True(t, (&Config{Env: EnvProd}).IsProd())
	assert.True(t, (&Config{Env: EnvDev}).IsDev())
	assert.True(t, (&Config{Env: EnvLocal}).IsLocal())
	assert.True(t, (&Config{}).IsLocal(), "mediul gol este tratat ca local")
	assert.False(t, (&Config{Env: EnvLocal}).IsProd())
}
