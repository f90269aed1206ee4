package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/coastalops/launchtours/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "launchtours-test",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
			},
			expectError: false,
			wantLevel:   zerolog.InfoLevel,
		},
		{
			name: "invalid environment rejected by validator",
			config: &logpkg.LoggerConfig{
				ServiceName: "launchtours-test",
				Env:         "wrong-env",
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "dev environment defaults to debug",
			config: &logpkg.LoggerConfig{
				ServiceName: "launchtours-test",
				Env:         "dev",
			},
			expectError: false,
			wantLevel:   zerolog.DebugLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := logpkg.New(tt.config)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := &logpkg.LoggerConfig{}
	_, err := logpkg.New(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "launchtours-api", cfg.ServiceName)
}
