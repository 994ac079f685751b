package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "assets/icon/gitvault.png", cfg.Icon.InputPath)
	assert.Equal(t, "assets/icon/gitvault_padded.png", cfg.Icon.OutputPath)
	assert.Equal(t, 20.0, cfg.Icon.PaddingPercent)
	assert.Equal(t, zapcore.InfoLevel, cfg.Log.Level)
}
