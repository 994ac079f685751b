package config

import "go.uber.org/zap/zapcore"

type Config struct {
	Icon IconConfig
	Log  LogConfig
}

type IconConfig struct {
	InputPath      string
	OutputPath     string
	PaddingPercent float64
}

type LogConfig struct {
	Level zapcore.Level
}

// Load returns the fixed invocation used to build the adaptive icon foreground.
func Load() (*Config, error) {
	cfg := &Config{
		Icon: IconConfig{
			InputPath:      "assets/icon/gitvault.png",
			OutputPath:     "assets/icon/gitvault_padded.png",
			PaddingPercent: 20,
		},
		Log: LogConfig{
			Level: zapcore.InfoLevel,
		},
	}

	return cfg, nil
}
