// Package config loads the host app's configuration with viper.
//
// Keys can be set in an optional YAML file or through TIPCALC_-prefixed
// environment variables, e.g. TIPCALC_STORAGE_PATH or TIPCALC_LOG_LEVEL.
package config

import (
	"time"
)

// MemoryStoragePath selects the in-memory store; nothing is persisted.
const MemoryStoragePath = ":memory:"

type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Input   InputConfig   `mapstructure:"input" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type StorageConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type InputConfig struct {
	RepeatIntervalMs int `mapstructure:"repeat_interval_ms" validate:"required,gt=0,lte=1000"`
}

func (c InputConfig) RepeatInterval() time.Duration {
	return time.Duration(c.RepeatIntervalMs) * time.Millisecond
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}
