// Package config provides configuration for the rules engine and its tools.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Rules   *RulesConfig
	Output  *OutputConfig
	Log     *LogConfig
	Archive *ArchiveConfig
	Replay  *ReplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:   NewRulesConfig(),
		Output:  NewOutputConfig(),
		Log:     NewLogConfig(),
		Archive: NewArchiveConfig(),
		Replay:  NewReplayConfig(),
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Replay.Validate()
}

// LogConfig holds diagnostic output settings.
type LogConfig struct {
	// Verbosity: 0=nothing, 1=game events, 2=running commentary of every move
	Verbosity int

	// File receives diagnostics. Defaults to stderr.
	File io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Verbosity: 1,
		File:      os.Stderr,
	}
}

// Writer returns the log destination, or io.Discard when logging is silenced.
func (l *LogConfig) Writer() io.Writer {
	if l.File == nil || l.Verbosity <= 0 {
		return io.Discard
	}
	return l.File
}
