package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithHalfmoveLimit sets the fifty-move rule threshold in half-moves.
func (b *ConfigBuilder) WithHalfmoveLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.HalfmoveLimit = limit
	return b
}

// WithRepetitionLimit sets how many occurrences of a position draw the game.
func (b *ConfigBuilder) WithRepetitionLimit(limit int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = limit
	return b
}

// WithDefaultPromotion sets the piece chosen when no promotion choice is given.
func (b *ConfigBuilder) WithDefaultPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = kind
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.File = w
	return b
}

// WithOutputFormat sets the move list notation.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithShowBoard enables or disables printing the board after each move.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithLog sets the log writer and verbosity.
func (b *ConfigBuilder) WithLog(w io.Writer, verbosity int) *ConfigBuilder {
	b.cfg.Log.File = w
	b.cfg.Log.Verbosity = verbosity
	return b
}

// WithArchiveDir enables the on-disk archive in dir.
func (b *ConfigBuilder) WithArchiveDir(dir string) *ConfigBuilder {
	b.cfg.Archive.Dir = dir
	return b
}

// WithInMemoryArchive enables an in-memory archive.
func (b *ConfigBuilder) WithInMemoryArchive() *ConfigBuilder {
	b.cfg.Archive.InMemory = true
	return b
}

// WithStopOnFailure makes batch replays stop after the first failed game.
func (b *ConfigBuilder) WithStopOnFailure(stop bool) *ConfigBuilder {
	b.cfg.Replay.StopOnFailure = stop
	return b
}

// WithWorkers sets the number of replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}
