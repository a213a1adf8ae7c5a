package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ArchiveConfig holds settings for the finished-game archive.
type ArchiveConfig struct {
	// Dir is the badger directory. Empty disables the archive unless InMemory is set.
	Dir string

	// InMemory keeps the archive in memory only.
	InMemory bool
}

// NewArchiveConfig creates an ArchiveConfig with the archive disabled.
func NewArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{}
}

// Enabled reports whether finished games should be archived.
func (a *ArchiveConfig) Enabled() bool {
	return a.Dir != "" || a.InMemory
}

// ReplayConfig holds settings for replaying stored games in bulk.
type ReplayConfig struct {
	// Workers is the number of goroutines replaying games.
	Workers int

	// BufferSize is the work channel capacity.
	BufferSize int

	// StopOnFailure stops scheduling games after the first rejected move.
	StopOnFailure bool
}

// NewReplayConfig creates a ReplayConfig using one worker per CPU.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 16,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size %d < 1: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
