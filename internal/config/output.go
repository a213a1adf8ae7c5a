package config

import (
	"io"
	"os"
)

// OutputFormat represents different move notation formats.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (e2e4)
	HALG                     // Hyphenated long algebraic (e2-e4)
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "", "san":
		return SAN, true
	case "lalg", "uci":
		return LALG, true
	case "halg":
		return HALG, true
	}
	return SAN, false
}

// OutputConfig holds settings related to interactive output.
type OutputConfig struct {
	// File receives boards, move lists and results. Defaults to stdout.
	File io.Writer

	// Format specifies the notation used for move lists.
	Format OutputFormat

	// ShowBoard prints the board after every move.
	ShowBoard bool

	// JSONFormat writes finished games as JSON instead of move lists.
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included in move lists.
	KeepMoveNumbers bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		File:            os.Stdout,
		Format:          SAN,
		ShowBoard:       true,
		KeepMoveNumbers: true,
	}
}
