// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/matching"
)

var (
	// Output options
	outputFormat = flag.String("W", "san", "Move list notation: san, lalg, halg")
	jsonOutput   = flag.Bool("J", false, "Write finished games as JSON")
	noBoard      = flag.Bool("noboard", false, "Don't print the board after every move")
	noNumbers    = flag.Bool("nonumbers", false, "Don't print move numbers in move lists")

	// Rules
	promote     = flag.String("promote", "q", "Default promotion piece: q, r, b, n")
	halfmoves   = flag.Int("halfmoves", 50, "Half-moves without pawn move or capture that draw the game")
	repetitions = flag.Int("repetitions", 3, "Occurrences of a position that draw the game")

	// Openings
	ecoFile = flag.String("e", "", "Opening table file (CODE | Opening | Variation | moves)")

	// Archive
	archiveDir  = flag.String("archive", "", "Store finished games in this badger directory")
	listArchive = flag.Bool("list", false, "List the games stored in the archive and exit")
	whereAny    = flag.Bool("any", false, "With -where, list games matching any criterion instead of all")
	where       stringList

	// Replay
	replayFile = flag.String("replay", "", "Replay the games in this file (one game per line) and exit")
	workers    = flag.Int("j", 0, "Replay workers (0 = one per CPU)")
	failFast   = flag.Bool("failfast", false, "Stop a replay at the first game with a rejected move")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=game events, 2=every move")
	logFile   = flag.String("l", "", "Write diagnostics to this file instead of stderr")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func init() {
	flag.Var(&where, "where", "Criterion for -list, e.g. 'plies >= 40' or 'termination ~ mate' (repeatable)")
}

// stringList collects the values of a repeatable flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ", ")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// buildRecordFilter parses the -where criteria.
func buildRecordFilter() (*matching.RecordFilter, error) {
	filter := matching.NewRecordFilter()
	filter.SetMatchAll(!*whereAny)
	for _, line := range where {
		if err := filter.ParseCriterion(line); err != nil {
			return nil, err
		}
	}
	return filter, nil
}

// applyFlags copies the flag values into cfg.
func applyFlags(cfg *config.Config) error {
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	cfg.Log.Verbosity = *verbosity
	cfg.Archive.Dir = *archiveDir
	cfg.Replay.StopOnFailure = *failFast
	if *workers > 0 {
		cfg.Replay.Workers = *workers
	}
	return cfg.Validate()
}

// applyRulesFlags configures the draw limits and default promotion.
func applyRulesFlags(cfg *config.Config) error {
	kind, err := parsePromotion(*promote)
	if err != nil {
		return err
	}
	cfg.Rules.DefaultPromotion = kind
	cfg.Rules.HalfmoveLimit = *halfmoves
	cfg.Rules.RepetitionLimit = *repetitions
	return nil
}

// applyOutputFlags configures the move list notation and board display.
func applyOutputFlags(cfg *config.Config) error {
	format, ok := config.ParseOutputFormat(*outputFormat)
	if !ok {
		return fmt.Errorf("output format %q: %w", *outputFormat, errors.ErrInvalidConfig)
	}
	cfg.Output.Format = format
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.JSONFormat = *jsonOutput
	return nil
}

// parsePromotion maps a piece letter or name to a promotion kind.
func parsePromotion(s string) (chess.Kind, error) {
	var kind chess.Kind
	switch s {
	case "q", "Q", "queen":
		kind = chess.Queen
	case "r", "R", "rook":
		kind = chess.Rook
	case "b", "B", "bishop":
		kind = chess.Bishop
	case "n", "N", "knight":
		kind = chess.Knight
	}
	if !kind.IsPromotionTarget() {
		return chess.NoKind, fmt.Errorf("promotion piece %q: %w", s, errors.ErrInvalidConfig)
	}
	return kind, nil
}
