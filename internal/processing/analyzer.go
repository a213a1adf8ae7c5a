// Package processing analyzes finished or in-progress games.
package processing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies           int
	Captures        int
	Checks          int
	Castles         int
	EnPassant       int
	Promotions      int
	Underpromotions int

	// MaxRepetition is the highest occurrence count any position reached
	// by a move. The starting position is not counted.
	MaxRepetition int

	// LongestQuietRun is the highest half-move clock reached.
	LongestQuietRun int

	// FinalInsufficientMaterial is set when neither side can mate in the
	// final position.
	FinalInsufficientMaterial bool
}

// RepetitionDetected reports whether any position occurred at least limit times.
func (ga *GameAnalysis) RepetitionDetected(limit int) bool {
	return ga.MaxRepetition >= limit
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.Underpromotions > 0
}

// AnalyzeGame replays the moves of g from its starting position and tallies
// its features. cfg supplies the draw limits for the replay; nil means the
// defaults.
func AnalyzeGame(g *engine.Game, cfg *config.Config) (*GameAnalysis, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	quiet := *cfg
	quiet.Log = &config.LogConfig{}

	replay, err := engine.NewGameFromPosition(g.StartPosition(), engine.WithConfig(&quiet))
	if err != nil {
		return nil, err
	}

	analysis := &GameAnalysis{MaxRepetition: replay.RepetitionCount()}
	for _, m := range g.History() {
		promo := m.Promoted
		if promo == chess.NoKind {
			promo = chess.Queen
		}
		res := replay.MoveWithPromotion(m.From, m.To, promo)
		if res.Err != nil {
			return nil, res.Err
		}
		tally(analysis, res.Move)

		if n := replay.RepetitionCount(); n > analysis.MaxRepetition {
			analysis.MaxRepetition = n
		}
		if clock := replay.Position().HalfmoveClock; clock > analysis.LongestQuietRun {
			analysis.LongestQuietRun = clock
		}
	}

	analysis.FinalInsufficientMaterial = engine.HasInsufficientMaterial(&replay.Position().Board)
	return analysis, nil
}

func tally(analysis *GameAnalysis, m *chess.Move) {
	analysis.Plies++
	if !m.Captured.IsEmpty() {
		analysis.Captures++
	}
	if m.CheckStatus != chess.NoCheck {
		analysis.Checks++
	}
	if m.IsCastle() {
		analysis.Castles++
	}
	if m.Class == chess.EnPassantPawnMove {
		analysis.EnPassant++
	}
	if m.Promoted != chess.NoKind {
		analysis.Promotions++
		if m.Promoted != chess.Queen {
			analysis.Underpromotions++
		}
	}
}
