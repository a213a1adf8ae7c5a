// Package engine provides chess move validation, move application and
// detection of check, mate and the automatic draw rules.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Default limits for the automatic draw rules.
const (
	// DefaultHalfmoveLimit is the number of half-moves without a pawn move or
	// capture after which the game is drawn.
	DefaultHalfmoveLimit = 50

	// DefaultRepetitionLimit is the number of occurrences of a position that
	// draws the game.
	DefaultRepetitionLimit = 3
)

// HasInsufficientMaterial returns true if neither side has enough material to
// continue: each side's material besides the king is nothing, a single minor
// piece, or two minor pieces. Any pawn, rook or queen is sufficient.
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors int

	for _, piece := range board.Squares {
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		if !piece.Kind.IsMinor() {
			return false
		}

		if piece.Colour == chess.White {
			whiteMinors++
		} else {
			blackMinors++
		}
	}

	return whiteMinors <= 2 && blackMinors <= 2
}

// IsFiftyMoveDraw returns true once the halfmove clock reaches limit.
func IsFiftyMoveDraw(pos *chess.Position, limit int) bool {
	return pos.HalfmoveClock >= limit
}
