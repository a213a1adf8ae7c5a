package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move records a committed move with everything needed to describe it.
type Move struct {
	From Square
	To   Square

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The piece being moved, before any promotion.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is the
	// pawn removed from beside the destination square.
	Captured Piece

	// The kind promoted to (NoKind if not a promotion).
	Promoted Kind

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus

	// Short algebraic text, e.g. "Nbd2", "exd6", "O-O", "e8=Q#".
	Text string

	// Ply number of this move, starting at 1.
	Ply int
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Coordinate returns the move in long coordinate form, e.g. "e2e4" or "e7e8q".
func (m *Move) Coordinate() string {
	s := m.From.String() + m.To.String()
	if m.Promoted != NoKind {
		s += string(m.Promoted.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the algebraic text if known, otherwise the coordinate form.
func (m *Move) String() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Coordinate()
}

// ParseCoordinate parses a move in long coordinate form. It accepts "e2e4",
// "e2-e4", "e2 e4" and a trailing promotion letter as in "e7e8q" or "e7e8=Q".
// promo is NoKind when no promotion letter is present. Unlike
// CoordinateToIndex it folds upper-case squares, so "E2E4" is accepted; it
// serves typed and file input, while board coordinates stay lower case.
func ParseCoordinate(text string) (from, to Square, promo Kind, err error) {
	s := strings.NewReplacer(" ", "", "-", "", "=", "").Replace(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, NoKind, errors.Wrapf(errors.ErrInvalidSquare, "move %q", text)
	}
	if from, err = ParseSquare(strings.ToLower(s[0:2])); err != nil {
		return NoSquare, NoSquare, NoKind, err
	}
	if to, err = ParseSquare(strings.ToLower(s[2:4])); err != nil {
		return NoSquare, NoSquare, NoKind, err
	}
	if len(s) == 5 {
		promo = KindFromLetter(s[4])
		if promo == NoKind {
			return NoSquare, NoSquare, NoKind, errors.Wrapf(errors.ErrIllegalMove, "promotion letter %q", s[4:])
		}
	}
	return from, to, promo, nil
}
