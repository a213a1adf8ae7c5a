package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// applyMove commits a legal move to pos and returns its record. promo is the
// kind a promoting pawn becomes and is ignored for other moves. The side to
// move is switched; clocks, en passant target and castling rights are updated.
func applyMove(pos *chess.Position, from, to chess.Square, promo chess.Kind) *chess.Move {
	piece := pos.Board.Get(from)
	colour := piece.Colour

	class, captured := moveOnBoard(pos, from, to)
	move := &chess.Move{
		From:     from,
		To:       to,
		Class:    class,
		Piece:    piece,
		Captured: captured,
	}

	// Castling rights
	switch piece.Kind {
	case chess.King:
		pos.Castling.Revoke(colour)
	case chess.Rook:
		updateCastlingRightsForRook(pos, colour, from)
	}
	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(pos, captured.Colour, to)
	}

	// Halfmove clock
	if piece.Kind == chess.Pawn || !captured.IsEmpty() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	// En passant target
	pos.EnPassant = chess.NoSquare
	if class == chess.PawnDoubleStep {
		pos.EnPassant = doubleStepTarget(from, to)
	}

	// Promotion
	if class == chess.PawnMoveWithPromotion {
		if !promo.IsPromotionTarget() {
			promo = chess.Queen
		}
		pos.Board.Set(to, chess.Piece{Kind: promo, Colour: colour})
		move.Promoted = promo
	}

	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()

	return move
}
