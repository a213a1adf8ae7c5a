package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return IsInCheck(&pos.Board, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !IsInCheck(&pos.Board, colour) && !HasLegalMoves(pos, colour)
}
