package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, err := FindKing(board, colour)
	if err != nil {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// FindKing returns the square of the given colour's king.
// Returns ErrInternal if the king is missing.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	for i, p := range board.Squares {
		if p == king {
			return chess.Square(i), nil
		}
	}
	return chess.NoSquare, errors.Wrapf(errors.ErrInternal, "no %s king on the board", colour)
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Pawns attack diagonally forward only; sliding attacks stop at the first piece.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks come from one row behind the square, from the attacker's view
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	dir := chess.PawnDirection(byColour)
	for _, dc := range []int{-1, 1} {
		if board.Get(sq.Offset(-dir, dc)) == pawn {
			return true
		}
	}

	knight := chess.Piece{Kind: chess.Knight, Colour: byColour}
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.Piece{Kind: chess.King, Colour: byColour}
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.Piece{Kind: chess.Queen, Colour: byColour}

	bishop := chess.Piece{Kind: chess.Bishop, Colour: byColour}
	for _, dir := range diagonalDirs {
		if p := firstPieceAlong(board, sq, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.Piece{Kind: chess.Rook, Colour: byColour}
	for _, dir := range straightDirs {
		if p := firstPieceAlong(board, sq, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceAlong returns the first piece met walking from sq in direction dir,
// or NoPiece if the ray leaves the board.
func firstPieceAlong(board *chess.Board, sq chess.Square, dir [2]int) chess.Piece {
	for cur := sq.Offset(dir[0], dir[1]); cur != chess.NoSquare; cur = cur.Offset(dir[0], dir[1]) {
		if p := board.Get(cur); !p.IsEmpty() {
			return p
		}
	}
	return chess.NoPiece
}

// Attackers returns the squares of byColour's pieces that attack sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var squares []chess.Square
	for _, from := range board.Pieces(byColour) {
		if canAttack(board, board.Get(from), from, sq) {
			squares = append(squares, from)
		}
	}
	return squares
}

// canAttack reports whether piece on from attacks target. It matches the
// movement shape for every kind except pawns, which only attack diagonally.
func canAttack(board *chess.Board, piece chess.Piece, from, target chess.Square) bool {
	if from == target {
		return false
	}
	rowDiff := target.Row() - from.Row()
	colDiff := abs(target.Col() - from.Col())

	switch piece.Kind {
	case chess.Pawn:
		return colDiff == 1 && rowDiff == chess.PawnDirection(piece.Colour)
	case chess.Knight:
		return (abs(rowDiff) == 2 && colDiff == 1) || (abs(rowDiff) == 1 && colDiff == 2)
	case chess.Bishop:
		return abs(rowDiff) == colDiff && isPathClear(board, from, target)
	case chess.Rook:
		return (rowDiff == 0 || colDiff == 0) && isPathClear(board, from, target)
	case chess.Queen:
		return (rowDiff == 0 || colDiff == 0 || abs(rowDiff) == colDiff) && isPathClear(board, from, target)
	case chess.King:
		return abs(rowDiff) <= 1 && colDiff <= 1
	}
	return false
}
