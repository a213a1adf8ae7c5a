package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isValidPawnMove checks pawn shape: single step, double step from the start
// row, diagonal capture, or en passant onto the target square.
func isValidPawnMove(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	board := &pos.Board
	dir := chess.PawnDirection(colour)
	rowDiff := to.Row() - from.Row()
	colDiff := to.Col() - from.Col()

	// Single step forward onto an empty square
	if colDiff == 0 && rowDiff == dir {
		return board.Get(to).IsEmpty()
	}

	// Double step from the start row, both squares empty
	if colDiff == 0 && rowDiff == 2*dir {
		if from.Row() != chess.PawnStartRow(colour) {
			return false
		}
		middle := from.Offset(dir, 0)
		return board.Get(middle).IsEmpty() && board.Get(to).IsEmpty()
	}

	// Diagonal capture
	if abs(colDiff) == 1 && rowDiff == dir {
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			return true
		}
		return isEnPassantCapture(pos, colour, from, to)
	}

	return false
}

// isEnPassantCapture reports whether a diagonal pawn step onto to captures en passant:
// to is the en passant target and the square beside the pawn holds an enemy pawn.
func isEnPassantCapture(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	if pos.EnPassant == chess.NoSquare || to != pos.EnPassant {
		return false
	}
	if !pos.Board.Get(to).IsEmpty() {
		return false
	}
	captured := enPassantVictim(from, to)
	return pos.Board.Get(captured).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant capture.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.SquareAt(from.Row(), to.Col())
}

// isDoubleStep reports whether a pawn move from->to is a two-square advance.
func isDoubleStep(from, to chess.Square) bool {
	return from.Col() == to.Col() && abs(to.Row()-from.Row()) == 2
}

// doubleStepTarget returns the square passed over by a double step.
func doubleStepTarget(from, to chess.Square) chess.Square {
	return chess.SquareAt((from.Row()+to.Row())/2, from.Col())
}
