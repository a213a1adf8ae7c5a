package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ShapeIsValid reports whether the piece on from may move to to by its
// movement pattern alone: shape, path obstruction, en passant and castling
// feasibility. It does not check whose turn it is, whether the destination
// holds a friendly piece, or whether the mover's king is left in check.
func ShapeIsValid(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.Board.Get(from)
	if piece.IsEmpty() || !to.Valid() || from == to {
		return false
	}
	return shapeIsValid(pos, piece, from, to)
}

func shapeIsValid(pos *chess.Position, piece chess.Piece, from, to chess.Square) bool {
	rowDiff := abs(to.Row() - from.Row())
	colDiff := abs(to.Col() - from.Col())

	switch piece.Kind {
	case chess.Pawn:
		return isValidPawnMove(pos, piece.Colour, from, to)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(&pos.Board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(&pos.Board, from, to)

	case chess.Queen:
		if colDiff != rowDiff && colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(&pos.Board, from, to)

	case chess.King:
		if colDiff <= 1 && rowDiff <= 1 {
			return true
		}
		if rowDiff == 0 && colDiff == 2 {
			return CanCastle(pos, piece.Colour, to.Col() > from.Col())
		}
		return false
	}

	return false
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a row, a column or a diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row() - from.Row())
	colDir := sign(to.Col() - from.Col())

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if sq == chess.NoSquare {
			return false
		}
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// isRowClear checks that the squares on row strictly between columns a and b are empty.
func isRowClear(board *chess.Board, row, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for col := a + 1; col < b; col++ {
		if !board.Get(chess.SquareAt(row, col)).IsEmpty() {
			return false
		}
	}
	return true
}
