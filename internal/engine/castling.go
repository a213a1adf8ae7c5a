package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castling geometry on the home row, by column.
const (
	kingCol          = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
	kingsideKingTo   = 6
	queensideKingTo  = 2
	kingsideRookTo   = 5
	queensideRookTo  = 3
)

// castleSquares returns the king and rook squares (from, to) for a castle.
func castleSquares(colour chess.Colour, kingside bool) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	row := chess.HomeRow(colour)
	kingFrom = chess.SquareAt(row, kingCol)
	if kingside {
		return kingFrom, chess.SquareAt(row, kingsideKingTo), chess.SquareAt(row, kingsideRookCol), chess.SquareAt(row, kingsideRookTo)
	}
	return kingFrom, chess.SquareAt(row, queensideKingTo), chess.SquareAt(row, queensideRookCol), chess.SquareAt(row, queensideRookTo)
}

// CanCastle reports whether colour may castle on the given side right now:
// the right is still held, king and rook stand on their home squares, the
// squares between them are empty, and the king is not in check and does not
// pass through or land on an attacked square.
func CanCastle(pos *chess.Position, colour chess.Colour, kingside bool) bool {
	rights := pos.Castling.Get(colour)
	if (kingside && !rights.KingSide) || (!kingside && !rights.QueenSide) {
		return false
	}

	kingFrom, kingTo, rookFrom, _ := castleSquares(colour, kingside)
	board := &pos.Board
	if !board.Get(kingFrom).Is(colour, chess.King) || !board.Get(rookFrom).Is(colour, chess.Rook) {
		return false
	}

	if !isRowClear(board, kingFrom.Row(), kingFrom.Col(), rookFrom.Col()) {
		return false
	}

	opponent := colour.Opposite()
	step := sign(kingTo.Col() - kingFrom.Col())
	for sq := kingFrom; ; sq = sq.Offset(0, step) {
		if IsSquareAttacked(board, sq, opponent) {
			return false
		}
		if sq == kingTo {
			break
		}
	}

	return true
}

// castleOnBoard relocates king and rook together. Rights are revoked by applyMove.
func castleOnBoard(board *chess.Board, colour chess.Colour, kingside bool) {
	kingFrom, kingTo, rookFrom, rookTo := castleSquares(colour, kingside)

	king := board.Get(kingFrom)
	board.Set(kingFrom, chess.NoPiece)
	board.Set(kingTo, king)

	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.NoPiece)
	board.Set(rookTo, rook)
}

// updateCastlingRightsForRook removes a castling right when a rook of the
// colour leaves, or is captured on, its corner square.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	row := chess.HomeRow(colour)
	rights := pos.Castling.Side(colour)
	if sq == chess.SquareAt(row, kingsideRookCol) {
		rights.KingSide = false
	}
	if sq == chess.SquareAt(row, queensideRookCol) {
		rights.QueenSide = false
	}
}
