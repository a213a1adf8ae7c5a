package engine

import (
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// sortedSquares holds the 64 squares ordered by name: a1, a2, ... h8.
var sortedSquares = func() []chess.Square {
	squares := chess.AllSquares()
	sort.Slice(squares, func(i, j int) bool {
		return squares[i].String() < squares[j].String()
	})
	return squares
}()

// Fingerprint serializes everything that makes two positions the same for
// repetition purposes: the placement of every square in name order, the side
// to move, the en passant target and the castling rights. Clocks are excluded.
func Fingerprint(pos *chess.Position) string {
	var sb strings.Builder
	sb.Grow(chess.NumSquares*16 + 48)

	for _, sq := range sortedSquares {
		sb.WriteString(sq.String())
		sb.WriteByte(':')
		sb.WriteString(pos.Board.Get(sq).String())
		sb.WriteByte(';')
	}

	sb.WriteString("turn:")
	sb.WriteString(pos.ToMove.String())
	sb.WriteString(";en_passant:")
	sb.WriteString(pos.EnPassant.String())
	sb.WriteString(";castling:")
	sb.WriteString(pos.Castling.String())

	return sb.String()
}
