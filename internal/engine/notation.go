package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// moveText returns the short algebraic text of a legal move, computed on the
// position before the move. The check suffix is added by checkSuffix.
func moveText(pos *chess.Position, from, to chess.Square, promo chess.Kind) string {
	piece := pos.Board.Get(from)
	target := pos.Board.Get(to)

	if piece.Kind == chess.King && abs(to.Col()-from.Col()) == 2 {
		if to.Col() > from.Col() {
			return "O-O"
		}
		return "O-O-O"
	}

	var buf []byte

	if piece.Kind == chess.Pawn {
		if from.Col() != to.Col() {
			buf = append(buf, from.String()[0], 'x')
		}
		buf = append(buf, to.String()...)
		if to.Row() == chess.PromotionRow(piece.Colour) {
			if !promo.IsPromotionTarget() {
				promo = chess.Queen
			}
			buf = append(buf, '=', promo.Letter())
		}
		return string(buf)
	}

	buf = append(buf, piece.Kind.Letter())
	buf = append(buf, disambiguation(pos, piece, from, to)...)
	if !target.IsEmpty() {
		buf = append(buf, 'x')
	}
	buf = append(buf, to.String()...)
	return string(buf)
}

// disambiguation returns the file, rank or full square needed to tell the
// moving piece apart from identical pieces that could also legally reach to.
func disambiguation(pos *chess.Position, piece chess.Piece, from, to chess.Square) string {
	var rivals []chess.Square
	for _, sq := range pos.Board.Find(piece) {
		if sq != from && IsLegal(pos, sq, to) {
			rivals = append(rivals, sq)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameCol, sameRow := false, false
	for _, sq := range rivals {
		if sq.Col() == from.Col() {
			sameCol = true
		}
		if sq.Row() == from.Row() {
			sameRow = true
		}
	}

	name := from.String()
	switch {
	case !sameCol:
		return name[:1]
	case !sameRow:
		return name[1:]
	default:
		return name
	}
}

// checkSuffix returns "#" for mate, "+" for check, or "".
func checkSuffix(status chess.CheckStatus) string {
	switch status {
	case chess.Checkmate:
		return "#"
	case chess.Check:
		return "+"
	default:
		return ""
	}
}
