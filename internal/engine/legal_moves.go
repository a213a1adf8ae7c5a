package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// RejectReason says why a move failed the legality pipeline.
type RejectReason int

const (
	Accepted RejectReason = iota
	ReasonInvalidSquare
	ReasonGameOver
	ReasonNoPiece
	ReasonWrongTurn
	ReasonSameSquare
	ReasonOwnPiece
	ReasonIllegalShape
	ReasonLeavesKingInCheck
	ReasonBadPromotion
)

// String returns a short human readable description of the reason.
func (r RejectReason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case ReasonInvalidSquare:
		return "invalid square"
	case ReasonGameOver:
		return "the game is over"
	case ReasonNoPiece:
		return "no piece on the start square"
	case ReasonWrongTurn:
		return "not this side's turn"
	case ReasonSameSquare:
		return "start and end squares are the same"
	case ReasonOwnPiece:
		return "destination holds a piece of the same colour"
	case ReasonIllegalShape:
		return "the piece cannot move that way"
	case ReasonLeavesKingInCheck:
		return "the move leaves the king in check"
	case ReasonBadPromotion:
		return "invalid promotion piece"
	default:
		return "unknown"
	}
}

// checkMove runs the legality pipeline without the turn gate: occupancy,
// shape, then check-safety on a simulated copy of the position.
func checkMove(pos *chess.Position, from, to chess.Square) RejectReason {
	if !from.Valid() || !to.Valid() {
		return ReasonInvalidSquare
	}
	piece := pos.Board.Get(from)
	if piece.IsEmpty() {
		return ReasonNoPiece
	}
	if from == to {
		return ReasonSameSquare
	}
	if target := pos.Board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return ReasonOwnPiece
	}
	if !shapeIsValid(pos, piece, from, to) {
		return ReasonIllegalShape
	}
	if IsInCheck(&simulate(pos, from, to).Board, piece.Colour) {
		return ReasonLeavesKingInCheck
	}
	return Accepted
}

// IsLegal reports whether the piece on from may legally move to to, ignoring
// whose turn it is. It is the predicate used by checkmate and stalemate
// scans and by notation disambiguation.
func IsLegal(pos *chess.Position, from, to chess.Square) bool {
	return checkMove(pos, from, to) == Accepted
}

// simulate returns a copy of pos with the board effects of from->to applied,
// including en passant removal and castling rook relocation. pos is not modified.
func simulate(pos *chess.Position, from, to chess.Square) *chess.Position {
	sim := pos.Copy()
	moveOnBoard(sim, from, to)
	return sim
}

// moveOnBoard performs the board mutation of a shape-valid move and reports
// its class and the captured piece. It does not touch clocks, rights or turn.
func moveOnBoard(pos *chess.Position, from, to chess.Square) (chess.MoveClass, chess.Piece) {
	board := &pos.Board
	piece := board.Get(from)
	captured := board.Get(to)
	class := chess.PieceMove

	switch piece.Kind {
	case chess.King:
		if abs(to.Col()-from.Col()) == 2 {
			kingside := to.Col() > from.Col()
			castleOnBoard(board, piece.Colour, kingside)
			if kingside {
				return chess.KingsideCastle, chess.NoPiece
			}
			return chess.QueensideCastle, chess.NoPiece
		}

	case chess.Pawn:
		class = chess.PawnMove
		switch {
		case from.Col() != to.Col() && captured.IsEmpty():
			victim := enPassantVictim(from, to)
			captured = board.Get(victim)
			board.Set(victim, chess.NoPiece)
			class = chess.EnPassantPawnMove
		case isDoubleStep(from, to):
			class = chess.PawnDoubleStep
		}
		if to.Row() == chess.PromotionRow(piece.Colour) {
			class = chess.PawnMoveWithPromotion
		}
	}

	board.Set(from, chess.NoPiece)
	board.Set(to, piece)
	return class, captured
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for _, from := range pos.Board.Pieces(colour) {
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if IsLegal(pos, from, to) {
				return true
			}
		}
	}
	return false
}

// LegalDestinations returns every square the piece on from may legally reach.
func LegalDestinations(pos *chess.Position, from chess.Square) []chess.Square {
	var squares []chess.Square
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if IsLegal(pos, from, to) {
			squares = append(squares, to)
		}
	}
	return squares
}

// MovePair is a start and destination square.
type MovePair struct {
	From chess.Square
	To   chess.Square
}

// LegalMoves returns every legal start/destination pair for the colour.
// A promotion appears once; the promotion piece is chosen when it is played.
func LegalMoves(pos *chess.Position, colour chess.Colour) []MovePair {
	var moves []MovePair
	for _, from := range pos.Board.Pieces(colour) {
		for _, to := range LegalDestinations(pos, from) {
			moves = append(moves, MovePair{From: from, To: to})
		}
	}
	return moves
}
