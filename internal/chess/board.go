package chess

import (
	"strings"
)

// Board is a fixed 8x8 grid of optional pieces indexed by Square.
// It is a value type: assignment copies every square.
type Board struct {
	Squares [NumSquares]Piece
}

// Get returns the piece on the square, or NoPiece for an empty or invalid square.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece on the square. Setting NoPiece empties it.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// At returns the piece on the named square.
func (b *Board) At(name string) (Piece, error) {
	sq, err := ParseSquare(name)
	if err != nil {
		return NoPiece, err
	}
	return b.Squares[sq], nil
}

// Put places a piece on the named square.
func (b *Board) Put(name string, piece Piece) error {
	sq, err := ParseSquare(name)
	if err != nil {
		return err
	}
	b.Squares[sq] = piece
	return nil
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [NumSquares]Piece{}
}

// Snapshot returns a mapping from every square name to its (possibly empty) piece.
func (b *Board) Snapshot() map[string]Piece {
	snap := make(map[string]Piece, NumSquares)
	for i, p := range b.Squares {
		snap[Square(i).String()] = p
	}
	return snap
}

// Find returns the squares holding the given piece, in index order.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for i, p := range b.Squares {
		if p == piece {
			squares = append(squares, Square(i))
		}
	}
	return squares
}

// Pieces returns the squares occupied by pieces of the colour, in index order.
func (b *Board) Pieces(colour Colour) []Square {
	var squares []Square
	for i, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			squares = append(squares, Square(i))
		}
	}
	return squares
}

// String renders the board as eight lines, rank 8 first, with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[SquareAt(row, col)].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Position is a board together with all state needed to continue the game.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// The square passed over by the preceding double pawn step, or NoSquare.
	EnPassant Square

	Castling CastlingRights

	// The number of half-moves since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber int
}

// NewPosition creates an empty position with White to move and no castling rights.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Board.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		p.Board.Set(SquareAt(HomeRow(White), col), W(backRank[col]))
		p.Board.Set(SquareAt(PawnStartRow(White), col), W(Pawn))
		p.Board.Set(SquareAt(PawnStartRow(Black), col), B(Pawn))
		p.Board.Set(SquareAt(HomeRow(Black), col), B(backRank[col]))
	}

	p.ToMove = White
	p.EnPassant = NoSquare
	p.Castling = AllCastlingRights()
	p.HalfmoveClock = 0
	p.MoveNumber = 1
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}
