package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board square stored as a flat index row*8+col.
// Row 0 is rank 8 (Black's back rank) and row 7 is rank 1.
type Square int8

// NoSquare marks an absent square, for example no en passant target.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A1 Square = 56 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// SquareAt returns the square at the given row and column.
// Returns NoSquare when either index is off the board.
func SquareAt(row, col int) Square {
	if !OnBoard(row, col) {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

// OnBoard reports whether row and col are both within [0,7].
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Row returns the row index (0 = rank 8).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column index (0 = file a).
func (s Square) Col() int {
	return int(s) % BoardSize
}

// Valid reports whether s is one of the 64 board squares.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// Offset returns the square dr rows and dc columns away, or NoSquare.
func (s Square) Offset(dr, dc int) Square {
	return SquareAt(s.Row()+dr, s.Col()+dc)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FirstCol + s.Col()), byte(LastRank - s.Row())})
}

// ParseSquare converts an algebraic coordinate into a Square.
func ParseSquare(name string) (Square, error) {
	row, col, err := CoordinateToIndex(name)
	if err != nil {
		return NoSquare, err
	}
	return SquareAt(row, col), nil
}

// MustParseSquare is ParseSquare for constant inputs; it panics on bad input.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// CoordinateToIndex converts a coordinate such as "e2" into (row, col).
// Fails with ErrInvalidSquare unless the input is a letter a-h followed by a digit 1-8.
func CoordinateToIndex(name string) (row, col int, err error) {
	if len(name) != 2 {
		return 0, 0, &errors.SquareError{Input: name}
	}
	file, rank := name[0], name[1]
	if file < FirstCol || file > LastCol || rank < FirstRank || rank > LastRank {
		return 0, 0, &errors.SquareError{Input: name}
	}
	return int(LastRank - rank), int(file - FirstCol), nil
}

// IndexToCoordinate is the inverse of CoordinateToIndex.
func IndexToCoordinate(row, col int) (string, error) {
	if !OnBoard(row, col) {
		return "", errors.Wrapf(errors.ErrInvalidSquare, "row %d col %d", row, col)
	}
	return SquareAt(row, col).String(), nil
}

// AllSquares returns the 64 squares in index order.
func AllSquares() []Square {
	squares := make([]Square, NumSquares)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}
