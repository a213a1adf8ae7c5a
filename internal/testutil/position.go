package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Diagram builds a position from eight rank strings, rank 8 first. Each rank
// has eight characters: a piece letter (upper case White, lower case Black)
// or '.' for an empty square. The position has no castling rights and no en
// passant target; callers set those fields directly when a test needs them.
func Diagram(toMove chess.Colour, ranks ...string) (*chess.Position, error) {
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d ranks, want %d", len(ranks), chess.BoardSize)
	}

	pos := chess.NewPosition()
	pos.Castling = chess.CastlingRights{}
	pos.ToMove = toMove

	for row, rank := range ranks {
		if len(rank) != chess.BoardSize {
			return nil, fmt.Errorf("rank %d is %q, want %d squares", chess.BoardSize-row, rank, chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := rank[col]
			if c == '.' {
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return nil, fmt.Errorf("rank %d: unknown piece %q", chess.BoardSize-row, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pos.Board.Set(chess.SquareAt(row, col), chess.Piece{Kind: kind, Colour: colour})
		}
	}
	return pos, nil
}

// MustDiagram is Diagram for test setup; it calls t.Fatal on a malformed diagram.
func MustDiagram(t *testing.T, toMove chess.Colour, ranks ...string) *chess.Position {
	t.Helper()
	pos, err := Diagram(toMove, ranks...)
	if err != nil {
		t.Fatalf("bad diagram: %v", err)
	}
	return pos
}

// Squares parses square names, calling t.Fatal on a bad name.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}
