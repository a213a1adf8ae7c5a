package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestIsSquareAttacked(t *testing.T) {
	pos := testutil.MustDiagram(t, chess.White,
		"r...k...",
		"........",
		"........",
		"...p....",
		"........",
		"..N.....",
		"....P...",
		"...QK..B",
	)
	board := &pos.Board

	tests := []struct {
		name   string
		square string
		by     chess.Colour
		want   bool
	}{
		{"black pawn attacks diagonally forward", "c4", chess.Black, true},
		{"black pawn does not attack straight ahead", "d4", chess.Black, false},
		{"black pawn does not attack backwards", "c6", chess.Black, false},
		{"white pawn attacks diagonally forward", "f3", chess.White, true},
		{"white pawn does not attack straight ahead", "e3", chess.White, false},
		{"knight", "d5", chess.White, true},
		{"knight from c3 to e4", "e4", chess.White, true},
		{"rook along rank", "d8", chess.Black, true},
		{"rook along file", "a1", chess.Black, true},
		{"rook not through own king", "g8", chess.Black, false},
		{"queen up file", "d4", chess.White, true},
		{"queen blocked by pawn beyond", "d6", chess.White, false},
		{"bishop blocked by pawn", "c6", chess.White, false},
		{"bishop long diagonal", "e4", chess.White, true},
		{"king adjacent", "f2", chess.White, true},
		{"nothing attacks", "h6", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSquareAttacked(board, sq(t, tt.square), tt.by)
			if got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %s) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		ranks  []string
		colour chess.Colour
		want   bool
	}{
		{
			name:   "initial position",
			ranks:  []string{"rnbqkbnr", "pppppppp", "........", "........", "........", "........", "PPPPPPPP", "RNBQKBNR"},
			colour: chess.White,
			want:   false,
		},
		{
			name:   "rook on open file",
			ranks:  []string{"....k...", "........", "........", "........", "........", "........", "........", "....R..K"},
			colour: chess.Black,
			want:   true,
		},
		{
			name:   "rook blocked",
			ranks:  []string{"....k...", "....n...", "........", "........", "........", "........", "........", "....R..K"},
			colour: chess.Black,
			want:   false,
		},
		{
			name:   "white pawn gives check",
			ranks:  []string{"........", "........", "........", "........", "........", "..k.....", ".P......", "K......."},
			colour: chess.Black,
			want:   true,
		},
		{
			name:   "pawn never checks backwards",
			ranks:  []string{"........", "........", "........", "........", "........", "K.......", ".p......", "......k."},
			colour: chess.White,
			want:   false,
		},
		{
			name:   "black pawn gives check",
			ranks:  []string{"........", "........", "........", "........", "........", "........", ".p......", "K.....k."},
			colour: chess.White,
			want:   true,
		},
		{
			name:   "knight check",
			ranks:  []string{"........", "........", "........", "........", "........", ".n......", "........", "K......k"},
			colour: chess.White,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustDiagram(t, chess.White, tt.ranks...)
			if got := IsInCheck(&pos.Board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestFindKing_Missing(t *testing.T) {
	var board chess.Board
	board.Set(chess.E1, chess.W(chess.King))

	got, err := FindKing(&board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, chess.E1)

	_, err = FindKing(&board, chess.Black)
	testutil.AssertErrorIs(t, err, errors.ErrInternal)
	testutil.AssertFalse(t, IsInCheck(&board, chess.Black), "missing king is never in check")
}

func TestAttackers(t *testing.T) {
	pos := testutil.MustDiagram(t, chess.Black,
		"....k...",
		"........",
		"...N....",
		"........",
		".B......",
		"........",
		"........",
		"....R..K",
	)

	got := squareNames(Attackers(&pos.Board, chess.E8, chess.White))
	testutil.AssertEqual(t, got, []string{"d6", "e1"})
}
