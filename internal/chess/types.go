// Package chess provides core chess types: colours, pieces, squares and the board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsMinor reports whether the kind is a bishop or a knight.
func (k Kind) IsMinor() bool {
	return k == Bishop || k == Knight
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k Kind) IsPromotionTarget() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// KindFromLetter parses a piece letter in either case. Returns NoKind when
// the letter names no piece.
func KindFromLetter(b byte) Kind {
	switch b {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the piece denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour && kind != NoKind
}

// String returns "Kind_Colour", or "None" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "None"
	}
	return p.Kind.String() + "_" + p.Colour.String()
}

// Letter returns the FEN-style letter: uppercase for white, lowercase for black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// SideRights holds the castling rights of one side.
type SideRights struct {
	KingSide  bool
	QueenSide bool
}

// CastlingRights holds both sides' castling rights.
// Rights are monotonic: once cleared they are never restored.
type CastlingRights struct {
	White SideRights
	Black SideRights
}

// AllCastlingRights returns the rights at the start of a standard game.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		White: SideRights{KingSide: true, QueenSide: true},
		Black: SideRights{KingSide: true, QueenSide: true},
	}
}

// Side returns a pointer to the rights of the given colour.
func (r *CastlingRights) Side(colour Colour) *SideRights {
	if colour == White {
		return &r.White
	}
	return &r.Black
}

// Get returns the rights of the given colour by value.
func (r CastlingRights) Get(colour Colour) SideRights {
	if colour == White {
		return r.White
	}
	return r.Black
}

// Revoke clears both rights of the given colour.
func (r *CastlingRights) Revoke(colour Colour) {
	*r.Side(colour) = SideRights{}
}

// String returns the rights in "KQkq" form, or "-" when none remain.
func (r CastlingRights) String() string {
	var buf []byte
	if r.White.KingSide {
		buf = append(buf, 'K')
	}
	if r.White.QueenSide {
		buf = append(buf, 'Q')
	}
	if r.Black.KingSide {
		buf = append(buf, 'k')
	}
	if r.Black.QueenSide {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PieceMove MoveClass = iota
	PawnMove
	PawnDoubleStep
	PawnMoveWithPromotion
	EnPassantPawnMove
	KingsideCastle
	QueensideCastle
)

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// PawnDirection returns the row delta of a pawn step: -1 for White (towards
// row 0, rank 8), +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which pawns of the colour may double-step.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which pawns of the colour promote.
func PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}

// HomeRow returns the back rank row of the colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 7
	}
	return 0
}
