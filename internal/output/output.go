// Package output renders boards, move lists and finished games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DefaultLineLength is the wrap column for move lists.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws the board rank 8 first with rank and file labels.
// Empty squares are '.', white pieces uppercase and black pieces lowercase.
func WriteBoard(w io.Writer, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(chess.BoardSize - row))
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(board.Get(chess.SquareAt(row, col)).Letter())
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// FormatMove renders a committed move in the given notation.
func FormatMove(m *chess.Move, format config.OutputFormat) string {
	switch format {
	case config.LALG:
		return m.Coordinate()
	case config.HALG:
		s := m.From.String() + "-" + m.To.String()
		if m.Promoted != chess.NoKind {
			s += string(m.Promoted.Letter() + ('a' - 'A'))
		}
		return s
	default:
		return m.String()
	}
}

// WriteMoves writes a move list wrapped at lineLength. start is the
// position the moves were played from; it fixes the first move number and
// whether the list opens with a black move.
func WriteMoves(w io.Writer, start *chess.Position, moves []chess.Move, cfg *config.OutputConfig, lineLength int) {
	ow := NewOutputWriter(w, lineLength)
	number := start.MoveNumber
	if number < 1 {
		number = 1
	}
	mover := start.ToMove

	for i := range moves {
		if cfg.KeepMoveNumbers {
			switch {
			case mover == chess.White:
				ow.Write(strconv.Itoa(number) + ".")
			case i == 0:
				ow.Write(strconv.Itoa(number) + "...")
			}
		}
		ow.Write(FormatMove(&moves[i], cfg.Format))

		if mover == chess.Black {
			number++
		}
		mover = mover.Opposite()
	}
	if len(moves) > 0 {
		ow.NewLine()
	}
}

// WriteOutcome writes the result line of a game, e.g.
// "0-1 {checkmate, Black wins}". Nothing is written for a game in progress.
func WriteOutcome(w io.Writer, outcome engine.Outcome) {
	if outcome.Termination == engine.Unterminated {
		return
	}
	fmt.Fprintf(w, "%s {%s}\n", outcome.Result(), outcome)
}

// WriteGame writes the move list and result of g.
func WriteGame(w io.Writer, g *engine.Game, cfg *config.OutputConfig) {
	WriteMoves(w, g.StartPosition(), g.History(), cfg, DefaultLineLength)
	WriteOutcome(w, g.Outcome())
}
