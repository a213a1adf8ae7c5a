package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Log.Verbosity = 0
	return cfg
}

func playMoves(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		from, to, promo, err := chess.ParseCoordinate(text)
		if err != nil {
			t.Fatalf("bad move %q: %v", text, err)
		}
		res := g.MoveWithPromotion(from, to, promo)
		if res.Status == engine.Rejected {
			t.Fatalf("move %s rejected: %v", text, res.Err)
		}
	}
}

func foolsMate(t *testing.T) *engine.Game {
	t.Helper()
	g := engine.NewGame(engine.WithConfig(quietConfig()))
	playMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	return g
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3"} {
		ow.Write(s)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "1. e4 e5\n2. Nf3\n")
}

func TestWriteBoard_Initial(t *testing.T) {
	var buf bytes.Buffer
	WriteBoard(&buf, &chess.NewInitialPosition().Board)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 9)
	testutil.AssertEqual(t, lines[0], "8 r n b q k b n r")
	testutil.AssertEqual(t, lines[4], "4 . . . . . . . .")
	testutil.AssertEqual(t, lines[7], "1 R N B Q K B N R")
	testutil.AssertEqual(t, lines[8], "  a b c d e f g h")
}

func TestFormatMove(t *testing.T) {
	promo := chess.Move{
		From:     chess.MustParseSquare("e7"),
		To:       chess.MustParseSquare("e8"),
		Promoted: chess.Knight,
		Text:     "e8=N+",
	}

	tests := []struct {
		format config.OutputFormat
		want   string
	}{
		{config.SAN, "e8=N+"},
		{config.LALG, "e7e8n"},
		{config.HALG, "e7-e8n"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, FormatMove(&promo, tt.format), tt.want)
	}
}

func TestWriteMoves(t *testing.T) {
	g := foolsMate(t)

	tests := []struct {
		name    string
		format  config.OutputFormat
		numbers bool
		want    string
	}{
		{"san with numbers", config.SAN, true, "1. f3 e5 2. g4 Qh4#\n"},
		{"san without numbers", config.SAN, false, "f3 e5 g4 Qh4#\n"},
		{"long algebraic", config.LALG, true, "1. f2f3 e7e5 2. g2g4 d8h4\n"},
		{"hyphenated", config.HALG, false, "f2-f3 e7-e5 g2-g4 d8-h4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.OutputConfig{Format: tt.format, KeepMoveNumbers: tt.numbers}
			var buf bytes.Buffer
			WriteMoves(&buf, g.StartPosition(), g.History(), cfg, DefaultLineLength)
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteMoves_BlackToMoveFirst(t *testing.T) {
	pos := testutil.MustDiagram(t, chess.Black,
		"....k...",
		".......p",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K...",
	)
	g, err := engine.NewGameFromPosition(pos, engine.WithConfig(quietConfig()))
	testutil.AssertNoError(t, err)
	playMoves(t, g, "h7h6", "a1a8")

	var buf bytes.Buffer
	WriteMoves(&buf, g.StartPosition(), g.History(), config.NewOutputConfig(), DefaultLineLength)
	testutil.AssertEqual(t, buf.String(), "1... h6 2. Ra8+\n")
}

func TestWriteMoves_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteMoves(&buf, chess.NewInitialPosition(), nil, config.NewOutputConfig(), DefaultLineLength)
	testutil.AssertEqual(t, buf.String(), "")
}

func TestWriteOutcome(t *testing.T) {
	var buf bytes.Buffer
	WriteOutcome(&buf, engine.Outcome{})
	testutil.AssertEqual(t, buf.String(), "")

	WriteOutcome(&buf, foolsMate(t).Outcome())
	testutil.AssertEqual(t, buf.String(), "0-1 {checkmate, Black wins}\n")
}

func TestGameToJSON(t *testing.T) {
	jg := GameToJSON(foolsMate(t))

	testutil.AssertEqual(t, jg.Result, "0-1")
	testutil.AssertEqual(t, jg.Termination, "checkmate")
	testutil.AssertEqual(t, jg.Winner, "black")
	testutil.AssertEqual(t, jg.PlyCount, 4)
	testutil.AssertEqual(t, jg.Moves[3], JSONMove{
		MoveNumber: 2,
		Color:      "black",
		SAN:        "Qh4#",
		UCI:        "d8h4",
		Piece:      "queen",
	})
}
