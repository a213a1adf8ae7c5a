package eco

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const testECOData = `
# test table
B90 | Sicilian | Najdorf | e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6
C50 | Giuoco Piano |  | e2e4 e7e5 g1f3 b8c6 f1c4 f8c5

D35 | QGD | exchange variation | d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c4d5 e6d5
`

func newTestClassifier(t *testing.T) *ECOClassifier {
	t.Helper()
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
		t.Fatalf("failed to load ECO data: %v", err)
	}
	return ec
}

func playedGame(t *testing.T, moves string) *engine.Game {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Log.Verbosity = 0
	g := engine.NewGame(engine.WithConfig(cfg))
	for _, text := range strings.Fields(moves) {
		from, to, promo, err := chess.ParseCoordinate(text)
		if err != nil {
			t.Fatalf("bad move %q: %v", text, err)
		}
		if res := g.MoveWithPromotion(from, to, promo); !res.OK() {
			t.Fatalf("move %s rejected: %v", text, res.Err)
		}
	}
	return g
}

func TestECOClassifierLoad(t *testing.T) {
	ec := newTestClassifier(t)
	testutil.AssertEqual(t, ec.EntriesLoaded(), 3)

	// Loading the same lines again adds nothing.
	testutil.AssertNoError(t, ec.LoadFromReader(strings.NewReader(testECOData)))
	testutil.AssertEqual(t, ec.EntriesLoaded(), 3)
}

func TestECOClassifierLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		sentinel error
	}{
		{"missing fields", "B90 | Sicilian | e2e4 c7c5", errors.ErrInvalidConfig},
		{"no moves", "B90 | Sicilian |  | ", errors.ErrInvalidConfig},
		{"bad square", "B90 | Sicilian |  | e2e9", errors.ErrInvalidSquare},
		{"illegal move", "B90 | Sicilian |  | e2e5", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewECOClassifier().LoadFromReader(strings.NewReader(tt.data))
			testutil.AssertErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestClassifyGame(t *testing.T) {
	ec := newTestClassifier(t)

	tests := []struct {
		name  string
		moves string
		want  string
	}{
		{"exact najdorf", "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6", "B90 Sicilian: Najdorf"},
		{"beyond the line", "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6 f1e2 e7e5 d4b3", "B90 Sicilian: Najdorf"},
		{"giuoco piano", "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5", "C50 Giuoco Piano"},
		{"transposed giuoco", "g1f3 b8c6 e2e4 e7e5 f1c4 f8c5", "C50 Giuoco Piano"},
		{"qgd exchange", "d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c4d5 e6d5", "D35 QGD: exchange variation"},
		{"no match", "a2a3", ""},
		{"short of the line", "e2e4 e7e5 g1f3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := ec.ClassifyGame(playedGame(t, tt.moves))
			got := ""
			if match != nil {
				got = match.String()
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestClassifyGame_CustomStart(t *testing.T) {
	pos := testutil.MustDiagram(t, chess.White,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....P...",
		"R...K...",
	)
	cfg := config.NewConfig()
	cfg.Log.Verbosity = 0
	g, err := engine.NewGameFromPosition(pos, engine.WithConfig(cfg))
	testutil.AssertNoError(t, err)

	testutil.AssertNil(t, NewDefaultClassifier().ClassifyGame(g))
}

func TestClassifyGame_Empty(t *testing.T) {
	testutil.AssertNil(t, NewECOClassifier().ClassifyGame(playedGame(t, "e2e4")))
}

func TestDefaultClassifier(t *testing.T) {
	ec := NewDefaultClassifier()
	testutil.AssertTrue(t, ec.EntriesLoaded() > 20)

	tests := []struct {
		moves string
		want  string
	}{
		{"e2e4", "B00"},
		{"e2e4 c7c5", "B20"},
		{"e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5c6 d7c6", "C68"},
		{"d2d4 g8f6 c2c4 e7e6 b1c3 f8b4", "E20"},
		{"c2c4 e7e6 d2d4 g8f6 b1c3 f8b4", "E20"},
		{"d2d4 d7d5 c2c4 d5c4", "D20"},
	}

	for _, tt := range tests {
		t.Run(tt.moves, func(t *testing.T) {
			match := ec.ClassifyGame(playedGame(t, tt.moves))
			if match == nil {
				t.Fatalf("no match for %s", tt.moves)
			}
			testutil.AssertEqual(t, match.ECOCode, tt.want)
		})
	}
}
