package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// quietConfig returns the default configuration with diagnostics silenced.
func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Log.Verbosity = 0
	return cfg
}

func newTestGame(opts ...GameOption) *Game {
	return NewGame(append([]GameOption{WithConfig(quietConfig())}, opts...)...)
}

func newTestGameFrom(t *testing.T, pos *chess.Position, opts ...GameOption) *Game {
	t.Helper()
	g, err := NewGameFromPosition(pos, append([]GameOption{WithConfig(quietConfig())}, opts...)...)
	if err != nil {
		t.Fatalf("NewGameFromPosition: %v", err)
	}
	return g
}

// play submits coordinate moves such as "e2e4" and returns the result of the
// last one. Every earlier move must be applied without ending the game.
func play(t *testing.T, g *Game, moves ...string) MoveResult {
	t.Helper()
	var res MoveResult
	for i, text := range moves {
		from, to, promo, err := chess.ParseCoordinate(text)
		if err != nil {
			t.Fatalf("bad move %q: %v", text, err)
		}
		if promo != chess.NoKind {
			res = g.MoveWithPromotion(from, to, promo)
		} else {
			res = g.Move(from, to)
		}
		if i < len(moves)-1 && res.Status != Applied {
			t.Fatalf("move %d (%s): status %v, reason %v", i+1, text, res.Status, res.Reason)
		}
	}
	return res
}

func sq(t *testing.T, name string) chess.Square {
	t.Helper()
	return testutil.Squares(t, name)[0]
}

// squareNames converts squares to their names for readable diffs.
func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, s := range squares {
		names[i] = s.String()
	}
	return names
}
