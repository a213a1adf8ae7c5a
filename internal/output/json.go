package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID               uint64     `json:"id,omitempty"`
	Moves            []JSONMove `json:"moves"`
	Result           string     `json:"result"`
	Termination      string     `json:"termination"`
	Winner           string     `json:"winner,omitempty"`
	PlyCount         int        `json:"plyCount"`
	FinalFingerprint string     `json:"finalFingerprint,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON form.
func GameToJSON(g *engine.Game) *JSONGame {
	history := g.History()
	outcome := g.Outcome()
	jg := &JSONGame{
		Moves:            make([]JSONMove, len(history)),
		Result:           outcome.Result(),
		Termination:      outcome.Termination.String(),
		PlyCount:         len(history),
		FinalFingerprint: g.FinalFingerprint(),
	}
	if outcome.Decisive {
		jg.Winner = strings.ToLower(outcome.Winner.String())
	}

	number := g.StartPosition().MoveNumber
	for i := range history {
		m := &history[i]
		jm := JSONMove{
			MoveNumber: number,
			Color:      strings.ToLower(m.Piece.Colour.String()),
			SAN:        m.Text,
			UCI:        m.Coordinate(),
			Piece:      strings.ToLower(m.Piece.Kind.String()),
		}
		if !m.Captured.IsEmpty() {
			jm.Captured = strings.ToLower(m.Captured.Kind.String())
		}
		if m.Promoted != chess.NoKind {
			jm.Promotion = strings.ToLower(m.Promoted.String())
		}
		jg.Moves[i] = jm
		if m.Piece.Colour == chess.Black {
			number++
		}
	}
	return jg
}

// OutputGamesJSON writes games as one indented JSON document.
func OutputGamesJSON(w io.Writer, games []*engine.Game) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(games))}
	for i, g := range games {
		out.Games[i] = GameToJSON(g)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
