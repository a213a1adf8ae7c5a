package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/archive"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newTestSession(t *testing.T, store *archive.Archive) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&buf).
		WithShowBoard(false).
		WithLog(nil, 0).
		Build()
	return NewSession(cfg, store), &buf
}

func handleAll(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if !s.Handle(line) {
			t.Fatalf("session ended at %q", line)
		}
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{"", "", nil},
		{"   ", "", nil},
		{"board", "board", []string{}},
		{"  Moves  e2 ", "moves", []string{"e2"}},
		{"e2 e4", "e2", []string{"e4"}},
	}

	for _, tt := range tests {
		cmd, args := splitCommand(tt.line)
		testutil.AssertEqual(t, cmd, tt.wantCmd, tt.line)
		testutil.AssertEqual(t, len(args), len(tt.wantArgs), tt.line)
		for i := range tt.wantArgs {
			testutil.AssertEqual(t, args[i], tt.wantArgs[i], tt.line)
		}
	}
}

func TestSession_FoolsMate(t *testing.T) {
	s, buf := newTestSession(t, nil)
	handleAll(t, s, "f2f3", "e7-e5", "g2 g4", "D8H4")

	out := buf.String()
	testutil.AssertContains(t, out, "Qh4#\n")
	testutil.AssertContains(t, out, "Game over: checkmate, Black wins (0-1)\n")
	testutil.AssertContains(t, out, "1. f3 e5 2. g4 Qh4#\n0-1 {checkmate, Black wins}\n")
	testutil.AssertTrue(t, s.game.IsOver())

	buf.Reset()
	handleAll(t, s, "a2a3")
	testutil.AssertContains(t, buf.String(), "Illegal move a2a3: the game is over")
}

func TestSession_Rejections(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"e2e5", "Illegal move e2e5: the piece cannot move that way"},
		{"e7e5", "Illegal move e7e5: not this side's turn"},
		{"e3e4", "Illegal move e3e4: no piece on the start square"},
		{"xyzzy", `Unknown command or move "xyzzy"`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, buf := newTestSession(t, nil)
			handleAll(t, s, tt.line)
			testutil.AssertContains(t, buf.String(), tt.want)
			testutil.AssertEqual(t, s.game.Plies(), 0)
		})
	}
}

func TestSession_Moves(t *testing.T) {
	s, buf := newTestSession(t, nil)

	handleAll(t, s, "moves e2")
	testutil.AssertEqual(t, buf.String(), "e2: e3 e4\n")

	buf.Reset()
	handleAll(t, s, "moves e7")
	testutil.AssertEqual(t, buf.String(), "e7: \n")

	buf.Reset()
	handleAll(t, s, "moves")
	testutil.AssertEqual(t, len(strings.Fields(buf.String())), 20)
}

func TestSession_Board(t *testing.T) {
	s, buf := newTestSession(t, nil)
	handleAll(t, s, "e2e4", "f7f6", "d1h5", "board")

	out := buf.String()
	testutil.AssertContains(t, out, "8 r n b q k b n r\n")
	testutil.AssertContains(t, out, "5 . . . . . . . Q\n")
	testutil.AssertContains(t, out, "Black to move, in check\n")
}

func TestSession_DrawAgreement(t *testing.T) {
	s, buf := newTestSession(t, nil)

	handleAll(t, s, "accept")
	testutil.AssertContains(t, buf.String(), "Error: ")
	testutil.AssertFalse(t, s.game.IsOver())

	handleAll(t, s, "draw", "e2e4", "accept")
	out := buf.String()
	testutil.AssertContains(t, out, "White offers a draw\n")
	testutil.AssertContains(t, out, "Game over: draw by agreement, draw (1/2-1/2)\n")
}

func TestSession_ResignAndNewGame(t *testing.T) {
	s, buf := newTestSession(t, nil)
	handleAll(t, s, "e2e4", "resign")
	testutil.AssertContains(t, buf.String(), "Game over: resignation, White wins (1-0)\n")

	handleAll(t, s, "new")
	testutil.AssertFalse(t, s.game.IsOver())
	testutil.AssertEqual(t, s.game.Plies(), 0)
}

func TestSession_HistoryAndFingerprint(t *testing.T) {
	s, buf := newTestSession(t, nil)
	handleAll(t, s, "g1f3", "g8f6")
	testutil.AssertNotContains(t, buf.String(), "Game over")

	buf.Reset()
	handleAll(t, s, "history")
	testutil.AssertEqual(t, buf.String(), "1. Nf3 Nf6\n")

	buf.Reset()
	handleAll(t, s, "fingerprint")
	testutil.AssertContains(t, buf.String(), ";turn:White;en_passant:-;castling:KQkq\n")
}

func TestSession_ArchivesFinishedGames(t *testing.T) {
	store, err := archive.OpenInMemory()
	testutil.AssertNoError(t, err)
	defer store.Close()

	s, buf := newTestSession(t, store)
	handleAll(t, s, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertContains(t, buf.String(), "Archived as game 1\n")

	handleAll(t, s, "new", "e2e4", "resign")
	testutil.AssertContains(t, buf.String(), "Archived as game 2\n")

	rec, err := store.Get(2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Result, "1-0")
	testutil.AssertEqual(t, rec.Moves, []string{"e2e4"})
}

func TestSession_Run(t *testing.T) {
	s, buf := newTestSession(t, nil)
	err := s.Run(strings.NewReader("e2e4\nquit\nd7d5\n"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, s.game.Plies(), 1)
	testutil.AssertEqual(t, buf.String(), "White> e4\nBlack> ")
}

func TestSession_Stats(t *testing.T) {
	s, buf := newTestSession(t, nil)
	handleAll(t, s, "e2e4", "d7d5", "e4d5", "d8d5")

	buf.Reset()
	handleAll(t, s, "stats")
	testutil.AssertEqual(t, buf.String(),
		"plies 4, captures 2, checks 0, castles 0, en passant 0, promotions 0 (0 under)\n"+
			"most repeated position 1 times, longest quiet run 0 half-moves\n")
}

func TestSession_Opening(t *testing.T) {
	s, buf := newTestSession(t, nil)

	handleAll(t, s, "opening")
	testutil.AssertEqual(t, buf.String(), "Unknown opening\n")

	handleAll(t, s, "e2e4", "e7e5", "g1f3", "b8c6", "f1b5")
	buf.Reset()
	handleAll(t, s, "opening")
	testutil.AssertEqual(t, buf.String(), "C60 Ruy Lopez\n")
}
