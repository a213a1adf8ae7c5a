package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/archive"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/eco"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// Session runs an interactive game read from a line-oriented input.
type Session struct {
	cfg     *config.Config
	out     io.Writer
	archive *archive.Archive
	writer  output.GameWriter
	game    *engine.Game

	openings *eco.ECOClassifier

	// ended is set by the game-over sink and cleared once the game is reported.
	ended bool
}

// NewSession creates a session writing to cfg.Output.File. store may be nil.
func NewSession(cfg *config.Config, store *archive.Archive) *Session {
	s := &Session{
		cfg:     cfg,
		out:     cfg.Output.File,
		archive: store,
		writer:  output.NewGameWriter(cfg.Output.File, cfg),

		openings: eco.NewDefaultClassifier(),
	}
	s.newGame()
	return s
}

func (s *Session) newGame() {
	s.game = engine.NewGame(
		engine.WithConfig(s.cfg),
		engine.WithGameOverSink(engine.GameOverFunc(func(engine.Outcome) { s.ended = true })),
	)
}

// reportGameOver prints and archives the game once it has ended.
func (s *Session) reportGameOver() {
	if !s.ended {
		return
	}
	s.ended = false

	outcome := s.game.Outcome()
	fmt.Fprintf(s.out, "Game over: %s (%s)\n", outcome, outcome.Result())
	if err := s.writer.WriteGame(s.game); err != nil {
		fmt.Fprintf(s.out, "Error writing game: %v\n", err)
	}
	if s.archive == nil {
		return
	}
	id, err := s.archive.Save(archive.RecordFromGame(s.game))
	if err != nil {
		fmt.Fprintf(s.out, "Error archiving game: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Archived as game %d\n", id)
}

// Run reads commands until quit or end of input.
func (s *Session) Run(r io.Reader) error {
	if s.cfg.Output.ShowBoard {
		s.showBoard()
	}
	s.prompt()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !s.Handle(scanner.Text()) {
			break
		}
		s.prompt()
	}
	if err := s.writer.Close(); err != nil {
		return err
	}
	return scanner.Err()
}

func (s *Session) prompt() {
	if s.game.IsOver() {
		fmt.Fprint(s.out, "(new/quit)> ")
		return
	}
	fmt.Fprintf(s.out, "%s> ", s.game.Turn())
}

// splitCommand splits a line into a lower-cased command word and its arguments.
func splitCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle executes one input line. It returns false when the session should end.
func (s *Session) Handle(line string) bool {
	defer s.reportGameOver()

	cmd, args := splitCommand(line)
	switch cmd {
	case "":
	case "quit", "exit":
		return false
	case "help", "?":
		s.showHelp()
	case "board":
		s.showBoard()
	case "moves":
		s.showMoves(args)
	case "history":
		output.WriteMoves(s.out, s.game.StartPosition(), s.game.History(), s.cfg.Output, output.DefaultLineLength)
	case "opening":
		s.showOpening()
	case "stats":
		s.showStats()
	case "fingerprint":
		fmt.Fprintln(s.out, s.game.Fingerprint())
	case "resign":
		s.report(s.game.Resign(s.game.Turn()))
	case "draw":
		if err := s.game.OfferDraw(s.game.Turn()); err != nil {
			s.report(err)
			return true
		}
		fmt.Fprintf(s.out, "%s offers a draw\n", s.game.Turn())
	case "accept":
		s.report(s.game.AcceptDraw(s.game.Turn()))
	case "new":
		s.newGame()
		if s.cfg.Output.ShowBoard {
			s.showBoard()
		}
	default:
		s.move(strings.Join(append([]string{cmd}, args...), ""))
	}
	return true
}

func (s *Session) report(err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Session) move(text string) {
	from, to, promo, err := chess.ParseCoordinate(text)
	if err != nil {
		fmt.Fprintf(s.out, "Unknown command or move %q (try help)\n", text)
		return
	}

	var res engine.MoveResult
	if promo != chess.NoKind {
		res = s.game.MoveWithPromotion(from, to, promo)
	} else {
		res = s.game.Move(from, to)
	}
	if !res.OK() {
		fmt.Fprintf(s.out, "Illegal move %s: %s\n", text, res.Reason)
		return
	}

	fmt.Fprintln(s.out, res.Move.Text)
	if res.Status == engine.Applied && s.cfg.Output.ShowBoard {
		s.showBoard()
	}
}

func (s *Session) showBoard() {
	output.WriteBoard(s.out, &s.game.Position().Board)
	if s.game.IsOver() {
		return
	}
	turn := s.game.Turn()
	if s.game.InCheck(turn) {
		fmt.Fprintf(s.out, "%s to move, in check\n", turn)
		return
	}
	fmt.Fprintf(s.out, "%s to move\n", turn)
}

func (s *Session) showMoves(args []string) {
	if len(args) == 0 {
		var texts []string
		for _, m := range s.game.LegalMoves() {
			texts = append(texts, m.From.String()+m.To.String())
		}
		sort.Strings(texts)
		fmt.Fprintln(s.out, strings.Join(texts, " "))
		return
	}

	from, err := chess.ParseSquare(args[0])
	if err != nil {
		s.report(err)
		return
	}
	dests := s.game.LegalDestinations(from)
	names := make([]string, len(dests))
	for i, sq := range dests {
		names[i] = sq.String()
	}
	sort.Strings(names)
	fmt.Fprintf(s.out, "%s: %s\n", from, strings.Join(names, " "))
}

// SetOpenings replaces the opening table used by the opening command.
func (s *Session) SetOpenings(ec *eco.ECOClassifier) {
	s.openings = ec
}

func (s *Session) showOpening() {
	if match := s.openings.ClassifyGame(s.game); match != nil {
		fmt.Fprintln(s.out, match)
		return
	}
	fmt.Fprintln(s.out, "Unknown opening")
}

func (s *Session) showStats() {
	a, err := processing.AnalyzeGame(s.game, s.cfg)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "plies %d, captures %d, checks %d, castles %d, en passant %d, promotions %d (%d under)\n",
		a.Plies, a.Captures, a.Checks, a.Castles, a.EnPassant, a.Promotions, a.Underpromotions)
	fmt.Fprintf(s.out, "most repeated position %d times, longest quiet run %d half-moves\n",
		a.MaxRepetition, a.LongestQuietRun)
}

func (s *Session) showHelp() {
	fmt.Fprint(s.out, `Commands:
  e2e4, e2 e4, e7e8q   make a move (promotion letter optional)
  board                show the board
  moves [square]       list legal moves, optionally from one square
  history              show the moves played
  opening              name the opening played
  stats                count captures, checks, castles and promotions
  fingerprint          show the position fingerprint
  draw                 offer a draw
  accept               accept the opponent's draw offer
  resign               resign the game
  new                  start a new game
  quit                 leave
`)
}
