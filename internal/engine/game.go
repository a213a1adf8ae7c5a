package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Termination is the reason a game ended.
type Termination int

const (
	Unterminated Termination = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
	Resignation
	DrawAgreement
	Timeout
)

// String returns the reason as reported to the game-over sink.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	case Resignation:
		return "resignation"
	case DrawAgreement:
		return "draw by agreement"
	case Timeout:
		return "time expired"
	default:
		return "in progress"
	}
}

// Outcome describes how a game ended.
type Outcome struct {
	Termination Termination
	// Winner is only meaningful when Decisive is set.
	Winner   chess.Colour
	Decisive bool
}

// Result returns the outcome in PGN result form: "1-0", "0-1", "1/2-1/2" or "*".
func (o Outcome) Result() string {
	switch {
	case o.Termination == Unterminated:
		return "*"
	case !o.Decisive:
		return "1/2-1/2"
	case o.Winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// String returns a sentence such as "checkmate, Black wins" or "stalemate, draw".
func (o Outcome) String() string {
	switch {
	case o.Termination == Unterminated:
		return o.Termination.String()
	case o.Decisive:
		return fmt.Sprintf("%s, %s wins", o.Termination, o.Winner)
	default:
		return fmt.Sprintf("%s, draw", o.Termination)
	}
}

// MoveStatus discriminates the three results of a move submission.
type MoveStatus int

const (
	// Applied means the move was committed and the game continues.
	Applied MoveStatus = iota
	// Rejected means nothing changed; Reason and Err say why.
	Rejected
	// GameEnded means the move was committed and ended the game.
	GameEnded
)

// String returns the status name.
func (s MoveStatus) String() string {
	switch s {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	case GameEnded:
		return "game ended"
	default:
		return "unknown"
	}
}

// MoveResult is returned by every move submission. Rejections are values,
// never panics.
type MoveResult struct {
	Status  MoveStatus
	Move    *chess.Move // nil when rejected
	Outcome Outcome     // set when Status is GameEnded
	Reason  RejectReason
	Err     error // *errors.MoveError when rejected
}

// OK reports whether the move was committed.
func (r MoveResult) OK() bool {
	return r.Status != Rejected
}

// PromotionChooser picks the piece a pawn promotes to when the caller did not
// supply one.
type PromotionChooser interface {
	ChoosePromotion(side chess.Colour) chess.Kind
}

// PromotionFunc adapts a function to PromotionChooser.
type PromotionFunc func(side chess.Colour) chess.Kind

// ChoosePromotion calls f.
func (f PromotionFunc) ChoosePromotion(side chess.Colour) chess.Kind {
	return f(side)
}

// GameOverSink is notified exactly once, when the game ends.
type GameOverSink interface {
	GameOver(outcome Outcome)
}

// GameOverFunc adapts a function to GameOverSink.
type GameOverFunc func(outcome Outcome)

// GameOver calls f.
func (f GameOverFunc) GameOver(outcome Outcome) {
	f(outcome)
}

type fixedPromotion chess.Kind

func (k fixedPromotion) ChoosePromotion(chess.Colour) chess.Kind {
	return chess.Kind(k)
}

type discardSink struct{}

func (discardSink) GameOver(Outcome) {}

// GameOption configures a Game.
type GameOption func(*Game)

// WithConfig sets the rules limits, promotion default and log settings.
func WithConfig(cfg *config.Config) GameOption {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// WithPromotionChooser sets the chooser consulted for promotions without an
// explicit piece.
func WithPromotionChooser(c PromotionChooser) GameOption {
	return func(g *Game) {
		if c != nil {
			g.chooser = c
		}
	}
}

// WithGameOverSink sets the game-over notification target.
func WithGameOverSink(s GameOverSink) GameOption {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// Game is a single game of chess: the current position, the move list,
// the repetition table and the terminal state. A Game is not safe for
// concurrent use.
type Game struct {
	cfg     *config.Config
	chooser PromotionChooser
	sink    GameOverSink
	log     io.Writer

	start   *chess.Position
	pos     *chess.Position
	reps    *hashing.RepetitionTable
	lastFP  string
	moves   []*chess.Move
	over    bool
	outcome Outcome

	drawOffered bool
	drawOfferBy chess.Colour

	started time.Time
	ended   time.Time
}

// NewGame creates a game from the standard starting position.
func NewGame(opts ...GameOption) *Game {
	return newGame(chess.NewInitialPosition(), opts)
}

// NewGameFromPosition creates a game from an arbitrary position. The position
// must hold exactly one king per side and the side not to move must not be in
// check. A position that is already terminal produces a game that is over.
func NewGameFromPosition(pos *chess.Position, opts ...GameOption) (*Game, error) {
	if pos == nil {
		return nil, errors.Wrap(errors.ErrInvalidPosition, "nil position")
	}
	if err := validatePosition(pos); err != nil {
		return nil, err
	}

	g := newGame(pos.Copy(), opts)

	side := g.pos.ToMove
	switch {
	case HasInsufficientMaterial(&g.pos.Board):
		g.finish(Outcome{Termination: InsufficientMaterial})
	case !HasLegalMoves(g.pos, side):
		if IsInCheck(&g.pos.Board, side) {
			g.finish(Outcome{Termination: Checkmate, Winner: side.Opposite(), Decisive: true})
		} else {
			g.finish(Outcome{Termination: Stalemate})
		}
	}
	return g, nil
}

func newGame(pos *chess.Position, opts []GameOption) *Game {
	g := &Game{
		cfg:     config.NewConfig(),
		sink:    discardSink{},
		pos:     pos,
		start:   pos.Copy(),
		reps:    hashing.NewRepetitionTable(),
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.chooser == nil {
		g.chooser = fixedPromotion(g.cfg.Rules.DefaultPromotion)
	}
	g.log = g.cfg.Log.Writer()
	// The starting position is not counted for repetition.
	g.lastFP = Fingerprint(pos)
	return g
}

func validatePosition(pos *chess.Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := pos.Board.Find(chess.Piece{Kind: chess.King, Colour: colour})
		if len(kings) != 1 {
			return errors.Wrapf(errors.ErrInvalidPosition, "%s has %d kings", colour, len(kings))
		}
	}
	for _, sq := range chess.AllSquares() {
		if p := pos.Board.Get(sq); p.Kind == chess.Pawn && (sq.Row() == 0 || sq.Row() == chess.BoardSize-1) {
			return errors.Wrapf(errors.ErrInvalidPosition, "pawn on %s", sq)
		}
	}
	if IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		return errors.Wrapf(errors.ErrInvalidPosition, "%s is in check but not to move", pos.ToMove.Opposite())
	}
	return nil
}

// record adds the position reached by a committed move to the repetition table.
func (g *Game) record() int {
	g.lastFP = Fingerprint(g.pos)
	return g.reps.Record(g.lastFP)
}

// logf writes a diagnostic line when the configured verbosity reaches level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Log.Verbosity < level {
		return
	}
	fmt.Fprintf(g.log, format+"\n", args...)
}

// Move submits from->to. A pawn reaching the last rank promotes to the
// piece named by the PromotionChooser.
func (g *Game) Move(from, to chess.Square) MoveResult {
	return g.play(from, to, chess.NoKind, false)
}

// MoveWithPromotion submits from->to with an explicit promotion piece. The
// piece is ignored unless the move promotes; an invalid piece is rejected.
func (g *Game) MoveWithPromotion(from, to chess.Square, promo chess.Kind) MoveResult {
	return g.play(from, to, promo, true)
}

// SubmitMove submits a move given as two coordinates such as "e2", "e4".
func (g *Game) SubmitMove(from, to string) MoveResult {
	fromSq, err := chess.ParseSquare(from)
	if err == nil {
		var toSq chess.Square
		if toSq, err = chess.ParseSquare(to); err == nil {
			return g.Move(fromSq, toSq)
		}
	}
	return MoveResult{
		Status: Rejected,
		Reason: ReasonInvalidSquare,
		Err: &errors.MoveError{
			Err:    err,
			PlyNum: len(g.moves) + 1,
			From:   from,
			To:     to,
			Reason: ReasonInvalidSquare.String(),
		},
	}
}

func (g *Game) reject(from, to chess.Square, reason RejectReason) MoveResult {
	sentinel := errors.ErrIllegalMove
	switch reason {
	case ReasonGameOver:
		sentinel = errors.ErrGameAlreadyOver
	case ReasonInvalidSquare:
		sentinel = errors.ErrInvalidSquare
	}
	g.logf(2, "ply %d: %s-%s rejected: %s", len(g.moves)+1, from, to, reason)
	return MoveResult{
		Status: Rejected,
		Reason: reason,
		Err: &errors.MoveError{
			Err:    sentinel,
			PlyNum: len(g.moves) + 1,
			From:   from.String(),
			To:     to.String(),
			Reason: reason.String(),
		},
	}
}

func (g *Game) play(from, to chess.Square, promo chess.Kind, explicit bool) MoveResult {
	if g.over {
		return g.reject(from, to, ReasonGameOver)
	}
	if !from.Valid() || !to.Valid() {
		return g.reject(from, to, ReasonInvalidSquare)
	}
	piece := g.pos.Board.Get(from)
	if piece.IsEmpty() {
		return g.reject(from, to, ReasonNoPiece)
	}
	if piece.Colour != g.pos.ToMove {
		return g.reject(from, to, ReasonWrongTurn)
	}
	if reason := checkMove(g.pos, from, to); reason != Accepted {
		return g.reject(from, to, reason)
	}

	if piece.Kind == chess.Pawn && to.Row() == chess.PromotionRow(piece.Colour) {
		if explicit {
			if !promo.IsPromotionTarget() {
				return g.reject(from, to, ReasonBadPromotion)
			}
		} else {
			promo = g.chooser.ChoosePromotion(piece.Colour)
			if !promo.IsPromotionTarget() {
				promo = chess.Queen
			}
		}
	} else {
		promo = chess.NoKind
	}

	mover := piece.Colour
	text := moveText(g.pos, from, to, promo)
	move := applyMove(g.pos, from, to, promo)
	move.Ply = len(g.moves) + 1

	next := g.pos.ToMove
	inCheck := IsInCheck(&g.pos.Board, next)
	hasMoves := HasLegalMoves(g.pos, next)
	switch {
	case inCheck && !hasMoves:
		move.CheckStatus = chess.Checkmate
	case inCheck:
		move.CheckStatus = chess.Check
	}
	move.Text = text + checkSuffix(move.CheckStatus)
	g.moves = append(g.moves, move)

	if g.drawOffered && g.drawOfferBy != mover {
		g.logf(1, "%s declined the draw offer", mover)
		g.drawOffered = false
	}

	g.logf(2, "ply %d: %s %s (%s)", move.Ply, mover, move.Text, move.Coordinate())

	count := g.record()
	outcome, ended := g.terminal(count, mover, inCheck, hasMoves)
	if !ended {
		return MoveResult{Status: Applied, Move: move}
	}

	g.pos.ToMove = mover
	g.finish(outcome)
	return MoveResult{Status: GameEnded, Move: move, Outcome: outcome}
}

// terminal evaluates the automatic end conditions in their fixed order.
func (g *Game) terminal(count int, mover chess.Colour, inCheck, hasMoves bool) (Outcome, bool) {
	switch {
	case IsFiftyMoveDraw(g.pos, g.cfg.Rules.HalfmoveLimit):
		return Outcome{Termination: FiftyMoveRule}, true
	case count >= g.cfg.Rules.RepetitionLimit:
		return Outcome{Termination: ThreefoldRepetition}, true
	case HasInsufficientMaterial(&g.pos.Board):
		return Outcome{Termination: InsufficientMaterial}, true
	case inCheck && !hasMoves:
		return Outcome{Termination: Checkmate, Winner: mover, Decisive: true}, true
	case !hasMoves:
		return Outcome{Termination: Stalemate}, true
	}
	return Outcome{}, false
}

// finish ends the game and notifies the sink. It runs at most once per game.
func (g *Game) finish(outcome Outcome) {
	if g.over {
		return
	}
	g.over = true
	g.outcome = outcome
	g.drawOffered = false
	g.ended = time.Now()
	g.logf(1, "game over: %s (%s)", outcome, outcome.Result())
	g.sink.GameOver(outcome)
}

// Resign ends the game with colour losing.
func (g *Game) Resign(colour chess.Colour) error {
	if g.over {
		return errors.ErrGameAlreadyOver
	}
	g.finish(Outcome{Termination: Resignation, Winner: colour.Opposite(), Decisive: true})
	return nil
}

// TimeExpired ends the game with colour losing on time. It is the entry point
// for an external clock.
func (g *Game) TimeExpired(colour chess.Colour) error {
	if g.over {
		return errors.ErrGameAlreadyOver
	}
	g.finish(Outcome{Termination: Timeout, Winner: colour.Opposite(), Decisive: true})
	return nil
}

// OfferDraw records a draw offer from colour. The offer stands until the
// opponent accepts it or makes a move.
func (g *Game) OfferDraw(colour chess.Colour) error {
	if g.over {
		return errors.ErrGameAlreadyOver
	}
	g.drawOffered = true
	g.drawOfferBy = colour
	g.logf(1, "%s offers a draw", colour)
	return nil
}

// DrawOffered reports whether a draw offer is pending and who made it.
func (g *Game) DrawOffered() (chess.Colour, bool) {
	return g.drawOfferBy, g.drawOffered
}

// AcceptDraw ends the game as a draw if the opponent of colour has an offer pending.
func (g *Game) AcceptDraw(colour chess.Colour) error {
	if g.over {
		return errors.ErrGameAlreadyOver
	}
	if !g.drawOffered || g.drawOfferBy == colour {
		return errors.Wrapf(errors.ErrIllegalMove, "no draw offer pending for %s", colour)
	}
	g.finish(Outcome{Termination: DrawAgreement})
	return nil
}

// Turn returns the side to move. After the game ends it is the side that
// made the final move.
func (g *Game) Turn() chess.Colour {
	return g.pos.ToMove
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.over
}

// Outcome returns the outcome; Termination is Unterminated while in progress.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// BoardSnapshot returns all 64 squares keyed by name for rendering; empty
// squares map to chess.NoPiece.
func (g *Game) BoardSnapshot() map[string]chess.Piece {
	return g.pos.Board.Snapshot()
}

// Fingerprint returns the repetition fingerprint of the current position.
// Once the game is over it is the fingerprint recorded after the last move,
// naming the side that would have moved next, as FinalFingerprint does.
func (g *Game) Fingerprint() string {
	if g.over {
		return g.lastFP
	}
	return Fingerprint(g.pos)
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// StartPosition returns a copy of the position the game started from.
func (g *Game) StartPosition() *chess.Position {
	return g.start.Copy()
}

// InCheck reports whether colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return IsInCheck(&g.pos.Board, colour)
}

// Checkers returns the squares of the pieces giving check to colour.
func (g *Game) Checkers(colour chess.Colour) []chess.Square {
	king, err := FindKing(&g.pos.Board, colour)
	if err != nil {
		return nil
	}
	return Attackers(&g.pos.Board, king, colour.Opposite())
}

// LegalDestinations returns the squares the piece on from may move to now.
// It is empty once the game is over or when from does not hold a piece of
// the side to move.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.over || !from.Valid() || g.pos.Board.Get(from).Colour != g.pos.ToMove {
		return nil
	}
	return LegalDestinations(g.pos, from)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []MovePair {
	if g.over {
		return nil
	}
	return LegalMoves(g.pos, g.pos.ToMove)
}

// History returns copies of the committed moves in order.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	for i, m := range g.moves {
		out[i] = *m
	}
	return out
}

// Plies returns the number of committed half-moves.
func (g *Game) Plies() int {
	return len(g.moves)
}

// RepetitionCount returns how often the latest position has been reached by a
// move; it is 0 before the first move.
func (g *Game) RepetitionCount() int {
	return g.reps.Count(g.lastFP)
}

// FinalFingerprint returns the fingerprint recorded after the last move,
// with the side that would move next.
func (g *Game) FinalFingerprint() string {
	return g.lastFP
}

// Started returns the time the game was created.
func (g *Game) Started() time.Time {
	return g.started
}

// Ended returns the time the game ended, or the zero time.
func (g *Game) Ended() time.Time {
	return g.ended
}
