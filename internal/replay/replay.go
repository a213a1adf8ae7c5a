// Package replay replays recorded games through the rules engine, singly or
// in parallel over the worker pool.
package replay

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/archive"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Play replays coordinate moves through a fresh game. It stops at the first
// move that cannot be parsed or is rejected, returning the game as it stood
// and a *errors.MoveError naming the ply.
func Play(cfg *config.Config, moves []string, opts ...engine.GameOption) (*engine.Game, error) {
	g := engine.NewGame(append([]engine.GameOption{engine.WithConfig(cfg)}, opts...)...)

	for i, text := range moves {
		from, to, promo, err := chess.ParseCoordinate(text)
		if err != nil {
			return g, &errors.MoveError{Err: err, PlyNum: i + 1, Reason: "cannot parse " + text}
		}

		var res engine.MoveResult
		if promo != chess.NoKind {
			res = g.MoveWithPromotion(from, to, promo)
		} else {
			res = g.Move(from, to)
		}
		if res.Status == engine.Rejected {
			return g, res.Err
		}
	}
	return g, nil
}

// Report summarizes a batch replay.
type Report struct {
	// Results in input order.
	Results []worker.ProcessResult

	Finished   int // games that reached a terminal state
	Failed     int // games stopped by a rejected move
	Skipped    int // games never replayed after a failure with StopOnFailure
	Duplicates int // games ending in a position another game already ended in
	Unique     int // distinct final positions
}

// VerifyAll replays every game over the worker pool. Exactly one game of each
// group ending in the same final position is left unflagged; which one
// depends on scheduling. With cfg.Replay.StopOnFailure the pool is stopped
// at the first failed game and the games not yet started are skipped.
func VerifyAll(cfg *config.Config, games []worker.WorkItem) *Report {
	detector := hashing.NewThreadSafeDuplicateDetector(false, 0)
	var pool *worker.Pool

	process := func(item worker.WorkItem) worker.ProcessResult {
		g, err := Play(cfg, item.Moves)
		res := worker.ProcessResult{
			ID:               item.ID,
			Index:            item.Index,
			Outcome:          g.Outcome(),
			Plies:            g.Plies(),
			FinalFingerprint: g.FinalFingerprint(),
			Error:            err,
		}
		switch {
		case err == nil:
			res.Duplicate = detector.CheckAndAdd(res.FinalFingerprint, res.Plies)
		case cfg.Replay.StopOnFailure:
			pool.Stop()
		}
		return res
	}

	items := make([]worker.WorkItem, len(games))
	for i, item := range games {
		item.Index = i
		items[i] = item
	}

	pool = worker.NewPoolWithOptions(process,
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(cfg.Replay.BufferSize),
	)

	report := &Report{Results: pool.Run(items)}
	for _, res := range report.Results {
		switch {
		case res.Skipped:
			report.Skipped++
		case res.Error != nil:
			report.Failed++
		case res.Outcome.Termination != engine.Unterminated:
			report.Finished++
		}
	}
	report.Duplicates = detector.DuplicateCount()
	report.Unique = detector.UniqueCount()
	return report
}

// ItemsFromRecords turns archived games into work items.
func ItemsFromRecords(records []*archive.Record) []worker.WorkItem {
	items := make([]worker.WorkItem, len(records))
	for i, rec := range records {
		items[i] = worker.WorkItem{ID: rec.ID, Index: i, Moves: rec.Moves}
	}
	return items
}

// ReadGames reads one game per line, moves separated by spaces. Blank lines
// and lines starting with '#' are skipped.
func ReadGames(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Index: len(items), Moves: strings.Fields(line)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
