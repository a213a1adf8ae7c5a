package archive

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func playGame(t *testing.T, moves ...string) *engine.Game {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Log.Verbosity = 0
	g := engine.NewGame(engine.WithConfig(cfg))
	for _, mv := range moves {
		from, to, _, err := chess.ParseCoordinate(mv)
		if err != nil {
			t.Fatalf("bad move %q: %v", mv, err)
		}
		if res := g.Move(from, to); !res.OK() {
			t.Fatalf("move %s rejected: %v", mv, res.Err)
		}
	}
	return g
}

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestRecordFromGame(t *testing.T) {
	g := playGame(t, "f2f3", "e7e5", "g2g4", "d8h4")
	rec := RecordFromGame(g)

	testutil.AssertEqual(t, rec.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, rec.SAN, []string{"f3", "e5", "g4", "Qh4#"})
	testutil.AssertEqual(t, rec.Termination, "checkmate")
	testutil.AssertEqual(t, rec.Result, "0-1")
	testutil.AssertEqual(t, rec.Winner, "Black")
	testutil.AssertEqual(t, rec.Plies, 4)
	testutil.AssertEqual(t, rec.FinalFingerprint, g.FinalFingerprint())
	testutil.AssertTrue(t, rec.Duration() >= 0)
}

func TestRecordFromGame_Unfinished(t *testing.T) {
	rec := RecordFromGame(playGame(t, "e2e4"))
	testutil.AssertEqual(t, rec.Result, "*")
	testutil.AssertEqual(t, rec.Winner, "")
	testutil.AssertFalse(t, rec.Ended.IsZero())
}

func TestArchive_SaveGetList(t *testing.T) {
	a := openTestArchive(t)

	mate := RecordFromGame(playGame(t, "f2f3", "e7e5", "g2g4", "d8h4"))
	short := RecordFromGame(playGame(t, "e2e4", "e7e5"))

	id1, err := a.Save(mate)
	testutil.AssertNoError(t, err)
	id2, err := a.Save(short)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, id1, uint64(1))
	testutil.AssertEqual(t, id2, uint64(2))
	testutil.AssertEqual(t, mate.ID, id1)

	got, err := a.Get(id1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Moves, mate.Moves)
	testutil.AssertEqual(t, got.Result, "0-1")
	testutil.AssertTrue(t, got.Started.Equal(mate.Started))

	all, err := a.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(all), 2)
	testutil.AssertEqual(t, all[0].ID, id1)
	testutil.AssertEqual(t, all[1].ID, id2)

	count, err := a.Count()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, count, 2)
}

func TestArchive_GetMissing(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Get(99)
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
}

func TestArchive_FindByFinalPosition(t *testing.T) {
	a := openTestArchive(t)

	// Two move orders reaching the same position, and one that does not.
	first := RecordFromGame(playGame(t, "g1f3", "g8f6", "b1c3"))
	second := RecordFromGame(playGame(t, "b1c3", "g8f6", "g1f3"))
	other := RecordFromGame(playGame(t, "e2e4"))

	for _, rec := range []*Record{first, other, second} {
		if _, err := a.Save(rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	found, err := a.FindByFinalPosition(first.FinalFingerprint)
	testutil.AssertNoError(t, err)

	var ids []uint64
	for _, rec := range found {
		ids = append(ids, rec.ID)
	}
	testutil.AssertEqual(t, ids, []uint64{first.ID, second.ID})

	none, err := a.FindByFinalPosition("no such position")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(none), 0)
}

func TestArchive_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(dir)
	testutil.AssertNoError(t, err)
	id, err := a.Save(RecordFromGame(playGame(t, "d2d4")))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, a.Close())

	b, err := OpenFromConfig(&config.ArchiveConfig{Dir: dir})
	testutil.AssertNoError(t, err)
	defer b.Close()

	got, err := b.Get(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Moves, []string{"d2d4"})

	next, err := b.Save(RecordFromGame(playGame(t, "c2c4")))
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, next > id, "ids keep increasing after reopen")
}

func TestArchive_CloseTwice(t *testing.T) {
	a, err := OpenInMemory()
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, a.Close())
	testutil.AssertNoError(t, a.Close())
}
