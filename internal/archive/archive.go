// Package archive stores finished games in a badger database, indexed by ID
// and by the digest of the final position.
package archive

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Storage keys
const (
	prefixGame  = "game/"
	prefixFinal = "final/"
	keySequence = "seq/game"

	sequenceBandwidth = 16
)

// Record is a finished game as stored in the archive.
type Record struct {
	ID               uint64    `json:"id"`
	Moves            []string  `json:"moves"`
	SAN              []string  `json:"san"`
	Termination      string    `json:"termination"`
	Result           string    `json:"result"`
	Winner           string    `json:"winner,omitempty"`
	Plies            int       `json:"plies"`
	FinalFingerprint string    `json:"final_fingerprint"`
	Started          time.Time `json:"started"`
	Ended            time.Time `json:"ended"`
}

// Duration returns how long the game lasted.
func (r *Record) Duration() time.Duration {
	return r.Ended.Sub(r.Started)
}

// RecordFromGame builds a record of a game. The game need not be over; an
// unfinished game is recorded with result "*".
func RecordFromGame(g *engine.Game) *Record {
	history := g.History()
	rec := &Record{
		Moves:            make([]string, len(history)),
		SAN:              make([]string, len(history)),
		Plies:            len(history),
		FinalFingerprint: g.FinalFingerprint(),
		Started:          g.Started(),
		Ended:            g.Ended(),
	}
	for i, m := range history {
		rec.Moves[i] = m.Coordinate()
		rec.SAN[i] = m.Text
	}

	outcome := g.Outcome()
	rec.Termination = outcome.Termination.String()
	rec.Result = outcome.Result()
	if outcome.Decisive {
		rec.Winner = outcome.Winner.String()
	}
	if rec.Ended.IsZero() {
		rec.Ended = time.Now()
	}
	return rec
}

// Archive wraps BadgerDB for finished-game storage.
type Archive struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Open opens or creates an archive in dir.
func Open(dir string) (*Archive, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens an archive that lives only as long as the process.
func OpenInMemory() (*Archive, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

// OpenFromConfig opens the archive described by cfg.
func OpenFromConfig(cfg *config.ArchiveConfig) (*Archive, error) {
	if cfg.InMemory {
		return OpenInMemory()
	}
	return Open(cfg.Dir)
}

func open(opts badger.Options) (*Archive, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrArchive, "open: %v", err)
	}

	seq, err := db.GetSequence([]byte(keySequence), sequenceBandwidth)
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(errors.ErrArchive, "sequence: %v", err)
	}

	return &Archive{db: db, seq: seq}, nil
}

// Close releases the ID sequence and closes the database.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.seq.Release(); err != nil {
		a.db.Close()
		return errors.Wrapf(errors.ErrArchive, "release sequence: %v", err)
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func gameKey(id uint64) []byte {
	key := make([]byte, len(prefixGame)+8)
	copy(key, prefixGame)
	binary.BigEndian.PutUint64(key[len(prefixGame):], id)
	return key
}

func finalPrefix(fingerprint string) []byte {
	key := make([]byte, len(prefixFinal)+8)
	copy(key, prefixFinal)
	binary.BigEndian.PutUint64(key[len(prefixFinal):], hashing.Digest(fingerprint))
	return key
}

func finalKey(fingerprint string, id uint64) []byte {
	prefix := finalPrefix(fingerprint)
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], id)
	return key
}

// Save stores rec under a new ID, which is written back to rec and returned.
func (a *Archive) Save(rec *Record) (uint64, error) {
	next, err := a.seq.Next()
	if err != nil {
		return 0, errors.Wrapf(errors.ErrArchive, "next id: %v", err)
	}
	rec.ID = next + 1

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrArchive, "encode game %d: %v", rec.ID, err)
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(gameKey(rec.ID), data); err != nil {
			return err
		}
		return txn.Set(finalKey(rec.FinalFingerprint, rec.ID), nil)
	})
	if err != nil {
		return 0, errors.Wrapf(errors.ErrArchive, "save game %d: %v", rec.ID, err)
	}
	return rec.ID, nil
}

// Get loads the game with the given ID.
func (a *Archive) Get(id uint64) (*Record, error) {
	var rec *Record
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, id)
		return err
	})
	return rec, err
}

func getRecord(txn *badger.Txn, id uint64) (*Record, error) {
	item, err := txn.Get(gameKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %d", id)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrArchive, "load game %d: %v", id, err)
	}

	rec := &Record{}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, rec)
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrArchive, "decode game %d: %v", id, err)
	}
	return rec, nil
}

// List returns every stored game in ID order.
func (a *Archive) List() ([]*Record, error) {
	var records []*Record
	prefix := []byte(prefixGame)

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &Record{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return errors.Wrapf(errors.ErrArchive, "decode %q: %v", it.Item().Key(), err)
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// FindByFinalPosition returns the games that ended in the position with the
// given fingerprint, in ID order.
func (a *Archive) FindByFinalPosition(fingerprint string) ([]*Record, error) {
	var records []*Record
	prefix := finalPrefix(fingerprint)

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			id := binary.BigEndian.Uint64(key[len(prefix):])
			rec, err := getRecord(txn, id)
			if err != nil {
				return err
			}
			// Digests can collide; the stored fingerprint decides.
			if rec.FinalFingerprint == fingerprint {
				records = append(records, rec)
			}
		}
		return nil
	})
	return records, err
}

// Count returns the number of stored games.
func (a *Archive) Count() (int, error) {
	count := 0
	prefix := []byte(prefixGame)

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
