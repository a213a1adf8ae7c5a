// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
package eco

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	RequiredHash   uint64 // Digest of the position reached
	CumulativeHash uint64 // XOR of the digests of every position on the way
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// String returns e.g. "B90 Sicilian: Najdorf".
func (e *ECOEntry) String() string {
	s := e.ECOCode + " " + e.Opening
	if e.Variation != "" {
		s += ": " + e.Variation
	}
	return s
}

// ECOClassifier provides ECO classification for chess games.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// NewDefaultClassifier creates a classifier loaded with the built-in table.
func NewDefaultClassifier() *ECOClassifier {
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(defaultTable)); err != nil {
		panic(fmt.Sprintf("built-in ECO table: %v", err))
	}
	return ec
}

// LoadFromFile loads ECO data from a file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads ECO data, one line per entry:
//
//	CODE | Opening | Variation | e2e4 c7c5 ...
//
// The variation may be empty. Blank lines and lines starting with '#' are
// skipped. A line whose moves are not legal fails the whole load.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return fmt.Errorf("ECO line %d: want 4 fields, got %d: %w", lineNum, len(fields), errors.ErrInvalidConfig)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if err := ec.addECOEntry(fields[0], fields[1], fields[2], strings.Fields(fields[3])); err != nil {
			return fmt.Errorf("ECO line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

// positionDigests plays moves from the initial position and returns the
// digest of the position after each one.
func positionDigests(moves []chess.Move) ([]uint64, error) {
	cfg := config.NewConfig()
	cfg.Log.Verbosity = 0
	g := engine.NewGame(engine.WithConfig(cfg))

	digests := make([]uint64, 0, len(moves))
	for i := range moves {
		m := &moves[i]
		promo := m.Promoted
		if promo == chess.NoKind {
			promo = chess.Queen
		}
		if res := g.MoveWithPromotion(m.From, m.To, promo); !res.OK() {
			return digests, res.Err
		}
		digests = append(digests, hashing.Digest(g.FinalFingerprint()))
	}
	return digests, nil
}

// parseMoves turns coordinate text into moves.
func parseMoves(texts []string) ([]chess.Move, error) {
	moves := make([]chess.Move, len(texts))
	for i, text := range texts {
		from, to, promo, err := chess.ParseCoordinate(text)
		if err != nil {
			return nil, err
		}
		moves[i] = chess.Move{From: from, To: to, Promoted: promo}
	}
	return moves, nil
}

// addECOEntry replays an opening line and adds it to the table.
func (ec *ECOClassifier) addECOEntry(code, opening, variation string, texts []string) error {
	if code == "" || len(texts) == 0 {
		return fmt.Errorf("entry needs a code and moves: %w", errors.ErrInvalidConfig)
	}
	moves, err := parseMoves(texts)
	if err != nil {
		return err
	}
	digests, err := positionDigests(moves)
	if err != nil {
		return err
	}

	var cumulativeHash uint64
	for _, d := range digests {
		cumulativeHash ^= d
	}

	entry := &ECOEntry{
		ECOCode:        code,
		Opening:        opening,
		Variation:      variation,
		RequiredHash:   digests[len(digests)-1],
		CumulativeHash: cumulativeHash,
		HalfMoves:      len(digests),
	}

	// Check for collision
	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			return nil
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if entry.HalfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = entry.HalfMoves + ECOHalfMoveLimit
	}
	return nil
}

// ClassifyGame finds the best ECO match for a game played from the standard
// starting position. Returns nil if no match is found.
func (ec *ECOClassifier) ClassifyGame(g *engine.Game) *ECOEntry {
	if ec.entriesLoaded == 0 || g.StartPosition().Board != chess.NewInitialPosition().Board {
		return nil
	}
	return ec.ClassifyMoves(g.History())
}

// ClassifyMoves finds the best ECO match for moves played from the standard
// starting position.
func (ec *ECOClassifier) ClassifyMoves(moves []chess.Move) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}
	if len(moves) > ec.maxHalfMoves {
		moves = moves[:ec.maxHalfMoves]
	}
	digests, _ := positionDigests(moves)

	var bestMatch *ECOEntry
	var cumulativeHash uint64
	for i, posHash := range digests {
		cumulativeHash ^= posHash
		if match := ec.findMatch(posHash, cumulativeHash, i+1); match != nil {
			bestMatch = match
		}
	}
	return bestMatch
}

// findMatch looks up a position in the ECO table.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash == posHash {
			// Exact match on position and cumulative hash
			if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
				return entry
			}
			// Transposition within limit
			if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
				possible = entry
			}
		}
	}

	return possible
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
