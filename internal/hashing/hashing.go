// Package hashing provides position repetition counting and duplicate
// detection for finished games.
package hashing

import (
	"github.com/cespare/xxhash/v2"
)

// Digest returns a 64-bit digest of a position fingerprint.
func Digest(fingerprint string) uint64 {
	return xxhash.Sum64String(fingerprint)
}

// RepetitionTable counts how often each position fingerprint occurred.
type RepetitionTable struct {
	counts map[string]int
	order  []string
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[string]int)}
}

// Record adds one occurrence of the fingerprint and returns the new count.
func (r *RepetitionTable) Record(fingerprint string) int {
	r.counts[fingerprint]++
	r.order = append(r.order, fingerprint)
	return r.counts[fingerprint]
}

// Count returns the number of occurrences recorded for the fingerprint.
func (r *RepetitionTable) Count(fingerprint string) int {
	return r.counts[fingerprint]
}

// Len returns the number of distinct positions.
func (r *RepetitionTable) Len() int {
	return len(r.counts)
}

// Positions returns the recorded fingerprints in the order they occurred.
func (r *RepetitionTable) Positions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// GameSignature identifies a finished game.
type GameSignature struct {
	// Digest of the final position fingerprint
	Digest uint64
	// Plies is the number of half-moves played
	Plies int
	// Fingerprint guards against digest collisions
	Fingerprint string
}

// DuplicateDetector tracks finished games by final position.
type DuplicateDetector struct {
	table          map[uint64][]GameSignature
	useExactMatch  bool
	duplicateCount int
	maxCapacity    int
	size           int
}

// NewDuplicateDetector creates a detector. With exactMatch the ply counts
// must agree as well. maxCapacity of 0 means unlimited.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		table:         make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd reports whether a game with this final position was already
// seen, and records it otherwise.
func (d *DuplicateDetector) CheckAndAdd(fingerprint string, plies int) bool {
	sig := GameSignature{
		Digest:      Digest(fingerprint),
		Plies:       plies,
		Fingerprint: fingerprint,
	}

	for _, existing := range d.table[sig.Digest] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.table[sig.Digest] = append(d.table[sig.Digest], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Fingerprint != b.Fingerprint {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit was reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the table.
func (d *DuplicateDetector) Reset() {
	d.table = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.size = 0
}
