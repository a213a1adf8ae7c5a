package hashing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	startFP = "a1:Rook_White;a2:Pawn_White;turn:White;en_passant:-;castling:KQkq"
	otherFP = "a1:Rook_White;a3:Pawn_White;turn:Black;en_passant:-;castling:KQkq"
)

func TestDigestConsistency(t *testing.T) {
	if Digest(startFP) != Digest(startFP) {
		t.Error("identical fingerprints produced different digests")
	}
	if Digest(startFP) == Digest(otherFP) {
		t.Error("different fingerprints produced the same digest")
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()

	if got := table.Count(startFP); got != 0 {
		t.Errorf("Count before Record = %d, want 0", got)
	}

	tests := []struct {
		fp   string
		want int
	}{
		{startFP, 1},
		{otherFP, 1},
		{startFP, 2},
		{otherFP, 2},
		{startFP, 3},
	}
	for _, tt := range tests {
		if got := table.Record(tt.fp); got != tt.want {
			t.Errorf("Record(%q) = %d, want %d", tt.fp, got, tt.want)
		}
	}

	if table.Len() != 2 {
		t.Errorf("Len = %d, want 2", table.Len())
	}
	if table.Count(startFP) != 3 {
		t.Errorf("Count = %d, want 3", table.Count(startFP))
	}

	want := []string{startFP, otherFP, startFP, otherFP, startFP}
	if diff := cmp.Diff(want, table.Positions()); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateDetector(t *testing.T) {
	tests := []struct {
		name       string
		exactMatch bool
		games      []GameSignature
		wantDupes  int
		wantUnique int
	}{
		{
			name:       "same position different length",
			exactMatch: false,
			games:      []GameSignature{{Fingerprint: startFP, Plies: 4}, {Fingerprint: startFP, Plies: 8}},
			wantDupes:  1,
			wantUnique: 1,
		},
		{
			name:       "exact match requires same length",
			exactMatch: true,
			games:      []GameSignature{{Fingerprint: startFP, Plies: 4}, {Fingerprint: startFP, Plies: 8}},
			wantDupes:  0,
			wantUnique: 2,
		},
		{
			name:       "different positions",
			exactMatch: false,
			games:      []GameSignature{{Fingerprint: startFP, Plies: 4}, {Fingerprint: otherFP, Plies: 4}},
			wantDupes:  0,
			wantUnique: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDuplicateDetector(tt.exactMatch, 0)
			for _, g := range tt.games {
				d.CheckAndAdd(g.Fingerprint, g.Plies)
			}
			if d.DuplicateCount() != tt.wantDupes {
				t.Errorf("DuplicateCount = %d, want %d", d.DuplicateCount(), tt.wantDupes)
			}
			if d.UniqueCount() != tt.wantUnique {
				t.Errorf("UniqueCount = %d, want %d", d.UniqueCount(), tt.wantUnique)
			}
		})
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	d := NewDuplicateDetector(false, 0)
	d.CheckAndAdd(startFP, 1)
	d.CheckAndAdd(startFP, 1)
	d.Reset()
	if d.DuplicateCount() != 0 || d.UniqueCount() != 0 {
		t.Errorf("after Reset: dupes=%d unique=%d", d.DuplicateCount(), d.UniqueCount())
	}
	if d.CheckAndAdd(startFP, 1) {
		t.Error("first add after Reset reported duplicate")
	}
}
