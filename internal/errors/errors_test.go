package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrGameAlreadyOver", ErrGameAlreadyOver, ErrGameAlreadyOver},
		{"ErrInternal", ErrInternal, ErrInternal},
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrArchive", ErrArchive, ErrArchive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct makes sure no two sentinels alias each other.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrInvalidSquare, ErrIllegalMove, ErrGameAlreadyOver, ErrInvalidPosition, ErrInternal, ErrInvalidConfig, ErrGameNotFound, ErrArchive}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				PlyNum: 12,
				From:   "e1",
				To:     "g1",
				Reason: "king would pass through check",
			},
			contains: []string{"ply 12", "e1-g1", "pass through check", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameAlreadyOver},
			contains: []string{"game already over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:    ErrIllegalMove,
		PlyNum: 3,
		From:   "e2",
		To:     "e5",
	}

	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.PlyNum != 3 {
		t.Errorf("extracted.PlyNum = %d, want 3", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestSquareError(t *testing.T) {
	err := error(&SquareError{Input: "z9"})

	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("errors.Is(SquareError, ErrInvalidSquare) = false, want true")
	}
	if !strings.Contains(err.Error(), `"z9"`) {
		t.Errorf("SquareError.Error() = %q, should quote the input", err.Error())
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrArchive, "opening badger")

	if !Is(wrapped, ErrArchive) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "opening badger") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
