package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RulesConfig holds the limits of the automatic draw rules and the
// promotion default.
type RulesConfig struct {
	// HalfmoveLimit draws the game once this many half-moves pass without a
	// pawn move or capture.
	HalfmoveLimit int

	// RepetitionLimit draws the game when a position occurs this many times.
	RepetitionLimit int

	// DefaultPromotion is used when no promotion choice is supplied.
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with the standard values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		HalfmoveLimit:    50,
		RepetitionLimit:  3,
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.HalfmoveLimit < 1 {
		return fmt.Errorf("halfmove limit %d < 1: %w", r.HalfmoveLimit, errors.ErrInvalidConfig)
	}
	if r.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit %d < 2: %w", r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if !r.DefaultPromotion.IsPromotionTarget() {
		return fmt.Errorf("default promotion %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
