// Package synth - argument validation for the community search.
//
// Validation is staged and fail-fast: Options first, then domain arguments,
// all before a single random draw is consumed. Only sentinel errors from
// types.go are returned; no logging, no panics.
package synth

import (
	"math"

	"github.com/katalvlaran/ecodiv/shannon"
)

// validateOptions checks the internal consistency of Options without
// referencing domain arguments.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Base <= 1 || math.IsNaN(o.Base) || math.IsInf(o.Base, 0) {
		return ErrBadBase
	}
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) {
		return ErrBadTolerance
	}
	// Zero is a legal budget: the search then reports the failure sentinel
	// without perturbing anything. Only negatives are rejected.
	if o.MaxIterations < 0 {
		return ErrBadMaxIterations
	}

	return nil
}

// validateArgs checks Options plus the domain arguments of a synthesis call.
// The target is bounded by the feasible Shannon range [0, log_b(species)].
//
// Complexity: O(1).
func validateArgs(target float64, species, total int, o Options) error {
	if err := validateOptions(o); err != nil {
		return err
	}
	if species < 2 {
		return ErrSpeciesCount
	}
	if total < 1 {
		return ErrBadTotal
	}
	if target < 0 || math.IsNaN(target) {
		return ErrTargetNegative
	}

	// Entropy ceiling for this richness; shannon.MaxIndex cannot fail here
	// because species ≥ 2 and Base > 1 were just enforced.
	maxH, err := shannon.MaxIndex(species, o.Base)
	if err != nil {
		return err
	}
	if target > maxH {
		return ErrTargetTooHigh
	}

	return nil
}
