// Package synth defines configuration, result and error types for the
// community synthesizer.
//
// The searcher draws an abundance vector over a fixed species count and
// walks it toward a target Shannon index by donor→recipient mass transfers.
//
// Options:
//
//	– Base:          logarithm base of the index scale (must be > 1; default e).
//	– Tolerance:     maximum acceptable |target − achieved| gap (default 1e-4).
//	– MaxIterations: iteration budget; 0 exhausts immediately (default 100).
//	– Seed:          RNG seed; 0 selects a fixed default stream.
//	– Quiet:         suppress the OnStatus hook entirely.
//	– OnStatus:      optional terminal-status callback (success and failure).
//
// Errors (sentinel):
//
//	– ErrSpeciesCount      if the species number is below 2.
//	– ErrTargetNegative    if the target index is negative (or NaN).
//	– ErrTargetTooHigh     if the target exceeds log_b(species).
//	– ErrBadBase           if Base ≤ 1.
//	– ErrBadTotal          if the total individual count is below 1.
//	– ErrBadTolerance      if Tolerance ≤ 0.
//	– ErrBadMaxIterations  if MaxIterations < 0.
//	– ErrBadSampleCount    if SynthesizeMany is asked for fewer than 1 sample.
package synth

import (
	"errors"
	"math"
)

// Sentinel errors returned by the synth package.
var (
	// ErrSpeciesCount indicates a species number below 2; a one-species
	// community has no diversity to tune.
	ErrSpeciesCount = errors.New("synth: species number must exceed 1")

	// ErrTargetNegative indicates a negative (or NaN) target index.
	ErrTargetNegative = errors.New("synth: target index must be non-negative")

	// ErrTargetTooHigh indicates a target above log_b(species), the maximum
	// Shannon index any community of that richness can reach.
	ErrTargetTooHigh = errors.New("synth: target index exceeds the maximum for this species count")

	// ErrBadBase indicates a logarithm base ≤ 1.
	ErrBadBase = errors.New("synth: logarithm base must exceed 1")

	// ErrBadTotal indicates a non-positive total individual count.
	ErrBadTotal = errors.New("synth: total count must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("synth: tolerance must be positive")

	// ErrBadMaxIterations indicates a negative iteration budget. Zero is
	// legal and simply exhausts the budget before the first transfer.
	ErrBadMaxIterations = errors.New("synth: MaxIterations must be non-negative")

	// ErrBadSampleCount indicates a SynthesizeMany request for fewer than
	// one sample.
	ErrBadSampleCount = errors.New("synth: sample count must be positive")
)

// Defaults for Options fields; see DefaultOptions.
const (
	// DefaultTolerance is the default |target − achieved| acceptance gap.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations is the default iteration budget.
	DefaultMaxIterations = 100
)

// Status is the payload delivered to the OnStatus hook when a search
// terminates, on success and on budget exhaustion alike.
type Status struct {
	// Iterations is the number of perturbation rounds consumed.
	Iterations int

	// Gap is the final |target − achieved| distance.
	Gap float64

	// Converged reports whether Gap ≤ Tolerance was reached in budget.
	Converged bool
}

// Options configures the community synthesizer.
//
// The zero value is not usable (Base and Tolerance would be invalid);
// start from DefaultOptions and override fields as needed.
//
// When the same Options value is shared by SynthesizeMany workers, the
// OnStatus hook may be invoked concurrently and must be goroutine-safe.
type Options struct {
	Base          float64      // Logarithm base of the index scale (> 1)
	Tolerance     float64      // Convergence tolerance (> 0)
	MaxIterations int          // Iteration budget (≥ 0; 0 ⇒ immediate exhaustion)
	Seed          int64        // RNG seed; 0 ⇒ fixed default stream
	Quiet         bool         // Suppress the OnStatus hook
	OnStatus      func(Status) // Optional terminal-status callback (nil ⇒ none)
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point and override fields directly.
//
// Defaults:
//   - Base:          math.E (index in nats).
//   - Tolerance:     DefaultTolerance (1e-4).
//   - MaxIterations: DefaultMaxIterations (100).
//   - Seed:          0 (fixed default stream; see rng.go policy).
//   - Quiet:         false; OnStatus: nil.
func DefaultOptions() Options {
	return Options{
		Base:          math.E,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result is the tagged outcome of a synthesis run.
//
// Exactly one of two shapes is produced:
//   - Converged == true:  Community holds the rounded per-species counts,
//     Iterations the rounds consumed, Index the achieved Shannon index of
//     the continuous vector before rounding.
//   - Converged == false: the budget was exhausted; Community is nil and the
//     remaining fields are zero. This is a normal outcome, not an error.
//
// Note: Community is scaled by the requested total and rounded entrywise,
// so its sum may differ from the total by rounding. This is an accepted
// approximation of the contract, not a defect to silently repair.
type Result struct {
	Community  []int   // Per-species individual counts (nil unless Converged)
	Iterations int     // Perturbation rounds consumed
	Index      float64 // Achieved Shannon index before rounding
	Converged  bool    // Whether the gap fell within Tolerance
}
