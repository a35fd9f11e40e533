// Package hutcheson defines configuration, result and error types for the
// two-sample Shannon index t-test.
//
// Options:
//
//	– Base:       logarithm base of the index scale (must be > 1; default e).
//	– Alt:        alternative hypothesis (TwoSided, Less, Greater, Auto).
//	– Difference: hypothesized index difference under H₀, in Base units.
//
// Errors (sentinel):
//
//	– ErrTooFewObservations if either sample has fewer than two classes.
//	– ErrNegativeCount      if any abundance is negative.
//	– ErrBadCount           if any abundance is infinite.
//	– ErrLowTotal           if either sample totals fewer than 3 individuals.
//	– ErrBadBase            if Base ≤ 1.
//	– ErrBadAlternative     if Alt is not one of the declared constants.
//	– ErrBadDifference      if Difference is NaN or infinite.
//	– ErrNoVariance         if both samples are single-class (zero variance).
package hutcheson

import (
	"errors"
	"math"
)

// Sentinel errors returned by the hutcheson package.
var (
	// ErrTooFewObservations indicates a sample with fewer than two classes,
	// before any zero-padding is applied.
	ErrTooFewObservations = errors.New("hutcheson: each sample needs at least two classes")

	// ErrNegativeCount indicates a negative abundance value.
	ErrNegativeCount = errors.New("hutcheson: counts must be non-negative")

	// ErrBadCount indicates an infinite abundance value. NaN is not an
	// error: it is treated as missing and zero-filled with a warning.
	ErrBadCount = errors.New("hutcheson: counts must be finite numbers")

	// ErrLowTotal indicates a sample whose individuals sum below 3, too few
	// for the index variance estimate to mean anything.
	ErrLowTotal = errors.New("hutcheson: each sample needs a total count of at least 3")

	// ErrBadBase indicates a logarithm base ≤ 1.
	ErrBadBase = errors.New("hutcheson: logarithm base must exceed 1")

	// ErrBadAlternative indicates an Alt value outside the declared enum.
	ErrBadAlternative = errors.New("hutcheson: unknown alternative hypothesis")

	// ErrBadDifference indicates a NaN or infinite null difference.
	ErrBadDifference = errors.New("hutcheson: null difference must be a finite number")

	// ErrNoVariance indicates that both samples concentrate all mass in a
	// single class, leaving the t statistic undefined (zero variance).
	ErrNoVariance = errors.New("hutcheson: samples carry no index variance")
)

// Alternative selects the alternative hypothesis of the test.
type Alternative int

const (
	// TwoSided tests H₁: the indices differ in either direction.
	TwoSided Alternative = iota

	// Less tests H₁: H(x) − H(y) < Difference.
	Less

	// Greater tests H₁: H(x) − H(y) > Difference.
	Greater

	// Auto picks Greater when the observed H(x) exceeds H(y), Less
	// otherwise; Result.Alt reports the resolved direction.
	Auto
)

// String returns the conventional lowercase name of the alternative.
func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two-sided"
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Options configures the test. Start from DefaultOptions and override
// fields directly.
type Options struct {
	Base       float64     // Logarithm base of the index scale (> 1)
	Alt        Alternative // Alternative hypothesis
	Difference float64     // Null index difference H(x) − H(y), in Base units
}

// DefaultOptions returns the package defaults: natural base, two-sided
// alternative, zero null difference.
func DefaultOptions() Options {
	return Options{
		Base: math.E,
		Alt:  TwoSided,
	}
}

// Result holds the outcome of a Hutcheson t-test.
type Result struct {
	// Statistic is the t value (base-invariant).
	Statistic float64

	// DF is the Welch-style degrees of freedom of the reference
	// t-distribution.
	DF float64

	// PValue is the tail probability under the resolved alternative.
	PValue float64

	// HX and HY are the per-sample Shannon index estimates, in Base units.
	HX, HY float64

	// NullValue echoes Options.Difference.
	NullValue float64

	// Alt is the resolved alternative: as requested, except that Auto is
	// replaced by the direction actually tested.
	Alt Alternative

	// Warnings records recoverable data-cleaning steps (missing-value
	// zero-fills); nil when the input was clean.
	Warnings []string
}
