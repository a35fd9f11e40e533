// Package synth - the donor/recipient local search.
//
// Synthesize walks a random abundance vector toward a target Shannon index:
//
//  1. Draw species shares uniformly in [0, 1/species) and shift them so the
//     vector sums to exactly 1.
//  2. Until the gap |target − H(v)| falls within Tolerance, or the budget is
//     exhausted: pick a donor by shuffled scan (first species whose
//     post-transfer share would still scale to more than one individual),
//     then sweep recipients in a fresh shuffled order, applying every
//     transfer that strictly shrinks the gap; the donor keeps donating a
//     tenth of its remaining share at each accepted transfer.
//  3. On success, scale by the requested total and round entrywise.
//
// Design:
//   - Deterministic: every shuffle draws from the one seeded *rand.Rand.
//   - Strict sentinels on bad input; non-convergence is a plain value.
//   - Hot-path discipline: candidate gaps are evaluated with an O(1)
//     two-term entropy delta; the full index is recomputed only after an
//     accepted transfer, which pins down floating-point drift.
//   - Mass conservation: a transfer moves v[d]·step from d to r and touches
//     nothing else, so Σv stays 1 up to rounding error throughout.
//
// Complexity:
//   - One iteration: O(species) candidate checks, O(species) recompute on an
//     accepted move.
//   - Overall: O(MaxIterations · species) time, O(species) space.
package synth

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// transferStep is the fixed fraction of the donor share moved per transfer.
const transferStep = 0.1

// Synthesize searches for a community of `species` abundances over `total`
// individuals whose Shannon index (in base opts.Base) matches target within
// opts.Tolerance.
//
// A nil opts selects DefaultOptions. Validation failures return a sentinel
// error from types.go before any randomness is consumed. Budget exhaustion
// is NOT an error: it returns the zero Result with Converged == false.
func Synthesize(target float64, species, total int, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateArgs(target, species, total, o); err != nil {
		return Result{}, err
	}

	return run(target, species, total, o, rngFromSeed(o.Seed)), nil
}

// run executes one full search on an already-validated argument set with a
// caller-owned RNG. SynthesizeMany calls this directly with derived streams.
func run(target float64, species, total int, o Options, rng *rand.Rand) Result {
	var (
		v      = initialVector(species, rng)
		lnBase = lnOf(o.Base)
		h      = indexOf(v, lnBase)
		gap    = math.Abs(target - h)

		// Permutation buffers reused across iterations; reshuffle refills
		// them, so no per-iteration allocations happen below.
		donorPerm = make([]int, species)
		recipPerm = make([]int, species)
	)

	var (
		iter       int     // perturbation rounds consumed
		d          int     // donor index for the current round
		m          float64 // mass moved: v[d]·transferStep
		lostD      float64 // donor entropy term before the transfer
		gainD      float64 // donor entropy term after the transfer
		cand, cgap float64 // candidate index and its gap
	)
	for iter = 0; ; iter++ {
		// Success check first: an already-matching draw costs zero rounds.
		if gap <= o.Tolerance {
			notify(o, Status{Iterations: iter, Gap: gap, Converged: true})

			return Result{
				Community:  toCounts(v, total),
				Iterations: iter,
				Index:      h,
				Converged:  true,
			}
		}
		if iter >= o.MaxIterations {
			notify(o, Status{Iterations: iter, Gap: gap, Converged: false})

			return Result{}
		}

		// Donor: shuffled scan with the >1-individual floor.
		d = pickDonor(v, total, donorPerm, rng)
		m = v[d] * transferStep
		lostD = entropyTerm(v[d], lnBase)
		gainD = entropyTerm(v[d]-m, lnBase)

		// Recipient: fresh shuffled order, every strict improvement is
		// applied within the round. Only the donor and recipient terms of H
		// change per candidate, so each is scored with a two-term delta
		// instead of a full pass; the donor terms are refreshed from the
		// shrunken share after each accepted transfer.
		reshuffle(recipPerm, rng)
		for _, r := range recipPerm {
			if r == d {
				continue
			}
			cand = h - lostD - entropyTerm(v[r], lnBase) + gainD + entropyTerm(v[r]+m, lnBase)
			cgap = math.Abs(target - cand)
			if cgap < gap {
				v[d] -= m
				v[r] += m
				// Full recompute after the accepted move; the delta score is
				// acceptance-only, never accumulated.
				h = indexOf(v, lnBase)
				gap = math.Abs(target - h)

				m = v[d] * transferStep
				lostD = entropyTerm(v[d], lnBase)
				gainD = entropyTerm(v[d]-m, lnBase)
			}
		}
		// No improving recipient leaves v unchanged; the round still counts.
	}
}

// initialVector draws species shares uniformly in [0, 1/species) and shifts
// every entry by (1 − Σv)/species so the vector sums to exactly 1. Each draw
// is below 1/species, hence Σv < 1 and the shift is strictly positive: all
// entries start positive.
//
// Complexity: O(species).
func initialVector(species int, rng *rand.Rand) []float64 {
	var (
		v = make([]float64, species)
		n = float64(species)
		i int
	)
	for i = 0; i < species; i++ {
		v[i] = rng.Float64() / n
	}

	shift := (1 - floats.Sum(v)) / n
	for i = 0; i < species; i++ {
		v[i] += shift
	}

	return v
}

// pickDonor scans species in a shuffled order and returns the first index
// whose post-transfer share, scaled to counts, stays above one individual:
// v[d]·(1 − step)·total > 1. When no index qualifies the scan falls back to
// the last index examined, which may then drop below the floor.
//
// Complexity: O(species).
func pickDonor(v []float64, total int, perm []int, rng *rand.Rand) int {
	reshuffle(perm, rng)

	scale := (1 - transferStep) * float64(total)
	for _, i := range perm {
		if v[i]*scale > 1 {
			return i
		}
	}

	// Degenerate fallback: the last examined index donates regardless.
	return perm[len(perm)-1]
}

// indexOf returns the Shannon index of a positive vector summing to 1,
// measured in the base whose natural log is lnBase.
//
// Complexity: O(len(v)).
func indexOf(v []float64, lnBase float64) float64 {
	var h float64
	for _, p := range v {
		h += entropyTerm(p, lnBase)
	}

	return h
}

// entropyTerm returns −p·log_b(p) for a single share, with 0·log 0 ≡ 0.
func entropyTerm(p, lnBase float64) float64 {
	if p <= 0 {
		return 0
	}

	return -p * math.Log(p) / lnBase
}

// lnOf returns ln(base), pinning base == math.E to exactly 1 so the natural
// scale matches math.Log outputs bit for bit.
func lnOf(base float64) float64 {
	if base == math.E {
		return 1
	}

	return math.Log(base)
}

// toCounts scales shares by the total and rounds entrywise. The rounded sum
// may differ from total; see Result's doc comment.
//
// Complexity: O(len(v)).
func toCounts(v []float64, total int) []int {
	var (
		counts = make([]int, len(v))
		t      = float64(total)
	)
	for i, p := range v {
		counts[i] = int(math.Round(p * t))
	}

	return counts
}

// notify delivers a terminal Status to the hook unless suppressed.
func notify(o Options, st Status) {
	if o.Quiet || o.OnStatus == nil {
		return
	}
	o.OnStatus(st)
}
