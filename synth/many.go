// Package synth - independent multi-sample synthesis.
//
// The search shares no state between invocations, so drawing several
// communities is embarrassingly parallel. SynthesizeMany derives one
// deterministic RNG substream per sample up front (the base generator is
// not goroutine-safe), then fans the searches out across the CPUs.
package synth

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SynthesizeMany draws n independent communities for the same target,
// species count and total. Sample i always receives the same derived RNG
// stream for a given Options.Seed, so results are reproducible regardless
// of scheduling, and res[i] corresponds to request i.
//
// Per-sample non-convergence is reported in-place (res[i].Converged ==
// false), never as an error; the error return covers validation only.
//
// Complexity: O(n · MaxIterations · species) work across GOMAXPROCS workers.
func SynthesizeMany(n int, target float64, species, total int, opts *Options) ([]Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if n < 1 {
		return nil, ErrBadSampleCount
	}
	if err := validateArgs(target, species, total, o); err != nil {
		return nil, err
	}

	// Derive every substream sequentially before spawning workers: the base
	// generator must not be shared across goroutines.
	var (
		base    = rngFromSeed(o.Seed)
		streams = make([]*rand.Rand, n)
		i       int
	)
	for i = 0; i < n; i++ {
		streams[i] = deriveRNG(base, uint64(i))
	}

	var (
		res = make([]Result, n)
		g   errgroup.Group
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i = 0; i < n; i++ {
		idx := i
		g.Go(func() error {
			res[idx] = run(target, species, total, o, streams[idx])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
