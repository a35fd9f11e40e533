// Package synth synthesizes pseudo-random ecological communities whose
// Shannon diversity index matches a target value within a tolerance.
//
// 🚀 What is community synthesis?
//
//	Starting from a random abundance vector over a fixed number of species,
//	the search repeatedly transfers a fraction of one species' share (the
//	"donor") to another (the "recipient"), accepting a transfer only when it
//	strictly shrinks the gap to the target index.  It's useful for:
//	  • Building null / reference communities for diversity studies
//	  • Power analysis of diversity comparisons (see package hutcheson)
//	  • Teaching and simulation of evenness-driven index behavior
//
// ✨ Key features:
//   - deterministic: same Options.Seed ⇒ identical community, bit for bit
//   - tagged outcome: Result.Converged distinguishes success from an
//     exhausted iteration budget (a value, never an error)
//   - strict fail-fast validation before any randomness is consumed
//   - optional OnStatus hook for terminal reporting (silenced by Quiet)
//   - SynthesizeMany for independent parallel draws on derived RNG streams
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ecodiv/synth"
//
//	opts := synth.DefaultOptions()
//	opts.Seed = 42
//	opts.MaxIterations = 300
//
//	res, err := synth.Synthesize(2.0, 20, 200, &opts)
//	if err != nil {
//	  // invalid arguments (see types.go sentinels)
//	}
//	if !res.Converged {
//	  // budget exhausted: retry with a new Seed or a larger budget
//	}
//
// Performance:
//
//   - Time:   O(maxIterations · species) worst case
//   - Memory: O(species)
//
// The search is single-threaded and re-entrant: concurrent calls share no
// state. See doc comments in synth.go for the exact iteration contract.
package synth
