// Package hutcheson implements Hutcheson's two-sample t-test for comparing
// the Shannon diversity indices of two species-abundance samples.
//
// 🚀 What is the Hutcheson t-test?
//
//	A closed-form test (Hutcheson, 1970) of H₀: the two communities share
//	the same Shannon index. It estimates each sample's index and its
//	sampling variance from the raw counts, forms a t statistic with
//	Welch-style degrees of freedom, and reads the p-value off the Student-t
//	distribution. It's the standard tool for:
//	  • Comparing diversity between two field plots or treatments
//	  • Validating synthesized communities against real samples
//	  • Any two-group comparison of index values without replication
//
// ✨ Key features:
//   - one call: Test(x, y, &opts) → statistic, df, p-value, estimates
//   - alternatives: two-sided, less, greater, or auto (direction of the
//     observed difference)
//   - optional null difference for non-zero H₀ offsets
//   - forgiving input handling: missing (NaN) counts are zero-filled with a
//     recorded warning; shorter samples are zero-padded to equal length
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ecodiv/hutcheson"
//
//	opts := hutcheson.DefaultOptions()
//	res, err := hutcheson.Test(x, y, &opts)
//	if err != nil {
//	  // invalid input (see types.go sentinels)
//	}
//	fmt.Println(res.Statistic, res.DF, res.PValue)
//
// Performance:
//
//   - Time:   O(n) over both samples plus an O(1) t-tail evaluation
//   - Memory: O(n) (defensive copies for cleaning)
//
// The test consumes plain count vectors and is fully independent of the
// synth package; feeding a synthesized community into it is a caller-side
// composition.
package hutcheson
