// Package shannon computes Shannon diversity statistics over
// species-abundance counts.
//
// 🚀 What is the Shannon index?
//
//	H′ = −Σ pᵢ·log(pᵢ) over relative abundances pᵢ, the classic measure of
//	community richness and evenness.  It is widely used in:
//	  • Ecological community comparison
//	  • Population and landscape diversity surveys
//	  • Any categorical-distribution evenness measurement
//
// ✨ Key features:
//   - Index over raw counts (normalization included, 0·log 0 ≡ 0)
//   - arbitrary logarithm base (e, 2, 10, …) via a single parameter
//   - MaxIndex — the entropy ceiling log_b(S) for richness S
//   - Evenness — Pielou's J′ = H′ / H′max
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ecodiv/shannon"
//
//	h, err := shannon.Index([]float64{10, 20, 30}, math.E)
//	j, err := shannon.Evenness([]float64{10, 20, 30}, math.E)
//
// Performance:
//
//   - Time:   O(n) per call
//   - Memory: O(1)
//
// All failures are sentinel errors; see shannon.go for the exact taxonomy.
package shannon
