// Package ecodiv is an in-memory toolkit for ecological diversity analysis —
// from Shannon index primitives to community synthesis and two-sample
// significance testing.
//
// 🚀 What is ecodiv?
//
//	A compact, deterministic library that brings together:
//		• Index primitives: Shannon diversity, entropy ceiling, Pielou evenness
//		• Community synthesis: draw a species-abundance sample whose Shannon
//		  index matches a target value within tolerance
//		• Significance testing: Hutcheson's two-sample t-test on Shannon indices
//
// ✨ Why choose ecodiv?
//
//   - Deterministic – same seed ⇒ identical communities across platforms
//   - Rock-solid contracts – sentinel errors, tagged results, in-code docs
//   - Pure Go computation – no cgo, no I/O, no hidden state
//   - Extensible – inject status hooks (OnStatus…) for custom reporting
//
// Under the hood, everything is organized under three subpackages:
//
//	shannon/   — Shannon diversity index, MaxIndex & Evenness over counts
//	synth/     — iterative donor/recipient search for target-index communities
//	hutcheson/ — closed-form two-sample t-test comparing Shannon indices
//
// Quick sketch:
//
//	    target H′ ──▶ [ synth ] ──▶ counts ──▶ [ hutcheson ] ──▶ p-value
//	                      ▲                         ▲
//	                      └──────── shannon ────────┘
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/ecodiv
package ecodiv
