// Package polyroots computes exact (closed-form) roots of cubic and
// quartic polynomials with real coefficients — all roots, real and
// complex, with no iterative refinement.
//
// 🚀 What is polyroots?
//
//	A small, allocation-free library that brings together:
//		• Cubic solver: all three roots of a·z³+b·z²+c·z+d via a
//		  Cardano / Viète branch chosen for numerical stability
//		• Single-root helper: one real root of a monic cubic, the hot
//		  primitive behind the quartic's resolvent step
//		• Quartic solver: all four roots of a·z⁴+b·z³+c·z²+d·z+e via
//		  Ferrari's resolvent-cubic method
//
// ✨ Why choose polyroots?
//
//   - Pure functions – no state, no I/O, reentrant, safe to call from
//     any number of goroutines without synchronization
//   - No surprises – never panics, never returns an error; degenerate
//     inputs surface as NaN components following IEEE-754 semantics
//   - Hot-loop friendly – fixed-size results ([3]complex128 /
//     [4]complex128), no heap allocation in the core
//
// Everything is organized under two subpackages:
//
//	cubic/   — Solve (three roots) and SolveOne (single real root)
//	quartic/ — Solve (four roots, Ferrari's method)
//
// Caller contract: the leading coefficient must be non-zero. A true
// cubic or quartic is assumed; degree reduction is the caller's job.
//
//	go get github.com/katalvlaran/polyroots
package polyroots
