// SPDX-License-Identifier: MIT

// Package cell: functional configuration for SuperCell construction.
//
// Defaults:
//   - nsc = [1,1,1]: no periodic images beyond the primary cell.
//   - orthogonality tolerance = 0.001 on the cosine between unit vectors.
//
// Options record values only; validation (odd nsc, etc.) happens in New so
// that a bad value surfaces as an error, not a panic.
package cell

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNsc is the per-axis supercell count used when WithNsc is absent.
	DefaultNsc = 1

	// DefaultOrthogonalTol bounds |cos θ| between two lattice vectors for
	// them to be considered orthogonal.
	DefaultOrthogonalTol = 0.001
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	nsc     Nsc     // DefaultNsc per axis
	orthTol float64 // DefaultOrthogonalTol
}

// WithNsc sets the number of supercells along each lattice vector.
// A zero count is coerced to 1 by New; an even count makes New fail with ErrEvenNsc.
func WithNsc(a, b, c int) Option {
	return func(o *Options) {
		o.nsc = Nsc{a, b, c}
	}
}

// WithOrthogonalTol overrides the cosine tolerance used by IsOrthogonal.
// Negative or NaN values fall back to DefaultOrthogonalTol.
func WithOrthogonalTol(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 {
			o.orthTol = tol
		}
	}
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		nsc:     Nsc{DefaultNsc, DefaultNsc, DefaultNsc},
		orthTol: DefaultOrthogonalTol,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
