// This package implements the SWIFFT hash function over Z_257, together
// with the generator that derives its constant tables.
//
// SWIFFT hashes an input block of M "rails" of N bits each. Every rail is
// read as a polynomial with coefficients in {0, 1} (or {-1, 0, 1} when a
// sign block is provided) modulo X^N+1, transformed into N field elements
// by evaluating it at the odd powers of a primitive 2N-th root of unity
// Omega, multiplied pointwise by the rail's key row, and summed over all
// rails. The output is a vector of N field elements in [0, P-1]. Standard
// parameters (see [Standard]) are P = 257, N = 64, M = 32 and Omega = 42,
// for 256-byte inputs and 64-element outputs.
//
// The constant tables (phase multipliers, the embedded transform table
// and the key matrix) are derived deterministically from the parameters
// and a seed matrix by [Generate]. The tables for the standard parameters
// and the published seed are checked in as generated source; they are
// returned by [StandardTables]. The cmd/swifftgen command regenerates
// that source.
//
// Computation is organized in three operation groups (transform,
// arithmetic and digest), which are implemented once per capability
// tier: Baseline (scalar code), and the AVX, AVX2 and AVX512 tiers,
// which process 8, 16 and 32 lanes at a time. All tiers produce
// bit-identical outputs. The highest compiled-in tier is returned by
// [Static]; [Best] additionally checks what the running CPU reports.
// The AVX tiers may be removed from the build with the swifft_noavx,
// swifft_noavx2 and swifft_noavx512 build tags.
//
// Most callers should simply use a [Hasher], which validates buffer
// sizes and selects a tier:
//
//	h := swifft.DefaultHasher()
//	out, err := h.Sum(block)
//
// SWIFFT is a linear function: it is collision resistant under lattice
// assumptions but it is NOT a pseudorandom function, and it does not
// attempt to run in constant time.
package swifft
