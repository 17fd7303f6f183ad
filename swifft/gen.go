package swifft

import (
	"errors"
)

// Reduce x modulo p into the centered range: the output r is such that
// r = x mod p and -(p/2) <= r <= p/2 (with integer division; for an odd
// p this is -(p-1)/2 to (p-1)/2). A single remainder is computed,
// followed by at most one correction.
func center(p int, x int) int {
	r := x % p
	h := p >> 1
	if r > h {
		r -= p
	} else if r < -h {
		r += p
	}
	return r
}

// Reverse the low bits of index, where marker is a power of two that is
// strictly greater than index; the number of reversed bits is log2(marker).
// The marker bit is OR-ed into the value and acts as a sentinel that ends
// the loop, so that leading zeros are preserved.
func reverse_bits(index int, marker int) int {
	r := 0
	for x := index | marker; x > 1; x >>= 1 {
		r = (r << 1) | (x & 1)
	}
	return r
}

// Generate the tables for a SWIFFT instance.
//
//   - par contains the instance parameters.
//   - seed is the M*N seed matrix, row-major by rail.
//
// The output contains the phase multipliers, the embedded transform
// table, the centered key matrix, and the centered powers of Omega
// (0 to 2N). The process is deterministic; the provided seed is not
// modified. The only reported error is a seed of the wrong length.
// Parameters are NOT validated here: invalid parameters (see
// [Params.Validate]) yield meaningless tables.
func Generate(par Params, seed []int16) (*Tables, error) {
	if par.N < 1 || par.M < 1 || len(seed) != par.M*par.N {
		return nil, errors.New("swifft: seed matrix size mismatch")
	}
	t := &Tables{Params: par}
	omega_powers := make([]int, 2*par.N+1)
	multipliers := make([]int, par.N)
	butterfly := make([]int, par.V*par.V*(par.N>>3))
	generate_inner(par, omega_powers, multipliers, butterfly)
	t.OmegaPowers = to_i16(omega_powers)
	t.Multipliers = to_i16(multipliers)
	t.Butterfly = to_i16(butterfly)
	t.Key = make([]int16, len(seed))
	for i, v := range seed {
		t.Key[i] = int16(center(par.P, int(v)))
	}
	return t, nil
}

// Inner function for table generation. Output slices must have the
// proper lengths (2N+1, N and V*V*(N/8), respectively).
func generate_inner(par Params, omega_powers []int, multipliers []int,
	butterfly []int) {

	p := par.P
	n := par.N

	// Powers of Omega, centered after each multiplication so that
	// products stay small.
	omega_powers[0] = 1
	for i := 1; i <= 2*n; i++ {
		omega_powers[i] = center(p, omega_powers[i-1]*par.Omega)
	}

	// Phase multipliers: group g of the outer transform (N/W groups)
	// gets the odd powers of Omega^rev(g).
	groups := n / par.W
	rb := make([]int, max(groups, par.W, log2(par.V)))
	for i := 0; i < groups; i++ {
		rb[i] = reverse_bits(i, groups)
	}
	for i := 0; i < groups; i++ {
		for j := 0; j < par.W; j++ {
			multipliers[i*par.W+j] = omega_powers[rb[i]*(2*j+1)]
		}
	}

	// Bit-reversal permutation over the inner transform width.
	for i := 0; i < par.W; i++ {
		rb[i] = reverse_bits(i, par.W)
	}

	// Embedded transform table: entry (w, x, j) is the contribution of
	// the log2(V) bits of x (negated where the matching bit of w is set)
	// to output j of the inner transform.
	e := n >> 3
	logv := log2(par.V)
	for w := 0; w < par.V; w++ {
		for x := 0; x < par.V; x++ {
			for j := 0; j < e; j++ {
				s := 0
				for k := 0; k < logv; k++ {
					v := omega_powers[(e*(2*j+1)*rb[k])%(2*n)] *
						((x >> k) & 1)
					if ((w >> k) & 1) == 0 {
						s += v
					} else {
						s -= v
					}
				}
				butterfly[(w*par.V+x)*e+j] = center(p, s)
			}
		}
	}
}

func to_i16(x []int) []int16 {
	d := make([]int16, len(x))
	for i, v := range x {
		d[i] = int16(v)
	}
	return d
}

// StandardSeed returns a copy of the published seed matrix for the
// standard parameters (32 rails of 64 values, derived from the digits
// of pi).
func StandardSeed() []int16 {
	s := make([]int16, len(pi_seed))
	copy(s, pi_seed[:])
	return s
}
