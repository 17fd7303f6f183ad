package swifft

import (
	"math/bits"
)

// Helpers shared by all tiers. Every kernel reduces each intermediate to
// its centered representative with fe_reduce(), which is what makes the
// outputs of the tiers identical.

// Centered reduction of an arbitrary int32 value modulo p.
func fe_reduce(p int32, x int32) int32 {
	r := x % p
	h := p >> 1
	if r > h {
		r -= p
	} else if r < -h {
		r += p
	}
	return r
}

// Reduction of an arbitrary int32 value modulo p into [0, p-1].
func fe_normalize(p int32, x int32) uint16 {
	r := x % p
	if r < 0 {
		r += p
	}
	return uint16(r)
}

// Get the twiddle factors Omega^((N/8)*(2j+1)), for j = 0 to 7; they
// multiply the contribution of the high nibble of each input byte.
func nibble_twiddles(t *Tables) [8]int32 {
	var tw [8]int32
	b := t.N >> 3
	for j := 0; j < 8; j++ {
		tw[j] = int32(t.OmegaPowers[(b*(2*j+1))%(2*t.N)])
	}
	return tw
}

// Get eta^e, with eta = Omega^16 (a primitive (N/8)-th root of unity);
// these are the twiddle factors of the outer transform over groups.
func stage_twiddle(t *Tables, e int) int32 {
	return int32(t.OmegaPowers[(e<<4)%(2*t.N)])
}

// Get the first 8 entries of the embedded transform table for sign
// nibble w and value nibble x.
func bf_row(t *Tables, w byte, x byte) []int16 {
	e := t.N >> 3
	off := (int(w)*t.V + int(x)) * e
	return t.Butterfly[off : off+8]
}

// Get the bytes of rail r in the input and sign blocks (the latter is
// nil if sign is nil).
func rail_bytes(t *Tables, r int, in []byte, sign []byte) ([]byte, []byte) {
	b := t.N >> 3
	x := in[r*b : (r+1)*b]
	if sign == nil {
		return x, nil
	}
	return x, sign[r*b : (r+1)*b]
}

// Get the bit-reversal permutation over n = N/8 groups: group g of the
// outer transform is fed by input byte perm[g].
func group_order(n int) []int {
	perm := make([]int, n)
	for g := 0; g < n; g++ {
		perm[g] = reverse_bits(g, n)
	}
	return perm
}

// Get the constant operand of the arithmetic operations, in [0, p-1].
func const_operand(t *Tables, c int16) int32 {
	return int32(fe_normalize(int32(t.P), int32(c)))
}

// Compute the compact form of a hash value: the sum of out[i]*P^i is
// evaluated with Horner's rule over 64-bit limbs, truncated to the size
// of dst, and written in little-endian.
func compact_inner(p uint64, out []uint16, dst []byte) {
	limbs := make([]uint64, (len(dst)+7)>>3)
	for i := len(out) - 1; i >= 0; i-- {
		cc := uint64(out[i])
		for k := range limbs {
			hi, lo := bits.Mul64(limbs[k], p)
			var c uint64
			limbs[k], c = bits.Add64(lo, cc, 0)
			cc = hi + c
		}
	}
	for i := range dst {
		dst[i] = byte(limbs[i>>3] >> ((i & 7) << 3))
	}
}
