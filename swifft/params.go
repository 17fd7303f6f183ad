package swifft

import (
	"errors"
	"fmt"
)

// Params holds the parameters of an instance of SWIFFT.
//
//	P       prime modulus of the field
//	Omega   primitive 2N-th root of unity modulo P
//	N       number of bits per rail, and number of output elements
//	M       number of rails per input block
//	V       size of the lookup domain of the embedded transform table
//	W       width of the inner transform (phase multipliers per group)
type Params struct {
	P     int
	Omega int
	N     int
	M     int
	V     int
	W     int
}

// Standard parameters: 256-byte input blocks, 64 output elements.
var Standard = Params{P: 257, Omega: 42, N: 64, M: 32, V: 16, W: 8}

// Toy parameters, small enough to check the generator by hand. They
// cannot be used with the hashing kernels.
var Toy = Params{P: 17, Omega: 3, N: 8, M: 2, V: 4, W: 4}

// Wide parameters: double the rail width of the standard instance, with
// 256-byte input blocks and 128 output elements. They are supported by
// the hashing kernels.
var Wide = Params{P: 257, Omega: 3, N: 128, M: 16, V: 16, W: 8}

func (par Params) String() string {
	return fmt.Sprintf("P=%d Omega=%d N=%d M=%d V=%d W=%d",
		par.P, par.Omega, par.N, par.M, par.V, par.W)
}

// Get the size of an input block (and of a sign block), in bytes.
func (par Params) InputBlockSize() int {
	return (par.M * par.N) >> 3
}

// Get the number of elements in a hash output.
func (par Params) OutputLen() int {
	return par.N
}

// Get the size of an encoded hash output, in bytes (two bytes per
// element, see [EncodeOutput]).
func (par Params) OutputSize() int {
	return par.N << 1
}

// Get the size of a compact hash output, in bytes.
func (par Params) CompactSize() int {
	return par.N
}

// Validate checks that the parameters describe a correct instance:
// P is an odd prime below 2^16, N, V and W are powers of two, N is a
// multiple of both 8 and W, log2(V) <= W, M is positive, and Omega has
// multiplicative order exactly 2N modulo P. Parameters that fail these
// checks may still be fed to Generate, but the resulting tables are
// meaningless.
func (par Params) Validate() error {
	switch {
	case par.P < 3 || par.P >= 1<<16 || !is_prime(par.P):
		return fmt.Errorf("swifft: modulus %d is not an odd prime below 65536", par.P)
	case !is_pow2(par.N) || par.N < 8:
		return fmt.Errorf("swifft: N=%d is not a power of two >= 8", par.N)
	case !is_pow2(par.V) || par.V < 2:
		return fmt.Errorf("swifft: V=%d is not a power of two >= 2", par.V)
	case !is_pow2(par.W) || par.W > par.N:
		return fmt.Errorf("swifft: W=%d is not a power of two dividing N", par.W)
	case log2(par.V) > par.W:
		return fmt.Errorf("swifft: log2(V)=%d exceeds W=%d", log2(par.V), par.W)
	case par.M < 1:
		return fmt.Errorf("swifft: M=%d is not positive", par.M)
	}
	om := ((par.Omega % par.P) + par.P) % par.P
	// Since 2N is a power of two, Omega^N = -1 implies an order of
	// exactly 2N.
	if pow_mod(par.P, om, par.N) != par.P-1 {
		return fmt.Errorf("swifft: Omega=%d does not have order %d modulo %d",
			par.Omega, 2*par.N, par.P)
	}
	return nil
}

// KernelCheck checks that the parameters are valid and have the shape
// implemented by the hashing kernels: W = 8, V = 16 (each input byte is
// split into two 4-bit lookups), N >= 64, P < 2^15, and a key fold that
// cannot overflow 32-bit accumulators.
func (par Params) KernelCheck() error {
	if err := par.Validate(); err != nil {
		return err
	}
	if par.W != 8 || par.V != 16 {
		return errors.New("swifft: kernels require W=8 and V=16")
	}
	if par.N < 64 {
		return errors.New("swifft: kernels require N >= 64")
	}
	if par.P >= 1<<15 {
		return errors.New("swifft: kernels require P < 32768")
	}
	h := int64(par.P >> 1)
	if int64(par.M)*h*h >= 1<<31 {
		return errors.New("swifft: too many rails for the modulus")
	}
	return nil
}

// BitPosition returns the exponent of X whose coefficient is bit k
// (0 to 7) of byte i of a rail. Byte i holds the coefficients of
// X^(i + (N/8)*rev(k)), where rev reverses the three bits of k.
func (par Params) BitPosition(i int, k int) int {
	return i + (par.N>>3)*reverse_bits(k, 8)
}

func is_pow2(x int) bool {
	return x > 0 && (x&(x-1)) == 0
}

func log2(x int) int {
	r := 0
	for x > 1 {
		x >>= 1
		r++
	}
	return r
}

func is_prime(p int) bool {
	if p < 2 {
		return false
	}
	for d := 2; d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}
	return true
}

func pow_mod(p int, b int, e int) int {
	r := 1
	b %= p
	for e > 0 {
		if (e & 1) != 0 {
			r = (r * b) % p
		}
		b = (b * b) % p
		e >>= 1
	}
	return r
}
