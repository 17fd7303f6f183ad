package swifft

// TransformOps is the transform step of SWIFFT.
type TransformOps interface {
	// Transform computes the N-point transforms of the M rails of one
	// input block (M*N/8 bytes). If sign is not nil, it has the same
	// size as in, and each set bit of sign negates the coefficient of
	// the matching bit of in. Output (M*N centered elements, row-major
	// by rail) is written into out.
	Transform(t *Tables, in []byte, sign []byte, out []int16)
}

// ArithOps is the arithmetic step of SWIFFT. Apart from Fold, all
// operations work elementwise over hash values (elements in [0, P-1]);
// they process len(out) elements, which must be a multiple of N, so
// that several hash values can be handled in one call. The operand
// slices must be at least as long as out.
type ArithOps interface {
	// Fold multiplies each rail transform by its key row and sums the
	// rails. fft has M*N elements; out receives N centered elements.
	Fold(t *Tables, fft []int16, out []int16)

	Set(t *Tables, out []uint16, op []uint16)
	Add(t *Tables, out []uint16, op []uint16)
	Sub(t *Tables, out []uint16, op []uint16)
	Mul(t *Tables, out []uint16, op []uint16)
	ConstSet(t *Tables, out []uint16, c int16)
	ConstAdd(t *Tables, out []uint16, c int16)
	ConstSub(t *Tables, out []uint16, c int16)
	ConstMul(t *Tables, out []uint16, c int16)
}

// DigestOps is the digest step of SWIFFT.
type DigestOps interface {
	// Finalize maps N centered elements into the [0, P-1] range.
	Finalize(t *Tables, folded []int16, out []uint16)

	// Compact writes the N bytes of the compact form of a hash value
	// into dst: the low 8*N bits of sum(out[i]*P^i), in little-endian.
	Compact(t *Tables, out []uint16, dst []byte)
}

// Capability groups the implementations of the three operation groups
// for one tier. Capability values are immutable and safe for concurrent
// use. Methods do not validate buffer sizes (see Hasher for a checked
// API); tables must pass Params.KernelCheck().
type Capability struct {
	Tier      Tier
	Transform TransformOps
	Arith     ArithOps
	Digest    DigestOps
}

// Compute hashes one input block into out (N elements).
func (c *Capability) Compute(t *Tables, in []byte, out []uint16) {
	c.ComputeSigned(t, in, nil, out)
}

// ComputeSigned hashes one input block with a sign block (sign may be
// nil) into out (N elements).
func (c *Capability) ComputeSigned(t *Tables, in []byte, sign []byte,
	out []uint16) {

	fft := make([]int16, t.M*t.N)
	folded := make([]int16, t.N)
	c.compute_inner(t, in, sign, out, fft, folded)
}

// ComputeMultiple hashes n consecutive input blocks; hash value i is
// written into out[i*N:(i+1)*N].
func (c *Capability) ComputeMultiple(t *Tables, n int, in []byte,
	out []uint16) {

	c.ComputeMultipleSigned(t, n, in, nil, out)
}

// ComputeMultipleSigned hashes n consecutive input blocks, each with
// the matching sign block (sign may be nil).
func (c *Capability) ComputeMultipleSigned(t *Tables, n int, in []byte,
	sign []byte, out []uint16) {

	blen := t.InputBlockSize()
	fft := make([]int16, t.M*t.N)
	folded := make([]int16, t.N)
	for i := 0; i < n; i++ {
		var s []byte
		if sign != nil {
			s = sign[i*blen : (i+1)*blen]
		}
		c.compute_inner(t, in[i*blen:(i+1)*blen], s,
			out[i*t.N:(i+1)*t.N], fft, folded)
	}
}

// CompactMultiple compacts n consecutive hash values; compact value i
// is written into dst[i*N:(i+1)*N].
func (c *Capability) CompactMultiple(t *Tables, n int, out []uint16,
	dst []byte) {

	for i := 0; i < n; i++ {
		c.Digest.Compact(t, out[i*t.N:(i+1)*t.N], dst[i*t.N:(i+1)*t.N])
	}
}

// Inner function: the three steps with caller-provided scratch buffers.
func (c *Capability) compute_inner(t *Tables, in []byte, sign []byte,
	out []uint16, fft []int16, folded []int16) {

	c.Transform.Transform(t, in, sign, fft)
	c.Arith.Fold(t, fft, folded)
	c.Digest.Finalize(t, folded, out)
}

// ConstSetMultiple sets each of n consecutive hash values to a constant:
// hash value i (out[i*N:(i+1)*N]) gets cs[i].
func (c *Capability) ConstSetMultiple(t *Tables, n int, out []uint16,
	cs []int16) {

	for i := 0; i < n; i++ {
		c.Arith.ConstSet(t, out[i*t.N:(i+1)*t.N], cs[i])
	}
}

// ConstAddMultiple adds cs[i] to hash value i, for n consecutive values.
func (c *Capability) ConstAddMultiple(t *Tables, n int, out []uint16,
	cs []int16) {

	for i := 0; i < n; i++ {
		c.Arith.ConstAdd(t, out[i*t.N:(i+1)*t.N], cs[i])
	}
}

// ConstSubMultiple subtracts cs[i] from hash value i, for n consecutive
// values.
func (c *Capability) ConstSubMultiple(t *Tables, n int, out []uint16,
	cs []int16) {

	for i := 0; i < n; i++ {
		c.Arith.ConstSub(t, out[i*t.N:(i+1)*t.N], cs[i])
	}
}

// ConstMulMultiple multiplies hash value i by cs[i], for n consecutive
// values.
func (c *Capability) ConstMulMultiple(t *Tables, n int, out []uint16,
	cs []int16) {

	for i := 0; i < n; i++ {
		c.Arith.ConstMul(t, out[i*t.N:(i+1)*t.N], cs[i])
	}
}
