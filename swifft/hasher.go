package swifft

import (
	"errors"
	"fmt"
)

var (
	// ErrTierUnavailable is returned when the requested tier is not
	// compiled in.
	ErrTierUnavailable = errors.New("swifft: capability tier not available")

	// ErrInputSize is returned for input or sign buffers whose length
	// is not a (non-zero) multiple of the input block size.
	ErrInputSize = errors.New("swifft: invalid input size")

	// ErrOutputSize is returned for hash values of the wrong length.
	ErrOutputSize = errors.New("swifft: invalid hash value size")
)

// Hasher computes SWIFFT hash values with a given set of tables and a
// given tier. It checks buffer sizes, and is safe for concurrent use.
type Hasher struct {
	tables *Tables
	cap    *Capability
}

// NewHasher returns a hasher over the standard tables, using the
// specified tier. ErrTierUnavailable is returned if the tier is not
// compiled in; a compiled-in tier is usable even if the CPU does not
// report the matching extension.
func NewHasher(tier Tier) (*Hasher, error) {
	return NewHasherWithTables(std_tables, tier)
}

// NewHasherWithTables returns a hasher over the provided tables, which
// must be supported by the kernels (see Params.KernelCheck).
func NewHasherWithTables(t *Tables, tier Tier) (*Hasher, error) {
	if t == nil {
		return nil, errors.New("swifft: nil tables")
	}
	if err := t.KernelCheck(); err != nil {
		return nil, err
	}
	if len(t.Multipliers) != t.N ||
		len(t.Butterfly) != t.V*t.V*(t.N>>3) ||
		len(t.Key) != t.M*t.N ||
		len(t.OmegaPowers) != 2*t.N+1 {
		return nil, errors.New("swifft: inconsistent table sizes")
	}
	c, ok := Lookup(tier)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTierUnavailable, tier)
	}
	return &Hasher{tables: t, cap: c}, nil
}

// DefaultHasher returns a hasher over the standard tables, using the
// best tier for the running CPU.
func DefaultHasher() *Hasher {
	return &Hasher{tables: std_tables, cap: Best()}
}

// Tier returns the tier used by the hasher.
func (h *Hasher) Tier() Tier {
	return h.cap.Tier
}

// Tables returns the tables used by the hasher.
func (h *Hasher) Tables() *Tables {
	return h.tables
}

// Sum hashes one input block.
func (h *Hasher) Sum(in []byte) ([]uint16, error) {
	return h.SumSigned(in, nil)
}

// SumSigned hashes one input block with a sign block (nil for an
// all-zero sign block).
func (h *Hasher) SumSigned(in []byte, sign []byte) ([]uint16, error) {
	if len(in) != h.tables.InputBlockSize() {
		return nil, ErrInputSize
	}
	out, err := h.SumMultipleSigned(in, sign)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// SumMultiple hashes consecutive input blocks; len(in) must be a
// multiple of the input block size.
func (h *Hasher) SumMultiple(in []byte) ([][]uint16, error) {
	return h.SumMultipleSigned(in, nil)
}

// SumMultipleSigned hashes consecutive input blocks, each with its sign
// block (sign is nil, or has the same length as in).
func (h *Hasher) SumMultipleSigned(in []byte, sign []byte) ([][]uint16, error) {
	t := h.tables
	blen := t.InputBlockSize()
	if len(in) == 0 || len(in)%blen != 0 {
		return nil, ErrInputSize
	}
	if sign != nil && len(sign) != len(in) {
		return nil, ErrInputSize
	}
	n := len(in) / blen
	flat := make([]uint16, n*t.N)
	h.cap.ComputeMultipleSigned(t, n, in, sign, flat)
	out := make([][]uint16, n)
	for i := range out {
		out[i] = flat[i*t.N : (i+1)*t.N : (i+1)*t.N]
	}
	return out, nil
}

// Compact returns the compact form of a hash value (N bytes).
func (h *Hasher) Compact(out []uint16) ([]byte, error) {
	t := h.tables
	if err := h.check_value(out); err != nil {
		return nil, err
	}
	dst := make([]byte, t.CompactSize())
	h.cap.Digest.Compact(t, out, dst)
	return dst, nil
}

// Set copies the hash value op into out.
func (h *Hasher) Set(out []uint16, op []uint16) error {
	return h.SetMultiple([][]uint16{out}, [][]uint16{op})
}

// Add sets out to out + op (elementwise, modulo P). Since SWIFFT is
// linear, the sum of the hash values of two inputs with disjoint bits
// is the hash value of their union.
func (h *Hasher) Add(out []uint16, op []uint16) error {
	return h.AddMultiple([][]uint16{out}, [][]uint16{op})
}

// Sub sets out to out - op (elementwise, modulo P).
func (h *Hasher) Sub(out []uint16, op []uint16) error {
	return h.SubMultiple([][]uint16{out}, [][]uint16{op})
}

// Mul sets out to out * op (elementwise, modulo P).
func (h *Hasher) Mul(out []uint16, op []uint16) error {
	return h.MulMultiple([][]uint16{out}, [][]uint16{op})
}

// ConstSet sets all elements of out to c (reduced modulo P).
func (h *Hasher) ConstSet(out []uint16, c int16) error {
	return h.ConstSetMultiple([][]uint16{out}, []int16{c})
}

// ConstAdd adds c to all elements of out (modulo P).
func (h *Hasher) ConstAdd(out []uint16, c int16) error {
	return h.ConstAddMultiple([][]uint16{out}, []int16{c})
}

// ConstSub subtracts c from all elements of out (modulo P).
func (h *Hasher) ConstSub(out []uint16, c int16) error {
	return h.ConstSubMultiple([][]uint16{out}, []int16{c})
}

// ConstMul multiplies all elements of out by c (modulo P).
func (h *Hasher) ConstMul(out []uint16, c int16) error {
	return h.ConstMulMultiple([][]uint16{out}, []int16{c})
}

// SetMultiple copies op[i] into out[i], for all i.
func (h *Hasher) SetMultiple(out [][]uint16, op [][]uint16) error {
	return h.binop_multiple(out, op, ArithOps.Set, false)
}

// AddMultiple sets out[i] to out[i] + op[i], for all i.
func (h *Hasher) AddMultiple(out [][]uint16, op [][]uint16) error {
	return h.binop_multiple(out, op, ArithOps.Add, true)
}

// SubMultiple sets out[i] to out[i] - op[i], for all i.
func (h *Hasher) SubMultiple(out [][]uint16, op [][]uint16) error {
	return h.binop_multiple(out, op, ArithOps.Sub, true)
}

// MulMultiple sets out[i] to out[i] * op[i], for all i.
func (h *Hasher) MulMultiple(out [][]uint16, op [][]uint16) error {
	return h.binop_multiple(out, op, ArithOps.Mul, true)
}

// ConstSetMultiple sets all elements of out[i] to cs[i], for all i.
func (h *Hasher) ConstSetMultiple(out [][]uint16, cs []int16) error {
	return h.constop_multiple(out, cs, ArithOps.ConstSet, false)
}

// ConstAddMultiple adds cs[i] to all elements of out[i], for all i.
func (h *Hasher) ConstAddMultiple(out [][]uint16, cs []int16) error {
	return h.constop_multiple(out, cs, ArithOps.ConstAdd, true)
}

// ConstSubMultiple subtracts cs[i] from all elements of out[i], for
// all i.
func (h *Hasher) ConstSubMultiple(out [][]uint16, cs []int16) error {
	return h.constop_multiple(out, cs, ArithOps.ConstSub, true)
}

// ConstMulMultiple multiplies all elements of out[i] by cs[i], for
// all i.
func (h *Hasher) ConstMulMultiple(out [][]uint16, cs []int16) error {
	return h.constop_multiple(out, cs, ArithOps.ConstMul, true)
}

// All operands are checked before anything is modified. When in_place
// is false, the previous contents of out are not read and only its
// length is checked.
func (h *Hasher) binop_multiple(out [][]uint16, op [][]uint16,
	f func(ArithOps, *Tables, []uint16, []uint16), in_place bool) error {

	if len(op) != len(out) {
		return ErrOutputSize
	}
	for i := range out {
		if err := h.check_target(out[i], in_place); err != nil {
			return err
		}
		if err := h.check_value(op[i]); err != nil {
			return err
		}
	}
	for i := range out {
		f(h.cap.Arith, h.tables, out[i], op[i])
	}
	return nil
}

func (h *Hasher) constop_multiple(out [][]uint16, cs []int16,
	f func(ArithOps, *Tables, []uint16, int16), in_place bool) error {

	if len(cs) != len(out) {
		return ErrOutputSize
	}
	for i := range out {
		if err := h.check_target(out[i], in_place); err != nil {
			return err
		}
	}
	for i := range out {
		f(h.cap.Arith, h.tables, out[i], cs[i])
	}
	return nil
}

func (h *Hasher) check_target(out []uint16, in_place bool) error {
	if in_place {
		return h.check_value(out)
	}
	if len(out) != h.tables.N {
		return ErrOutputSize
	}
	return nil
}

// A hash value must have N elements, all in [0, P-1].
func (h *Hasher) check_value(out []uint16) error {
	t := h.tables
	if len(out) != t.N {
		return ErrOutputSize
	}
	for _, v := range out {
		if int(v) >= t.P {
			return fmt.Errorf("swifft: hash value element %d out of range", v)
		}
	}
	return nil
}
