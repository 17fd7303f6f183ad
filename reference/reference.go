// Package reference computes SWIFFT hash values the textbook way, as
// products of polynomials in Z_P[X]/(X^N+1). It is slow, and meant to
// check the fast kernels of package swifft.
//
// The key rails are stored as polynomials: rail r is the polynomial a_r
// whose evaluation at the odd powers of Omega is the key row r. The hash
// value of a block is the evaluation of the sum of the products a_r*x_r,
// where x_r is the polynomial encoded by rail r of the block.
package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/benjivesterby/go-swifft/swifft"
)

// Ring holds the polynomial ring for a set of SWIFFT tables, and the key
// rails as polynomials.
type Ring struct {
	tables *swifft.Tables
	r      *ring.Ring
	q      uint64
	omega  uint64
	keys   []*ring.Poly
}

// NewRing builds the ring Z_P[X]/(X^N+1) for the provided tables, and
// interpolates the key rails.
func NewRing(t *swifft.Tables) (*Ring, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	q := uint64(t.P)
	r, err := ring.NewRing(t.N, []uint64{q})
	if err != nil {
		return nil, fmt.Errorf("reference: ring.NewRing: %w", err)
	}
	rr := &Ring{
		tables: t,
		r:      r,
		q:      q,
		omega:  uint64(((t.Omega % t.P) + t.P) % t.P),
	}
	y := make([]uint16, t.N)
	for i := 0; i < t.M; i++ {
		for n := 0; n < t.N; n++ {
			y[n] = uint16((int(t.KeyAt(i, n)) + t.P) % t.P)
		}
		rr.keys = append(rr.keys, rr.Interpolate(y))
	}
	return rr, nil
}

// Get Omega^e for any (possibly negative) exponent e.
func (rr *Ring) omega_pow(e int) uint64 {
	n2 := 2 * rr.tables.N
	e %= n2
	if e < 0 {
		e += n2
	}
	return ring.ModExp(rr.omega, uint64(e), rr.q)
}

// Coefficients returns the polynomial encoded by one rail (N/8 bytes):
// bit k of byte i is the coefficient of X^(i + (N/8)*rev(k)), negated if
// the same bit is set in s (s may be nil).
func (rr *Ring) Coefficients(x []byte, s []byte) *ring.Poly {
	p := rr.r.NewPoly()
	c := p.Coeffs[0]
	for i := range x {
		for k := 0; k < 8; k++ {
			if ((x[i] >> k) & 1) == 0 {
				continue
			}
			e := rr.tables.BitPosition(i, k)
			if s != nil && ((s[i]>>k)&1) != 0 {
				c[e] = rr.q - 1
			} else {
				c[e] = 1
			}
		}
	}
	return p
}

// Evaluate returns the values of p at Omega^(2n+1), for n = 0 to N-1.
func (rr *Ring) Evaluate(p *ring.Poly) []uint16 {
	n := rr.tables.N
	out := make([]uint16, n)
	for j := 0; j < n; j++ {
		acc := uint64(0)
		for c, v := range p.Coeffs[0] {
			acc = (acc + v*rr.omega_pow((2*j+1)*c)) % rr.q
		}
		out[j] = uint16(acc)
	}
	return out
}

// Interpolate returns the polynomial whose evaluation (see Evaluate) is
// y; values of y must be in [0, P-1].
func (rr *Ring) Interpolate(y []uint16) *ring.Poly {
	n := rr.tables.N
	ninv := ring.ModExp(uint64(n), rr.q-2, rr.q)
	p := rr.r.NewPoly()
	for c := 0; c < n; c++ {
		acc := uint64(0)
		for j, v := range y {
			acc = (acc + uint64(v)*rr.omega_pow(-(2*j+1)*c)) % rr.q
		}
		p.Coeffs[0][c] = (acc * ninv) % rr.q
	}
	return p
}

// Mul returns the product of a and b in Z_P[X]/(X^N+1).
func (rr *Ring) Mul(a *ring.Poly, b *ring.Poly) *ring.Poly {
	r := rr.r
	ta := a.CopyNew()
	tb := b.CopyNew()
	r.MForm(ta, ta)
	r.MForm(tb, tb)
	r.NTT(ta, ta)
	r.NTT(tb, tb)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(ta, tb, res)
	r.InvNTT(res, res)
	r.InvMForm(res, res)
	return res
}

// Compute returns the hash value of one input block, with an optional
// sign block (nil for none).
func (rr *Ring) Compute(in []byte, sign []byte) []uint16 {
	t := rr.tables
	b := t.N >> 3
	acc := rr.r.NewPoly()
	for i := 0; i < t.M; i++ {
		var s []byte
		if sign != nil {
			s = sign[i*b : (i+1)*b]
		}
		x := rr.Coefficients(in[i*b:(i+1)*b], s)
		rr.r.Add(acc, rr.Mul(rr.keys[i], x), acc)
	}
	return rr.Evaluate(acc)
}
