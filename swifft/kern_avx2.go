//go:build !swifft_noavx2

package swifft

// AVX2 tier: vectors of 16 lanes of 32 bits. In the transform, a vector
// holds two consecutive rows (groups g and g+1), so that the first layer
// of the outer transform is computed within each vector.

type lanes16 [16]int32

func (v *lanes16) load(src []int16) {
	_ = src[15]
	for i := range v {
		v[i] = int32(src[i])
	}
}

// Load two rows of 8 values into the low and high halves.
func (v *lanes16) load2(lo []int16, hi []int16) {
	_ = lo[7]
	_ = hi[7]
	for i := 0; i < 8; i++ {
		v[i] = int32(lo[i])
		v[i+8] = int32(hi[i])
	}
}

func (v *lanes16) load_u16(src []uint16) {
	_ = src[15]
	for i := range v {
		v[i] = int32(src[i])
	}
}

func (v *lanes16) store(dst []int16) {
	_ = dst[15]
	for i := range v {
		dst[i] = int16(v[i])
	}
}

func (v *lanes16) store_norm(p int32, dst []uint16) {
	_ = dst[15]
	for i := range v {
		dst[i] = fe_normalize(p, v[i])
	}
}

func (v *lanes16) broadcast(x int32) {
	for i := range v {
		v[i] = x
	}
}

// Set the low half to x and the high half to y.
func (v *lanes16) broadcast2(x int32, y int32) {
	for i := 0; i < 8; i++ {
		v[i] = x
		v[i+8] = y
	}
}

func (v *lanes16) add(a *lanes16, b *lanes16) {
	for i := range v {
		v[i] = a[i] + b[i]
	}
}

func (v *lanes16) sub(a *lanes16, b *lanes16) {
	for i := range v {
		v[i] = a[i] - b[i]
	}
}

func (v *lanes16) mul(a *lanes16, b *lanes16) {
	for i := range v {
		v[i] = a[i] * b[i]
	}
}

func (v *lanes16) reduce(p int32) {
	for i := range v {
		v[i] = fe_reduce(p, v[i])
	}
}

// Butterfly between the two halves of a vector, with twiddle w.
func (v *lanes16) butterfly_halves(p int32, w int32) {
	for i := 0; i < 8; i++ {
		a := v[i]
		c := fe_reduce(p, v[i+8]*w)
		v[i] = fe_reduce(p, a+c)
		v[i+8] = fe_reduce(p, a-c)
	}
}

func avx2_butterfly(p int32, a *lanes16, b *lanes16, w *lanes16) {
	var c, x lanes16
	c.mul(b, w)
	c.reduce(p)
	x = *a
	a.add(&x, &c)
	a.reduce(p)
	b.sub(&x, &c)
	b.reduce(p)
}

type avx2_kernel struct{}

func init() {
	k := avx2_kernel{}
	register(&Capability{Tier: AVX2, Transform: k, Arith: k, Digest: k})
}

func (avx2_kernel) Transform(t *Tables, in []byte, sign []byte, out []int16) {
	b := t.N >> 3
	p := int32(t.P)
	var tw lanes16
	tw8 := nibble_twiddles(t)
	copy(tw[:8], tw8[:])
	copy(tw[8:], tw8[:])
	perm := group_order(b)
	f := make([]lanes16, b>>1)
	for r := 0; r < t.M; r++ {
		x, s := rail_bytes(t, r, in, sign)
		for g := 0; g < b; g += 2 {
			i0 := perm[g]
			i1 := perm[g+1]
			var s0, s1 byte
			if s != nil {
				s0 = s[i0]
				s1 = s[i1]
			}
			var lo, hi, m lanes16
			lo.load2(bf_row(t, s0&0x0F, x[i0]&0x0F),
				bf_row(t, s1&0x0F, x[i1]&0x0F))
			hi.load2(bf_row(t, s0>>4, x[i0]>>4),
				bf_row(t, s1>>4, x[i1]>>4))
			m.load(t.Multipliers[g<<3:])
			hi.mul(&hi, &tw)
			lo.add(&lo, &hi)
			lo.reduce(p)
			q := &f[g>>1]
			q.mul(&lo, &m)
			q.reduce(p)

			// First layer: rows g and g+1, twiddle 1.
			q.butterfly_halves(p, 1)
		}
		for h := 2; h < b; h <<= 1 {
			for st := 0; st < b; st += h << 1 {
				for u := 0; u < h; u += 2 {
					var w lanes16
					w.broadcast2(stage_twiddle(t, u*(b/(h<<1))),
						stage_twiddle(t, (u+1)*(b/(h<<1))))
					avx2_butterfly(p, &f[(st+u)>>1], &f[(st+u+h)>>1], &w)
				}
			}
		}
		dst := out[r*t.N:]
		for q := range f {
			f[q].store(dst[q<<4:])
		}
	}
}

func (avx2_kernel) Fold(t *Tables, fft []int16, out []int16) {
	p := int32(t.P)
	for i := 0; i < t.N; i += 16 {
		var acc, k, y lanes16
		for r := 0; r < t.M; r++ {
			k.load(t.Key[r*t.N+i:])
			y.load(fft[r*t.N+i:])
			y.mul(&k, &y)
			acc.add(&acc, &y)
		}
		acc.reduce(p)
		acc.store(out[i:])
	}
}

func avx2_binop(t *Tables, out []uint16, op []uint16,
	f func(v *lanes16, a *lanes16, b *lanes16)) {

	p := int32(t.P)
	for i := 0; i < len(out); i += 16 {
		var a, b lanes16
		a.load_u16(out[i:])
		b.load_u16(op[i:])
		f(&a, &a, &b)
		a.store_norm(p, out[i:])
	}
}

func avx2_constop(t *Tables, out []uint16, c int16,
	f func(v *lanes16, a *lanes16, b *lanes16)) {

	p := int32(t.P)
	var b lanes16
	b.broadcast(const_operand(t, c))
	for i := 0; i < len(out); i += 16 {
		var a lanes16
		a.load_u16(out[i:])
		f(&a, &a, &b)
		a.store_norm(p, out[i:])
	}
}

func (avx2_kernel) Set(t *Tables, out []uint16, op []uint16) {
	for i := 0; i < len(out); i += 16 {
		var a lanes16
		a.load_u16(op[i:])
		a.store_norm(int32(t.P), out[i:])
	}
}

func (avx2_kernel) Add(t *Tables, out []uint16, op []uint16) {
	avx2_binop(t, out, op, (*lanes16).add)
}

func (avx2_kernel) Sub(t *Tables, out []uint16, op []uint16) {
	avx2_binop(t, out, op, (*lanes16).sub)
}

func (avx2_kernel) Mul(t *Tables, out []uint16, op []uint16) {
	avx2_binop(t, out, op, (*lanes16).mul)
}

func (avx2_kernel) ConstSet(t *Tables, out []uint16, c int16) {
	var a lanes16
	a.broadcast(const_operand(t, c))
	for i := 0; i < len(out); i += 16 {
		a.store_norm(int32(t.P), out[i:])
	}
}

func (avx2_kernel) ConstAdd(t *Tables, out []uint16, c int16) {
	avx2_constop(t, out, c, (*lanes16).add)
}

func (avx2_kernel) ConstSub(t *Tables, out []uint16, c int16) {
	avx2_constop(t, out, c, (*lanes16).sub)
}

func (avx2_kernel) ConstMul(t *Tables, out []uint16, c int16) {
	avx2_constop(t, out, c, (*lanes16).mul)
}

func (avx2_kernel) Finalize(t *Tables, folded []int16, out []uint16) {
	p := int32(t.P)
	for i := 0; i < t.N; i += 16 {
		var a lanes16
		a.load(folded[i:])
		a.store_norm(p, out[i:])
	}
}

func (avx2_kernel) Compact(t *Tables, out []uint16, dst []byte) {
	compact_inner(uint64(t.P), out[:t.N], dst[:t.N])
}
