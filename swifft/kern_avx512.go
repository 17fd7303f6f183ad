//go:build !swifft_noavx512

package swifft

// AVX512 tier: vectors of 32 lanes of 32 bits. In the transform, a
// vector holds four consecutive rows (groups g to g+3), so that the
// first two layers of the outer transform are computed within each
// vector.

type lanes32 [32]int32

func (v *lanes32) load(src []int16) {
	_ = src[31]
	for i := range v {
		v[i] = int32(src[i])
	}
}

// Load row k (0 to 3) of the vector.
func (v *lanes32) load_row(k int, src []int16) {
	_ = src[7]
	for i := 0; i < 8; i++ {
		v[(k<<3)+i] = int32(src[i])
	}
}

func (v *lanes32) load_u16(src []uint16) {
	_ = src[31]
	for i := range v {
		v[i] = int32(src[i])
	}
}

func (v *lanes32) store(dst []int16) {
	_ = dst[31]
	for i := range v {
		dst[i] = int16(v[i])
	}
}

func (v *lanes32) store_norm(p int32, dst []uint16) {
	_ = dst[31]
	for i := range v {
		dst[i] = fe_normalize(p, v[i])
	}
}

func (v *lanes32) broadcast(x int32) {
	for i := range v {
		v[i] = x
	}
}

// Set row k of the vector to w[k].
func (v *lanes32) broadcast4(w [4]int32) {
	for i := range v {
		v[i] = w[i>>3]
	}
}

func (v *lanes32) add(a *lanes32, b *lanes32) {
	for i := range v {
		v[i] = a[i] + b[i]
	}
}

func (v *lanes32) sub(a *lanes32, b *lanes32) {
	for i := range v {
		v[i] = a[i] - b[i]
	}
}

func (v *lanes32) mul(a *lanes32, b *lanes32) {
	for i := range v {
		v[i] = a[i] * b[i]
	}
}

func (v *lanes32) reduce(p int32) {
	for i := range v {
		v[i] = fe_reduce(p, v[i])
	}
}

// Butterfly between rows ka and kb of a vector, with twiddle w.
func (v *lanes32) butterfly_rows(p int32, ka int, kb int, w int32) {
	a := v[ka<<3 : (ka<<3)+8]
	b := v[kb<<3 : (kb<<3)+8]
	for i := 0; i < 8; i++ {
		x := a[i]
		c := fe_reduce(p, b[i]*w)
		a[i] = fe_reduce(p, x+c)
		b[i] = fe_reduce(p, x-c)
	}
}

func avx512_butterfly(p int32, a *lanes32, b *lanes32, w *lanes32) {
	var c, x lanes32
	c.mul(b, w)
	c.reduce(p)
	x = *a
	a.add(&x, &c)
	a.reduce(p)
	b.sub(&x, &c)
	b.reduce(p)
}

type avx512_kernel struct{}

func init() {
	k := avx512_kernel{}
	register(&Capability{Tier: AVX512, Transform: k, Arith: k, Digest: k})
}

func (avx512_kernel) Transform(t *Tables, in []byte, sign []byte,
	out []int16) {

	b := t.N >> 3
	p := int32(t.P)
	var tw lanes32
	tw8 := nibble_twiddles(t)
	for k := 0; k < 4; k++ {
		copy(tw[k<<3:], tw8[:])
	}

	// Twiddles of the two in-vector layers: layer h (1 or 2) applies
	// eta^(u*b/(2h)) to row pairs (st+u, st+u+h).
	inner := [2][2]int32{
		{1, 1},
		{1, stage_twiddle(t, b>>2)},
	}

	perm := group_order(b)
	f := make([]lanes32, b>>2)
	for r := 0; r < t.M; r++ {
		x, s := rail_bytes(t, r, in, sign)
		for g := 0; g < b; g += 4 {
			var lo, hi, m lanes32
			for k := 0; k < 4; k++ {
				i := perm[g+k]
				sv := byte(0)
				if s != nil {
					sv = s[i]
				}
				lo.load_row(k, bf_row(t, sv&0x0F, x[i]&0x0F))
				hi.load_row(k, bf_row(t, sv>>4, x[i]>>4))
			}
			m.load(t.Multipliers[g<<3:])
			hi.mul(&hi, &tw)
			lo.add(&lo, &hi)
			lo.reduce(p)
			q := &f[g>>2]
			q.mul(&lo, &m)
			q.reduce(p)

			q.butterfly_rows(p, 0, 1, inner[0][0])
			q.butterfly_rows(p, 2, 3, inner[0][1])
			q.butterfly_rows(p, 0, 2, inner[1][0])
			q.butterfly_rows(p, 1, 3, inner[1][1])
		}
		for h := 4; h < b; h <<= 1 {
			for st := 0; st < b; st += h << 1 {
				for u := 0; u < h; u += 4 {
					var w lanes32
					var wr [4]int32
					for k := 0; k < 4; k++ {
						wr[k] = stage_twiddle(t, (u+k)*(b/(h<<1)))
					}
					w.broadcast4(wr)
					avx512_butterfly(p, &f[(st+u)>>2], &f[(st+u+h)>>2], &w)
				}
			}
		}
		dst := out[r*t.N:]
		for q := range f {
			f[q].store(dst[q<<5:])
		}
	}
}

func (avx512_kernel) Fold(t *Tables, fft []int16, out []int16) {
	p := int32(t.P)
	for i := 0; i < t.N; i += 32 {
		var acc, k, y lanes32
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

func avx512_binop(t *Tables, out []uint16, op []uint16,
	f func(v *lanes32, a *lanes32, b *lanes32)) {

	p := int32(t.P)
	for i := 0; i < len(out); i += 32 {
		var a, b lanes32
		a.load_u16(out[i:])
		b.load_u16(op[i:])
		f(&a, &a, &b)
		a.store_norm(p, out[i:])
	}
}

func avx512_constop(t *Tables, out []uint16, c int16,
	f func(v *lanes32, a *lanes32, b *lanes32)) {

	p := int32(t.P)
	var b lanes32
	b.broadcast(const_operand(t, c))
	for i := 0; i < len(out); i += 32 {
		var a lanes32
		a.load_u16(out[i:])
		f(&a, &a, &b)
		a.store_norm(p, out[i:])
	}
}

func (avx512_kernel) Set(t *Tables, out []uint16, op []uint16) {
	for i := 0; i < len(out); i += 32 {
		var a lanes32
		a.load_u16(op[i:])
		a.store_norm(int32(t.P), out[i:])
	}
}

func (avx512_kernel) Add(t *Tables, out []uint16, op []uint16) {
	avx512_binop(t, out, op, (*lanes32).add)
}

func (avx512_kernel) Sub(t *Tables, out []uint16, op []uint16) {
	avx512_binop(t, out, op, (*lanes32).sub)
}

func (avx512_kernel) Mul(t *Tables, out []uint16, op []uint16) {
	avx512_binop(t, out, op, (*lanes32).mul)
}

func (avx512_kernel) ConstSet(t *Tables, out []uint16, c int16) {
	var a lanes32
	a.broadcast(const_operand(t, c))
	for i := 0; i < len(out); i += 32 {
		a.store_norm(int32(t.P), out[i:])
	}
}

func (avx512_kernel) ConstAdd(t *Tables, out []uint16, c int16) {
	avx512_constop(t, out, c, (*lanes32).add)
}

func (avx512_kernel) ConstSub(t *Tables, out []uint16, c int16) {
	avx512_constop(t, out, c, (*lanes32).sub)
}

func (avx512_kernel) ConstMul(t *Tables, out []uint16, c int16) {
	avx512_constop(t, out, c, (*lanes32).mul)
}

func (avx512_kernel) Finalize(t *Tables, folded []int16, out []uint16) {
	p := int32(t.P)
	for i := 0; i < t.N; i += 32 {
		var a lanes32
		a.load(folded[i:])
		a.store_norm(p, out[i:])
	}
}

func (avx512_kernel) Compact(t *Tables, out []uint16, dst []byte) {
	compact_inner(uint64(t.P), out[:t.N], dst[:t.N])
}
