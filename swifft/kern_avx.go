//go:build !swifft_noavx

package swifft

// AVX tier: vectors of 8 lanes of 32 bits, i.e. one row of 8 transform
// outputs (or 8 consecutive hash elements) per operation.

type lanes8 [8]int32

func (v *lanes8) load(src []int16) {
	_ = src[7]
	for i := range v {
		v[i] = int32(src[i])
	}
}

func (v *lanes8) load_u16(src []uint16) {
	_ = src[7]
	for i := range v {
		v[i] = int32(src[i])
	}
}

func (v *lanes8) store(dst []int16) {
	_ = dst[7]
	for i := range v {
		dst[i] = int16(v[i])
	}
}

func (v *lanes8) store_norm(p int32, dst []uint16) {
	_ = dst[7]
	for i := range v {
		dst[i] = fe_normalize(p, v[i])
	}
}

func (v *lanes8) broadcast(x int32) {
	for i := range v {
		v[i] = x
	}
}

func (v *lanes8) add(a *lanes8, b *lanes8) {
	for i := range v {
		v[i] = a[i] + b[i]
	}
}

func (v *lanes8) sub(a *lanes8, b *lanes8) {
	for i := range v {
		v[i] = a[i] - b[i]
	}
}

func (v *lanes8) mul(a *lanes8, b *lanes8) {
	for i := range v {
		v[i] = a[i] * b[i]
	}
}

func (v *lanes8) reduce(p int32) {
	for i := range v {
		v[i] = fe_reduce(p, v[i])
	}
}

// Butterfly over two rows: (a, b) <- (a + w*b, a - w*b).
func avx_butterfly(p int32, a *lanes8, b *lanes8, w *lanes8) {
	var c, x lanes8
	c.mul(b, w)
	c.reduce(p)
	x = *a
	a.add(&x, &c)
	a.reduce(p)
	b.sub(&x, &c)
	b.reduce(p)
}

type avx_kernel struct{}

func init() {
	k := avx_kernel{}
	register(&Capability{Tier: AVX, Transform: k, Arith: k, Digest: k})
}

func (avx_kernel) Transform(t *Tables, in []byte, sign []byte, out []int16) {
	b := t.N >> 3
	p := int32(t.P)
	tw := lanes8(nibble_twiddles(t))
	perm := group_order(b)
	f := make([]lanes8, b)
	for r := 0; r < t.M; r++ {
		x, s := rail_bytes(t, r, in, sign)
		for g := 0; g < b; g++ {
			i := perm[g]
			sv := byte(0)
			if s != nil {
				sv = s[i]
			}
			var lo, hi, m lanes8
			lo.load(bf_row(t, sv&0x0F, x[i]&0x0F))
			hi.load(bf_row(t, sv>>4, x[i]>>4))
			m.load(t.Multipliers[g<<3:])
			hi.mul(&hi, &tw)
			lo.add(&lo, &hi)
			lo.reduce(p)
			f[g].mul(&lo, &m)
			f[g].reduce(p)
		}
		for h := 1; h < b; h <<= 1 {
			for st := 0; st < b; st += h << 1 {
				for u := 0; u < h; u++ {
					var w lanes8
					w.broadcast(stage_twiddle(t, u*(b/(h<<1))))
					avx_butterfly(p, &f[st+u], &f[st+u+h], &w)
				}
			}
		}
		dst := out[r*t.N:]
		for g := 0; g < b; g++ {
			f[g].store(dst[g<<3:])
		}
	}
}

func (avx_kernel) Fold(t *Tables, fft []int16, out []int16) {
	p := int32(t.P)
	for i := 0; i < t.N; i += 8 {
		var acc, k, y lanes8
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

// Apply a binary lane operation to out and op, 8 elements at a time.
func avx_binop(t *Tables, out []uint16, op []uint16,
	f func(v *lanes8, a *lanes8, b *lanes8)) {

	p := int32(t.P)
	for i := 0; i < len(out); i += 8 {
		var a, b lanes8
		a.load_u16(out[i:])
		b.load_u16(op[i:])
		f(&a, &a, &b)
		a.store_norm(p, out[i:])
	}
}

func (avx_kernel) Set(t *Tables, out []uint16, op []uint16) {
	for i := 0; i < len(out); i += 8 {
		var a lanes8
		a.load_u16(op[i:])
		a.store_norm(int32(t.P), out[i:])
	}
}

func (avx_kernel) Add(t *Tables, out []uint16, op []uint16) {
	avx_binop(t, out, op, (*lanes8).add)
}

func (avx_kernel) Sub(t *Tables, out []uint16, op []uint16) {
	avx_binop(t, out, op, (*lanes8).sub)
}

func (avx_kernel) Mul(t *Tables, out []uint16, op []uint16) {
	avx_binop(t, out, op, (*lanes8).mul)
}

// Apply a lane operation with a broadcast constant to out.
func avx_constop(t *Tables, out []uint16, c int16,
	f func(v *lanes8, a *lanes8, b *lanes8)) {

	p := int32(t.P)
	var b lanes8
	b.broadcast(const_operand(t, c))
	for i := 0; i < len(out); i += 8 {
		var a lanes8
		a.load_u16(out[i:])
		f(&a, &a, &b)
		a.store_norm(p, out[i:])
	}
}

func (avx_kernel) ConstSet(t *Tables, out []uint16, c int16) {
	var a lanes8
	a.broadcast(const_operand(t, c))
	for i := 0; i < len(out); i += 8 {
		a.store_norm(int32(t.P), out[i:])
	}
}

func (avx_kernel) ConstAdd(t *Tables, out []uint16, c int16) {
	avx_constop(t, out, c, (*lanes8).add)
}

func (avx_kernel) ConstSub(t *Tables, out []uint16, c int16) {
	avx_constop(t, out, c, (*lanes8).sub)
}

func (avx_kernel) ConstMul(t *Tables, out []uint16, c int16) {
	avx_constop(t, out, c, (*lanes8).mul)
}

func (avx_kernel) Finalize(t *Tables, folded []int16, out []uint16) {
	p := int32(t.P)
	for i := 0; i < t.N; i += 8 {
		var a lanes8
		a.load(folded[i:])
		a.store_norm(p, out[i:])
	}
}

func (avx_kernel) Compact(t *Tables, out []uint16, dst []byte) {
	compact_inner(uint64(t.P), out[:t.N], dst[:t.N])
}
