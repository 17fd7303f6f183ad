package swifft

// Baseline tier: plain scalar code, one element at a time.

type baseline_kernel struct{}

func (baseline_kernel) Transform(t *Tables, in []byte, sign []byte,
	out []int16) {

	b := t.N >> 3
	p := int32(t.P)
	tw := nibble_twiddles(t)
	perm := group_order(b)
	f := make([]int32, t.N)
	for r := 0; r < t.M; r++ {
		x, s := rail_bytes(t, r, in, sign)

		// Inner transforms: one per group, each fed by one input byte
		// (two table lookups), then scaled by the phase multipliers.
		for g := 0; g < b; g++ {
			i := perm[g]
			sv := byte(0)
			if s != nil {
				sv = s[i]
			}
			lo := bf_row(t, sv&0x0F, x[i]&0x0F)
			hi := bf_row(t, sv>>4, x[i]>>4)
			for j := 0; j < 8; j++ {
				u := fe_reduce(p, int32(lo[j])+tw[j]*int32(hi[j]))
				f[(g<<3)+j] = fe_reduce(p,
					int32(t.Multipliers[(g<<3)+j])*u)
			}
		}

		// Outer transform over groups (radix-2, decimation in time).
		for h := 1; h < b; h <<= 1 {
			for st := 0; st < b; st += h << 1 {
				for u := 0; u < h; u++ {
					w := stage_twiddle(t, u*(b/(h<<1)))
					ra := (st + u) << 3
					rb := (st + u + h) << 3
					for j := 0; j < 8; j++ {
						a := f[ra+j]
						c := fe_reduce(p, f[rb+j]*w)
						f[ra+j] = fe_reduce(p, a+c)
						f[rb+j] = fe_reduce(p, a-c)
					}
				}
			}
		}

		dst := out[r*t.N : (r+1)*t.N]
		for i := range dst {
			dst[i] = int16(f[i])
		}
	}
}

func (baseline_kernel) Fold(t *Tables, fft []int16, out []int16) {
	p := int32(t.P)
	for i := 0; i < t.N; i++ {
		acc := int32(0)
		for r := 0; r < t.M; r++ {
			acc += int32(t.Key[r*t.N+i]) * int32(fft[r*t.N+i])
		}
		out[i] = int16(fe_reduce(p, acc))
	}
}

func (baseline_kernel) Set(t *Tables, out []uint16, op []uint16) {
	p := int32(t.P)
	for i := range out {
		out[i] = fe_normalize(p, int32(op[i]))
	}
}

func (baseline_kernel) Add(t *Tables, out []uint16, op []uint16) {
	p := int32(t.P)
	for i := range out {
		out[i] = fe_normalize(p, int32(out[i])+int32(op[i]))
	}
}

func (baseline_kernel) Sub(t *Tables, out []uint16, op []uint16) {
	p := int32(t.P)
	for i := range out {
		out[i] = fe_normalize(p, int32(out[i])-int32(op[i]))
	}
}

func (baseline_kernel) Mul(t *Tables, out []uint16, op []uint16) {
	p := int32(t.P)
	for i := range out {
		out[i] = fe_normalize(p, int32(out[i])*int32(op[i]))
	}
}

func (baseline_kernel) ConstSet(t *Tables, out []uint16, c int16) {
	v := uint16(const_operand(t, c))
	for i := range out {
		out[i] = v
	}
}

func (baseline_kernel) ConstAdd(t *Tables, out []uint16, c int16) {
	p := int32(t.P)
	v := const_operand(t, c)
	for i := range out {
		out[i] = fe_normalize(p, int32(out[i])+v)
	}
}

func (baseline_kernel) ConstSub(t *Tables, out []uint16, c int16) {
	p := int32(t.P)
	v := const_operand(t, c)
	for i := range out {
		out[i] = fe_normalize(p, int32(out[i])-v)
	}
}

func (baseline_kernel) ConstMul(t *Tables, out []uint16, c int16) {
	p := int32(t.P)
	v := const_operand(t, c)
	for i := range out {
		out[i] = fe_normalize(p, int32(out[i])*v)
	}
}

func (baseline_kernel) Finalize(t *Tables, folded []int16, out []uint16) {
	p := int32(t.P)
	for i := 0; i < t.N; i++ {
		out[i] = fe_normalize(p, int32(folded[i]))
	}
}

func (baseline_kernel) Compact(t *Tables, out []uint16, dst []byte) {
	compact_inner(uint64(t.P), out[:t.N], dst[:t.N])
}
