package reference

import (
	"fmt"
	"testing"

	"github.com/benjivesterby/go-swifft/swifft"
)

func TestInterpolate(t *testing.T) {
	rr, err := NewRing(swifft.StandardTables())
	if err != nil {
		t.Fatal(err)
	}
	y := make([]uint16, 64)
	var buf [128]byte
	swifft.SeededInput([]byte("interpolate"), buf[:])
	for i := range y {
		y[i] = uint16((int(buf[2*i]) | int(buf[2*i+1])<<8) % 257)
	}
	z := rr.Evaluate(rr.Interpolate(y))
	for i := range y {
		if z[i] != y[i] {
			t.Fatalf("ERR evaluate(interpolate(y))[%d] = %d (exp: %d)\n", i, z[i], y[i])
		}
	}
}

func TestMul(t *testing.T) {
	rr, err := NewRing(swifft.StandardTables())
	if err != nil {
		t.Fatal(err)
	}
	var buf [256]byte
	swifft.SeededInput([]byte("mul"), buf[:])
	a := rr.r.NewPoly()
	b := rr.r.NewPoly()
	for i := 0; i < 64; i++ {
		a.Coeffs[0][i] = uint64(buf[i]) % 257
		b.Coeffs[0][i] = uint64(buf[64+i]) % 257
	}
	c := rr.Mul(a, b)

	// Schoolbook product modulo X^64+1.
	var exp [64]int64
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			v := int64(a.Coeffs[0][i] * b.Coeffs[0][j])
			if i+j < 64 {
				exp[i+j] += v
			} else {
				exp[i+j-64] -= v
			}
		}
	}
	for i := 0; i < 64; i++ {
		e := ((exp[i] % 257) + 257) % 257
		if int64(c.Coeffs[0][i]) != e {
			t.Fatalf("ERR product[%d] = %d (exp: %d)\n", i, c.Coeffs[0][i], e)
		}
	}
}

func TestKernelsMatchReference(t *testing.T) {
	var buf [2048]byte
	swifft.SeededInput([]byte("reference-key"), buf[:])
	seed := make([]int16, swifft.Wide.M*swifft.Wide.N)
	for i := range seed {
		seed[i] = int16(buf[i])
	}
	wide, err := swifft.Generate(swifft.Wide, seed)
	if err != nil {
		t.Fatal(err)
	}
	for _, tab := range []*swifft.Tables{swifft.StandardTables(), wide} {
		rr, err := NewRing(tab)
		if err != nil {
			t.Fatal(err)
		}
		in := make([]byte, tab.InputBlockSize())
		sign := make([]byte, tab.InputBlockSize())
		for j := 0; j < 3; j++ {
			swifft.SeededInput([]byte(fmt.Sprintf("reference-in-%d", j)), in)
			swifft.SeededInput([]byte(fmt.Sprintf("reference-sign-%d", j)), sign)
			var sg []byte
			if j > 0 {
				sg = sign
			}
			ref := rr.Compute(in, sg)
			for _, tier := range swifft.Tiers() {
				h, err := swifft.NewHasherWithTables(tab, tier)
				if err != nil {
					t.Fatal(err)
				}
				out, err := h.SumSigned(in, sg)
				if err != nil {
					t.Fatal(err)
				}
				for i := range ref {
					if out[i] != ref[i] {
						t.Fatalf("ERR N=%d tier=%s: out[%d] = %d (exp: %d)\n",
							tab.N, tier, i, out[i], ref[i])
					}
				}
			}
		}
	}
}
