package swifft

import (
	"errors"
	"sync"
	"testing"
)

func TestHasherSizes(t *testing.T) {
	h := DefaultHasher()
	if _, err := h.Sum(make([]byte, 255)); !errors.Is(err, ErrInputSize) {
		t.Fatalf("ERR short input: %v\n", err)
	}
	if _, err := h.SumSigned(make([]byte, 256), make([]byte, 128)); !errors.Is(err, ErrInputSize) {
		t.Fatalf("ERR short sign block: %v\n", err)
	}
	if _, err := h.SumMultiple(nil); !errors.Is(err, ErrInputSize) {
		t.Fatalf("ERR empty input: %v\n", err)
	}
	if _, err := h.SumMultiple(make([]byte, 300)); !errors.Is(err, ErrInputSize) {
		t.Fatalf("ERR partial block: %v\n", err)
	}
	if _, err := h.Compact(make([]uint16, 63)); !errors.Is(err, ErrOutputSize) {
		t.Fatalf("ERR short hash value: %v\n", err)
	}
	bad := make([]uint16, 64)
	bad[3] = 257
	if _, err := h.Compact(bad); err == nil {
		t.Fatalf("ERR out-of-range hash value accepted\n")
	}
	if err := h.Add(make([]uint16, 64), make([]uint16, 32)); !errors.Is(err, ErrOutputSize) {
		t.Fatalf("ERR operand size: %v\n", err)
	}
	if _, err := NewHasher(num_tiers); !errors.Is(err, ErrTierUnavailable) {
		t.Fatalf("ERR invalid tier: %v\n", err)
	}
	if _, err := NewHasherWithTables(nil, Baseline); err == nil {
		t.Fatalf("ERR nil tables accepted\n")
	}
	if err := h.ConstAddMultiple([][]uint16{make([]uint16, 64)}, []int16{1, 2}); !errors.Is(err, ErrOutputSize) {
		t.Fatalf("ERR constant count: %v\n", err)
	}
	if err := h.SetMultiple([][]uint16{make([]uint16, 64)}, [][]uint16{bad}); err == nil {
		t.Fatalf("ERR out-of-range operand accepted by set\n")
	}
	toy, _ := Generate(Toy, make([]int16, Toy.M*Toy.N))
	if _, err := NewHasherWithTables(toy, Baseline); err == nil {
		t.Fatalf("ERR toy tables accepted\n")
	}
}

func TestHasherMultiple(t *testing.T) {
	h := DefaultHasher()
	in := make([]byte, 4*256)
	SeededInput([]byte("multiple"), in)
	all, err := h.SumMultiple(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("ERR %d hash values\n", len(all))
	}
	for j := 0; j < 4; j++ {
		one, err := h.Sum(in[j*256 : (j+1)*256])
		if err != nil {
			t.Fatal(err)
		}
		for i := range one {
			if one[i] != all[j][i] {
				t.Fatalf("ERR block %d: mismatch at %d\n", j, i)
			}
		}
	}

	// Hash values are sub-slices with their own capacity: appending to
	// one must not clobber the next.
	saved := all[1][0]
	_ = append(all[0], 0xFFFF)
	if all[1][0] != saved {
		t.Fatalf("ERR hash value overlap\n")
	}
}

func TestHasherArith(t *testing.T) {
	h, err := NewHasher(Baseline)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]byte, 256)
	SeededInput([]byte("hasher-arith"), in)
	x, _ := h.Sum(in)
	y := make([]uint16, len(x))
	copy(y, x)
	if err := h.Add(y, x); err != nil {
		t.Fatal(err)
	}
	if err := h.Sub(y, x); err != nil {
		t.Fatal(err)
	}
	for i := range y {
		if y[i] != x[i] {
			t.Fatalf("ERR (x + x) - x != x\n")
		}
	}
	one := make([]uint16, len(x))
	for i := range one {
		one[i] = 1
	}
	if err := h.Mul(y, one); err != nil {
		t.Fatal(err)
	}
	for i := range y {
		if y[i] != x[i] {
			t.Fatalf("ERR x * 1 != x\n")
		}
	}
	if err := h.ConstSet(y, -5); err != nil {
		t.Fatal(err)
	}
	if err := h.ConstAdd(y, 10); err != nil {
		t.Fatal(err)
	}
	if err := h.ConstMul(y, 3); err != nil {
		t.Fatal(err)
	}
	if err := h.ConstSub(y, 15); err != nil {
		t.Fatal(err)
	}
	for i := range y {
		if y[i] != 0 {
			t.Fatalf("ERR ((-5 + 10) * 3) - 15 != 0\n")
		}
	}
	if err := h.Set(y, x); err != nil {
		t.Fatal(err)
	}
	for i := range y {
		if y[i] != x[i] {
			t.Fatalf("ERR set\n")
		}
	}
}

func TestHasherArithMultiple(t *testing.T) {
	for _, tier := range Tiers() {
		h, err := NewHasher(tier)
		if err != nil {
			t.Fatal(err)
		}
		in := make([]byte, 3*256)
		SeededInput([]byte("hasher-arith-multiple"), in)
		x, err := h.SumMultiple(in)
		if err != nil {
			t.Fatal(err)
		}

		// Set, then add each value to itself and subtract it back.
		y := [][]uint16{make([]uint16, 64), make([]uint16, 64), make([]uint16, 64)}
		if err := h.SetMultiple(y, x); err != nil {
			t.Fatal(err)
		}
		if err := h.AddMultiple(y, x); err != nil {
			t.Fatal(err)
		}
		if err := h.SubMultiple(y, x); err != nil {
			t.Fatal(err)
		}
		for j := range y {
			for i := range y[j] {
				if y[j][i] != x[j][i] {
					t.Fatalf("ERR tier=%s: (x + x) - x != x (value %d)\n", tier, j)
				}
			}
		}

		// Per-value constants.
		cs := []int16{2, -1, 300}
		if err := h.ConstMulMultiple(y, cs); err != nil {
			t.Fatal(err)
		}
		if err := h.ConstAddMultiple(y, cs); err != nil {
			t.Fatal(err)
		}
		if err := h.ConstSubMultiple(y, []int16{1, 1, 1}); err != nil {
			t.Fatal(err)
		}
		for j := range y {
			c := int(cs[j])
			for i := range y[j] {
				exp := (((int(x[j][i])*c+c-1)%257)+257)%257
				if int(y[j][i]) != exp {
					t.Fatalf("ERR tier=%s value %d [%d]: %d (exp: %d)\n",
						tier, j, i, y[j][i], exp)
				}
			}
		}
		if err := h.ConstSetMultiple(y, cs); err != nil {
			t.Fatal(err)
		}
		if err := h.MulMultiple(y, y); err != nil {
			t.Fatal(err)
		}
		for j, v := range []uint16{4, 1, 43 * 43 % 257} {
			for i := range y[j] {
				if y[j][i] != v {
					t.Fatalf("ERR tier=%s value %d: const set then square: %d\n",
						tier, j, y[j][i])
				}
			}
		}
	}
}

func TestHasherWide(t *testing.T) {
	tab := wide_tables(t)
	in := make([]byte, tab.InputBlockSize())
	SeededInput([]byte("wide-in"), in)
	var ref []uint16
	for _, tier := range Tiers() {
		h, err := NewHasherWithTables(tab, tier)
		if err != nil {
			t.Fatal(err)
		}
		out, err := h.Sum(in)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 128 {
			t.Fatalf("ERR output length %d\n", len(out))
		}
		if ref == nil {
			ref = out
			continue
		}
		for i := range out {
			if out[i] != ref[i] {
				t.Fatalf("ERR tier=%s: mismatch at %d\n", tier, i)
			}
		}
	}
}

func TestHasherConcurrent(t *testing.T) {
	h := DefaultHasher()
	in := make([]byte, 256)
	SeededInput([]byte("concurrent"), in)
	ref, _ := h.Sum(in)
	var wg sync.WaitGroup
	errs := make([]bool, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				out, err := h.Sum(in)
				if err != nil {
					errs[g] = true
					return
				}
				for i := range out {
					if out[i] != ref[i] {
						errs[g] = true
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
	for g, e := range errs {
		if e {
			t.Fatalf("ERR goroutine %d: wrong output\n", g)
		}
	}
}
