package swifft

import (
	"bytes"
	"encoding/hex"
	"os"
	"testing"
)

func TestCenter(t *testing.T) {
	p := 257
	var tests = []struct {
		x, r int
	}{
		{0, 0}, {1, 1}, {-1, -1},
		{128, 128}, {129, -128}, {-128, -128}, {-129, 128},
		{256, -1}, {257, 0}, {-257, 0}, {258, 1},
		{42 * 42, -35}, {-128 * 128, 64},
	}
	for _, tt := range tests {
		r := center(p, tt.x)
		if r != tt.r {
			t.Fatalf("ERR center(%d): %d (exp: %d)\n", tt.x, r, tt.r)
		}
	}
	for x := -70000; x <= 70000; x++ {
		r := center(p, x)
		if r < -(p/2) || r > p/2 || (x-r)%p != 0 {
			t.Fatalf("ERR center(%d): %d\n", x, r)
		}
	}
}

func TestReverseBits(t *testing.T) {
	var expected = [8]int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := 0; i < 8; i++ {
		if r := reverse_bits(i, 8); r != expected[i] {
			t.Fatalf("ERR reverse_bits(%d, 8): %d (exp: %d)\n",
				i, r, expected[i])
		}
	}
	for logm := 0; logm <= 10; logm++ {
		m := 1 << logm
		for i := 0; i < m; i++ {
			r := reverse_bits(i, m)
			if r < 0 || r >= m || reverse_bits(r, m) != i {
				t.Fatalf("ERR reverse_bits(%d, %d): %d\n", i, m, r)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	for _, par := range []Params{Standard, Toy, Wide} {
		if err := par.Validate(); err != nil {
			t.Fatalf("ERR %s: %v\n", par, err)
		}
	}
	var bad = []Params{
		{P: 256, Omega: 42, N: 64, M: 32, V: 16, W: 8},
		{P: 257, Omega: 2, N: 64, M: 32, V: 16, W: 8},
		{P: 257, Omega: 42, N: 48, M: 32, V: 16, W: 8},
		{P: 257, Omega: 42, N: 64, M: 0, V: 16, W: 8},
		{P: 257, Omega: 42, N: 64, M: 32, V: 12, W: 8},
		{P: 257, Omega: 42, N: 64, M: 32, V: 16, W: 128},
		{P: 257, Omega: 42, N: 64, M: 32, V: 1 << 10, W: 8},
	}
	for _, par := range bad {
		if par.Validate() == nil {
			t.Fatalf("ERR %s accepted\n", par)
		}
	}
}

func TestKernelCheck(t *testing.T) {
	for _, par := range []Params{Standard, Wide} {
		if err := par.KernelCheck(); err != nil {
			t.Fatalf("ERR %s: %v\n", par, err)
		}
	}
	if Toy.KernelCheck() == nil {
		t.Fatalf("ERR toy parameters accepted by kernels\n")
	}
	par := Standard
	par.M = 1 << 20
	if par.KernelCheck() == nil {
		t.Fatalf("ERR fold overflow not detected\n")
	}
}

func TestGenerateStandard(t *testing.T) {
	seed := StandardSeed()
	tab, err := Generate(Standard, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !tab.Equal(StandardTables()) {
		t.Fatalf("ERR generated tables differ from checked-in constants\n")
	}
	fp := tab.Fingerprint()
	exp := "fd427e3f6f485b4e4978cd444398a083050265ab54bcdfabfd38d32571e4b2c2"
	if hex.EncodeToString(fp[:]) != exp {
		t.Fatalf("ERR fingerprint: %x\n", fp)
	}

	// Spot values.
	var mult = []int16{1, 1, 1, 1, 1, 1, 1, 1, -60, -120, 17, 34, 68, -121, 15, 30}
	for i, v := range mult {
		if tab.Multipliers[i] != v {
			t.Fatalf("ERR multipliers[%d] = %d (exp: %d)\n", i, tab.Multipliers[i], v)
		}
	}
	if tab.ButterflyAt(0, 1, 0) != 1 || tab.ButterflyAt(0, 2, 0) != 16 ||
		tab.ButterflyAt(0, 2, 1) != -16 || tab.ButterflyAt(1, 3, 0) != 15 {
		t.Fatalf("ERR butterfly spot values\n")
	}
	if tab.OmegaPowers[1] != 42 || tab.OmegaPowers[8] != 2 ||
		tab.OmegaPowers[64] != -1 || tab.OmegaPowers[128] != 1 {
		t.Fatalf("ERR omega powers spot values\n")
	}
	if tab.KeyAt(0, 0) != -116 || tab.KeyAt(0, 1) != 78 {
		t.Fatalf("ERR key spot values: %d %d\n", tab.KeyAt(0, 0), tab.KeyAt(0, 1))
	}

	// The seed is not modified, and regeneration is deterministic.
	if !bytes.Equal(i16_bytes(seed), i16_bytes(pi_seed[:])) {
		t.Fatalf("ERR seed modified\n")
	}
	tab2, _ := Generate(Standard, seed)
	if !tab.Equal(tab2) {
		t.Fatalf("ERR generation is not deterministic\n")
	}
}

func TestGenerateRanges(t *testing.T) {
	for _, par := range []Params{Standard, Toy, Wide} {
		seed := make([]int16, par.M*par.N)
		for i := range seed {
			seed[i] = int16(i*7919 - 30000)
		}
		tab, err := Generate(par, seed)
		if err != nil {
			t.Fatal(err)
		}
		h := int16(par.P / 2)
		for _, arr := range [][]int16{tab.Multipliers, tab.Butterfly, tab.Key, tab.OmegaPowers} {
			for i, v := range arr {
				if v < -h || v > h {
					t.Fatalf("ERR %s: value %d at %d not centered\n", par, v, i)
				}
			}
		}
		if len(tab.Butterfly) != par.V*par.V*(par.N/8) {
			t.Fatalf("ERR %s: butterfly size %d\n", par, len(tab.Butterfly))
		}
		// All-zero inputs map to all-zero table entries.
		for w := 0; w < par.V; w++ {
			for j := 0; j < par.N/8; j++ {
				if tab.ButterflyAt(w, 0, j) != 0 {
					t.Fatalf("ERR %s: butterfly(%d, 0, %d) != 0\n", par, w, j)
				}
			}
		}
	}
}

func TestGenerateToy(t *testing.T) {
	seed := make([]int16, Toy.M*Toy.N)
	for i := range seed {
		seed[i] = int16(i)
	}
	tab, err := Generate(Toy, seed)
	if err != nil {
		t.Fatal(err)
	}
	var exp = Tables{
		Params:      Toy,
		Multipliers: []int16{1, 1, 1, 1, 3, -7, 5, -6},
		Butterfly:   []int16{0, 1, -8, -7, 0, -1, -8, 8, 0, 1, 8, -8, 0, -1, 8, 7},
		Key:         []int16{0, 1, 2, 3, 4, 5, 6, 7, 8, -8, -7, -6, -5, -4, -3, -2},
		OmegaPowers: []int16{1, 3, -8, -7, -4, 5, -2, -6, -1, -3, 8, 7, 4, -5, 2, 6, 1},
	}
	if !tab.Equal(&exp) {
		t.Fatalf("ERR toy tables: %v\n", tab)
	}
	fp := tab.Fingerprint()
	if hex.EncodeToString(fp[:]) != "f66338491c8cb3ce10f46d4b165f5b5e7cb4f9c774a000f209d6aca84ee14819" {
		t.Fatalf("ERR toy fingerprint: %x\n", fp)
	}
}

func TestGenerateSeedSize(t *testing.T) {
	for _, n := range []int{0, 1, 2047, 2049} {
		if _, err := Generate(Standard, make([]int16, n)); err == nil {
			t.Fatalf("ERR seed of size %d accepted\n", n)
		}
	}
}

// The checked-in constants must be exactly what the generator emits.
func TestGeneratedSourceUpToDate(t *testing.T) {
	tab, err := Generate(Standard, StandardSeed())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tab.WriteSource(&buf, "swifft", "std_"); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile("zconst.go")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), src) {
		t.Fatalf("ERR zconst.go is stale; run: go run ./cmd/swifftgen swifft/zconst.go\n")
	}
}

func i16_bytes(v []int16) []byte {
	b := make([]byte, 2*len(v))
	for i, x := range v {
		b[2*i] = byte(x)
		b[2*i+1] = byte(x >> 8)
	}
	return b
}

func BenchmarkGenerate(b *testing.B) {
	seed := StandardSeed()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(Standard, seed)
	}
}
