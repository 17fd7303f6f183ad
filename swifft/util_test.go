package swifft

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSizes(t *testing.T) {
	var tests = []struct {
		par                  Params
		in, outlen, out, cmp int
	}{
		{Standard, 256, 64, 128, 64},
		{Wide, 256, 128, 256, 128},
		{Toy, 2, 8, 16, 8},
	}
	for _, tt := range tests {
		p := tt.par
		if p.InputBlockSize() != tt.in || p.OutputLen() != tt.outlen ||
			p.OutputSize() != tt.out || p.CompactSize() != tt.cmp {
			t.Fatalf("ERR sizes for %s: %d %d %d %d\n", p,
				p.InputBlockSize(), p.OutputLen(), p.OutputSize(), p.CompactSize())
		}
	}
}

func TestBitPosition(t *testing.T) {
	seen := make([]bool, Standard.N)
	for i := 0; i < Standard.N/8; i++ {
		for k := 0; k < 8; k++ {
			e := Standard.BitPosition(i, k)
			if seen[e] {
				t.Fatalf("ERR position %d used twice\n", e)
			}
			seen[e] = true
		}
	}
	if Standard.BitPosition(1, 1) != 33 || Standard.BitPosition(7, 7) != 63 {
		t.Fatalf("ERR bit positions\n")
	}
}

func TestSeededInput(t *testing.T) {
	var buf [16]byte
	SeededInput([]byte("test"), buf[:])
	if hex.EncodeToString(buf[:]) != "5e4723692e6430689c7d9141ec36f5b1" {
		t.Fatalf("ERR seeded input: %x\n", buf)
	}
	// Output does not depend on how the stream is cut.
	long := make([]byte, 2000)
	SeededInput([]byte("test"), long)
	if !bytes.Equal(long[:16], buf[:]) {
		t.Fatalf("ERR seeded input prefix\n")
	}
}
