package swifft

import (
	"testing"
)

func TestOutputCodec(t *testing.T) {
	out := make([]uint16, 64)
	for i := range out {
		out[i] = uint16((i * 97) % 257)
	}
	out[5] = 256
	buf := make([]byte, 128)
	if n := EncodeOutput(out, buf); n != 128 {
		t.Fatalf("ERR encoded length: %d\n", n)
	}
	if buf[10] != 0x00 || buf[11] != 0x01 {
		t.Fatalf("ERR encoding of 256: %02x %02x\n", buf[10], buf[11])
	}
	dec := make([]uint16, 64)
	n, err := DecodeOutput(257, buf, dec)
	if err != nil || n != 128 {
		t.Fatalf("ERR decode: %d, %v\n", n, err)
	}
	for i := range out {
		if dec[i] != out[i] {
			t.Fatalf("ERR decode[%d]: %d (exp: %d)\n", i, dec[i], out[i])
		}
	}
	if _, err := DecodeOutput(257, buf[:127], dec); err == nil {
		t.Fatalf("ERR truncated source accepted\n")
	}
	buf[10] = 0x01
	if _, err := DecodeOutput(257, buf, dec); err == nil {
		t.Fatalf("ERR out-of-range element accepted\n")
	}
}
