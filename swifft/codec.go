package swifft

import (
	"errors"
)

// Encode a hash value into bytes: each element (in [0, P-1]) is written
// over two bytes, in little-endian. The number of written bytes (2*len(out))
// is returned. dst MUST be large enough.
func EncodeOutput(out []uint16, dst []byte) int {
	j := 0
	for _, v := range out {
		dst[j] = uint8(v)
		dst[j+1] = uint8(v >> 8)
		j += 2
	}
	return j
}

// Decode a hash value for modulus p from bytes. The number of elements
// is len(out); the number of read bytes is returned. An error is
// returned if the source is too short, or if an element is not in
// [0, p-1].
func DecodeOutput(p int, src []byte, out []uint16) (int, error) {
	n := len(out)
	if len(src) < (n << 1) {
		return 0, errors.New("swifft: truncated hash value")
	}
	for i := 0; i < n; i++ {
		v := uint16(src[i<<1]) | (uint16(src[(i<<1)+1]) << 8)
		if int(v) >= p {
			return 0, errors.New("swifft: invalid hash value element")
		}
		out[i] = v
	}
	return n << 1, nil
}
