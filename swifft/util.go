package swifft

import (
	sha3 "golang.org/x/crypto/sha3"
)

// SeededInput fills dst with pseudorandom bytes derived from the seed.
// The output is fully determined by the seed; this is meant to build
// reproducible test and benchmark inputs, not for cryptographic use.
// The byte stream is that of SHAKE256x4 (four SHAKE256 instances over
// seed||i, for i = 0 to 3, interleaved by 8-byte words).
// This layout is fixed: the known-answer vectors in the tests are
// defined over this exact stream.
func SeededInput(seed []byte, dst []byte) {
	r := newSHAKE256x4(seed)
	for i := range dst {
		dst[i] = r.next_u8()
	}
}

// SHAKE256x4 is a PRNG based on four SHAKE256 instances; output is
// interleaved by 8-byte words.
type shake256x4 struct {
	state [4]sha3.ShakeHash
	buf   [4 * 136]byte
	ptr   int
}

func newSHAKE256x4(seed []byte) *shake256x4 {
	r := new(shake256x4)
	for i := 0; i < 4; i++ {
		r.state[i] = sha3.NewShake256()
		r.state[i].Write(seed)
		r.state[i].Write([]byte{byte(i)})
	}
	r.ptr = len(r.buf)
	return r
}

func (r *shake256x4) next_u8() uint8 {
	if r.ptr == len(r.buf) {
		r.refill()
	}
	x := r.buf[r.ptr]
	r.ptr++
	return x
}

func (r *shake256x4) refill() {
	var tmp [136]byte
	for i := 0; i < 4; i++ {
		r.state[i].Read(tmp[:])
		for j := 0; j < 17; j++ {
			u := (i << 3) + (j << 5)
			copy(r.buf[u:u+8], tmp[j<<3:(j<<3)+8])
		}
	}
	r.ptr = 0
}
