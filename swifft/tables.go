package swifft

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	sha3 "golang.org/x/crypto/sha3"
)

// Tables holds the constant tables of a SWIFFT instance. All values are
// centered residues modulo P. A Tables value must not be modified once
// it has been built; it can then be shared between goroutines.
type Tables struct {
	Params

	// Phase multipliers (N entries): entry g*W+s is Omega^(rev(g)*(2s+1)),
	// with rev() the bit reversal over N/W.
	Multipliers []int16

	// Embedded transform table (V*V*(N/8) entries), see ButterflyAt().
	Butterfly []int16

	// Key matrix (M*N entries), row-major by rail.
	Key []int16

	// Powers of Omega, for exponents 0 to 2N.
	OmegaPowers []int16
}

// ButterflyAt returns the embedded transform table entry for sign value
// w, input value x (both in [0, V-1]) and output index j (in [0, N/8-1]).
func (t *Tables) ButterflyAt(w int, x int, j int) int16 {
	return t.Butterfly[(w*t.V+x)*(t.N>>3)+j]
}

// KeyAt returns the key coefficient for the given rail and index.
func (t *Tables) KeyAt(rail int, i int) int16 {
	return t.Key[rail*t.N+i]
}

// Equal reports whether t and u have the same parameters and contents.
func (t *Tables) Equal(u *Tables) bool {
	if t.Params != u.Params {
		return false
	}
	return eq_i16(t.Multipliers, u.Multipliers) &&
		eq_i16(t.Butterfly, u.Butterfly) &&
		eq_i16(t.Key, u.Key) &&
		eq_i16(t.OmegaPowers, u.OmegaPowers)
}

func eq_i16(a []int16, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Fingerprint returns the SHA3-256 hash of the tables. The hashed data is
// the six parameters (P, Omega, N, M, V, W, each over 4 bytes), then the
// multipliers, embedded transform table, key and powers of Omega (each
// value over 2 bytes); everything is in little-endian.
func (t *Tables) Fingerprint() [32]byte {
	sh := sha3.New256()
	var hb [24]byte
	for i, v := range [6]int{t.P, t.Omega, t.N, t.M, t.V, t.W} {
		binary.LittleEndian.PutUint32(hb[i<<2:], uint32(v))
	}
	sh.Write(hb[:])
	var buf [2]byte
	for _, tab := range [4][]int16{t.Multipliers, t.Butterfly, t.Key, t.OmegaPowers} {
		for _, v := range tab {
			binary.LittleEndian.PutUint16(buf[:], uint16(v))
			sh.Write(buf[:])
		}
	}
	var fp [32]byte
	sh.Sum(fp[:0])
	return fp
}

// WriteSource writes the tables as Go source for package pkg. Each table
// becomes a fixed-size int16 array named prefix followed by "multipliers",
// "butterfly", "key" or "omega_powers". Values are written eight per
// line, in gofmt layout. This produces the checked-in generated
// constants when called with the standard tables, package "swifft" and
// prefix "std_".
func (t *Tables) WriteSource(w io.Writer, pkg string, prefix string) error {
	bw := bufio.NewWriter(w)
	fp := t.Fingerprint()
	fmt.Fprintf(bw, "// Code generated by swifftgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkg)
	fmt.Fprintf(bw, "// Parameters: %s\n", t.Params)
	fmt.Fprintf(bw, "// Fingerprint: %x\n", fp[:])
	write_array(bw, prefix+"multipliers",
		"phase multipliers, N entries", t.Multipliers)
	write_array(bw, prefix+"butterfly",
		"embedded transform table, V*V*(N/8) entries", t.Butterfly)
	write_array(bw, prefix+"key",
		"centered key matrix, M*N entries", t.Key)
	write_array(bw, prefix+"omega_powers",
		"centered powers of Omega, 2N+1 entries", t.OmegaPowers)
	return bw.Flush()
}

// Write one table as a Go array literal. Errors are sticky in the
// buffered writer and reported by the final flush.
func write_array(w *bufio.Writer, name string, doc string, v []int16) {
	fmt.Fprintf(w, "\n// %s: %s.\n", name, doc)
	fmt.Fprintf(w, "var %s = [%d]int16{\n", name, len(v))
	for i := 0; i < len(v); i += 8 {
		w.WriteByte('\t')
		for j := i; j < i+8 && j < len(v); j++ {
			if j > i {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%d,", v[j])
		}
		w.WriteByte('\n')
	}
	w.WriteString("}\n")
}

// Tables for the standard parameters, backed by the generated constants.
var std_tables = &Tables{
	Params:      Standard,
	Multipliers: std_multipliers[:],
	Butterfly:   std_butterfly[:],
	Key:         std_key[:],
	OmegaPowers: std_omega_powers[:],
}

// StandardTables returns the tables for the standard parameters and the
// published seed. The returned value is shared and MUST NOT be modified.
func StandardTables() *Tables {
	return std_tables
}
