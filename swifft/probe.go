package swifft

import (
	"golang.org/x/sys/cpu"
)

// Supported reports whether the running CPU provides the instruction set
// extension matching the given tier. The baseline tier is always
// supported. This does not tell whether the tier is compiled in (see
// Lookup).
func Supported(tier Tier) bool {
	switch tier {
	case Baseline:
		return true
	case AVX:
		return cpu.X86.HasAVX
	case AVX2:
		return cpu.X86.HasAVX2
	case AVX512:
		return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	default:
		return false
	}
}
