package swifft

import (
	"fmt"
	"strings"
)

// Tier identifies a capability tier. Tiers are ordered: a higher tier
// processes more lanes at a time.
type Tier int

const (
	Baseline Tier = iota
	AVX
	AVX2
	AVX512

	num_tiers
)

var tier_names = [num_tiers]string{"baseline", "avx", "avx2", "avx512"}

func (t Tier) String() string {
	if t < 0 || t >= num_tiers {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tier_names[t]
}

// Lanes returns the number of 32-bit lanes processed at a time by the
// tier's kernels (1 for the baseline tier).
func (t Tier) Lanes() int {
	switch t {
	case AVX:
		return 8
	case AVX2:
		return 16
	case AVX512:
		return 32
	default:
		return 1
	}
}

// ParseTier returns the tier with the given name (case-insensitive).
func ParseTier(name string) (Tier, error) {
	for i, n := range tier_names {
		if strings.EqualFold(n, name) {
			return Tier(i), nil
		}
	}
	return Baseline, fmt.Errorf("swifft: unknown tier %q", name)
}
