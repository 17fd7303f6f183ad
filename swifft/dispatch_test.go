package swifft

import (
	"testing"
)

func TestDispatch(t *testing.T) {
	tiers := Tiers()
	if len(tiers) == 0 || tiers[0] != Baseline {
		t.Fatalf("ERR baseline tier missing: %v\n", tiers)
	}
	for i, tier := range tiers {
		if i > 0 && tiers[i-1] >= tier {
			t.Fatalf("ERR tiers not in increasing order: %v\n", tiers)
		}
		c, ok := Lookup(tier)
		if !ok || c.Tier != tier {
			t.Fatalf("ERR lookup(%s)\n", tier)
		}
		if c.Transform == nil || c.Arith == nil || c.Digest == nil {
			t.Fatalf("ERR tier %s: incomplete capability\n", tier)
		}
	}
	if Static().Tier != tiers[len(tiers)-1] {
		t.Fatalf("ERR static tier: %s\n", Static().Tier)
	}
	best := Best()
	if best.Tier > Static().Tier || !Supported(best.Tier) {
		t.Fatalf("ERR best tier: %s\n", best.Tier)
	}
	if _, ok := Lookup(num_tiers); ok {
		t.Fatalf("ERR lookup of an invalid tier succeeded\n")
	}
	if _, ok := Lookup(Tier(-1)); ok {
		t.Fatalf("ERR lookup of a negative tier succeeded\n")
	}
	if !Supported(Baseline) || Supported(num_tiers) {
		t.Fatalf("ERR supported()\n")
	}
}

func TestTierNames(t *testing.T) {
	for i := Baseline; i < num_tiers; i++ {
		u, err := ParseTier(i.String())
		if err != nil || u != i {
			t.Fatalf("ERR parse(%s): %v\n", i, err)
		}
	}
	if u, err := ParseTier("AVX2"); err != nil || u != AVX2 {
		t.Fatalf("ERR parse is case-sensitive\n")
	}
	if _, err := ParseTier("sse2"); err == nil {
		t.Fatalf("ERR unknown tier name accepted\n")
	}
	if Tier(9).String() != "Tier(9)" {
		t.Fatalf("ERR invalid tier name: %s\n", Tier(9))
	}
	if AVX512.Lanes() != 32 || Baseline.Lanes() != 1 {
		t.Fatalf("ERR lane counts\n")
	}
}
