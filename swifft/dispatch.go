package swifft

// Dispatch table, indexed by tier. The baseline entry is always present;
// the other entries are filled by the init() functions of the tier files
// that are compiled in.
var dispatch = [num_tiers]*Capability{
	Baseline: {
		Tier:      Baseline,
		Transform: baseline_kernel{},
		Arith:     baseline_kernel{},
		Digest:    baseline_kernel{},
	},
}

// Register a tier implementation. This is called only from init()
// functions, before any lookup.
func register(c *Capability) {
	if dispatch[c.Tier] != nil {
		panic("swifft: tier registered twice: " + c.Tier.String())
	}
	dispatch[c.Tier] = c
}

// Lookup returns the implementation of the given tier, if it was
// compiled in.
func Lookup(tier Tier) (*Capability, bool) {
	if tier < 0 || tier >= num_tiers || dispatch[tier] == nil {
		return nil, false
	}
	return dispatch[tier], true
}

// Tiers returns the compiled-in tiers, in increasing order.
func Tiers() []Tier {
	var r []Tier
	for i, c := range dispatch {
		if c != nil {
			r = append(r, Tier(i))
		}
	}
	return r
}

// Static returns the implementation of the highest compiled-in tier,
// regardless of the capabilities of the running CPU. Since all tiers
// are written in portable Go, it can always be used.
func Static() *Capability {
	for i := num_tiers - 1; i > Baseline; i-- {
		if dispatch[i] != nil {
			return dispatch[i]
		}
	}
	return dispatch[Baseline]
}

// Best returns the implementation of the highest compiled-in tier that
// the running CPU reports (see Supported).
func Best() *Capability {
	for i := num_tiers - 1; i > Baseline; i-- {
		if dispatch[i] != nil && Supported(i) {
			return dispatch[i]
		}
	}
	return dispatch[Baseline]
}
