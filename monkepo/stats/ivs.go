package stats

import "math/rand"

// Tier selects the IV range a creature is rolled with.
type Tier int

const (
	// TierStarter rolls high-quality IVs in [20,31].
	TierStarter Tier = iota
	// TierCommon rolls standard IVs in [10,25].
	TierCommon
)

func (t Tier) bounds() (min, max int) {
	switch t {
	case TierStarter:
		return 20, 31
	default:
		return 10, 25
	}
}

// IVSet holds the six individual values, fixed at creation time for the
// creature's lifetime. Serialized to JSONB on the pending selection row.
type IVSet struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Total returns the sum of all six components.
func (ivs IVSet) Total() int {
	return ivs.HP + ivs.Attack + ivs.Defense + ivs.SpAttack + ivs.SpDefense + ivs.Speed
}

// Generator rolls IV sets from an injected rand source so callers control
// seeding and tests stay deterministic.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate draws six independent, uniformly distributed values within the
// tier's inclusive range. No cross-stat correlation.
func (g *Generator) Generate(tier Tier) IVSet {
	min, max := tier.bounds()
	roll := func() int {
		return min + g.rng.Intn(max-min+1)
	}
	return IVSet{
		HP:        roll(),
		Attack:    roll(),
		Defense:   roll(),
		SpAttack:  roll(),
		SpDefense: roll(),
		Speed:     roll(),
	}
}
