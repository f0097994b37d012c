package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_BulbasaurLevel5(t *testing.T) {
	base := BaseStats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}
	ivs := IVSet{HP: 31, Attack: 31, Defense: 31, SpAttack: 31, SpDefense: 31, Speed: 31}

	got := Calculate(base, ivs, 5)

	// floor((90+31)*5/100)+5+10 = 6+15 = 21
	assert.Equal(t, 21, got.HP)
	// floor((98+31)*5/100)+5 = 6+5 = 11
	assert.Equal(t, 11, got.Attack)
	assert.Equal(t, 11, got.Defense)
	// floor((130+31)*5/100)+5 = 8+5 = 13
	assert.Equal(t, 13, got.SpAttack)
	assert.Equal(t, 13, got.SpDefense)
	assert.Equal(t, 11, got.Speed)
}

func TestCalculate_FloorsNeverRounds(t *testing.T) {
	base := BaseStats{HP: 45, Attack: 49}
	ivs := IVSet{HP: 31, Attack: 31}

	// (98+31)*1/100 = 1.29 -> 1, not 1.29 rounded
	got := Calculate(base, ivs, 1)
	assert.Equal(t, 1+1+10, got.HP)
	assert.Equal(t, 1+5, got.Attack)
}

func TestCalculate_MonotonicInLevelAndIVs(t *testing.T) {
	base := BaseStats{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}
	ivs := IVSet{HP: 20, Attack: 20, Defense: 20, SpAttack: 20, SpDefense: 20, Speed: 20}

	prev := Calculate(base, ivs, 1)
	for level := 2; level <= 100; level++ {
		cur := Calculate(base, ivs, level)
		if cur.HP < prev.HP || cur.Attack < prev.Attack || cur.Speed < prev.Speed {
			t.Fatalf("stats decreased between level %d and %d", level-1, level)
		}
		prev = cur
	}

	low := Calculate(base, IVSet{HP: 10}, 50)
	high := Calculate(base, IVSet{HP: 31}, 50)
	assert.GreaterOrEqual(t, high.HP, low.HP)
}

func TestGenerate_Ranges(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(42)))

	tests := []struct {
		name string
		tier Tier
		min  int
		max  int
	}{
		{name: "starter tier", tier: TierStarter, min: 20, max: 31},
		{name: "common tier", tier: TierCommon, min: 10, max: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[int]bool{}
			for i := 0; i < 500; i++ {
				ivs := gen.Generate(tt.tier)
				for _, v := range []int{ivs.HP, ivs.Attack, ivs.Defense, ivs.SpAttack, ivs.SpDefense, ivs.Speed} {
					if v < tt.min || v > tt.max {
						t.Fatalf("IV %d out of [%d,%d]", v, tt.min, tt.max)
					}
					seen[v] = true
				}
			}
			// Over 3000 draws every value in the range should appear.
			assert.Len(t, seen, tt.max-tt.min+1)
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	// Spread a target total across the six components.
	withTotal := func(total int) IVSet {
		base := total / 6
		rem := total % 6
		ivs := IVSet{HP: base, Attack: base, Defense: base, SpAttack: base, SpDefense: base, Speed: base + rem}
		return ivs
	}

	tests := []struct {
		total int
		want  Quality
	}{
		{total: 186, want: QualityPerfect},
		{total: 180, want: QualityPerfect},
		{total: 179, want: QualityGreat},
		{total: 165, want: QualityGreat},
		{total: 164, want: QualityGood},
		{total: 150, want: QualityGood},
		{total: 149, want: QualityDecent},
		{total: 135, want: QualityDecent},
		{total: 134, want: QualityBad},
		{total: 120, want: QualityBad},
		{total: 119, want: QualityTerrible},
		{total: 60, want: QualityTerrible},
	}

	for _, tt := range tests {
		ivs := withTotal(tt.total)
		assert.Equal(t, tt.total, ivs.Total())
		assert.Equalf(t, tt.want, Classify(ivs), "total %d", tt.total)
	}
}
