// Package stats implements Pokemon stat math: IV generation, the final-stat
// formula and IV quality classification. Everything here is pure except for
// the Generator, which consumes entropy from an injected rand source.
package stats

// BaseStats holds the six species base values. Reference data, immutable.
type BaseStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// FinalStats are derived from (BaseStats, IVSet, level) on demand and are
// never the stored source of truth. Only current HP is persisted.
type FinalStats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// Calculate computes final stats at the given level using the official
// formulas. HP: floor((2*base+iv)*level/100) + level + 10. Every other stat:
// floor((2*base+iv)*level/100) + 5. Integer division truncates; the remainder
// is discarded, never rounded, so parity with any future battle math holds.
func Calculate(base BaseStats, ivs IVSet, level int) FinalStats {
	return FinalStats{
		HP:        (2*base.HP+ivs.HP)*level/100 + level + 10,
		Attack:    (2*base.Attack+ivs.Attack)*level/100 + 5,
		Defense:   (2*base.Defense+ivs.Defense)*level/100 + 5,
		SpAttack:  (2*base.SpAttack+ivs.SpAttack)*level/100 + 5,
		SpDefense: (2*base.SpDefense+ivs.SpDefense)*level/100 + 5,
		Speed:     (2*base.Speed+ivs.Speed)*level/100 + 5,
	}
}
