package models

import (
	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/stats"
)

// Species is immutable reference data: base stats and typing per dex entry.
type Species struct {
	bun.BaseModel `bun:"table:species,alias:s"`

	ID            int64  `bun:"id,pk"`
	PokedexNumber int    `bun:"pokedex_number,notnull"`
	Name          string `bun:"name,notnull"`
	Type1         string `bun:"type1,notnull"`
	Type2         string `bun:"type2"`
	BaseHP        int    `bun:"base_hp,notnull"`
	BaseAttack    int    `bun:"base_attack,notnull"`
	BaseDefense   int    `bun:"base_defense,notnull"`
	BaseSpAttack  int    `bun:"base_sp_attack,notnull"`
	BaseSpDefense int    `bun:"base_sp_defense,notnull"`
	BaseSpeed     int    `bun:"base_speed,notnull"`
	IsStarter     bool   `bun:"is_starter,notnull,default:false"`
}

// BaseStats adapts the row into the stat engine's value type.
func (s *Species) BaseStats() stats.BaseStats {
	return stats.BaseStats{
		HP:        s.BaseHP,
		Attack:    s.BaseAttack,
		Defense:   s.BaseDefense,
		SpAttack:  s.BaseSpAttack,
		SpDefense: s.BaseSpDefense,
		Speed:     s.BaseSpeed,
	}
}
