package models

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/stats"
)

// Status conditions persisted on a creature.
const (
	StatusHealthy   = "HEALTHY"
	StatusBurn      = "BURN"
	StatusPoison    = "POISON"
	StatusParalysis = "PARALYSIS"
	StatusSleep     = "SLEEP"
)

// Pokemon is an owned creature. IVs are fixed at acquisition; final stats are
// recomputed from species base stats on every read. Only current_hp may
// diverge from the computed maximum.
type Pokemon struct {
	bun.BaseModel `bun:"table:pokemon,alias:p"`

	ID              int64     `bun:"id,pk,autoincrement"`
	UserID          string    `bun:"user_id,notnull"`
	SpeciesID       int64     `bun:"species_id,notnull"`
	Nickname        string    `bun:"nickname"`
	Level           int       `bun:"level,notnull,default:1"`
	Experience      int64     `bun:"experience,notnull,default:0"`
	IsStarter       bool      `bun:"is_starter,notnull,default:false"`
	IsActive        bool      `bun:"is_active,notnull,default:true"`
	TeamSlot        int       `bun:"team_slot,notnull"`
	HPIV            int       `bun:"hp_iv,notnull"`
	AttackIV        int       `bun:"attack_iv,notnull"`
	DefenseIV       int       `bun:"defense_iv,notnull"`
	SpAttackIV      int       `bun:"sp_attack_iv,notnull"`
	SpDefenseIV     int       `bun:"sp_defense_iv,notnull"`
	SpeedIV         int       `bun:"speed_iv,notnull"`
	CurrentHP       *int      `bun:"current_hp"`
	StatusCondition string    `bun:"status_condition,notnull,default:'HEALTHY'"`
	OriginalTrainer string    `bun:"original_trainer,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Relations
	Species *Species `bun:"rel:belongs-to,join:species_id=id"`
}

// IVs assembles the stored columns back into a stat engine IVSet.
func (p *Pokemon) IVs() stats.IVSet {
	return stats.IVSet{
		HP:        p.HPIV,
		Attack:    p.AttackIV,
		Defense:   p.DefenseIV,
		SpAttack:  p.SpAttackIV,
		SpDefense: p.SpDefenseIV,
		Speed:     p.SpeedIV,
	}
}

// SetIVs spreads an IVSet across the per-stat columns.
func (p *Pokemon) SetIVs(ivs stats.IVSet) {
	p.HPIV = ivs.HP
	p.AttackIV = ivs.Attack
	p.DefenseIV = ivs.Defense
	p.SpAttackIV = ivs.SpAttack
	p.SpDefenseIV = ivs.SpDefense
	p.SpeedIV = ivs.Speed
}

// DisplayName falls back to the species name when no nickname is set.
func (p *Pokemon) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	if p.Species != nil {
		return p.Species.Name
	}
	return "???"
}
