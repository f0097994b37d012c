package models

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/stats"
)

// Starter acquisition steps. The workflow advances a PendingSelection through
// these until it is materialized into a team or discarded.
const (
	StepSpeciesChosen = "SPECIES_CHOSEN"
	StepNamed         = "NAMED"
	StepConfirmed     = "CONFIRMED"
)

// PendingSelection is a resumable, time-limited acquisition session. At most
// one active row exists per (user, server); a new choice supersedes the old
// one. Expired rows are treated as absent by every lookup.
type PendingSelection struct {
	bun.BaseModel `bun:"table:pending_selections,alias:ps"`

	ID        string       `bun:"id,pk"`
	UserID    string       `bun:"user_id,notnull,unique:uq_pending_user_server"`
	ServerID  string       `bun:"server_id,notnull,unique:uq_pending_user_server"`
	SpeciesID int64        `bun:"species_id,notnull"`
	IVs       stats.IVSet  `bun:"generated_ivs,type:jsonb"`
	Nickname  string       `bun:"nickname"`
	Step      string       `bun:"step,notnull,default:'SPECIES_CHOSEN'"`
	ExpiresAt time.Time    `bun:"expires_at,notnull"`
	CreatedAt time.Time    `bun:"created_at,notnull,default:current_timestamp"`
}

// Expired reports whether the session has passed its deadline at the given
// instant. Enforcement is lazy; nothing sweeps rows on a timer.
func (ps *PendingSelection) Expired(now time.Time) bool {
	return !now.Before(ps.ExpiresAt)
}
