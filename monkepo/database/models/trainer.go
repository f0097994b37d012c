package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Trainer is a user who completed (or is completing) the starter journey.
// The row is created when the journey button is pressed; the team comes later.
type Trainer struct {
	bun.BaseModel `bun:"table:trainers,alias:t"`

	ID            int64     `bun:"id,pk,autoincrement"`
	DiscordID     string    `bun:"discord_id,notnull,unique"`
	Username      string    `bun:"username,notnull"`
	Discriminator string    `bun:"discriminator,notnull,default:'0000'"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}
