package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Server holds per-guild configuration: where the journey button lives, where
// new-trainer broadcasts go, and which language the guild speaks.
type Server struct {
	bun.BaseModel `bun:"table:servers,alias:sv"`

	ID               string    `bun:"id,pk"`
	Name             string    `bun:"name,notnull"`
	StarterChannelID string    `bun:"starter_channel_id"`
	UpdatesChannelID string    `bun:"updates_channel_id"`
	Language         string    `bun:"language,notnull,default:'en'"`
	CreatedAt        time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt        time.Time `bun:"updated_at,notnull"`
}
