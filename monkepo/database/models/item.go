package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Item types.
const (
	ItemTypeHealing  = "HEALING"
	ItemTypePokeball = "POKEBALL"
)

// Item is reference data for a grantable item.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID          string    `bun:"id,pk"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description"`
	Emoji       string    `bun:"emoji,notnull"`
	Type        string    `bun:"type,notnull"`
	MaxStack    int       `bun:"max_stack,notnull,default:99"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// TrainerItem is an item grant owned by a trainer.
type TrainerItem struct {
	bun.BaseModel `bun:"table:trainer_items,alias:ti"`

	UserID     string    `bun:"user_id,pk"`
	ItemID     string    `bun:"item_id,pk"`
	ItemType   string    `bun:"item_type,notnull"`
	Quantity   int       `bun:"quantity,notnull"`
	ObtainedAt time.Time `bun:"obtained_at,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Relations
	Item *Item `bun:"rel:has-one,join:item_id=id"`
}
