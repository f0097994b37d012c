package models

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// Button types stored in persistent_buttons.
const (
	ButtonTypeStarter = "STARTER_SELECTION"
)

// PersistentButton records a long-lived component message so it can be
// revalidated after a restart. Rows whose message is gone get deactivated.
type PersistentButton struct {
	bun.BaseModel `bun:"table:persistent_buttons,alias:pb"`

	ID         int64           `bun:"id,pk,autoincrement"`
	ServerID   string          `bun:"server_id,notnull,unique:uq_button_server_type"`
	ChannelID  string          `bun:"channel_id,notnull"`
	MessageID  string          `bun:"message_id,notnull"`
	ButtonType string          `bun:"button_type,notnull,unique:uq_button_server_type"`
	ButtonData json.RawMessage `bun:"button_data,type:jsonb"`
	IsActive   bool            `bun:"is_active,notnull,default:true"`
	CreatedAt  time.Time       `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt  time.Time       `bun:"updated_at,notnull,default:current_timestamp"`
}
