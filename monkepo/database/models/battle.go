package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Battle statuses. Resolution happens in the external arena activity; the bot
// only tracks the session row.
const (
	BattleStatusLobby    = "LOBBY"
	BattleStatusActive   = "ACTIVE"
	BattleStatusFinished = "FINISHED"
)

// Battle is a battle-session record handed off to the arena activity.
type Battle struct {
	bun.BaseModel `bun:"table:battles,alias:b"`

	ID        string    `bun:"id,pk"`
	Player1ID string    `bun:"player1_id,notnull"`
	Player2ID string    `bun:"player2_id"`
	ServerID  string    `bun:"server_id"`
	Status    string    `bun:"status,notnull,default:'LOBBY'"`
	StartedAt time.Time `bun:"started_at,notnull,default:current_timestamp"`
}
