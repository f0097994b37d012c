// Package battle tracks battle sessions handed off to the external arena
// activity. The bot creates the session row and the launch link; resolution
// happens inside the activity, not here.
package battle

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/database/repositories"
	"github.com/corebots/monkepo/monkepo/stats"
)

// MinTeamSize is the team size required before a trainer may battle.
const MinTeamSize = 3

// Session is the in-memory mirror of an active battle row. The row is the
// durable record; the mirror carries transient arena state.
type Session struct {
	ID        string
	Player1ID string
	Player2ID string
	ServerID  string
	Status    string
	Turn      int
	CreatedAt time.Time
}

// TeamMember pairs a persisted creature with its computed battle numbers.
type TeamMember struct {
	Pokemon   *models.Pokemon
	Stats     stats.FinalStats
	CurrentHP int
}

// Manager creates battle sessions and assembles battle-ready teams.
type Manager struct {
	battles  repositories.BattleRepository
	pokemon  repositories.PokemonRepository
	arenaURL string

	sessions sync.Map // battle id -> *Session
}

func NewManager(battles repositories.BattleRepository, pokemon repositories.PokemonRepository, arenaURL string) *Manager {
	return &Manager{
		battles:  battles,
		pokemon:  pokemon,
		arenaURL: arenaURL,
	}
}

// CreateSession persists a LOBBY battle row and mirrors it in memory.
// player2ID is empty for practice mode.
func (m *Manager) CreateSession(ctx context.Context, player1ID, player2ID, serverID string) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		Player1ID: player1ID,
		Player2ID: player2ID,
		ServerID:  serverID,
		Status:    models.BattleStatusLobby,
		Turn:      1,
		CreatedAt: now,
	}

	row := &models.Battle{
		ID:        session.ID,
		Player1ID: player1ID,
		Player2ID: player2ID,
		ServerID:  serverID,
		Status:    models.BattleStatusLobby,
		StartedAt: now,
	}
	if err := m.battles.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create battle session: %w", err)
	}

	m.sessions.Store(session.ID, session)

	slog.Info("Battle session created",
		slog.String("type", "cmd"),
		slog.String("battle_id", session.ID),
		slog.String("player1", player1ID))

	return session, nil
}

// GetSession returns the in-memory session, if it is still live.
func (m *Manager) GetSession(battleID string) (*Session, bool) {
	v, ok := m.sessions.Load(battleID)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// EndSession marks the row FINISHED and drops the mirror.
func (m *Manager) EndSession(ctx context.Context, battleID string) error {
	m.sessions.Delete(battleID)
	if err := m.battles.SetStatus(ctx, battleID, models.BattleStatusFinished); err != nil {
		return fmt.Errorf("failed to finish battle %s: %w", battleID, err)
	}
	return nil
}

// GetUserTeam loads the user's active team with final stats computed from
// stored IVs. Current HP defaults to the computed maximum when the creature
// has never taken damage.
func (m *Manager) GetUserTeam(ctx context.Context, userID string) ([]*TeamMember, error) {
	team, err := m.pokemon.GetTeam(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team for %s: %w", userID, err)
	}

	members := make([]*TeamMember, 0, len(team))
	for _, mon := range team {
		if mon.Species == nil {
			return nil, fmt.Errorf("pokemon %d has no species data", mon.ID)
		}
		final := stats.Calculate(mon.Species.BaseStats(), mon.IVs(), mon.Level)
		currentHP := final.HP
		if mon.CurrentHP != nil {
			currentHP = *mon.CurrentHP
		}
		members = append(members, &TeamMember{
			Pokemon:   mon,
			Stats:     final,
			CurrentHP: currentHP,
		})
	}
	return members, nil
}

// ArenaURL builds the activity launch link for a session.
func (m *Manager) ArenaURL(battleID, userID, mode string) string {
	params := url.Values{}
	params.Set("battle_id", battleID)
	params.Set("user_id", userID)
	params.Set("mode", mode)
	return m.arenaURL + "?" + params.Encode()
}

// Recent lists the user's latest battle rows.
func (m *Manager) Recent(ctx context.Context, userID string, limit int) ([]*models.Battle, error) {
	return m.battles.GetRecentByUser(ctx, userID, limit)
}
