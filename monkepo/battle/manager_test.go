package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/database/repositories/mock"
	"github.com/corebots/monkepo/monkepo/stats"
)

func TestCreateSession_PersistsLobbyRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	battles := mock.NewMockBattleRepository(ctrl)
	pokemon := mock.NewMockPokemonRepository(ctrl)
	m := NewManager(battles, pokemon, "https://arena.example.com/battle")

	var row *models.Battle
	battles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Battle) error {
			row = b
			return nil
		})

	session, err := m.CreateSession(context.Background(), "user1", "", "server1")
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.Equal(t, session.ID, row.ID)
	assert.Equal(t, models.BattleStatusLobby, row.Status)
	assert.Equal(t, "user1", row.Player1ID)
	assert.Empty(t, row.Player2ID)
	assert.Equal(t, 1, session.Turn)

	got, ok := m.GetSession(session.ID)
	require.True(t, ok)
	assert.Equal(t, session, got)
}

func TestEndSession_DropsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	battles := mock.NewMockBattleRepository(ctrl)
	pokemon := mock.NewMockPokemonRepository(ctrl)
	m := NewManager(battles, pokemon, "https://arena.example.com/battle")

	battles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	session, err := m.CreateSession(context.Background(), "user1", "user2", "server1")
	require.NoError(t, err)

	battles.EXPECT().SetStatus(gomock.Any(), session.ID, models.BattleStatusFinished).Return(nil)
	require.NoError(t, m.EndSession(context.Background(), session.ID))

	_, ok := m.GetSession(session.ID)
	assert.False(t, ok)
}

func TestGetUserTeam_ComputesFinalStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	battles := mock.NewMockBattleRepository(ctrl)
	pokemon := mock.NewMockPokemonRepository(ctrl)
	m := NewManager(battles, pokemon, "https://arena.example.com/battle")

	species := &models.Species{
		ID: 1, Name: "Bulbasaur", Type1: "GRASS",
		BaseHP: 45, BaseAttack: 49, BaseDefense: 49,
		BaseSpAttack: 65, BaseSpDefense: 65, BaseSpeed: 45,
	}
	hurt := 12
	fresh := &models.Pokemon{ID: 1, Level: 5, Species: species, TeamSlot: 1}
	fresh.SetIVs(stats.IVSet{HP: 20, Attack: 20, Defense: 20, SpAttack: 20, SpDefense: 20, Speed: 20})
	damaged := &models.Pokemon{ID: 2, Level: 5, Species: species, TeamSlot: 2, CurrentHP: &hurt}
	damaged.SetIVs(stats.IVSet{HP: 20, Attack: 20, Defense: 20, SpAttack: 20, SpDefense: 20, Speed: 20})

	pokemon.EXPECT().GetTeam(gomock.Any(), "user1").Return([]*models.Pokemon{fresh, damaged}, nil)

	team, err := m.GetUserTeam(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, team, 2)

	expected := stats.Calculate(species.BaseStats(), fresh.IVs(), 5)
	assert.Equal(t, expected, team[0].Stats)
	// Untouched creature starts at max HP.
	assert.Equal(t, expected.HP, team[0].CurrentHP)
	// Damaged creature keeps its stored HP.
	assert.Equal(t, 12, team[1].CurrentHP)
}

func TestArenaURL(t *testing.T) {
	m := NewManager(nil, nil, "https://arena.example.com/battle")

	got := m.ArenaURL("battle-1", "user1", "practice")
	assert.Equal(t, "https://arena.example.com/battle?battle_id=battle-1&mode=practice&user_id=user1", got)
}
