package starter

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/database/repositories"
	"github.com/corebots/monkepo/monkepo/database/repositories/mock"
	"github.com/corebots/monkepo/monkepo/stats"
)

func bulbasaur() *models.Species {
	return &models.Species{
		ID:            1,
		PokedexNumber: 1,
		Name:          "Bulbasaur",
		Type1:         "GRASS",
		Type2:         "POISON",
		BaseHP:        45,
		BaseAttack:    49,
		BaseDefense:   49,
		BaseSpAttack:  65,
		BaseSpDefense: 65,
		BaseSpeed:     45,
		IsStarter:     true,
	}
}

type workflowFixture struct {
	trainers *mock.MockTrainerRepository
	pendings *mock.MockPendingRepository
	pokemon  *mock.MockPokemonRepository
	species  *mock.MockSpeciesRepository
	workflow *Workflow
	now      time.Time
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	ctrl := gomock.NewController(t)
	f := &workflowFixture{
		trainers: mock.NewMockTrainerRepository(ctrl),
		pendings: mock.NewMockPendingRepository(ctrl),
		pokemon:  mock.NewMockPokemonRepository(ctrl),
		species:  mock.NewMockSpeciesRepository(ctrl),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.workflow = NewWorkflow(
		f.trainers, f.pendings, f.pokemon, f.species,
		rand.New(rand.NewSource(42)),
		Config{SelectionTimeout: 10 * time.Minute},
	)
	f.workflow.now = func() time.Time { return f.now }
	return f
}

func TestChooseSpecies_RevealsStatsAndPersists(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pokemon.EXPECT().CountByUserID(ctx, "user1").Return(0, nil)
	f.species.EXPECT().GetByID(ctx, int64(1)).Return(bulbasaur(), nil)

	var stored *models.PendingSelection
	f.pendings.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.PendingSelection) error {
			stored = p
			return nil
		})

	reveal, err := f.workflow.ChooseSpecies(ctx, "user1", "server1", 1)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, stored.ID, reveal.PendingID)
	assert.NotEmpty(t, reveal.PendingID)
	assert.Equal(t, "user1", stored.UserID)
	assert.Equal(t, "server1", stored.ServerID)
	assert.Equal(t, models.StepSpeciesChosen, stored.Step)
	assert.Equal(t, f.now.Add(10*time.Minute), stored.ExpiresAt)

	for _, iv := range []int{reveal.IVs.HP, reveal.IVs.Attack, reveal.IVs.Defense,
		reveal.IVs.SpAttack, reveal.IVs.SpDefense, reveal.IVs.Speed} {
		assert.GreaterOrEqual(t, iv, 20)
		assert.LessOrEqual(t, iv, 31)
	}
	assert.Equal(t, stats.Calculate(bulbasaur().BaseStats(), reveal.IVs, StarterLevel), reveal.Stats)
	assert.Equal(t, stats.Classify(reveal.IVs), reveal.Quality)
}

func TestChooseSpecies_AlreadyTrainer(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pokemon.EXPECT().CountByUserID(ctx, "user1").Return(3, nil)

	_, err := f.workflow.ChooseSpecies(ctx, "user1", "server1", 1)
	assert.ErrorIs(t, err, ErrAlreadyTrainer)
}

func TestChooseSpecies_UnknownSpecies(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pokemon.EXPECT().CountByUserID(ctx, "user1").Return(0, nil)
	f.species.EXPECT().GetByID(ctx, int64(999)).Return(nil, repositories.ErrSpeciesNotFound)

	_, err := f.workflow.ChooseSpecies(ctx, "user1", "server1", 999)
	assert.ErrorIs(t, err, ErrSpeciesUnavailable)
}

func TestSubmitNickname_TrimsAndStores(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	pending := &models.PendingSelection{
		ID:        "pending-1",
		UserID:    "user1",
		ServerID:  "server1",
		SpeciesID: 1,
		Step:      models.StepSpeciesChosen,
		ExpiresAt: f.now.Add(5 * time.Minute),
	}
	f.pendings.EXPECT().GetActive(ctx, "pending-1", f.now).Return(pending, nil)
	f.species.EXPECT().GetByID(ctx, int64(1)).Return(bulbasaur(), nil)
	f.pendings.EXPECT().SetNickname(ctx, "pending-1", "Sprout").Return(nil)

	result, err := f.workflow.SubmitNickname(ctx, "pending-1", "  Sprout  ")
	require.NoError(t, err)
	assert.Equal(t, "Sprout", result.Nickname)
}

func TestSubmitNickname_WhitespaceFallsBackToSpeciesName(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	pending := &models.PendingSelection{ID: "pending-1", SpeciesID: 1, ExpiresAt: f.now.Add(time.Minute)}
	f.pendings.EXPECT().GetActive(ctx, "pending-1", f.now).Return(pending, nil)
	f.species.EXPECT().GetByID(ctx, int64(1)).Return(bulbasaur(), nil)
	f.pendings.EXPECT().SetNickname(ctx, "pending-1", "Bulbasaur").Return(nil)

	result, err := f.workflow.SubmitNickname(ctx, "pending-1", "   \t  ")
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", result.Nickname)
}

func TestSubmitNickname_TruncatesLongInput(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	long := strings.Repeat("a", 60)

	pending := &models.PendingSelection{ID: "pending-1", SpeciesID: 1, ExpiresAt: f.now.Add(time.Minute)}
	f.pendings.EXPECT().GetActive(ctx, "pending-1", f.now).Return(pending, nil)
	f.species.EXPECT().GetByID(ctx, int64(1)).Return(bulbasaur(), nil)
	f.pendings.EXPECT().SetNickname(ctx, "pending-1", long[:MaxNicknameLength]).Return(nil)

	result, err := f.workflow.SubmitNickname(ctx, "pending-1", long)
	require.NoError(t, err)
	assert.Len(t, result.Nickname, MaxNicknameLength)
}

func TestSubmitNickname_ExpiredSession(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pendings.EXPECT().GetActive(ctx, "gone", f.now).Return(nil, repositories.ErrPendingNotFound)

	_, err := f.workflow.SubmitNickname(ctx, "gone", "Sprout")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestConfirm_MaterializesTeamAtomically(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	ivs := stats.IVSet{HP: 25, Attack: 22, Defense: 28, SpAttack: 31, SpDefense: 20, Speed: 27}
	pending := &models.PendingSelection{
		ID:        "pending-1",
		UserID:    "user1",
		ServerID:  "server1",
		SpeciesID: 1,
		IVs:       ivs,
		Nickname:  "Sprout",
		Step:      models.StepNamed,
		ExpiresAt: f.now.Add(5 * time.Minute),
	}
	f.pendings.EXPECT().GetActive(ctx, "pending-1", f.now).Return(pending, nil)
	f.species.EXPECT().GetByID(ctx, int64(1)).Return(bulbasaur(), nil)
	f.species.EXPECT().GetByID(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (*models.Species, error) {
			return &models.Species{ID: id, Name: "Caterpie", Type1: "BUG"}, nil
		}).AnyTimes()

	var created *repositories.StarterTeam
	f.pokemon.EXPECT().
		CreateStarterTeam(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, team *repositories.StarterTeam) error {
			created = team
			return nil
		})

	result, err := f.workflow.Confirm(ctx, "pending-1")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "pending-1", created.PendingID)

	starter := result.Starter
	assert.True(t, starter.IsStarter)
	assert.Equal(t, "Sprout", starter.Nickname)
	assert.Equal(t, StarterLevel, starter.Level)
	assert.Equal(t, 1, starter.TeamSlot)
	assert.Equal(t, ivs, starter.IVs())
	assert.Equal(t, "user1", starter.OriginalTrainer)

	require.Len(t, result.Commons, 2)
	for i, common := range result.Commons {
		assert.Equal(t, i+2, common.TeamSlot)
		assert.GreaterOrEqual(t, common.Level, 3)
		assert.LessOrEqual(t, common.Level, 4)
		assert.Contains(t, []int64{10, 13, 16, 19}, common.SpeciesID)
		assert.False(t, common.IsStarter)
		require.NotNil(t, common.Species)
		total := common.IVs().Total()
		assert.GreaterOrEqual(t, total, 60)
		assert.LessOrEqual(t, total, 150)
	}

	require.Len(t, result.Items, 3)
	quantities := map[string]int{}
	for _, item := range result.Items {
		quantities[item.ItemID] = item.Quantity
		assert.Equal(t, "user1", item.UserID)
	}
	assert.Equal(t, 3, quantities["POTION"])
	assert.Equal(t, 1, quantities["ANTIDOTE"])
	assert.Equal(t, 5, quantities["POKEBALL"])
}

func TestConfirm_UnnamedFallsBackToSpeciesName(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	pending := &models.PendingSelection{
		ID:        "pending-1",
		UserID:    "user1",
		SpeciesID: 1,
		Step:      models.StepSpeciesChosen,
		ExpiresAt: f.now.Add(time.Minute),
	}
	f.pendings.EXPECT().GetActive(ctx, "pending-1", f.now).Return(pending, nil)
	f.species.EXPECT().GetByID(ctx, int64(1)).Return(bulbasaur(), nil)
	f.species.EXPECT().GetByID(ctx, gomock.Any()).Return(&models.Species{}, nil).AnyTimes()
	f.pokemon.EXPECT().CreateStarterTeam(ctx, gomock.Any()).Return(nil)

	result, err := f.workflow.Confirm(ctx, "pending-1")
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", result.Starter.Nickname)
}

func TestConfirm_ExpiredSession(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pendings.EXPECT().GetActive(ctx, "gone", f.now).Return(nil, repositories.ErrPendingNotFound)

	_, err := f.workflow.Confirm(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestCancel(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pendings.EXPECT().Delete(ctx, "pending-1").Return(true, nil)
	require.NoError(t, f.workflow.Cancel(ctx, "pending-1"))

	f.pendings.EXPECT().Delete(ctx, "pending-1").Return(false, nil)
	assert.ErrorIs(t, f.workflow.Cancel(ctx, "pending-1"), ErrSessionExpired)
}

func TestHasTeam(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	f.pokemon.EXPECT().CountByUserID(ctx, "user1").Return(3, nil)
	has, err := f.workflow.HasTeam(ctx, "user1")
	require.NoError(t, err)
	assert.True(t, has)

	f.pokemon.EXPECT().CountByUserID(ctx, "user2").Return(0, nil)
	has, err = f.workflow.HasTeam(ctx, "user2")
	require.NoError(t, err)
	assert.False(t, has)
}
