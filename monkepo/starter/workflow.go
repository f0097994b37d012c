// Package starter implements the guided starter-acquisition workflow: a
// persisted, time-limited state machine that walks one trainer from species
// choice through stat reveal and naming to team materialization.
//
// Steps: SPECIES_CHOSEN -> NAMED -> confirm/cancel. Each operation is driven
// by a discrete interaction event carrying the pending-session id. Sessions
// expire lazily; an expired row behaves exactly like a missing one.
package starter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/database/repositories"
	"github.com/corebots/monkepo/monkepo/stats"
)

var (
	// ErrAlreadyTrainer rejects a species choice from a user who already has
	// a materialized team.
	ErrAlreadyTrainer = errors.New("user already has a starter team")
	// ErrSessionExpired covers a pending selection that is missing, expired,
	// or already consumed.
	ErrSessionExpired = errors.New("starter selection session expired")
	// ErrSpeciesUnavailable means the chosen species has no reference data.
	ErrSpeciesUnavailable = errors.New("species data unavailable")
)

const (
	// StarterLevel is the level the chosen starter is created and previewed at.
	StarterLevel = 5
	// MaxNicknameLength caps user-supplied nicknames after trimming.
	MaxNicknameLength = 50
)

// commonSpeciesPool are the species ids the two filler creatures are drawn
// from: Caterpie, Weedle, Pidgey, Rattata.
var commonSpeciesPool = []int64{10, 13, 16, 19}

// starterKit is granted atomically with the team.
var starterKit = []struct {
	itemID   string
	itemType string
	quantity int
}{
	{itemID: "POTION", itemType: models.ItemTypeHealing, quantity: 3},
	{itemID: "ANTIDOTE", itemType: models.ItemTypeHealing, quantity: 1},
	{itemID: "POKEBALL", itemType: models.ItemTypePokeball, quantity: 5},
}

// Config tunes the workflow.
type Config struct {
	// SelectionTimeout bounds how long a pending selection stays valid.
	SelectionTimeout time.Duration
}

// StatReveal is handed to the rendering layer after a species choice.
type StatReveal struct {
	PendingID string
	Species   *models.Species
	IVs       stats.IVSet
	Stats     stats.FinalStats
	Quality   stats.Quality
	ExpiresAt time.Time
}

// NicknameResult reports the nickname actually applied (after trimming and
// species-default fallback).
type NicknameResult struct {
	PendingID string
	Nickname  string
	Species   *models.Species
}

// TeamResult describes a materialized starter team.
type TeamResult struct {
	Starter *models.Pokemon
	Commons []*models.Pokemon
	Items   []*models.TrainerItem
}

// Workflow sequences starter acquisition. All persistence goes through the
// injected repositories and all entropy through the injected rand source, so
// there is no ambient global state to reach for.
type Workflow struct {
	trainers repositories.TrainerRepository
	pendings repositories.PendingRepository
	pokemon  repositories.PokemonRepository
	species  repositories.SpeciesRepository
	gen      *stats.Generator
	rng      *rand.Rand
	cfg      Config
	now      func() time.Time
}

func NewWorkflow(
	trainers repositories.TrainerRepository,
	pendings repositories.PendingRepository,
	pokemon repositories.PokemonRepository,
	species repositories.SpeciesRepository,
	rng *rand.Rand,
	cfg Config,
) *Workflow {
	if cfg.SelectionTimeout <= 0 {
		cfg.SelectionTimeout = 10 * time.Minute
	}
	return &Workflow{
		trainers: trainers,
		pendings: pendings,
		pokemon:  pokemon,
		species:  species,
		gen:      stats.NewGenerator(rng),
		rng:      rng,
		cfg:      cfg,
		now:      time.Now,
	}
}

// HasTeam reports whether the user already completed acquisition.
func (w *Workflow) HasTeam(ctx context.Context, userID string) (bool, error) {
	count, err := w.pokemon.CountByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check team: %w", err)
	}
	return count > 0, nil
}

// ChooseSpecies starts (or restarts) acquisition: rolls starter-tier IVs,
// computes the level-5 preview stats, and persists a fresh pending selection
// that supersedes any earlier one for the same (user, server) pair.
func (w *Workflow) ChooseSpecies(ctx context.Context, userID, serverID string, speciesID int64) (*StatReveal, error) {
	hasTeam, err := w.HasTeam(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hasTeam {
		return nil, ErrAlreadyTrainer
	}

	species, err := w.species.GetByID(ctx, speciesID)
	if err != nil {
		if errors.Is(err, repositories.ErrSpeciesNotFound) {
			return nil, ErrSpeciesUnavailable
		}
		return nil, fmt.Errorf("failed to load species %d: %w", speciesID, err)
	}

	ivs := w.gen.Generate(stats.TierStarter)
	expiresAt := w.now().Add(w.cfg.SelectionTimeout)

	pending := &models.PendingSelection{
		ID:        uuid.NewString(),
		UserID:    userID,
		ServerID:  serverID,
		SpeciesID: speciesID,
		IVs:       ivs,
		Step:      models.StepSpeciesChosen,
		ExpiresAt: expiresAt,
	}
	if err := w.pendings.Create(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to persist selection: %w", err)
	}

	slog.Info("Starter species chosen",
		slog.String("type", "cmd"),
		slog.String("user_id", userID),
		slog.String("pending_id", pending.ID),
		slog.String("species", species.Name),
		slog.Int("iv_total", ivs.Total()))

	return &StatReveal{
		PendingID: pending.ID,
		Species:   species,
		IVs:       ivs,
		Stats:     stats.Calculate(species.BaseStats(), ivs, StarterLevel),
		Quality:   stats.Classify(ivs),
		ExpiresAt: expiresAt,
	}, nil
}

// SubmitNickname advances SPECIES_CHOSEN -> NAMED. Whitespace-only input
// falls back to the species' default name; anything longer than the cap is
// truncated.
func (w *Workflow) SubmitNickname(ctx context.Context, pendingID, text string) (*NicknameResult, error) {
	pending, err := w.pendings.GetActive(ctx, pendingID, w.now())
	if err != nil {
		if errors.Is(err, repositories.ErrPendingNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	species, err := w.species.GetByID(ctx, pending.SpeciesID)
	if err != nil {
		return nil, fmt.Errorf("failed to load species %d: %w", pending.SpeciesID, err)
	}

	nickname := strings.TrimSpace(text)
	if nickname == "" {
		nickname = species.Name
	}
	if runes := []rune(nickname); len(runes) > MaxNicknameLength {
		nickname = string(runes[:MaxNicknameLength])
	}

	if err := w.pendings.SetNickname(ctx, pendingID, nickname); err != nil {
		if errors.Is(err, repositories.ErrPendingNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to store nickname: %w", err)
	}

	return &NicknameResult{PendingID: pendingID, Nickname: nickname, Species: species}, nil
}

// Confirm materializes the team: the chosen starter at level 5 in slot 1, two
// commons at level 3-4 in slots 2-3 with fresh common-tier IVs, and the
// starter item kit. The whole unit commits in one transaction and consumes
// the pending row.
func (w *Workflow) Confirm(ctx context.Context, pendingID string) (*TeamResult, error) {
	now := w.now()

	pending, err := w.pendings.GetActive(ctx, pendingID, now)
	if err != nil {
		if errors.Is(err, repositories.ErrPendingNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	species, err := w.species.GetByID(ctx, pending.SpeciesID)
	if err != nil {
		if errors.Is(err, repositories.ErrSpeciesNotFound) {
			return nil, ErrSpeciesUnavailable
		}
		return nil, fmt.Errorf("failed to load species %d: %w", pending.SpeciesID, err)
	}

	nickname := pending.Nickname
	if nickname == "" {
		nickname = species.Name
	}

	starterMon := &models.Pokemon{
		UserID:          pending.UserID,
		SpeciesID:       pending.SpeciesID,
		Nickname:        nickname,
		Level:           StarterLevel,
		IsStarter:       true,
		IsActive:        true,
		TeamSlot:        1,
		StatusCondition: models.StatusHealthy,
		OriginalTrainer: pending.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	starterMon.SetIVs(pending.IVs)

	commons := make([]*models.Pokemon, 0, 2)
	for slot := 2; slot <= 3; slot++ {
		common := &models.Pokemon{
			UserID:          pending.UserID,
			SpeciesID:       commonSpeciesPool[w.rng.Intn(len(commonSpeciesPool))],
			Level:           3 + w.rng.Intn(2),
			IsActive:        true,
			TeamSlot:        slot,
			StatusCondition: models.StatusHealthy,
			OriginalTrainer: pending.UserID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		common.SetIVs(w.gen.Generate(stats.TierCommon))
		commons = append(commons, common)
	}

	items := make([]*models.TrainerItem, 0, len(starterKit))
	for _, kit := range starterKit {
		items = append(items, &models.TrainerItem{
			UserID:     pending.UserID,
			ItemID:     kit.itemID,
			ItemType:   kit.itemType,
			Quantity:   kit.quantity,
			ObtainedAt: now,
			UpdatedAt:  now,
		})
	}

	team := &repositories.StarterTeam{
		Starter:   starterMon,
		Commons:   commons,
		Items:     items,
		PendingID: pendingID,
	}
	if err := w.pokemon.CreateStarterTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to materialize team: %w", err)
	}

	starterMon.Species = species
	for _, common := range commons {
		// Best effort, display-only. The rows are already persisted.
		if sp, err := w.species.GetByID(ctx, common.SpeciesID); err == nil {
			common.Species = sp
		}
	}

	slog.Info("Starter team materialized",
		slog.String("type", "cmd"),
		slog.String("user_id", pending.UserID),
		slog.String("starter", species.Name),
		slog.String("nickname", nickname))

	return &TeamResult{Starter: starterMon, Commons: commons, Items: items}, nil
}

// Cancel discards the session and returns the user to species choice. A
// session that is already gone yields ErrSessionExpired rather than a crash;
// no IVs survive a cancel.
func (w *Workflow) Cancel(ctx context.Context, pendingID string) error {
	deleted, err := w.pendings.Delete(ctx, pendingID)
	if err != nil {
		return fmt.Errorf("failed to cancel selection: %w", err)
	}
	if !deleted {
		return ErrSessionExpired
	}
	return nil
}
