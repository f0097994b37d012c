package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/database/models"
)

// StarterTeam is the atomic unit materialized when a starter selection is
// confirmed: one starter, two commons, the item kit, and the pending row that
// gets consumed. It commits entirely or not at all.
type StarterTeam struct {
	Starter   *models.Pokemon
	Commons   []*models.Pokemon
	Items     []*models.TrainerItem
	PendingID string
}

type PokemonRepository interface {
	GetTeam(ctx context.Context, userID string) ([]*models.Pokemon, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	CreateStarterTeam(ctx context.Context, team *StarterTeam) error
	UpdateCurrentHP(ctx context.Context, pokemonID int64, hp int) error
}

type pokemonRepository struct {
	db *bun.DB
}

func NewPokemonRepository(db *bun.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

// GetTeam returns the user's active creatures in slot order with species
// reference data joined in.
func (r *pokemonRepository) GetTeam(ctx context.Context, userID string) ([]*models.Pokemon, error) {
	var team []*models.Pokemon
	err := r.db.NewSelect().
		Model(&team).
		Relation("Species").
		Where("p.user_id = ? AND p.is_active = TRUE", userID).
		Order("team_slot ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team for %s: %w", userID, err)
	}
	return team, nil
}

func (r *pokemonRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.Pokemon)(nil)).
		Where("user_id = ? AND is_active = TRUE", userID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pokemon for %s: %w", userID, err)
	}
	return count, nil
}

// CreateStarterTeam inserts the starter, the commons and the item grants and
// deletes the consumed pending row inside a single transaction, so a failure
// partway leaves no partial team behind.
func (r *pokemonRepository) CreateStarterTeam(ctx context.Context, team *StarterTeam) error {
	start := time.Now()

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(team.Starter).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert starter: %w", err)
		}

		for _, common := range team.Commons {
			if _, err := tx.NewInsert().Model(common).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert common pokemon: %w", err)
			}
		}

		for _, item := range team.Items {
			if _, err := tx.NewInsert().Model(item).Exec(ctx); err != nil {
				return fmt.Errorf("failed to grant item %s: %w", item.ItemID, err)
			}
		}

		if _, err := tx.NewDelete().
			Model((*models.PendingSelection)(nil)).
			Where("id = ?", team.PendingID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to consume pending selection: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Starter team created",
		slog.String("type", "db"),
		slog.String("operation", "CreateStarterTeam"),
		slog.String("user_id", team.Starter.UserID),
		slog.Int("commons", len(team.Commons)),
		slog.Int("items", len(team.Items)),
		slog.Duration("took", time.Since(start)))
	return nil
}

func (r *pokemonRepository) UpdateCurrentHP(ctx context.Context, pokemonID int64, hp int) error {
	_, err := r.db.NewUpdate().
		Model((*models.Pokemon)(nil)).
		Set("current_hp = ?", hp).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", pokemonID).
		Exec(ctx)
	return err
}
