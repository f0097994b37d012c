package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/database/models"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type TrainerRepository interface {
	Create(ctx context.Context, trainer *models.Trainer) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.Trainer, error)
	Exists(ctx context.Context, discordID string) (bool, error)
	Delete(ctx context.Context, discordID string) error
}

type trainerRepository struct {
	db *bun.DB
}

func NewTrainerRepository(db *bun.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *models.Trainer) error {
	trainer.CreatedAt = time.Now()
	trainer.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(trainer).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}

	slog.Debug("Trainer created",
		slog.String("type", "db"),
		slog.String("operation", "CreateTrainer"),
		slog.String("discord_id", trainer.DiscordID),
		slog.String("username", trainer.Username))
	return nil
}

func (r *trainerRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Trainer, error) {
	trainer := new(models.Trainer)
	err := r.db.NewSelect().
		Model(trainer).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer %s: %w", discordID, err)
	}
	return trainer, nil
}

func (r *trainerRepository) Exists(ctx context.Context, discordID string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Trainer)(nil)).
		Where("discord_id = ?", discordID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check trainer %s: %w", discordID, err)
	}
	return exists, nil
}

func (r *trainerRepository) Delete(ctx context.Context, discordID string) error {
	_, err := r.db.NewDelete().
		Model((*models.Trainer)(nil)).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	return err
}
