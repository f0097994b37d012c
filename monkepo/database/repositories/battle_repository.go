package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/database/models"
)

type BattleRepository interface {
	Create(ctx context.Context, battle *models.Battle) error
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Battle, error)
	SetStatus(ctx context.Context, battleID, status string) error
}

type battleRepository struct {
	db *bun.DB
}

func NewBattleRepository(db *bun.DB) BattleRepository {
	return &battleRepository{db: db}
}

func (r *battleRepository) Create(ctx context.Context, battle *models.Battle) error {
	_, err := r.db.NewInsert().Model(battle).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create battle: %w", err)
	}
	return nil
}

func (r *battleRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]*models.Battle, error) {
	var battles []*models.Battle
	err := r.db.NewSelect().
		Model(&battles).
		Where("player1_id = ? OR player2_id = ?", userID, userID).
		Order("started_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get battles for %s: %w", userID, err)
	}
	return battles, nil
}

func (r *battleRepository) SetStatus(ctx context.Context, battleID, status string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Battle)(nil)).
		Set("status = ?", status).
		Where("id = ?", battleID).
		Exec(ctx)
	return err
}
