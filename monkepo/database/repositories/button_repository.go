package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/database/models"
)

type ButtonRepository interface {
	Upsert(ctx context.Context, button *models.PersistentButton) error
	GetAllActive(ctx context.Context) ([]*models.PersistentButton, error)
	Deactivate(ctx context.Context, id int64) error
}

type buttonRepository struct {
	db *bun.DB
}

func NewButtonRepository(db *bun.DB) ButtonRepository {
	return &buttonRepository{db: db}
}

// Upsert records a persistent button, replacing any previous message for the
// same (server, button type).
func (r *buttonRepository) Upsert(ctx context.Context, button *models.PersistentButton) error {
	button.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(button).
		On("CONFLICT (server_id, button_type) DO UPDATE").
		Set("channel_id = EXCLUDED.channel_id").
		Set("message_id = EXCLUDED.message_id").
		Set("button_data = EXCLUDED.button_data").
		Set("is_active = TRUE").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert persistent button: %w", err)
	}
	return nil
}

func (r *buttonRepository) GetAllActive(ctx context.Context) ([]*models.PersistentButton, error) {
	var buttons []*models.PersistentButton
	err := r.db.NewSelect().
		Model(&buttons).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active buttons: %w", err)
	}
	return buttons, nil
}

func (r *buttonRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.PersistentButton)(nil)).
		Set("is_active = FALSE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
