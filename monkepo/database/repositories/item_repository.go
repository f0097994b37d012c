package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/database/models"
)

type ItemRepository interface {
	EnsureDefaults(ctx context.Context) error
	GetTrainerItems(ctx context.Context, userID string) ([]*models.TrainerItem, error)
}

type itemRepository struct {
	db *bun.DB
}

func NewItemRepository(db *bun.DB) ItemRepository {
	return &itemRepository{db: db}
}

// defaultItems is the item catalog the starter kit draws from.
var defaultItems = []*models.Item{
	{ID: "POTION", Name: "Potion", Description: "Restores 20 HP", Emoji: "🧪", Type: models.ItemTypeHealing},
	{ID: "ANTIDOTE", Name: "Antidote", Description: "Cures poison", Emoji: "💊", Type: models.ItemTypeHealing},
	{ID: "POKEBALL", Name: "Poke Ball", Description: "Catches wild pokemon", Emoji: "⚪", Type: models.ItemTypePokeball},
}

func (r *itemRepository) EnsureDefaults(ctx context.Context) error {
	for _, item := range defaultItems {
		_, err := r.db.NewInsert().
			Model(item).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed item %s: %w", item.ID, err)
		}
	}
	return nil
}

func (r *itemRepository) GetTrainerItems(ctx context.Context, userID string) ([]*models.TrainerItem, error) {
	var items []*models.TrainerItem
	err := r.db.NewSelect().
		Model(&items).
		Relation("Item").
		Where("ti.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for %s: %w", userID, err)
	}
	return items, nil
}
