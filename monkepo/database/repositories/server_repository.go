package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/database/models"
)

type ServerRepository interface {
	Upsert(ctx context.Context, server *models.Server) error
	Get(ctx context.Context, serverID string) (*models.Server, error)
	GetLanguage(ctx context.Context, serverID string) string
	SetStarterChannel(ctx context.Context, serverID, channelID string) error
	SetUpdatesChannel(ctx context.Context, serverID, channelID string) error
	SetLanguage(ctx context.Context, serverID, language string) error
}

type serverRepository struct {
	db *bun.DB
}

func NewServerRepository(db *bun.DB) ServerRepository {
	return &serverRepository{db: db}
}

func (r *serverRepository) Upsert(ctx context.Context, server *models.Server) error {
	server.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(server).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert server %s: %w", server.ID, err)
	}
	return nil
}

func (r *serverRepository) Get(ctx context.Context, serverID string) (*models.Server, error) {
	server := new(models.Server)
	err := r.db.NewSelect().
		Model(server).
		Where("id = ?", serverID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get server %s: %w", serverID, err)
	}
	return server, nil
}

// GetLanguage never fails: unknown servers speak English.
func (r *serverRepository) GetLanguage(ctx context.Context, serverID string) string {
	server, err := r.Get(ctx, serverID)
	if err != nil || server.Language == "" {
		return "en"
	}
	return server.Language
}

func (r *serverRepository) SetStarterChannel(ctx context.Context, serverID, channelID string) error {
	return r.setColumn(ctx, serverID, "starter_channel_id", channelID)
}

func (r *serverRepository) SetUpdatesChannel(ctx context.Context, serverID, channelID string) error {
	return r.setColumn(ctx, serverID, "updates_channel_id", channelID)
}

func (r *serverRepository) SetLanguage(ctx context.Context, serverID, language string) error {
	return r.setColumn(ctx, serverID, "language", language)
}

func (r *serverRepository) setColumn(ctx context.Context, serverID, column, value string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Server)(nil)).
		Set(column+" = ?", value).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", serverID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set %s for server %s: %w", column, serverID, err)
	}
	return nil
}
