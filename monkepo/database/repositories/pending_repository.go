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

// ErrPendingNotFound covers both missing and expired rows: an expired session
// must behave identically to one that never existed.
var ErrPendingNotFound = errors.New("pending selection not found or expired")

type PendingRepository interface {
	Create(ctx context.Context, pending *models.PendingSelection) error
	GetActive(ctx context.Context, id string, now time.Time) (*models.PendingSelection, error)
	SetNickname(ctx context.Context, id string, nickname string) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
	StartCleanupRoutine(ctx context.Context)
}

type pendingRepository struct {
	db *bun.DB
}

func NewPendingRepository(db *bun.DB) PendingRepository {
	return &pendingRepository{db: db}
}

// Create inserts a fresh session, superseding any previous one for the same
// (user, server) pair in the same transaction. Combined with the unique index
// this keeps at most one active session per pair.
func (r *pendingRepository) Create(ctx context.Context, pending *models.PendingSelection) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.PendingSelection)(nil)).
			Where("user_id = ? AND server_id = ?", pending.UserID, pending.ServerID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to supersede pending selection: %w", err)
		}

		pending.CreatedAt = time.Now()
		if _, err := tx.NewInsert().Model(pending).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create pending selection: %w", err)
		}
		return nil
	})
}

// GetActive fetches a session by id. The expiry check lives in the query, so
// an expired row is indistinguishable from a missing one to every caller.
func (r *pendingRepository) GetActive(ctx context.Context, id string, now time.Time) (*models.PendingSelection, error) {
	pending := new(models.PendingSelection)
	err := r.db.NewSelect().
		Model(pending).
		Where("id = ? AND expires_at > ?", id, now).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPendingNotFound
		}
		return nil, fmt.Errorf("failed to get pending selection %s: %w", id, err)
	}
	return pending, nil
}

func (r *pendingRepository) SetNickname(ctx context.Context, id string, nickname string) error {
	result, err := r.db.NewUpdate().
		Model((*models.PendingSelection)(nil)).
		Set("nickname = ?", nickname).
		Set("step = ?", models.StepNamed).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update pending selection %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrPendingNotFound
	}
	return nil
}

// Delete removes a session and reports whether a row existed.
func (r *pendingRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.NewDelete().
		Model((*models.PendingSelection)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete pending selection %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *pendingRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.NewDelete().
		Model((*models.PendingSelection)(nil)).
		Where("expires_at <= ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired pending selections: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

// StartCleanupRoutine deletes stale rows periodically. Pure hygiene: the
// GetActive expiry filter is the actual enforcement.
func (r *pendingRepository) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if count, err := r.DeleteExpired(ctx); err != nil {
					slog.Error("Failed to clean up expired pending selections",
						slog.String("type", "db"),
						slog.Any("error", err))
				} else if count > 0 {
					slog.Debug("Cleaned up expired pending selections",
						slog.String("type", "db"),
						slog.Int64("count", count))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
