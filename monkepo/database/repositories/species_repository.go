package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
	"github.com/uptrace/bun"

	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/database/models"
)

var ErrSpeciesNotFound = errors.New("species not found")

type SpeciesRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Species, error)
	GetAll(ctx context.Context) ([]*models.Species, error)
	GetStarters(ctx context.Context) ([]*models.Species, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*models.Species, error)
}

type speciesRepository struct {
	db    *bun.DB
	cache *lru.Cache
}

func NewSpeciesRepository(db *bun.DB) SpeciesRepository {
	// Species rows are immutable reference data, so a small LRU in front of
	// the table never goes stale.
	cache, _ := lru.New(config.SpeciesCacheSize)
	return &speciesRepository{db: db, cache: cache}
}

func (r *speciesRepository) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	if cached, ok := r.cache.Get(id); ok {
		return cached.(*models.Species), nil
	}

	species := new(models.Species)
	err := r.db.NewSelect().
		Model(species).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("failed to get species %d: %w", id, err)
	}

	r.cache.Add(id, species)
	return species, nil
}

func (r *speciesRepository) GetAll(ctx context.Context) ([]*models.Species, error) {
	var species []*models.Species
	err := r.db.NewSelect().
		Model(&species).
		Order("pokedex_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	return species, nil
}

func (r *speciesRepository) GetStarters(ctx context.Context) ([]*models.Species, error) {
	var species []*models.Species
	err := r.db.NewSelect().
		Model(&species).
		Where("is_starter = TRUE").
		Order("pokedex_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list starter species: %w", err)
	}
	return species, nil
}

// SearchByName fuzzy-matches species names, best matches first. Used by the
// dex autocomplete.
func (r *speciesRepository) SearchByName(ctx context.Context, query string, limit int) ([]*models.Species, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}

	matches := fuzzy.Find(query, names)
	sort.Stable(matches)

	var results []*models.Species
	for _, m := range matches {
		results = append(results, all[m.Index])
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}
