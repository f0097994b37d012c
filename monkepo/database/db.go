package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/corebots/monkepo/monkepo/database/models"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Check reachability before handing the pool a dead address.
	var conn net.Conn
	var err error

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(pool)}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func newBunDB(pool *pgxpool.Pool) *bun.DB {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pool.Config().ConnConfig.User,
		pool.Config().ConnConfig.Password,
		pool.Config().ConnConfig.Host,
		pool.Config().ConnConfig.Port,
		pool.Config().ConnConfig.Database,
		sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", sql),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return result, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", sql),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", result.RowsAffected()),
	)
	return result, nil
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "query"),
			slog.String("query", sql),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return rows, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "query"),
		slog.String("query", sql),
		slog.Duration("took", duration),
	)
	return rows, nil
}

// InitializeSchema creates all required tables and indexes and seeds the
// species reference data.
func (db *DB) InitializeSchema(ctx context.Context) error {
	// Order matters for foreign key style relations.
	tables := []interface{}{
		(*models.Species)(nil),
		(*models.Trainer)(nil),
		(*models.Pokemon)(nil),
		(*models.PendingSelection)(nil),
		(*models.Server)(nil),
		(*models.Item)(nil),
		(*models.TrainerItem)(nil),
		(*models.Battle)(nil),
		(*models.PersistentButton)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_pokemon_user_id ON pokemon(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_pokemon_user_active ON pokemon(user_id, team_slot) WHERE is_active = TRUE;",
		"CREATE INDEX IF NOT EXISTS idx_pokemon_starter ON pokemon(user_id) WHERE is_starter = TRUE;",
		"CREATE INDEX IF NOT EXISTS idx_pending_expires ON pending_selections(expires_at);",
		"CREATE INDEX IF NOT EXISTS idx_trainer_items_user_id ON trainer_items(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_battles_player1 ON battles(player1_id, started_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_battles_player2 ON battles(player2_id, started_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_buttons_active ON persistent_buttons(server_id) WHERE is_active = TRUE;",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.InitializeSpeciesData(ctx); err != nil {
		return fmt.Errorf("failed to initialize species data: %w", err)
	}

	return nil
}

// InitializeSpeciesData seeds the dex subset the bot hands out: the three
// starters plus the common pool drawn from on team creation.
func (db *DB) InitializeSpeciesData(ctx context.Context) error {
	species := []*models.Species{
		{ID: 1, PokedexNumber: 1, Name: "Bulbasaur", Type1: "GRASS", Type2: "POISON", BaseHP: 45, BaseAttack: 49, BaseDefense: 49, BaseSpAttack: 65, BaseSpDefense: 65, BaseSpeed: 45, IsStarter: true},
		{ID: 4, PokedexNumber: 4, Name: "Charmander", Type1: "FIRE", BaseHP: 39, BaseAttack: 52, BaseDefense: 43, BaseSpAttack: 60, BaseSpDefense: 50, BaseSpeed: 65, IsStarter: true},
		{ID: 7, PokedexNumber: 7, Name: "Squirtle", Type1: "WATER", BaseHP: 44, BaseAttack: 48, BaseDefense: 65, BaseSpAttack: 50, BaseSpDefense: 64, BaseSpeed: 43, IsStarter: true},
		{ID: 10, PokedexNumber: 10, Name: "Caterpie", Type1: "BUG", BaseHP: 45, BaseAttack: 30, BaseDefense: 35, BaseSpAttack: 20, BaseSpDefense: 20, BaseSpeed: 45},
		{ID: 13, PokedexNumber: 13, Name: "Weedle", Type1: "BUG", Type2: "POISON", BaseHP: 40, BaseAttack: 35, BaseDefense: 30, BaseSpAttack: 20, BaseSpDefense: 20, BaseSpeed: 50},
		{ID: 16, PokedexNumber: 16, Name: "Pidgey", Type1: "NORMAL", Type2: "FLYING", BaseHP: 40, BaseAttack: 45, BaseDefense: 40, BaseSpAttack: 35, BaseSpDefense: 35, BaseSpeed: 56},
		{ID: 19, PokedexNumber: 19, Name: "Rattata", Type1: "NORMAL", BaseHP: 30, BaseAttack: 56, BaseDefense: 35, BaseSpAttack: 25, BaseSpDefense: 35, BaseSpeed: 72},
	}

	for _, s := range species {
		_, err := db.bunDB.NewInsert().
			Model(s).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed species %s: %w", s.Name, err)
		}
	}
	return nil
}
