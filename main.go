package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/corebots/monkepo/monkepo"
	"github.com/corebots/monkepo/monkepo/battle"
	"github.com/corebots/monkepo/monkepo/commands"
	"github.com/corebots/monkepo/monkepo/database"
	"github.com/corebots/monkepo/monkepo/database/repositories"
	"github.com/corebots/monkepo/monkepo/handlers"
	"github.com/corebots/monkepo/monkepo/logger"
	"github.com/corebots/monkepo/monkepo/services"
	"github.com/corebots/monkepo/monkepo/starter"
	"github.com/corebots/monkepo/monkepo/translation"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Monkepo Discord Bot",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := monkepo.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbConfig := database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	}

	db, err := database.New(ctx, dbConfig)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.String("error", err.Error()))
		os.Exit(-1)
	}
	if err := db.InitializeSpeciesData(ctx); err != nil {
		slog.Error("Failed to seed species data", slog.String("error", err.Error()))
		os.Exit(-1)
	}

	b := monkepo.New(*cfg, version, commit)
	b.DB = db

	b.SpeciesRepository = repositories.NewSpeciesRepository(db.BunDB())
	b.TrainerRepository = repositories.NewTrainerRepository(db.BunDB())
	b.PendingRepository = repositories.NewPendingRepository(db.BunDB())
	b.PokemonRepository = repositories.NewPokemonRepository(db.BunDB())
	b.ItemRepository = repositories.NewItemRepository(db.BunDB())
	b.ServerRepository = repositories.NewServerRepository(db.BunDB())
	b.BattleRepository = repositories.NewBattleRepository(db.BunDB())
	b.ButtonRepository = repositories.NewButtonRepository(db.BunDB())

	if err := b.ItemRepository.EnsureDefaults(ctx); err != nil {
		slog.Error("Failed to seed item catalog", slog.String("error", err.Error()))
		os.Exit(-1)
	}

	translations, err := translation.New()
	if err != nil {
		slog.Error("Failed to load translations", slog.Any("error", err))
		os.Exit(-1)
	}
	b.Translations = translations

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	b.StarterWorkflow = starter.NewWorkflow(
		b.TrainerRepository,
		b.PendingRepository,
		b.PokemonRepository,
		b.SpeciesRepository,
		rng,
		starter.Config{SelectionTimeout: time.Duration(cfg.Starter.TimeoutMinutes) * time.Minute},
	)
	b.BattleManager = battle.NewManager(b.BattleRepository, b.PokemonRepository, cfg.Battle.ArenaURL)
	b.ButtonService = services.NewButtonService(b.ButtonRepository, translations)

	// Expired pending selections are invisible to lookups either way; the
	// sweep just keeps the table small.
	b.PendingRepository.StartCleanupRoutine(context.Background())

	h := handler.New()

	h.Command("/version", commands.VersionHandler(b))
	h.Command("/monkepo", handlers.WrapWithLogging("monkepo", commands.MonkepoHandler(b)))
	h.Command("/battle", handlers.WrapWithLogging("battle", commands.BattleHandler(b)))
	h.Command("/dex", handlers.WrapWithLogging("dex", commands.DexHandler(b)))
	h.Autocomplete("/dex", commands.DexAutocompleteHandler(b))
	h.Command("/admin", handlers.WrapWithLogging("admin", commands.AdminHandler(b)))

	h.Component("/starter/", handlers.WrapComponentWithLogging("starter", commands.StarterComponentHandler(b)))
	h.Modal("/starter/name/", handlers.WrapModalWithLogging("starter-name", commands.StarterNameModalHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady), bot.NewListenerFunc(b.OnGuildJoin)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}
	b.ButtonService.SetClient(b.Client)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("status", "failed"),
			)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")
}
