package monkepo

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"

	"github.com/corebots/monkepo/monkepo/battle"
	"github.com/corebots/monkepo/monkepo/database"
	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/database/repositories"
	"github.com/corebots/monkepo/monkepo/services"
	"github.com/corebots/monkepo/monkepo/starter"
	"github.com/corebots/monkepo/monkepo/translation"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	SpeciesRepository repositories.SpeciesRepository
	TrainerRepository repositories.TrainerRepository
	PendingRepository repositories.PendingRepository
	PokemonRepository repositories.PokemonRepository
	ItemRepository    repositories.ItemRepository
	ServerRepository  repositories.ServerRepository
	BattleRepository  repositories.BattleRepository
	ButtonRepository  repositories.ButtonRepository

	StarterWorkflow *starter.Workflow
	BattleManager   *battle.Manager
	Translations    *translation.Manager
	ButtonService   *services.ButtonService
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Monkepo bot is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithPlayingActivity("with Monkepo"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}

	go func() {
		restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer restoreCancel()
		if err := b.ButtonService.RestoreAll(restoreCtx); err != nil {
			slog.Error("Failed to restore persistent buttons", slog.Any("error", err))
		}
	}()
}

// OnGuildJoin seeds a server row so language and channel config have a home
// before any admin touches /admin.
func (b *Bot) OnGuildJoin(e *events.GuildJoin) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	server := &models.Server{
		ID:       e.Guild.ID.String(),
		Name:     e.Guild.Name,
		Language: translation.DefaultLanguage,
	}
	if err := b.ServerRepository.Upsert(ctx, server); err != nil {
		slog.Error("Failed to register guild",
			slog.String("type", "db"),
			slog.String("guild_id", e.Guild.ID.String()),
			slog.Any("error", err))
		return
	}

	slog.Info("Joined guild",
		slog.String("guild_id", e.Guild.ID.String()),
		slog.String("guild_name", e.Guild.Name))
}
