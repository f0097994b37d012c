// Package services holds long-lived helpers that sit between Discord and the
// repositories.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"

	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/database/repositories"
	"github.com/corebots/monkepo/monkepo/translation"
)

// ButtonService owns the persistent journey buttons: posting them, recording
// them, and revalidating them after a restart.
type ButtonService struct {
	buttons      repositories.ButtonRepository
	translations *translation.Manager
	client       bot.Client
}

func NewButtonService(buttons repositories.ButtonRepository, translations *translation.Manager) *ButtonService {
	return &ButtonService{
		buttons:      buttons,
		translations: translations,
	}
}

func (s *ButtonService) SetClient(client bot.Client) {
	s.client = client
}

type starterButtonData struct {
	CustomID string `json:"custom_id"`
	Language string `json:"language"`
}

// PostStarterButton sends the journey message to the configured channel and
// records it so it survives restarts. An existing button row for the guild is
// superseded.
func (s *ButtonService) PostStarterButton(ctx context.Context, serverID, channelID, lang string) (*models.PersistentButton, error) {
	channel, err := snowflake.Parse(channelID)
	if err != nil {
		return nil, fmt.Errorf("invalid channel id %q: %w", channelID, err)
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("🔬 " + s.translations.Get(lang, "starter.oak_title")).
		SetDescription(s.translations.Get(lang, "starter.oak_description")).
		SetColor(config.InfoColor).
		Build()

	msg, err := s.client.Rest().CreateMessage(channel, discord.MessageCreate{
		Embeds: []discord.Embed{embed},
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewPrimaryButton("⚡ "+s.translations.Get(lang, "starter.begin_journey"), "/starter/begin"),
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post starter button: %w", err)
	}

	data, _ := json.Marshal(starterButtonData{CustomID: "/starter/begin", Language: lang})
	button := &models.PersistentButton{
		ServerID:   serverID,
		ChannelID:  channelID,
		MessageID:  msg.ID.String(),
		ButtonType: models.ButtonTypeStarter,
		ButtonData: data,
		IsActive:   true,
	}
	if err := s.buttons.Upsert(ctx, button); err != nil {
		return nil, fmt.Errorf("failed to record starter button: %w", err)
	}

	slog.Info("Starter button posted",
		slog.String("server_id", serverID),
		slog.String("channel_id", channelID),
		slog.String("message_id", button.MessageID))

	return button, nil
}

// RestoreAll revalidates every recorded button after a restart. Buttons whose
// message was deleted get deactivated so admins can repost via /admin.
func (s *ButtonService) RestoreAll(ctx context.Context) error {
	buttons, err := s.buttons.GetAllActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persistent buttons: %w", err)
	}
	if len(buttons) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, button := range buttons {
		button := button
		g.Go(func() error {
			return s.restore(ctx, button)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Persistent buttons restored", slog.Int("count", len(buttons)))
	return nil
}

func (s *ButtonService) restore(ctx context.Context, button *models.PersistentButton) error {
	channel, err := snowflake.Parse(button.ChannelID)
	if err != nil {
		return s.deactivate(ctx, button, "bad channel id")
	}
	message, err := snowflake.Parse(button.MessageID)
	if err != nil {
		return s.deactivate(ctx, button, "bad message id")
	}

	if _, err := s.client.Rest().GetMessage(channel, message); err != nil {
		return s.deactivate(ctx, button, "message gone")
	}
	return nil
}

func (s *ButtonService) deactivate(ctx context.Context, button *models.PersistentButton, reason string) error {
	slog.Warn("Deactivating persistent button",
		slog.String("server_id", button.ServerID),
		slog.String("message_id", button.MessageID),
		slog.String("reason", reason))
	if err := s.buttons.Deactivate(ctx, button.ID); err != nil {
		return fmt.Errorf("failed to deactivate button %d: %w", button.ID, err)
	}
	return nil
}
