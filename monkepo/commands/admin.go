package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"

	"github.com/corebots/monkepo/monkepo"
	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/translation"
	"github.com/corebots/monkepo/monkepo/utils"
)

var Admin = discord.SlashCommandCreate{
	Name:                     "admin",
	Description:              "Configure the bot for this server",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionAdministrator),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "starter-channel",
			Description: "Set the channel for the journey button and post it",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionChannel{
					Name:        "channel",
					Description: "Channel to post the journey button in",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "updates-channel",
			Description: "Set the channel for new-trainer announcements",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionChannel{
					Name:        "channel",
					Description: "Channel for announcements",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "language",
			Description: "Set the server language",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "language",
					Description: "Language for bot messages",
					Required:    true,
					Choices: []discord.ApplicationCommandOptionChoiceString{
						{Name: "English", Value: "en"},
						{Name: "Español", Value: "es"},
					},
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "status",
			Description: "Show the current server configuration",
		},
	},
}

func AdminHandler(b *monkepo.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server.")
		}
		serverID := e.GuildID().String()
		lang := b.ServerRepository.GetLanguage(ctx, serverID)

		data := e.SlashCommandInteractionData()
		switch *data.SubCommandName {
		case "starter-channel":
			return handleStarterChannel(ctx, b, e, lang, serverID)
		case "updates-channel":
			return handleUpdatesChannel(ctx, b, e, lang, serverID)
		case "language":
			return handleLanguage(ctx, b, e, serverID)
		case "status":
			return handleStatus(ctx, b, e, lang, serverID)
		default:
			return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.invalid_command"))
		}
	}
}

// ensureServer guarantees a servers row exists before setting a column on it.
func ensureServer(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, serverID string) error {
	name := serverID
	if guild, ok := e.Guild(); ok {
		name = guild.Name
	}
	return b.ServerRepository.Upsert(ctx, &models.Server{
		ID:       serverID,
		Name:     name,
		Language: translation.DefaultLanguage,
	})
}

func handleStarterChannel(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang, serverID string) error {
	channel := e.SlashCommandInteractionData().Channel("channel")

	if err := ensureServer(ctx, b, e, serverID); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}
	if err := b.ServerRepository.SetStarterChannel(ctx, serverID, channel.ID.String()); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}

	if _, err := b.ButtonService.PostStarterButton(ctx, serverID, channel.ID.String(), lang); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}

	return utils.EH.CreateSuccessEmbed(e, b.Translations.Get(lang, "admin.config_complete"))
}

func handleUpdatesChannel(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang, serverID string) error {
	channel := e.SlashCommandInteractionData().Channel("channel")

	if err := ensureServer(ctx, b, e, serverID); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}
	if err := b.ServerRepository.SetUpdatesChannel(ctx, serverID, channel.ID.String()); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}

	return utils.EH.CreateSuccessEmbed(e, b.Translations.Getf(lang, "admin.channel_set", map[string]string{
		"channel": fmt.Sprintf("<#%s>", channel.ID),
		"purpose": "updates",
	}))
}

func handleLanguage(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, serverID string) error {
	lang := e.SlashCommandInteractionData().String("language")

	if !b.Translations.Supported(lang) {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Getf(translation.DefaultLanguage,
			"admin.invalid_language", map[string]string{"languages": "en, es"}))
	}

	if err := ensureServer(ctx, b, e, serverID); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}
	if err := b.ServerRepository.SetLanguage(ctx, serverID, lang); err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}

	return utils.EH.CreateSuccessEmbed(e, b.Translations.Getf(lang, "admin.language_set",
		map[string]string{"language": lang}))
}

func handleStatus(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang, serverID string) error {
	server, err := b.ServerRepository.Get(ctx, serverID)
	if err != nil {
		return utils.EH.CreateInfoEmbed(e, b.Translations.Get(lang, "admin.config_missing"))
	}

	var missing []string
	starterLine := "—"
	if server.StarterChannelID != "" {
		starterLine = fmt.Sprintf("<#%s>", server.StarterChannelID)
	} else {
		missing = append(missing, "starter channel")
	}
	updatesLine := "—"
	if server.UpdatesChannelID != "" {
		updatesLine = fmt.Sprintf("<#%s>", server.UpdatesChannelID)
	} else {
		missing = append(missing, "updates channel")
	}

	builder := discord.NewEmbedBuilder().
		SetTitle("⚙️ " + b.Translations.Get(lang, "admin.setup_preview")).
		SetColor(config.InfoColor).
		AddField("Starter channel", starterLine, true).
		AddField("Updates channel", updatesLine, true).
		AddField("Language", server.Language, true)

	if len(missing) > 0 {
		builder.SetFooter(b.Translations.Getf(lang, "admin.config_partial",
			map[string]string{"missing": strings.Join(missing, ", ")}), "")
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{builder.Build()},
	})
}
