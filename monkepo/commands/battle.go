package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/corebots/monkepo/monkepo"
	"github.com/corebots/monkepo/monkepo/battle"
	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/utils"
)

var Battle = discord.SlashCommandCreate{
	Name:        "battle",
	Description: "Battle other trainers in the arena",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "start",
			Description: "Start a battle or open the practice arena",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "opponent",
					Description: "Trainer to challenge (leave empty for practice mode)",
					Required:    false,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "info",
			Description: "Show your recent battles",
		},
	},
}

func BattleHandler(b *monkepo.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		var serverID string
		if e.GuildID() != nil {
			serverID = e.GuildID().String()
		}
		lang := b.ServerRepository.GetLanguage(ctx, serverID)

		data := e.SlashCommandInteractionData()
		switch *data.SubCommandName {
		case "start":
			return handleBattleStart(ctx, b, e, lang, serverID)
		case "info":
			return handleBattleInfo(ctx, b, e, lang)
		default:
			return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.invalid_command"))
		}
	}
}

func handleBattleStart(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang, serverID string) error {
	userID := e.User().ID.String()

	team, err := b.BattleManager.GetUserTeam(ctx, userID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}
	if len(team) < battle.MinTeamSize {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "battle.no_team"))
	}

	data := e.SlashCommandInteractionData()
	opponent, hasOpponent := data.OptUser("opponent")

	var opponentID, mode string
	if hasOpponent {
		if opponent.ID == e.User().ID {
			return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "battle.self_challenge"))
		}
		opponentTeam, err := b.BattleManager.GetUserTeam(ctx, opponent.ID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
		}
		if len(opponentTeam) < battle.MinTeamSize {
			return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "battle.no_team"))
		}
		opponentID = opponent.ID.String()
		mode = "pvp"
	} else {
		mode = "practice"
	}

	session, err := b.BattleManager.CreateSession(ctx, userID, opponentID, serverID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}

	builder := discord.NewEmbedBuilder().
		SetTitle("⚔️ " + b.Translations.Get(lang, "battle.challenge_title")).
		SetColor(config.WarningColor)

	if hasOpponent {
		builder.SetDescription(b.Translations.Getf(lang, "battle.challenge_description", map[string]string{
			"challenger": e.User().Mention(),
			"opponent":   opponent.Mention(),
		}))
	} else {
		builder.SetDescription(teamPreview(team))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{builder.Build()},
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewLinkButton("🏟️ "+b.Translations.Get(lang, "battle.launch_button"),
					b.BattleManager.ArenaURL(session.ID, userID, mode)),
			),
		},
	})
}

func teamPreview(team []*battle.TeamMember) string {
	var sb strings.Builder
	for i, member := range team {
		mon := member.Pokemon
		hpPercent := 0
		if member.Stats.HP > 0 {
			hpPercent = member.CurrentHP * 100 / member.Stats.HP
		}
		fmt.Fprintf(&sb, "%d. %s **%s** (Lv.%d) - %d%% HP\n",
			i+1, utils.TypeEmoji(mon.Species.Type1), mon.DisplayName(), mon.Level, hpPercent)
	}
	return sb.String()
}

func handleBattleInfo(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang string) error {
	battles, err := b.BattleManager.Recent(ctx, e.User().ID.String(), 5)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}
	if len(battles) == 0 {
		return utils.EH.CreateInfoEmbed(e, b.Translations.Get(lang, "battle.no_recent"))
	}

	var sb strings.Builder
	for _, row := range battles {
		opponent := row.Player2ID
		if opponent == "" {
			opponent = "practice"
		}
		fmt.Fprintf(&sb, "`%s` vs %s — %s, <t:%d:R>\n",
			row.Status, opponent, row.ID[:8], row.StartedAt.Unix())
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{
			discord.NewEmbedBuilder().
				SetTitle("📜 " + b.Translations.Get(lang, "battle.recent_title")).
				SetDescription(sb.String()).
				SetColor(config.InfoColor).
				Build(),
		},
	})
}
