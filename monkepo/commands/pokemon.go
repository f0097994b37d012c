package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/corebots/monkepo/monkepo"
	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/stats"
	"github.com/corebots/monkepo/monkepo/utils"
)

var Monkepo = discord.SlashCommandCreate{
	Name:        "monkepo",
	Description: "View your Monkepo team",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "trainer",
			Description: "View another trainer's team",
			Required:    false,
		},
	},
}

func MonkepoHandler(b *monkepo.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		var serverID string
		if e.GuildID() != nil {
			serverID = e.GuildID().String()
		}
		lang := b.ServerRepository.GetLanguage(ctx, serverID)

		target := e.User()
		if trainer, ok := e.SlashCommandInteractionData().OptUser("trainer"); ok {
			target = trainer
		}

		team, err := b.BattleManager.GetUserTeam(ctx, target.ID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
		}
		if len(team) == 0 {
			if target.ID == e.User().ID {
				return utils.EH.CreateInfoEmbed(e, b.Translations.Get(lang, "pokemon.no_team"))
			}
			return utils.EH.CreateInfoEmbed(e, b.Translations.Get(lang, "errors.user_not_found"))
		}

		builder := discord.NewEmbedBuilder().
			SetTitle("👥 " + b.Translations.Getf(lang, "pokemon.team_title",
				map[string]string{"user": target.Username})).
			SetColor(config.InfoColor)

		for _, member := range team {
			mon := member.Pokemon
			quality := string(stats.Classify(mon.IVs()))

			var lines []string
			lines = append(lines, utils.TypeBadge(mon.Species.Type1, mon.Species.Type2))
			lines = append(lines, b.Translations.Get(lang, "pokemon.hp")+": "+
				utils.HPBar(member.CurrentHP, member.Stats.HP))
			lines = append(lines, "⭐ "+b.Translations.Get(lang, "pokemon.stats_quality."+quality))
			if mon.StatusCondition != "" && mon.StatusCondition != models.StatusHealthy {
				lines = append(lines, "💫 "+mon.StatusCondition)
			}

			builder.AddField(
				fmt.Sprintf("%d. %s — %s", mon.TeamSlot, mon.DisplayName(),
					b.Translations.Getf(lang, "pokemon.level",
						map[string]string{"level": fmt.Sprintf("%d", mon.Level)})),
				strings.Join(lines, "\n"),
				false,
			)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{builder.Build()},
		})
	}
}
