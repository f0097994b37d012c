package commands

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/corebots/monkepo/monkepo"
	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/utils"
)

var Dex = discord.SlashCommandCreate{
	Name:        "dex",
	Description: "Browse the Monkepo dex",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "species",
			Description:  "Species to look up",
			Required:     false,
			Autocomplete: true,
		},
	},
}

func DexHandler(b *monkepo.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		var serverID string
		if e.GuildID() != nil {
			serverID = e.GuildID().String()
		}
		lang := b.ServerRepository.GetLanguage(ctx, serverID)

		if query := e.SlashCommandInteractionData().String("species"); query != "" {
			return dexEntry(ctx, b, e, lang, query)
		}
		return dexBrowse(ctx, b, e, lang)
	}
}

// dexEntry shows one species in detail.
func dexEntry(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang, query string) error {
	matches, err := b.SpeciesRepository.SearchByName(ctx, query, 1)
	if err != nil || len(matches) == 0 {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "dex.not_found"))
	}
	species := matches[0]

	builder := discord.NewEmbedBuilder().
		SetTitle(b.Translations.Getf(lang, "dex.entry_title", map[string]string{
			"number": fmt.Sprintf("%03d", species.PokedexNumber),
			"name":   species.Name,
		})).
		SetDescription(utils.TypeBadge(species.Type1, species.Type2)).
		SetColor(config.InfoColor).
		AddField(b.Translations.Get(lang, "dex.base_stats"), baseStatsBlock(species), false)

	if matchups := utils.EffectivenessText(b.Translations, lang, species.Type1); matchups != "" {
		builder.AddField("⚔️", matchups, false)
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{builder.Build()},
	})
}

func baseStatsBlock(species *models.Species) string {
	return fmt.Sprintf("```md\n"+
		"* HP: %d\n"+
		"* Attack: %d\n"+
		"* Defense: %d\n"+
		"* Sp. Attack: %d\n"+
		"* Sp. Defense: %d\n"+
		"* Speed: %d\n"+
		"```",
		species.BaseHP, species.BaseAttack, species.BaseDefense,
		species.BaseSpAttack, species.BaseSpDefense, species.BaseSpeed)
}

// dexBrowse pages through the whole dex.
func dexBrowse(ctx context.Context, b *monkepo.Bot, e *handler.CommandEvent, lang string) error {
	all, err := b.SpeciesRepository.GetAll(ctx)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, b.Translations.Get(lang, "errors.generic"))
	}
	if len(all) == 0 {
		return utils.EH.CreateInfoEmbed(e, b.Translations.Get(lang, "dex.not_found"))
	}

	totalPages := int(math.Ceil(float64(len(all)) / float64(config.SpeciesPerPage)))

	return b.Paginator.Create(e.Respond, paginator.Pages{
		ID:      e.ID().String(),
		Creator: e.User().ID,
		PageFunc: func(page int, embed *discord.EmbedBuilder) {
			start := page * config.SpeciesPerPage
			end := min(start+config.SpeciesPerPage, len(all))

			var sb strings.Builder
			for _, species := range all[start:end] {
				starterMark := ""
				if species.IsStarter {
					starterMark = " 🌟"
				}
				fmt.Fprintf(&sb, "`#%03d` %s **%s**%s\n",
					species.PokedexNumber, utils.TypeEmoji(species.Type1), species.Name, starterMark)
			}

			embed.
				SetTitle("📖 " + b.Translations.Get(lang, "dex.title")).
				SetDescription(sb.String()).
				SetColor(config.InfoColor).
				SetFooter(fmt.Sprintf("Page %d/%d", page+1, totalPages), "")
		},
		Pages:      totalPages,
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	}, false)
}

func DexAutocompleteHandler(b *monkepo.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		query := e.Data.String("species")
		if query == "" {
			return e.AutocompleteResult(nil)
		}

		matches, err := b.SpeciesRepository.SearchByName(ctx, query, 25)
		if err != nil {
			return e.AutocompleteResult(nil)
		}

		choices := make([]discord.AutocompleteChoice, 0, len(matches))
		for _, species := range matches {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  fmt.Sprintf("#%03d %s", species.PokedexNumber, species.Name),
				Value: species.Name,
			})
		}
		return e.AutocompleteResult(choices)
	}
}
