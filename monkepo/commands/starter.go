package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/corebots/monkepo/monkepo"
	"github.com/corebots/monkepo/monkepo/config"
	"github.com/corebots/monkepo/monkepo/database/models"
	"github.com/corebots/monkepo/monkepo/starter"
	"github.com/corebots/monkepo/monkepo/stats"
	"github.com/corebots/monkepo/monkepo/utils"
)

// StarterComponentHandler routes every /starter/* button press. The journey
// button is a persistent message component, so the whole acquisition flow
// lives on component interactions rather than a slash command.
func StarterComponentHandler(b *monkepo.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		lang := b.ServerRepository.GetLanguage(ctx, guildID(e))

		action := strings.TrimPrefix(e.Data.CustomID(), "/starter/")
		switch {
		case action == "begin":
			return handleBegin(ctx, b, e, lang)
		case strings.HasPrefix(action, "pick/"):
			return handlePick(ctx, b, e, lang, strings.TrimPrefix(action, "pick/"))
		case strings.HasPrefix(action, "name/"):
			return openNameModal(ctx, b, e, lang, strings.TrimPrefix(action, "name/"))
		case strings.HasPrefix(action, "keep/"):
			return handleNickname(ctx, b, e, lang, strings.TrimPrefix(action, "keep/"), "")
		case strings.HasPrefix(action, "confirm/"):
			return handleConfirm(ctx, b, e, lang, strings.TrimPrefix(action, "confirm/"))
		case strings.HasPrefix(action, "cancel/"):
			return handleCancel(ctx, b, e, lang, strings.TrimPrefix(action, "cancel/"))
		default:
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.invalid_command"))
		}
	}
}

// StarterNameModalHandler consumes the nickname modal submit.
func StarterNameModalHandler(b *monkepo.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		var serverID string
		if e.GuildID() != nil {
			serverID = e.GuildID().String()
		}
		lang := b.ServerRepository.GetLanguage(ctx, serverID)

		pendingID := strings.TrimPrefix(e.Data.CustomID, "/starter/name/")
		nickname := e.Data.Text("nickname")

		result, err := b.StarterWorkflow.SubmitNickname(ctx, pendingID, nickname)
		if err != nil {
			if errors.Is(err, starter.ErrSessionExpired) {
				return utils.EH.CreateModalError(e, b.Translations.Get(lang, "starter.session_expired"))
			}
			return utils.EH.CreateModalError(e, b.Translations.Get(lang, "errors.generic"))
		}

		embed, components := confirmPreview(b, lang, result)
		return e.UpdateMessage(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed},
			Components: &components,
		})
	}
}

func guildID(e *handler.ComponentEvent) string {
	if e.GuildID() == nil {
		return ""
	}
	return e.GuildID().String()
}

func handleBegin(ctx context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang string) error {
	userID := e.User().ID.String()

	hasTeam, err := b.StarterWorkflow.HasTeam(ctx, userID)
	if err != nil {
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
	}
	if hasTeam {
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "starter.already_trainer"))
	}

	exists, err := b.TrainerRepository.Exists(ctx, userID)
	if err != nil {
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
	}
	if !exists {
		trainer := &models.Trainer{
			DiscordID: userID,
			Username:  e.User().Username,
		}
		if err := b.TrainerRepository.Create(ctx, trainer); err != nil {
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
		}
	}

	embed, components, err := speciesChoice(ctx, b, lang)
	if err != nil {
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds:     []discord.Embed{embed},
		Components: components,
		Flags:      discord.MessageFlagEphemeral,
	})
}

// speciesChoice renders the three-starter picker.
func speciesChoice(ctx context.Context, b *monkepo.Bot, lang string) (discord.Embed, []discord.ContainerComponent, error) {
	starters, err := b.SpeciesRepository.GetStarters(ctx)
	if err != nil {
		return discord.Embed{}, nil, err
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("🎒 " + b.Translations.Get(lang, "starter.choose_starter")).
		SetDescription(b.Translations.Get(lang, "starter.starter_description")).
		SetColor(config.InfoColor).
		Build()

	buttons := make([]discord.InteractiveComponent, 0, len(starters))
	for _, species := range starters {
		buttons = append(buttons, discord.NewPrimaryButton(
			utils.TypeEmoji(species.Type1)+" "+species.Name,
			fmt.Sprintf("/starter/pick/%d", species.ID),
		))
	}

	return embed, []discord.ContainerComponent{discord.NewActionRow(buttons...)}, nil
}

func handlePick(ctx context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang, idStr string) error {
	speciesID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.invalid_command"))
	}

	reveal, err := b.StarterWorkflow.ChooseSpecies(ctx, e.User().ID.String(), guildID(e), speciesID)
	if err != nil {
		switch {
		case errors.Is(err, starter.ErrAlreadyTrainer):
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "starter.already_trainer"))
		case errors.Is(err, starter.ErrSpeciesUnavailable):
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.pokemon_not_found"))
		default:
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
		}
	}

	embed := statRevealEmbed(b, lang, reveal)
	components := []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewPrimaryButton("✏️ "+b.Translations.Get(lang, "starter.name_button"),
				"/starter/name/"+reveal.PendingID),
			discord.NewSecondaryButton(b.Translations.Getf(lang, "starter.keep_name_button",
				map[string]string{"pokemon": reveal.Species.Name}),
				"/starter/keep/"+reveal.PendingID),
			discord.NewDangerButton("❌ "+b.Translations.Get(lang, "starter.cancel_button"),
				"/starter/cancel/"+reveal.PendingID),
		),
	}

	return e.UpdateMessage(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{embed},
		Components: &components,
	})
}

func statRevealEmbed(b *monkepo.Bot, lang string, reveal *starter.StatReveal) discord.Embed {
	quality := string(reveal.Quality)
	qualityLabel := b.Translations.Get(lang, "pokemon.stats_quality."+quality)

	color, ok := config.QualityColors[quality]
	if !ok {
		color = config.EmbedDefaultColor
	}

	statsBlock := fmt.Sprintf("```md\n"+
		"# Level %d Stats\n"+
		"* HP: %d\n"+
		"* Attack: %d\n"+
		"* Defense: %d\n"+
		"* Sp. Attack: %d\n"+
		"* Sp. Defense: %d\n"+
		"* Speed: %d\n"+
		"```",
		starter.StarterLevel,
		reveal.Stats.HP, reveal.Stats.Attack, reveal.Stats.Defense,
		reveal.Stats.SpAttack, reveal.Stats.SpDefense, reveal.Stats.Speed)

	builder := discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("✨ %s %s", utils.TypeEmoji(reveal.Species.Type1), reveal.Species.Name)).
		SetDescription(b.Translations.Get(lang, "starter.stats_revealed")+"\n"+b.Translations.Get(lang, "starter.name_prompt")).
		SetColor(color).
		AddField(utils.TypeBadge(reveal.Species.Type1, reveal.Species.Type2), statsBlock, false).
		AddField("⭐ "+qualityLabel, fmt.Sprintf("IV total: %d", reveal.IVs.Total()), true).
		AddField("⏳", fmt.Sprintf("<t:%d:R>", reveal.ExpiresAt.Unix()), true)

	if matchups := utils.EffectivenessText(b.Translations, lang, reveal.Species.Type1); matchups != "" {
		builder.AddField("⚔️", matchups, false)
	}

	return builder.Build()
}

func openNameModal(_ context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang, pendingID string) error {
	// Species name for the modal labels comes from the embed title already on
	// screen; keep the modal generic to avoid another lookup.
	return e.Modal(discord.ModalCreate{
		CustomID: "/starter/name/" + pendingID,
		Title:    b.Translations.Get(lang, "starter.name_modal_label"),
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewShortTextInput("nickname", b.Translations.Get(lang, "starter.name_modal_label")).
					WithMaxLength(starter.MaxNicknameLength).
					WithRequired(false),
			),
		},
	})
}

func handleNickname(ctx context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang, pendingID, nickname string) error {
	result, err := b.StarterWorkflow.SubmitNickname(ctx, pendingID, nickname)
	if err != nil {
		if errors.Is(err, starter.ErrSessionExpired) {
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "starter.session_expired"))
		}
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
	}

	embed, components := confirmPreview(b, lang, result)
	return e.UpdateMessage(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{embed},
		Components: &components,
	})
}

func confirmPreview(b *monkepo.Bot, lang string, result *starter.NicknameResult) (discord.Embed, []discord.ContainerComponent) {
	embed := discord.NewEmbedBuilder().
		SetTitle("🤝 " + b.Translations.Get(lang, "starter.confirm_title")).
		SetDescription(b.Translations.Getf(lang, "starter.confirm_description", map[string]string{
			"nickname": result.Nickname,
			"pokemon":  result.Species.Name,
		})).
		SetColor(config.InfoColor).
		Build()

	components := []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewSuccessButton("🚀 "+b.Translations.Get(lang, "starter.confirm_button"),
				"/starter/confirm/"+result.PendingID),
			discord.NewDangerButton("↩️ "+b.Translations.Get(lang, "starter.cancel_button"),
				"/starter/cancel/"+result.PendingID),
		),
	}
	return embed, components
}

func handleConfirm(ctx context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang, pendingID string) error {
	team, err := b.StarterWorkflow.Confirm(ctx, pendingID)
	if err != nil {
		switch {
		case errors.Is(err, starter.ErrSessionExpired):
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "starter.session_expired"))
		case errors.Is(err, starter.ErrSpeciesUnavailable):
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.pokemon_not_found"))
		default:
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "starter.creation_failed"))
		}
	}

	embed := welcomeEmbed(b, lang, e.User().Mention(), team)
	if err := e.UpdateMessage(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{embed},
		Components: &[]discord.ContainerComponent{},
	}); err != nil {
		return err
	}

	announceNewTrainer(ctx, b, e, lang, team)
	return nil
}

func welcomeEmbed(b *monkepo.Bot, lang, mention string, team *starter.TeamResult) discord.Embed {
	starterMon := team.Starter
	quality := string(stats.Classify(starterMon.IVs()))

	var members strings.Builder
	fmt.Fprintf(&members, "%s **%s** (Lv.%d)\n",
		utils.TypeEmoji(starterMon.Species.Type1), starterMon.DisplayName(), starterMon.Level)
	for _, common := range team.Commons {
		name := common.DisplayName()
		if common.Species != nil {
			fmt.Fprintf(&members, "%s %s (Lv.%d)\n", utils.TypeEmoji(common.Species.Type1), name, common.Level)
		} else {
			fmt.Fprintf(&members, "⭐ %s (Lv.%d)\n", name, common.Level)
		}
	}

	return discord.NewEmbedBuilder().
		SetTitle("🎉 " + b.Translations.Getf(lang, "starter.welcome_title", map[string]string{"user": mention})).
		SetDescription(b.Translations.Get(lang, "starter.welcome_description")).
		SetColor(config.SuccessColor).
		AddField("🌟 "+b.Translations.Getf(lang, "starter.your_starter", map[string]string{"pokemon": starterMon.Species.Name}),
			b.Translations.Get(lang, "pokemon.stats_quality."+quality), false).
		AddField("👥 "+b.Translations.Get(lang, "starter.team_members"), members.String(), false).
		AddField("🎒", b.Translations.Get(lang, "starter.starter_kit"), false).
		AddField("📋", b.Translations.Get(lang, "starter.next_steps"), false).
		Build()
}

// announceNewTrainer broadcasts to the configured updates channel. Failures
// are logged, never surfaced to the new trainer.
func announceNewTrainer(ctx context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang string, team *starter.TeamResult) {
	server, err := b.ServerRepository.Get(ctx, guildID(e))
	if err != nil || server.UpdatesChannelID == "" {
		return
	}

	channel, err := snowflake.Parse(server.UpdatesChannelID)
	if err != nil {
		return
	}

	quality := string(stats.Classify(team.Starter.IVs()))
	embed := discord.NewEmbedBuilder().
		SetTitle("📣 " + b.Translations.Get(lang, "notifications.new_trainer_title")).
		SetDescription(b.Translations.Getf(lang, "notifications.new_trainer_description",
			map[string]string{"user": e.User().Mention()}) + "\n" +
			b.Translations.Getf(lang, "notifications.chose_starter", map[string]string{
				"nickname": team.Starter.Nickname,
				"pokemon":  team.Starter.Species.Name,
			})).
		SetColor(config.SuccessColor).
		AddField("⭐", b.Translations.Getf(lang, "notifications.trainer_stats",
			map[string]string{"quality": b.Translations.Get(lang, "pokemon.stats_quality."+quality)}), false).
		SetFooter(b.Translations.Get(lang, "notifications.welcome_message"), "").
		Build()

	if _, err := b.Client.Rest().CreateMessage(channel, discord.MessageCreate{
		Embeds: []discord.Embed{embed},
	}); err != nil {
		slog.Error("Failed to announce new trainer",
			slog.String("channel_id", server.UpdatesChannelID),
			slog.Any("error", err))
	}
}

func handleCancel(ctx context.Context, b *monkepo.Bot, e *handler.ComponentEvent, lang, pendingID string) error {
	if err := b.StarterWorkflow.Cancel(ctx, pendingID); err != nil {
		if errors.Is(err, starter.ErrSessionExpired) {
			return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "starter.session_expired"))
		}
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
	}

	// Back to species choice, fresh IVs on the next pick.
	embed, components, err := speciesChoice(ctx, b, lang)
	if err != nil {
		return utils.EH.CreateEphemeralError(e, b.Translations.Get(lang, "errors.generic"))
	}
	return e.UpdateMessage(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{embed},
		Components: &components,
	})
}
