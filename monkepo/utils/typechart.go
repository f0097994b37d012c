package utils

import (
	"fmt"
	"strings"

	"github.com/corebots/monkepo/monkepo/translation"
)

// typeMatchup lists defending types an attacking type is strong or weak
// against. Covers the types reachable from the seeded species.
type typeMatchup struct {
	strong []string
	weak   []string
}

var typeChart = map[string]typeMatchup{
	"FIRE":     {strong: []string{"GRASS", "BUG", "ICE", "STEEL"}, weak: []string{"WATER", "ROCK", "GROUND"}},
	"WATER":    {strong: []string{"FIRE", "GROUND", "ROCK"}, weak: []string{"GRASS", "ELECTRIC"}},
	"GRASS":    {strong: []string{"WATER", "GROUND", "ROCK"}, weak: []string{"FIRE", "BUG", "POISON", "FLYING"}},
	"ELECTRIC": {strong: []string{"WATER", "FLYING"}, weak: []string{"GRASS", "ELECTRIC"}},
	"NORMAL":   {strong: []string{}, weak: []string{"ROCK", "STEEL"}},
	"BUG":      {strong: []string{"GRASS", "PSYCHIC"}, weak: []string{"FIRE", "FLYING", "ROCK"}},
	"FLYING":   {strong: []string{"BUG", "GRASS", "FIGHTING"}, weak: []string{"ELECTRIC", "ROCK"}},
	"POISON":   {strong: []string{"GRASS"}, weak: []string{"GROUND", "ROCK", "GHOST"}},
}

var typeEmojis = map[string]string{
	"FIRE": "🔥", "WATER": "💧", "GRASS": "🌿", "ELECTRIC": "⚡",
	"NORMAL": "⭐", "BUG": "🐛", "FLYING": "💨", "POISON": "☠️",
	"GROUND": "🌍", "ROCK": "🗿", "ICE": "❄️", "STEEL": "⚙️",
	"PSYCHIC": "🔮", "FIGHTING": "👊", "GHOST": "👻", "DRAGON": "🐉",
}

// TypeEmoji returns the badge for a type name, or a question mark for types
// outside the chart.
func TypeEmoji(typeName string) string {
	if emoji, ok := typeEmojis[typeName]; ok {
		return emoji
	}
	return "❓"
}

// TypeBadge renders emoji plus name, with the secondary type appended when
// present.
func TypeBadge(type1, type2 string) string {
	badge := TypeEmoji(type1) + " " + type1
	if type2 != "" {
		badge += " / " + TypeEmoji(type2) + " " + type2
	}
	return badge
}

// EffectivenessText renders the localized strong/weak matchup lines for an
// attacking type. Returns "" for types outside the chart.
func EffectivenessText(t *translation.Manager, lang, attackingType string) string {
	matchup, ok := typeChart[attackingType]
	if !ok {
		return ""
	}

	var lines []string
	if len(matchup.strong) > 0 {
		lines = append(lines, t.Get(lang, "pokemon.type_chart.strong_vs")+" "+joinTypes(matchup.strong))
	}
	if len(matchup.weak) > 0 {
		lines = append(lines, t.Get(lang, "pokemon.type_chart.weak_vs")+" "+joinTypes(matchup.weak))
	}
	return strings.Join(lines, "\n")
}

func joinTypes(types []string) string {
	parts := make([]string, 0, len(types))
	for _, typeName := range types {
		parts = append(parts, TypeEmoji(typeName)+" "+typeName)
	}
	return strings.Join(parts, ", ")
}

// HPBar renders a 10-segment health bar like "█████████░ 45/50".
func HPBar(current, max int) string {
	if max <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	filled := current * 10 / max
	return fmt.Sprintf("%s%s %d/%d",
		strings.Repeat("█", filled),
		strings.Repeat("░", 10-filled),
		current, max)
}
