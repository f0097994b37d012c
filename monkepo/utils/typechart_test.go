package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebots/monkepo/monkepo/translation"
)

func TestEffectivenessText(t *testing.T) {
	tr, err := translation.New()
	require.NoError(t, err)

	text := EffectivenessText(tr, "en", "GRASS")
	assert.Contains(t, text, "Strong vs:")
	assert.Contains(t, text, "💧 WATER")
	assert.Contains(t, text, "Weak vs:")
	assert.Contains(t, text, "🔥 FIRE")

	assert.Empty(t, EffectivenessText(tr, "en", "FAIRY"))
}

func TestTypeBadge(t *testing.T) {
	assert.Equal(t, "🌿 GRASS / ☠️ POISON", TypeBadge("GRASS", "POISON"))
	assert.Equal(t, "🔥 FIRE", TypeBadge("FIRE", ""))
}

func TestHPBar(t *testing.T) {
	assert.Equal(t, "██████████ 50/50", HPBar(50, 50))
	assert.Equal(t, "█████░░░░░ 25/50", HPBar(25, 50))
	assert.Equal(t, "░░░░░░░░░░ 0/50", HPBar(0, 50))
	// Out-of-range values clamp instead of panicking.
	assert.Equal(t, "██████████ 50/50", HPBar(80, 50))
	assert.Equal(t, "", HPBar(10, 0))
}
