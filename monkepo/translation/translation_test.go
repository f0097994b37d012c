package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsAllLocales(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	assert.True(t, m.Supported("en"))
	assert.True(t, m.Supported("es"))
	assert.False(t, m.Supported("fr"))
}

func TestGet_DottedKeys(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Choose Your Starter", m.Get("en", "starter.choose_starter"))
	assert.Equal(t, "Elige tu Inicial", m.Get("es", "starter.choose_starter"))
	assert.Equal(t, "Strong vs:", m.Get("en", "pokemon.type_chart.strong_vs"))
}

func TestGet_FallsBackToEnglishThenKey(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	// Unknown language falls through to English.
	assert.Equal(t, "Choose Your Starter", m.Get("fr", "starter.choose_starter"))
	// Unknown key surfaces itself so the gap is visible.
	assert.Equal(t, "starter.no_such_key", m.Get("en", "starter.no_such_key"))
}

func TestGetf_SubstitutesPlaceholders(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	got := m.Getf("en", "starter.name_modal_title", map[string]string{"pokemon": "Bulbasaur"})
	assert.Equal(t, "Name your Bulbasaur", got)

	got = m.Getf("es", "admin.language_set", map[string]string{"language": "es"})
	assert.Equal(t, "Idioma del servidor establecido en es.", got)
}

func TestGetf_NoArgsLeavesTextAlone(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	assert.Equal(t, "Name your {pokemon}", m.Getf("en", "starter.name_modal_title", nil))
}
