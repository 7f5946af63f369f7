package sholat

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedCity(t *testing.T) {
	t.Parallel()

	assert.True(t, SupportedCity("Jakarta"))
	assert.True(t, SupportedCity("Makassar"))
	assert.False(t, SupportedCity("jakarta"), "city matching is case sensitive")
	assert.False(t, SupportedCity("Atlantis"))
	assert.False(t, SupportedCity(""))
}

func TestCreatePanelComponents_MarksCurrentCityDefault(t *testing.T) {
	t.Parallel()

	components := createPanelComponents("Bandung")
	require.Len(t, components, 3)

	row, ok := components[2].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)

	require.Equal(t, CustomIDCitySelect, menu.CustomID)
	require.Len(t, menu.Options, len(Cities))

	defaults := 0
	for _, opt := range menu.Options {
		if opt.Default {
			defaults++
			assert.Equal(t, "Bandung", opt.Value)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestCreatePanelComponents_NoCityConfigured(t *testing.T) {
	t.Parallel()

	components := createPanelComponents("")
	row := components[2].(discordgo.ActionsRow)
	menu := row.Components[0].(discordgo.SelectMenu)

	for _, opt := range menu.Options {
		assert.False(t, opt.Default)
	}
}
