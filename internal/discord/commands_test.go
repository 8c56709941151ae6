package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "lexibot/internal/command/define"
	_ "lexibot/internal/command/thesaurus"
)

func TestSlashDefinitionsCoverRegisteredCommands(t *testing.T) {
	t.Parallel()

	defs := slashDefinitions()
	require.Len(t, defs, 2)

	byName := map[string]*discordgo.ApplicationCommand{}
	for _, def := range defs {
		byName[def.Name] = def
	}

	for _, name := range []string{"define", "thesaurus"} {
		def, ok := byName[name]
		require.True(t, ok, "missing definition for %s", name)
		assert.Equal(t, discordgo.ChatApplicationCommand, def.Type)
		assert.NotEmpty(t, def.Description)
		require.Len(t, def.Options, 1)
		assert.Equal(t, "word", def.Options[0].Name)
		assert.Equal(t, discordgo.ApplicationCommandOptionString, def.Options[0].Type)
		assert.True(t, def.Options[0].Required)
	}
}
