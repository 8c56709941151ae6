// Package define implements the /define slash command.
package define

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"lexibot/internal/command"
	"lexibot/internal/dictionary"
	"lexibot/internal/format"
	"lexibot/internal/middleware"
)

type DefineCommand struct{}

func (c *DefineCommand) Name() string        { return "define" }
func (c *DefineCommand) Description() string { return "Look up the definition of a word" }
func (c *DefineCommand) Category() string    { return "📖 Dictionary" }

func (c *DefineCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "word",
				Description: "The word to define",
				Required:    true,
			},
		},
	}
}

// Run replies exactly once: rich embed on success, suggestion text on an
// unknown word, generic text on any failure.
func (c *DefineCommand) Run(ctx interface{}) error {
	sc, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("define: unexpected context type %T", ctx)
	}

	word := command.StringOption(sc.Event, "word")

	// Discord expires unacknowledged interactions after 3 seconds, so defer
	// before touching the network.
	if err := sc.Respond.Defer(sc.Session, sc.Event, sc.Config.Features.EphemeralReplies); err != nil {
		return fmt.Errorf("define: acknowledge %q: %w", word, err)
	}

	entry, err := sc.Lexicon.Lookup(sc.Ctx, word)
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		suggestions := sc.Suggest.Suggest(word, sc.Config.Limits.MaxSuggestions)
		return sc.Respond.EditContent(sc.Session, sc.Event, format.NotFound(word, suggestions))
	case err != nil:
		sc.Log.Error().Err(err).Str("word", word).Msg("define lookup failed")
		return sc.Respond.EditContent(sc.Session, sc.Event, format.GenericError())
	}

	embed := format.Definition(entry, format.Options{
		MaxDefinitions:        sc.Config.Limits.MaxDefinitions,
		MaxDefinitionsPerType: sc.Config.Limits.MaxDefinitionsPerType,
		ShowPhonetics:         sc.Config.Features.ShowPhonetics,
		ShowExamples:          sc.Config.Features.ShowExamples,
		ShowSourceLinks:       sc.Config.Features.ShowSourceLinks,
		Color:                 int(sc.Config.Colors.Define),
	})
	return sc.Respond.EditEmbed(sc.Session, sc.Event, embed)
}

func init() {
	command.Register(command.Apply(
		&DefineCommand{},
		middleware.WithCommandLogger(),
	))
}
