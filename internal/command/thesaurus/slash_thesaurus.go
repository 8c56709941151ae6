// Package thesaurus implements the /thesaurus slash command.
package thesaurus

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"lexibot/internal/command"
	"lexibot/internal/dictionary"
	"lexibot/internal/format"
	"lexibot/internal/middleware"
)

type ThesaurusCommand struct{}

func (c *ThesaurusCommand) Name() string { return "thesaurus" }
func (c *ThesaurusCommand) Description() string {
	return "Find synonyms and antonyms for a word"
}
func (c *ThesaurusCommand) Category() string { return "📖 Dictionary" }

func (c *ThesaurusCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "word",
				Description: "The word to find synonyms and antonyms for",
				Required:    true,
			},
		},
	}
}

// Run replies exactly once. Synonyms and antonyms are aggregated from the
// meaning and definition levels of the entry, first-seen order preserved.
func (c *ThesaurusCommand) Run(ctx interface{}) error {
	sc, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("thesaurus: unexpected context type %T", ctx)
	}

	word := command.StringOption(sc.Event, "word")

	if err := sc.Respond.Defer(sc.Session, sc.Event, sc.Config.Features.EphemeralReplies); err != nil {
		return fmt.Errorf("thesaurus: acknowledge %q: %w", word, err)
	}

	entry, err := sc.Lexicon.Lookup(sc.Ctx, word)
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		suggestions := sc.Suggest.Suggest(word, sc.Config.Limits.MaxSuggestions)
		return sc.Respond.EditContent(sc.Session, sc.Event, format.NotFound(word, suggestions))
	case err != nil:
		sc.Log.Error().Err(err).Str("word", word).Msg("thesaurus lookup failed")
		return sc.Respond.EditContent(sc.Session, sc.Event, format.GenericError())
	}

	set := dictionary.Aggregate(entry)
	if set.Empty() {
		return sc.Respond.EditContent(sc.Session, sc.Event, format.NoLexical(word))
	}

	embed := format.Thesaurus(word, set, format.Options{
		MaxSynonyms: sc.Config.Limits.MaxSynonyms,
		MaxAntonyms: sc.Config.Limits.MaxAntonyms,
		Color:       int(sc.Config.Colors.Thesaurus),
	})
	return sc.Respond.EditEmbed(sc.Session, sc.Event, embed)
}

func init() {
	command.Register(command.Apply(
		&ThesaurusCommand{},
		middleware.WithCommandLogger(),
	))
}
