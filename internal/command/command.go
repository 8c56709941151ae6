// Package command defines the slash command contract, the registry that
// command packages join via init(), and the context handed to handlers.
package command

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"lexibot/internal/config"
	"lexibot/internal/dictionary"
)

// Command is one bot command. Run receives a context value whose concrete
// type depends on the invocation kind; handlers type-assert it.
type Command interface {
	Name() string
	Description() string
	Category() string
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash
// definition with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Lexicon resolves a word to its first dictionary entry.
type Lexicon interface {
	Lookup(ctx context.Context, word string) (*dictionary.Entry, error)
}

// Suggester proposes spelling corrections for an unknown word.
type Suggester interface {
	Suggest(word string, max int) []string
}

// Responder delivers interaction replies. Handlers defer first, then edit
// the deferred reply exactly once.
type Responder interface {
	Defer(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error
	EditContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error
	EditEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error
}

// SlashContext is the invocation context for slash commands. Dependencies
// are injected so handlers stay testable without a live session.
type SlashContext struct {
	Ctx     context.Context
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Config  *config.Config
	Lexicon Lexicon
	Suggest Suggester
	Respond Responder
	Log     zerolog.Logger
}

// StringOption returns the named string option from the interaction,
// lowercased and trimmed. Missing options yield "".
func StringOption(e *discordgo.InteractionCreate, name string) string {
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == name {
			return strings.ToLower(strings.TrimSpace(opt.StringValue()))
		}
	}
	return ""
}
