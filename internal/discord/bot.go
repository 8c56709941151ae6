// Package discord wires the command registry to a live Discord session:
// lifecycle, presence, slash-command registration and interaction dispatch.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"lexibot/internal/command"
	"lexibot/internal/config"
	"lexibot/internal/format"
)

// Bot owns the Discord session and the dependencies handed to handlers.
type Bot struct {
	cfg     *config.Config
	log     zerolog.Logger
	lexicon command.Lexicon
	suggest command.Suggester

	dg  *discordgo.Session
	ctx context.Context
}

// New constructs a Bot. The session itself is created in Run so the
// lifecycle stays explicit: construct, run, cancel.
func New(cfg *config.Config, log zerolog.Logger, lexicon command.Lexicon, suggest command.Suggester) *Bot {
	return &Bot{
		cfg:     cfg,
		log:     log.With().Str("component", "discord").Logger(),
		lexicon: lexicon,
		suggest: suggest,
	}
}

// Run logs in, serves interactions until ctx is cancelled, then closes the
// session. A login failure is returned to the caller and is fatal.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	b.dg = dg
	b.ctx = ctx

	// Slash commands arrive as interactions and need no privileged intents.
	dg.Identify.Intents = discordgo.IntentsGuilds
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("username", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("session ready")

	if b.cfg.Discord.Presence != "" {
		if err := s.UpdateWatchStatus(0, b.cfg.Discord.Presence); err != nil {
			b.log.Warn().Err(err).Msg("failed to set presence")
		}
	}

	if !b.cfg.Discord.RegisterCommands {
		b.log.Info().Msg("slash command registration skipped")
		return
	}
	// Registration failure keeps the bot online with whatever schema
	// Discord already has.
	if err := b.registerCommands(b.ctx, s); err != nil {
		b.log.Error().Err(err).Msg("slash command registration failed")
	}
}

// onInteractionCreate routes application-command interactions to the
// matching handler. Handler errors and panics are contained here and
// converted to at most one generic reply.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		// Deliberately silent toward the user.
		b.log.Warn().Str("command", name).Msg("unknown command")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Str("command", name).Msg("handler panicked")
			b.failsafeReply(s, i)
		}
	}()

	sc := &command.SlashContext{
		Ctx:     b.ctx,
		Session: s,
		Event:   i,
		Config:  b.cfg,
		Lexicon: b.lexicon,
		Suggest: b.suggest,
		Respond: DefaultResponder,
		Log:     b.log,
	}

	if err := cmd.Run(sc); err != nil {
		b.log.Error().Err(err).Str("command", name).Msg("handler failed")
		b.failsafeReply(s, i)
	}
}

// failsafeReply delivers one generic error message for failures the
// handler could not report itself. If the initial response is rejected the
// interaction was already acknowledged, so the deferred reply is edited
// instead; failures of the fallback are only logged, never re-raised.
func (b *Bot) failsafeReply(s *discordgo.Session, i *discordgo.InteractionCreate) {
	msg := format.GenericError()
	if err := respondEphemeral(s, i, msg); err == nil {
		return
	}
	if err := DefaultResponder.EditContent(s, i, msg); err != nil {
		b.log.Warn().Err(err).Msg("failsafe reply failed")
	}
}
