package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"lexibot/internal/command"
)

// Discord tolerates roughly 40 command writes per second; stay under it.
var registrationLimit = rate.Every(time.Second / 40)

// slashDefinitions collects the declarative schema of every registered
// command that exposes one.
func slashDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, cmd := range command.All() {
		sp, ok := cmd.(command.SlashProvider)
		if !ok {
			continue
		}
		if def := sp.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			defs = append(defs, def)
		}
	}
	return defs
}

// registerCommands reconciles the remote command schema with the registry:
// obsolete remote commands are deleted, wanted ones recreated. GuildID ""
// registers globally.
func (b *Bot) registerCommands(ctx context.Context, s *discordgo.Session) error {
	appID := s.State.User.ID
	guildID := b.cfg.Discord.GuildID
	wanted := slashDefinitions()

	wantedNames := make(map[string]bool, len(wanted))
	for _, def := range wanted {
		wantedNames[def.Name] = true
	}

	lim := rate.NewLimiter(registrationLimit, 1)

	existing, err := s.ApplicationCommands(appID, guildID)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to list existing commands")
	}
	for _, old := range existing {
		if wantedNames[old.Name] {
			continue
		}
		if err := lim.Wait(ctx); err != nil {
			return err
		}
		b.log.Info().Str("command", old.Name).Msg("deleting obsolete command")
		if err := s.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
			b.log.Error().Err(err).Str("command", old.Name).Msg("failed to delete command")
		}
	}

	for _, def := range wanted {
		if err := lim.Wait(ctx); err != nil {
			return err
		}
		if _, err := s.ApplicationCommandCreate(appID, guildID, def); err != nil {
			b.log.Error().Err(err).Str("command", def.Name).Msg("failed to register command")
			continue
		}
		b.log.Info().Str("command", def.Name).Msg("command registered")
	}

	return nil
}
