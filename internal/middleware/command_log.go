// Package middleware provides command decorators.
package middleware

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"lexibot/internal/command"
)

// WithCommandLogger wraps a command to log every invocation with the
// caller, guild and duration.
func WithCommandLogger() command.Middleware {
	return func(next command.Command) command.Command {
		return &command.Wrapped{
			Command: next,
			RunFunc: func(ctx interface{}) error {
				start := time.Now()
				err := next.Run(ctx)

				if sc, ok := ctx.(*command.SlashContext); ok {
					user := resolveUser(sc.Event)
					evt := sc.Log.Info()
					if err != nil {
						evt = sc.Log.Error().Err(err)
					}
					evt.
						Str("command", next.Name()).
						Str("user_id", user.ID).
						Str("username", user.Username).
						Str("guild_id", sc.Event.GuildID).
						Dur("took", time.Since(start)).
						Msg("command handled")
				}
				return err
			},
		}
	}
}

// resolveUser works for both guild (Member) and DM (User) interactions.
func resolveUser(e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		return e.User
	}
	return &discordgo.User{ID: "unknown", Username: "unknown"}
}
