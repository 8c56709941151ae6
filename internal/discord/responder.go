package discord

import (
	"github.com/bwmarrin/discordgo"

	"lexibot/internal/command"
)

// responder implements command.Responder on top of the interaction
// acknowledge-then-edit protocol, so handlers never import this package.
type responder struct{}

// DefaultResponder is injected into slash contexts by the dispatcher.
var DefaultResponder command.Responder = responder{}

// Defer acknowledges the interaction without content; the handler edits
// the placeholder later. Ephemeral controls reply visibility.
func (responder) Defer(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
}

// EditContent replaces the deferred placeholder with plain text.
func (responder) EditContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	return err
}

// EditEmbed replaces the deferred placeholder with a rich embed.
func (responder) EditEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	embeds := []*discordgo.MessageEmbed{embed}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds})
	return err
}

// respondEphemeral sends an initial ephemeral text response. Used by the
// dispatcher failsafe when the interaction was never acknowledged.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
