// Package format turns dictionary API data into display-ready Discord
// messages. Every function is pure: configuration comes in as an explicit
// Options value, never from a global.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bwmarrin/discordgo"

	"lexibot/internal/dictionary"
)

// FooterText is stamped on every rich embed.
const FooterText = "lexibot • powered by dictionaryapi.dev"

// Options carries the display caps, feature toggles and color for one
// formatted response.
type Options struct {
	MaxDefinitions        int
	MaxDefinitionsPerType int
	MaxSynonyms           int
	MaxAntonyms           int
	ShowPhonetics         bool
	ShowExamples          bool
	ShowSourceLinks       bool
	Color                 int
	Now                   func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Definition builds the /define embed for an entry.
func Definition(e *dictionary.Entry, opts Options) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     Capitalize(e.Word),
		Color:     opts.Color,
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterText},
		Timestamp: opts.now().UTC().Format(time.RFC3339),
	}

	if opts.ShowPhonetics {
		embed.Description = fmt.Sprintf("Pronunciation: **%s**", e.PhoneticText())
	}

	for _, m := range e.Meanings {
		if len(embed.Fields) >= opts.MaxDefinitions {
			break
		}
		value := meaningLines(m, opts)
		if value == "" {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  Capitalize(m.PartOfSpeech),
			Value: value,
		})
	}

	if opts.ShowSourceLinks {
		if src := e.FirstSourceURL(); src != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Source",
				Value: src,
			})
		}
	}

	return embed
}

func meaningLines(m dictionary.Meaning, opts Options) string {
	var b strings.Builder
	for i, d := range m.Definitions {
		if i >= opts.MaxDefinitionsPerType {
			break
		}
		fmt.Fprintf(&b, "**%d.** %s\n", i+1, d.Definition)
		if opts.ShowExamples && d.Example != "" {
			fmt.Fprintf(&b, "*%s*\n", d.Example)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Thesaurus builds the /thesaurus embed. A field is omitted entirely when
// its underlying set is empty.
func Thesaurus(word string, set dictionary.LexicalSet, opts Options) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     Capitalize(word),
		Color:     opts.Color,
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterText},
		Timestamp: opts.now().UTC().Format(time.RFC3339),
	}

	if len(set.Synonyms) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Synonyms",
			Value: joinCapped(set.Synonyms, opts.MaxSynonyms),
		})
	}
	if len(set.Antonyms) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Antonyms",
			Value: joinCapped(set.Antonyms, opts.MaxAntonyms),
		})
	}

	return embed
}

// joinCapped joins up to cap values with commas. The overflow count comes
// from the pre-truncation total, not from the display slice.
func joinCapped(values []string, limit int) string {
	if len(values) <= limit {
		return strings.Join(values, ", ")
	}
	return fmt.Sprintf("%s and %d more…", strings.Join(values[:limit], ", "), len(values)-limit)
}

// NotFound builds the plain-text not-found reply, with a "did you mean"
// list when suggestions exist.
func NotFound(word string, suggestions []string) string {
	if len(suggestions) == 0 {
		return fmt.Sprintf("No definitions found for `%s`. Check your spelling and try again.", word)
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "`" + s + "`"
	}
	return fmt.Sprintf("No definitions found for `%s`. Did you mean: %s?", word, strings.Join(quoted, ", "))
}

// NoLexical is the plain-text reply for a thesaurus lookup whose entry
// carries no synonym or antonym lists at all.
func NoLexical(word string) string {
	return fmt.Sprintf("No synonyms or antonyms found for `%s`.", word)
}

// GenericError is the catch-all user-visible failure message. It leaks no
// internal detail.
func GenericError() string {
	return "Something went wrong while looking that up. Please try again later."
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
