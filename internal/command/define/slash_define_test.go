package define

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibot/internal/command"
	"lexibot/internal/config"
	"lexibot/internal/dictionary"
)

type fakeLexicon struct {
	entry *dictionary.Entry
	err   error
	word  string
}

func (f *fakeLexicon) Lookup(_ context.Context, word string) (*dictionary.Entry, error) {
	f.word = word
	return f.entry, f.err
}

type fakeSuggester struct {
	out    []string
	gotMax int
}

func (f *fakeSuggester) Suggest(_ string, max int) []string {
	f.gotMax = max
	if len(f.out) > max {
		return f.out[:max]
	}
	return f.out
}

type fakeResponder struct {
	deferCount     int
	deferEphemeral bool
	deferErr       error
	editErr        error
	contents       []string
	embeds         []*discordgo.MessageEmbed
}

func (f *fakeResponder) Defer(_ *discordgo.Session, _ *discordgo.InteractionCreate, ephemeral bool) error {
	f.deferCount++
	f.deferEphemeral = ephemeral
	return f.deferErr
}

func (f *fakeResponder) EditContent(_ *discordgo.Session, _ *discordgo.InteractionCreate, content string) error {
	f.contents = append(f.contents, content)
	return f.editErr
}

func (f *fakeResponder) EditEmbed(_ *discordgo.Session, _ *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	f.embeds = append(f.embeds, embed)
	return f.editErr
}

func (f *fakeResponder) replies() int {
	return len(f.contents) + len(f.embeds)
}

func slashEvent(name, word string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "guild-1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "user-1", Username: "tester"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "word", Type: discordgo.ApplicationCommandOptionString, Value: word},
				},
			},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Limits: config.LimitsConfig{
			MaxDefinitions:        3,
			MaxDefinitionsPerType: 2,
			MaxSynonyms:           10,
			MaxAntonyms:           10,
			MaxSuggestions:        3,
		},
		Features: config.FeaturesConfig{ShowPhonetics: true, ShowExamples: true, ShowSourceLinks: true},
		Colors:   config.ColorsConfig{Define: 0x5865F2, Thesaurus: 0x57F287},
	}
}

func newContext(word string, lex *fakeLexicon, sug *fakeSuggester, rsp *fakeResponder) *command.SlashContext {
	return &command.SlashContext{
		Ctx:     context.Background(),
		Event:   slashEvent("define", word),
		Config:  testConfig(),
		Lexicon: lex,
		Suggest: sug,
		Respond: rsp,
		Log:     zerolog.Nop(),
	}
}

func TestRunSuccessRepliesOnceWithEmbed(t *testing.T) {
	t.Parallel()

	lex := &fakeLexicon{entry: &dictionary.Entry{
		Word:     "cat",
		Phonetic: "/kæt/",
		Meanings: []dictionary.Meaning{
			{PartOfSpeech: "noun", Definitions: []dictionary.Definition{{Definition: "A small domesticated feline."}}},
		},
	}}
	rsp := &fakeResponder{}

	err := (&DefineCommand{}).Run(newContext("Cat ", lex, &fakeSuggester{}, rsp))
	require.NoError(t, err)

	assert.Equal(t, "cat", lex.word, "word should be lowercased and trimmed")
	assert.Equal(t, 1, rsp.deferCount)
	require.Equal(t, 1, rsp.replies())
	require.Len(t, rsp.embeds, 1)
	assert.Equal(t, "Cat", rsp.embeds[0].Title)
	assert.Equal(t, 0x5865F2, rsp.embeds[0].Color)
}

func TestRunNotFoundWithSuggestions(t *testing.T) {
	t.Parallel()

	lex := &fakeLexicon{err: dictionary.ErrNotFound}
	sug := &fakeSuggester{out: []string{"cat", "bat", "hat", "rat"}}
	rsp := &fakeResponder{}

	err := (&DefineCommand{}).Run(newContext("catt", lex, sug, rsp))
	require.NoError(t, err)

	assert.Equal(t, 3, sug.gotMax)
	require.Equal(t, 1, rsp.replies())
	assert.Equal(t, "No definitions found for `catt`. Did you mean: `cat`, `bat`, `hat`?", rsp.contents[0])
}

func TestRunNotFoundWithoutSuggestions(t *testing.T) {
	t.Parallel()

	lex := &fakeLexicon{err: dictionary.ErrNotFound}
	rsp := &fakeResponder{}

	err := (&DefineCommand{}).Run(newContext("xyzzy", lex, &fakeSuggester{}, rsp))
	require.NoError(t, err)

	require.Equal(t, 1, rsp.replies())
	assert.Contains(t, rsp.contents[0], "Check your spelling")
}

func TestRunUpstreamErrorRepliesGenericOnce(t *testing.T) {
	t.Parallel()

	lex := &fakeLexicon{err: &dictionary.StatusError{Code: 502}}
	rsp := &fakeResponder{}

	err := (&DefineCommand{}).Run(newContext("cat", lex, &fakeSuggester{}, rsp))
	require.NoError(t, err)

	require.Equal(t, 1, rsp.replies())
	assert.NotContains(t, rsp.contents[0], "502", "no internal detail leaked")
}

func TestRunTransportErrorRepliesGenericOnce(t *testing.T) {
	t.Parallel()

	lex := &fakeLexicon{err: errors.New("dial tcp: connection refused")}
	rsp := &fakeResponder{}

	err := (&DefineCommand{}).Run(newContext("cat", lex, &fakeSuggester{}, rsp))
	require.NoError(t, err)

	require.Equal(t, 1, rsp.replies())
	assert.NotContains(t, rsp.contents[0], "dial tcp")
}

func TestRunDeferFailureIssuesNoReply(t *testing.T) {
	t.Parallel()

	rsp := &fakeResponder{deferErr: errors.New("interaction expired")}

	err := (&DefineCommand{}).Run(newContext("cat", &fakeLexicon{}, &fakeSuggester{}, rsp))
	require.Error(t, err)
	assert.Zero(t, rsp.replies())
}

func TestRunEphemeralFlag(t *testing.T) {
	t.Parallel()

	lex := &fakeLexicon{entry: &dictionary.Entry{Word: "cat"}}
	rsp := &fakeResponder{}
	sc := newContext("cat", lex, &fakeSuggester{}, rsp)
	sc.Config.Features.EphemeralReplies = true

	require.NoError(t, (&DefineCommand{}).Run(sc))
	assert.True(t, rsp.deferEphemeral)
}

func TestRunRejectsWrongContextType(t *testing.T) {
	t.Parallel()

	err := (&DefineCommand{}).Run("not a slash context")
	require.Error(t, err)
}

func TestSlashDefinitionShape(t *testing.T) {
	t.Parallel()

	def := (&DefineCommand{}).SlashDefinition()
	require.NotNil(t, def)
	assert.Equal(t, "define", def.Name)
	require.Len(t, def.Options, 1)
	assert.Equal(t, "word", def.Options[0].Name)
	assert.True(t, def.Options[0].Required)
}
