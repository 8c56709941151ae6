package config

import (
	"time"
)

// Config is the root application configuration. It is loaded once at
// startup and read-only for the process lifetime.
type Config struct {
	Discord  DiscordConfig  `yaml:"discord"`
	API      APIConfig      `yaml:"api"`
	Limits   LimitsConfig   `yaml:"limits"`
	Features FeaturesConfig `yaml:"features"`
	Colors   ColorsConfig   `yaml:"colors"`
	Suggest  SuggestConfig  `yaml:"suggest"`
	Log      LogConfig      `yaml:"log"`
}

// DiscordConfig holds bot credential and platform settings.
type DiscordConfig struct {
	Token            string `yaml:"token"             env:"DISCORD_TOKEN"`
	Presence         string `yaml:"presence"          env:"DISCORD_PRESENCE"          env-default:"the dictionary 📖"`
	GuildID          string `yaml:"guild_id"          env:"DISCORD_GUILD_ID"`
	RegisterCommands bool   `yaml:"register_commands" env:"DISCORD_REGISTER_COMMANDS" env-default:"true"`
}

// APIConfig holds dictionary API settings. Timeout bounds only the
// dictionary fetch, not the Discord round trips.
type APIConfig struct {
	DictionaryURL string        `yaml:"dictionary_url" env:"API_DICTIONARY_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en/"`
	Timeout       time.Duration `yaml:"timeout"        env:"API_TIMEOUT"        env-default:"5s"`
}

// LimitsConfig holds display caps for the embed builders.
type LimitsConfig struct {
	MaxDefinitions        int `yaml:"max_definitions"          env:"LIMITS_MAX_DEFINITIONS"          env-default:"3"`
	MaxDefinitionsPerType int `yaml:"max_definitions_per_type" env:"LIMITS_MAX_DEFINITIONS_PER_TYPE" env-default:"2"`
	MaxSynonyms           int `yaml:"max_synonyms"             env:"LIMITS_MAX_SYNONYMS"             env-default:"10"`
	MaxAntonyms           int `yaml:"max_antonyms"             env:"LIMITS_MAX_ANTONYMS"             env-default:"10"`
	MaxSuggestions        int `yaml:"max_suggestions"          env:"LIMITS_MAX_SUGGESTIONS"          env-default:"3"`
}

// FeaturesConfig toggles optional parts of the formatted replies.
type FeaturesConfig struct {
	EphemeralReplies bool `yaml:"ephemeral_replies" env:"FEATURES_EPHEMERAL_REPLIES" env-default:"false"`
	ShowPhonetics    bool `yaml:"show_phonetics"    env:"FEATURES_SHOW_PHONETICS"    env-default:"true"`
	ShowExamples     bool `yaml:"show_examples"     env:"FEATURES_SHOW_EXAMPLES"     env-default:"true"`
	ShowSourceLinks  bool `yaml:"show_source_links" env:"FEATURES_SHOW_SOURCE_LINKS" env-default:"true"`
}

// ColorsConfig holds per-response-kind embed colors.
type ColorsConfig struct {
	Define    HexColor `yaml:"define"    env:"COLORS_DEFINE"    env-default:"#5865F2"`
	Thesaurus HexColor `yaml:"thesaurus" env:"COLORS_THESAURUS" env-default:"#57F287"`
	Error     HexColor `yaml:"error"     env:"COLORS_ERROR"     env-default:"#ED4245"`
}

// SuggestConfig holds spell-suggestion settings. An empty WordListPath
// selects the embedded word list.
type SuggestConfig struct {
	WordListPath string `yaml:"wordlist_path" env:"SUGGEST_WORDLIST_PATH"`
	MaxDistance  int    `yaml:"max_distance"  env:"SUGGEST_MAX_DISTANCE" env-default:"2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}
