package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks settings that cannot be expressed through struct tags.
// A validation failure is fatal at startup.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Discord.Token) == "" {
		errs = append(errs, errors.New("DISCORD_TOKEN is not set"))
	}
	if c.API.DictionaryURL == "" {
		errs = append(errs, errors.New("api.dictionary_url must not be empty"))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}

	limits := map[string]int{
		"limits.max_definitions":          c.Limits.MaxDefinitions,
		"limits.max_definitions_per_type": c.Limits.MaxDefinitionsPerType,
		"limits.max_synonyms":             c.Limits.MaxSynonyms,
		"limits.max_antonyms":             c.Limits.MaxAntonyms,
		"limits.max_suggestions":          c.Limits.MaxSuggestions,
	}
	for name, v := range limits {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	if c.Suggest.MaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("suggest.max_distance must be positive, got %d", c.Suggest.MaxDistance))
	}

	return errors.Join(errs...)
}
