package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is an embed color parsed from "#RRGGBB", "0xRRGGBB" or a plain
// decimal string. It implements the cleanenv setter interface so it can be
// used directly in config struct fields.
type HexColor int

// SetValue parses s into a 24-bit color value.
func (c *HexColor) SetValue(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("color: empty value")
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return fmt.Errorf("color: parse %q: %w", s, err)
	}
	if v < 0 || v > 0xFFFFFF {
		return fmt.Errorf("color: %q out of 24-bit range", s)
	}

	*c = HexColor(v)
	return nil
}

// UnmarshalYAML accepts the same forms as SetValue.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	return c.SetValue(value.Value)
}

func (c HexColor) String() string {
	return fmt.Sprintf("#%06X", int(c))
}
