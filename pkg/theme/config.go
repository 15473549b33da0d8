package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-orbit/orbit/pkg/graphics"
)

// ErrUnknownColor is returned when a color value is neither a hex
// literal nor a recognized SVG 1.1 color name.
var ErrUnknownColor = errors.New("unknown color")

// Config represents the optional orbit.yaml configuration.
type Config struct {
	Fab FabConfig `yaml:"fab"`
}

// FabConfig overrides parts of the default fab theme. Unset fields
// keep their defaults.
type FabConfig struct {
	ButtonSize float64      `yaml:"button_size,omitempty"`
	Fill       string       `yaml:"fill,omitempty"`
	Icons      IconsConfig  `yaml:"icons,omitempty"`
	Colors     ColorsConfig `yaml:"colors,omitempty"`
	Spring     SpringConfig `yaml:"spring,omitempty"`
}

// IconsConfig names the glyphs for the main button and satellites.
type IconsConfig struct {
	Main   string `yaml:"main,omitempty"`
	First  string `yaml:"first,omitempty"`
	Second string `yaml:"second,omitempty"`
	Third  string `yaml:"third,omitempty"`
}

// ColorsConfig sets the base colors, as hex literals or SVG color names.
type ColorsConfig struct {
	Main   string `yaml:"main,omitempty"`
	First  string `yaml:"first,omitempty"`
	Second string `yaml:"second,omitempty"`
	Third  string `yaml:"third,omitempty"`
}

// SpringConfig tunes the expand and collapse motion.
type SpringConfig struct {
	Response      float64 `yaml:"response,omitempty"`
	Damping       float64 `yaml:"damping,omitempty"`
	BlendDuration float64 `yaml:"blend_duration,omitempty"`
}

// Parse decodes YAML configuration and applies it on top of the
// default fab theme.
func Parse(data []byte) (*FabThemeData, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fab config: %w", err)
	}
	return cfg.Fab.apply(DefaultFabTheme())
}

// LoadFile reads and parses a YAML theme file.
func LoadFile(path string) (*FabThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// LoadOptional reads orbit.yaml from dir if present. A missing file
// yields the default theme.
func LoadOptional(dir string) (*FabThemeData, error) {
	path := filepath.Join(dir, "orbit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultFabTheme(), nil
		}
		return nil, fmt.Errorf("failed to read orbit.yaml: %w", err)
	}
	return Parse(data)
}

func (c FabConfig) apply(base *FabThemeData) (*FabThemeData, error) {
	out := base.Copy()

	if c.ButtonSize > 0 {
		out.ButtonSize = c.ButtonSize
	}
	switch strings.ToLower(strings.TrimSpace(c.Fill)) {
	case "":
	case "solid":
		out.Fill = graphics.FillSolid
	case "gradient":
		out.Fill = graphics.FillGradient
	default:
		return nil, fmt.Errorf("invalid fill %q (want solid or gradient)", c.Fill)
	}

	if c.Icons.Main != "" {
		out.MainIcon = c.Icons.Main
	}
	if c.Icons.First != "" {
		out.FirstIcon = c.Icons.First
	}
	if c.Icons.Second != "" {
		out.SecondIcon = c.Icons.Second
	}
	if c.Icons.Third != "" {
		out.ThirdIcon = c.Icons.Third
	}

	for _, entry := range []struct {
		value string
		dst   *graphics.Color
	}{
		{c.Colors.Main, &out.MainColor},
		{c.Colors.First, &out.FirstColor},
		{c.Colors.Second, &out.SecondColor},
		{c.Colors.Third, &out.ThirdColor},
	} {
		if entry.value == "" {
			continue
		}
		color, err := ParseColor(entry.value)
		if err != nil {
			return nil, err
		}
		*entry.dst = color
	}

	if c.Spring.Response > 0 {
		out.Spring.Response = c.Spring.Response
	}
	if c.Spring.Damping > 0 {
		out.Spring.Damping = c.Spring.Damping
	}
	if c.Spring.BlendDuration > 0 {
		out.Spring.BlendDuration = c.Spring.BlendDuration
	}

	return out, nil
}

// ParseColor converts a "#RRGGBB" or "#AARRGGBB" hex literal, or an
// SVG 1.1 color name such as "steelblue", into a Color.
func ParseColor(value string) (graphics.Color, error) {
	s := strings.TrimSpace(value)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 6:
			hex = "FF" + hex
		case 8:
		default:
			return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", value)
		}
		parsed, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", value, err)
		}
		return graphics.Color(parsed), nil
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return graphics.RGB(named.R, named.G, named.B), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, value)
}
