package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the engine settings of a Context.
type Config struct {
	// AntiAlias is the initial shape anti-aliasing flag of every state.
	AntiAlias bool `yaml:"anti_alias" toml:"anti_alias"`

	// Tolerance is the maximum chordal error of flattened curves, in
	// device pixels.
	Tolerance float64 `yaml:"tolerance" toml:"tolerance"`

	// AtlasWidth and AtlasHeight size the glyph atlas texture.
	AtlasWidth  int `yaml:"atlas_width" toml:"atlas_width"`
	AtlasHeight int `yaml:"atlas_height" toml:"atlas_height"`

	// GlyphCacheSize bounds the number of remembered glyph masks.
	GlyphCacheSize int `yaml:"glyph_cache_size" toml:"glyph_cache_size"`

	// Language is the BCP 47 tag used for text shaping.
	Language string `yaml:"language" toml:"language"`
}

// ErrConfigFormat is returned for config files that are neither YAML nor TOML.
var ErrConfigFormat = errors.New("canvas: unsupported config format")

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		AntiAlias:      true,
		Tolerance:      0.25,
		AtlasWidth:     512,
		AtlasHeight:    512,
		GlyphCacheSize: 1024,
		Language:       "en",
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Tolerance <= 0:
		return fmt.Errorf("canvas: config: tolerance must be positive, got %g", c.Tolerance)
	case c.AtlasWidth <= 0 || c.AtlasHeight <= 0:
		return fmt.Errorf("canvas: config: invalid atlas size %dx%d", c.AtlasWidth, c.AtlasHeight)
	case c.GlyphCacheSize <= 0:
		return fmt.Errorf("canvas: config: glyph cache size must be positive, got %d", c.GlyphCacheSize)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("canvas: config: language %q: %w", c.Language, err)
	}
	return nil
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file. Settings
// missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	switch configFormat(path) {
	case "yaml":
		// #nosec G304 -- Config file path is provided by the user
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("canvas: failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("canvas: failed to parse %s: %w", filepath.Base(path), err)
		}
	case "toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("canvas: failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrConfigFormat, path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in the format chosen by its extension.
func SaveConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	switch configFormat(path) {
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(&cfg); err != nil {
			return fmt.Errorf("canvas: failed to encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("canvas: failed to encode config: %w", err)
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(&cfg); err != nil {
			return fmt.Errorf("canvas: failed to encode config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrConfigFormat, path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("canvas: failed to write config: %w", err)
	}
	return nil
}

func configFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
