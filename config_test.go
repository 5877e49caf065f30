package canvas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"atlas width", func(c *Config) { c.AtlasWidth = 0 }},
		{"atlas height", func(c *Config) { c.AtlasHeight = -1 }},
		{"glyph cache", func(c *Config) { c.GlyphCacheSize = 0 }},
		{"language", func(c *Config) { c.Language = "not a language!" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
			if _, err := New(WithConfig(cfg)); err == nil {
				t.Error("New() accepted an invalid config")
			}
		})
	}
}

func TestConfigSaveLoad(t *testing.T) {
	want := Config{
		AntiAlias:      false,
		Tolerance:      0.5,
		AtlasWidth:     256,
		AtlasHeight:    128,
		GlyphCacheSize: 64,
		Language:       "de",
	}
	for _, name := range []string{"canvas.yaml", "canvas.yml", "canvas.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := SaveConfig(path, want); err != nil {
				t.Fatalf("SaveConfig() error = %v", err)
			}
			got, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if got != want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadConfigPartial(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"partial.yaml", "tolerance: 0.1\n"},
		{"partial.toml", "tolerance = 0.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}
			got, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			want := DefaultConfig()
			want.Tolerance = 0.1
			if got != want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "canvas.json")); !errors.Is(err, ErrConfigFormat) {
		t.Errorf("LoadConfig(.json) error = %v, want ErrConfigFormat", err)
	}
	if err := SaveConfig(filepath.Join(dir, "canvas.ini"), DefaultConfig()); !errors.Is(err, ErrConfigFormat) {
		t.Errorf("SaveConfig(.ini) error = %v, want ErrConfigFormat", err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tolerance: [1, 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig() of malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(invalid, []byte("tolerance = -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(invalid); err == nil {
		t.Error("LoadConfig() with negative tolerance should fail validation")
	}
}
