// Package cliconfig holds the configuration surface of the mailcheck CLI:
// defaults, the optional YAML config file, and the file-under-flag
// precedence rules. The library itself is configured solely through
// mailcheck.Options; nothing here leaks into validation.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved CLI configuration.
type Config struct {
	UnicodeLocal bool   // allow RFC 6531 local parts
	JSON         bool   // emit JSON instead of text
	Lang         string // message language: "en" or "ja"
}

// Default returns the CLI defaults.
func Default() Config {
	return Config{
		UnicodeLocal: true,
		JSON:         false,
		Lang:         "en",
	}
}

// Validate rejects unsupported settings.
func (c Config) Validate() error {
	if c.Lang != "en" && c.Lang != "ja" {
		return fmt.Errorf("unsupported lang %q (want en or ja)", c.Lang)
	}
	return nil
}

// FileConfig mirrors Config with pointer fields so that "absent" and
// "explicitly set" can be told apart when merging.
type FileConfig struct {
	UnicodeLocal *bool   `yaml:"unicode_local"`
	JSON         *bool   `yaml:"json"`
	Lang         *string `yaml:"lang"`
}

// DefaultPath returns $HOME/.mailcheck/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mailcheck", "config.yaml")
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads and decodes a YAML config file.
func Load(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// Apply merges file values into cfg. Flags the user set on the command
// line (tracked in changed, keyed by flag name) win over the file.
func Apply(cfg *Config, fc FileConfig, changed map[string]bool) {
	if fc.UnicodeLocal != nil && !changed["unicode-local"] {
		cfg.UnicodeLocal = *fc.UnicodeLocal
	}
	if fc.JSON != nil && !changed["json"] {
		cfg.JSON = *fc.JSON
	}
	if fc.Lang != nil && !changed["lang"] {
		cfg.Lang = *fc.Lang
	}
}
