// Package config handles reading and writing .guessnumber/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Supported values for Config.Language.
const (
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// ErrUnknownLanguage is returned by Validate for an unsupported language.
var ErrUnknownLanguage = errors.New("unknown language")

// Config is the top-level structure for .guessnumber/config.yaml.
// Env tags name the overrides applied by ApplyEnv.
type Config struct {
	Version      int       `yaml:"version"`
	Language     string    `yaml:"language" env:"GUESSNUMBER_LANGUAGE"`
	RevealTarget bool      `yaml:"reveal_target" env:"GUESSNUMBER_REVEAL"`
	Seed         int64     `yaml:"seed" env:"GUESSNUMBER_SEED"` // 0 = time-seeded
	Log          LogConfig `yaml:"log"`
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled" env:"GUESSNUMBER_LOG"`
}

const configDir = ".guessnumber"
const configFile = "config.yaml"

// Dir returns the .guessnumber directory inside the given root.
func Dir(root string) string {
	return filepath.Join(root, configDir)
}

// Path returns the config file path inside the given root.
func Path(root string) string {
	return filepath.Join(root, configDir, configFile)
}

// ReadConfig reads .guessnumber/config.yaml from the given directory.
// Fields absent from the file keep their default values.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .guessnumber/config.yaml in the given directory.
// Creates the .guessnumber/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(dir), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ApplyEnv overlays GUESSNUMBER_* environment variables onto cfg.
// Unset variables leave the existing values untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the config from dir, falling back to defaults when the file
// does not exist, then applies environment overrides. It does not validate:
// callers apply their own overrides first and then call Validate.
func Load(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration values the game cannot use.
func (c *Config) Validate() error {
	switch c.Language {
	case LanguageEnglish, LanguageChinese:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownLanguage, c.Language, LanguageEnglish, LanguageChinese)
	}
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Language: LanguageEnglish,
	}
}
