package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/tokenizer"
)

// Settings is the on-disk configuration. TOML (.toml) and YAML
// (.yaml/.yml) files are supported; unset fields keep their defaults.
type Settings struct {
	Separator       string `toml:"separator" yaml:"separator"`
	CustomSeparator string `toml:"custom_separator" yaml:"custom_separator"`

	// RemoveEmpty is a pointer so a file can explicitly disable the
	// default of true.
	RemoveEmpty *bool `toml:"remove_empty" yaml:"remove_empty"`

	Lowercase     bool   `toml:"lowercase" yaml:"lowercase"`
	Encoding      string `toml:"encoding" yaml:"encoding"`
	TokenizerMode string `toml:"tokenizer_mode" yaml:"tokenizer_mode"`

	// Default demand parameters for capacity projections.
	UsersPerDay      float64 `toml:"users_per_day" yaml:"users_per_day"`
	QuestionsPerUser float64 `toml:"questions_per_user_per_day" yaml:"questions_per_user_per_day"`
}

// LoadSettings reads a settings file, choosing the decoder by extension.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q (want .toml, .yaml, or .yml)", ext)
	}
	return &s, nil
}

// Config applies the settings over DefaultConfig and validates the
// outcome.
func (s *Settings) Config() (analysis.Config, error) {
	cfg := analysis.DefaultConfig()
	if s.Separator != "" {
		cfg.Separator = analysis.SeparatorMode(s.Separator)
	}
	if s.CustomSeparator != "" {
		cfg.CustomSeparator = s.CustomSeparator
	}
	if s.RemoveEmpty != nil {
		cfg.RemoveEmpty = *s.RemoveEmpty
	}
	if s.Lowercase {
		cfg.Lowercase = true
	}
	if s.Encoding != "" {
		cfg.Encoding = s.Encoding
	}
	if s.TokenizerMode != "" {
		cfg.TokenizerMode = tokenizer.Mode(s.TokenizerMode)
	}
	if err := cfg.Validate(); err != nil {
		return analysis.Config{}, err
	}
	return cfg, nil
}
