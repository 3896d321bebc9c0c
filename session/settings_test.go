package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/tokencap/analysis"
	"github.com/randalmurphal/tokencap/tokenizer"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_TOML(t *testing.T) {
	path := writeSettings(t, "settings.toml", `
separator = "semicolon"
lowercase = true
encoding = "gpt-4"
tokenizer_mode = "heuristic"
users_per_day = 1500
questions_per_user_per_day = 5
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	cfg, err := s.Config()
	require.NoError(t, err)

	assert.Equal(t, analysis.SeparatorSemicolon, cfg.Separator)
	assert.True(t, cfg.Lowercase)
	assert.Equal(t, "gpt-4", cfg.Encoding)
	assert.Equal(t, tokenizer.ModeHeuristic, cfg.TokenizerMode)
	assert.Equal(t, 1500.0, s.UsersPerDay)
	assert.Equal(t, 5.0, s.QuestionsPerUser)
}

func TestLoadSettings_YAML(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `
separator: custom
custom_separator: "::"
remove_empty: false
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	cfg, err := s.Config()
	require.NoError(t, err)

	assert.Equal(t, analysis.SeparatorCustom, cfg.Separator)
	assert.Equal(t, "::", cfg.CustomSeparator)
	assert.False(t, cfg.RemoveEmpty, "explicit false must override the default")
}

func TestSettings_DefaultsPreserved(t *testing.T) {
	path := writeSettings(t, "settings.toml", `lowercase = true`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	cfg, err := s.Config()
	require.NoError(t, err)

	defaults := analysis.DefaultConfig()
	assert.Equal(t, defaults.Separator, cfg.Separator)
	assert.Equal(t, defaults.RemoveEmpty, cfg.RemoveEmpty)
	assert.Equal(t, defaults.Encoding, cfg.Encoding)
	assert.True(t, cfg.Lowercase)
}

func TestLoadSettings_UnsupportedExtension(t *testing.T) {
	path := writeSettings(t, "settings.ini", `separator=pipe`)

	s, err := LoadSettings(path)
	assert.Nil(t, s)
	assert.ErrorContains(t, err, "unsupported settings format")
}

func TestLoadSettings_Missing(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestSettings_InvalidValues(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `separator: tabs`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	_, err = s.Config()
	require.Error(t, err)
	assert.True(t, analysis.IsValidation(err))
}
