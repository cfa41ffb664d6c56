package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/paths"
)

// useConfigDir points bmtidy at a temp config dir so the host's real
// config files never leak into tests.
func useConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	return dir
}

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	useConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sibling", cfg.Merge.Scope)
	assert.Equal(t, ".dedup", cfg.Output.DedupeSuffix)
	assert.Equal(t, ".flat", cfg.Output.FlatSuffix)
	assert.Equal(t, "Bookmarks", cfg.Output.Title)
}

func TestDefaultMatchesLoad(t *testing.T) {
	useConfigDir(t)

	loaded, err := Load()
	require.NoError(t, err)

	// The embedded file and the baseline map must agree, otherwise
	// Default() and Load() drift apart.
	assert.Equal(t, Default(), loaded)
}

func TestLoadUserFileTOML(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.toml", "[merge]\nscope = \"global\"\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "global", cfg.Merge.Scope)
	// Keys the file does not mention keep their defaults.
	assert.Equal(t, ".dedup", cfg.Output.DedupeSuffix)
	assert.Equal(t, "Bookmarks", cfg.Output.Title)
}

func TestLoadUserFileYAML(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.yaml", "output:\n  title: My Links\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "My Links", cfg.Output.Title)
	assert.Equal(t, "sibling", cfg.Merge.Scope)
}

func TestLoadPrefersTOMLOverYAML(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.toml", "[output]\ntitle = \"From TOML\"\n")
	writeConfigFile(t, dir, "bmtidy.yaml", "output:\n  title: From YAML\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "From TOML", cfg.Output.Title)
}

func TestLoadEnvOverrides(t *testing.T) {
	useConfigDir(t)
	t.Setenv("BMTIDY_MERGE_SCOPE", "global")
	t.Setenv("BMTIDY_OUTPUT_DEDUPE_SUFFIX", ".clean")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "global", cfg.Merge.Scope)
	assert.Equal(t, ".clean", cfg.Output.DedupeSuffix)
	assert.Equal(t, ".flat", cfg.Output.FlatSuffix)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.toml", "[merge]\nscope = \"global\"\n")
	t.Setenv("BMTIDY_MERGE_SCOPE", "sibling")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sibling", cfg.Merge.Scope)
}

func TestLoadRejectsInvalidScope(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.toml", "[merge]\nscope = \"everywhere\"\n")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestLoadRejectsEmptySuffix(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.toml", "[output]\ndedupe_suffix = \"\"\n")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestLoadMalformedConfigFile(t *testing.T) {
	dir := useConfigDir(t)
	writeConfigFile(t, dir, "bmtidy.toml", "[merge\nscope =\n")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestEnvToKey(t *testing.T) {
	tests := []struct {
		env string
		key string
	}{
		{"BMTIDY_MERGE_SCOPE", "merge.scope"},
		{"BMTIDY_OUTPUT_DEDUPE_SUFFIX", "output.dedupe_suffix"},
		{"BMTIDY_OUTPUT_FLAT_SUFFIX", "output.flat_suffix"},
		{"BMTIDY_OUTPUT_TITLE", "output.title"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, envToKey(tt.env))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "global scope is valid",
			mutate:  func(c *Config) { c.Merge.Scope = "global" },
			wantErr: false,
		},
		{
			name:    "unknown scope",
			mutate:  func(c *Config) { c.Merge.Scope = "deep" },
			wantErr: true,
		},
		{
			name:    "empty scope",
			mutate:  func(c *Config) { c.Merge.Scope = "" },
			wantErr: true,
		},
		{
			name:    "empty flat suffix",
			mutate:  func(c *Config) { c.Output.FlatSuffix = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
