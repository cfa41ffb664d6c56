package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/logging"
	"github.com/arthur-debert/bmtidy/pkg/merge"
	"github.com/arthur-debert/bmtidy/pkg/paths"
)

// envPrefix is stripped from environment variables before they are mapped
// onto config keys.
const envPrefix = "BMTIDY_"

// Load resolves the effective configuration.
//
// Sources are merged in order: baseline defaults, the embedded defaults
// file, the first config file found in paths.ConfigFilePaths, and finally
// BMTIDY_* environment variables.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// Baseline values, used even if the embedded file is broken
	if err := k.Load(confmap.Provider(baselineDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load baseline defaults")
	}

	// Defaults shipped with the binary
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// User config file, if one exists
	if path, ok := findConfigFile(); ok {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config file")
	}

	// Environment overrides. Only the first underscore becomes a key
	// separator, so BMTIDY_OUTPUT_DEDUPE_SUFFIX maps to output.dedupe_suffix.
	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid configuration")
	}

	logger.Trace().
		Str("scope", cfg.Merge.Scope).
		Str("dedupeSuffix", cfg.Output.DedupeSuffix).
		Str("flatSuffix", cfg.Output.FlatSuffix).
		Msg("Configuration resolved")

	return &cfg, nil
}

func baselineDefaults() map[string]interface{} {
	return map[string]interface{}{
		"merge.scope":          string(merge.ScopeSibling),
		"output.dedupe_suffix": ".dedup",
		"output.flat_suffix":   ".flat",
		"output.title":         "Bookmarks",
	}
}

func envToKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// findConfigFile returns the first existing candidate config file.
func findConfigFile() (string, bool) {
	for _, path := range paths.ConfigFilePaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func parserFor(path string) koanf.Parser {
	if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
		return yaml.Parser()
	}
	return toml.Parser()
}
