// Package config resolves bmtidy settings from built-in defaults, an
// optional user config file and BMTIDY_* environment variables, in that
// order. Later sources override earlier ones key by key.
package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/bmtidy/pkg/merge"
)

// Config holds the resolved bmtidy settings.
type Config struct {
	Merge  MergeConfig  `koanf:"merge" toml:"merge"`
	Output OutputConfig `koanf:"output" toml:"output"`
}

// MergeConfig controls how same-named folders are combined.
type MergeConfig struct {
	// Scope is "sibling" or "global".
	Scope string `koanf:"scope" toml:"scope"`
}

// OutputConfig controls the naming and headers of generated files.
type OutputConfig struct {
	DedupeSuffix string `koanf:"dedupe_suffix" toml:"dedupe_suffix"`
	FlatSuffix   string `koanf:"flat_suffix" toml:"flat_suffix"`
	Title        string `koanf:"title" toml:"title"`
}

// Default returns the configuration compiled into the binary.
func Default() *Config {
	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("embedded defaults are not valid TOML: %v", err))
	}
	return &cfg
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Merge),
		validation.Field(&c.Output),
	)
}

// Validate implements validation.Validatable.
func (m MergeConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Scope, validation.Required, validation.By(checkScope)),
	)
}

// Validate implements validation.Validatable. An empty output suffix would
// make bmtidy overwrite its input file, so both suffixes are required.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.DedupeSuffix, validation.Required),
		validation.Field(&o.FlatSuffix, validation.Required),
	)
}

func checkScope(value interface{}) error {
	s, _ := value.(string)
	if _, err := merge.ParseScope(s); err != nil {
		return fmt.Errorf("must be %q or %q", merge.ScopeSibling, merge.ScopeGlobal)
	}
	return nil
}
