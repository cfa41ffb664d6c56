package config

import (
	"errors"

	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the content of the embedded defaults file.
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
