// Package paths centralizes filename and directory handling: derived
// output names and XDG-compliant configuration locations.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory lookup
	EnvConfigDir = "BMTIDY_CONFIG_DIR"
)

const (
	// AppDirName is the directory name for bmtidy files under XDG roots
	AppDirName = "bmtidy"
)

// OutputPath derives an output filename from the input path by
// inserting suffix before the extension: bookmarks.html with suffix
// ".dedup" becomes bookmarks.dedup.html. Inputs without an extension
// get the suffix appended.
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

// ConfigDir returns the directory searched for the user config file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePaths returns the candidate config file locations in
// lookup order. The first existing file is loaded.
func ConfigFilePaths() []string {
	dir := ConfigDir()
	return []string{
		filepath.Join(dir, "bmtidy.toml"),
		filepath.Join(dir, "bmtidy.yaml"),
	}
}

// DefaultConfigFile returns where gen-config writes a new config file.
func DefaultConfigFile() string {
	return ConfigFilePaths()[0]
}
