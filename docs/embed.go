// Package docs ships the bmtidy help topics embedded in the binary.
package docs

import (
	"embed"
	"io/fs"
)

//go:embed help
var helpFiles embed.FS

// HelpTopics returns the filesystem holding the topic files.
func HelpTopics() fs.FS {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return helpFiles
	}
	return sub
}
