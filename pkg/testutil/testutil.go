// Package testutil provides helpers for building and inspecting
// bookmark trees in tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
	"github.com/arthur-debert/bmtidy/pkg/netscape"
)

// Doc wraps a markup body in a minimal valid bookmark document.
func Doc(body string) string {
	return "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n" +
		"<TITLE>Bookmarks</TITLE>\n" +
		"<H1>Bookmarks</H1>\n" +
		"<DL><p>\n" +
		body +
		"</DL><p>\n"
}

// MustParse parses a Netscape bookmark document or fails the test.
func MustParse(t *testing.T, doc string) *bookmarks.Folder {
	t.Helper()
	root, err := netscape.Parse(strings.NewReader(doc))
	require.NoError(t, err, "fixture document must parse")
	return root
}

// LinkTitles returns every link title under root in document order.
func LinkTitles(root *bookmarks.Folder) []string {
	var titles []string
	bookmarks.WalkLinks(root, func(l *bookmarks.Link) {
		titles = append(titles, l.Title)
	})
	return titles
}

// LinkURLs returns every link URL under root in document order.
func LinkURLs(root *bookmarks.Folder) []string {
	var urls []string
	bookmarks.WalkLinks(root, func(l *bookmarks.Link) {
		urls = append(urls, l.URL)
	})
	return urls
}

// FolderNames returns every folder name under root in pre-order,
// excluding the root itself.
func FolderNames(root *bookmarks.Folder) []string {
	var names []string
	bookmarks.WalkFolders(root, func(f *bookmarks.Folder) {
		if f != root {
			names = append(names, f.Name)
		}
	})
	return names
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
