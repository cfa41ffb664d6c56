package merge

import (
	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
	"github.com/arthur-debert/bmtidy/pkg/logging"
)

// Flatten replaces root's children with every link in the tree in
// depth-first pre-order document order, discarding all folders and
// their names entirely, then drops duplicate URLs (first occurrence
// wins across the whole document). The callers run a global-scope
// Folders pass first, which decides which copy of a URL comes first.
func Flatten(root *bookmarks.Folder) Stats {
	logger := logging.GetLogger("merge")

	var stats Stats
	stats.FoldersRemoved = bookmarks.CountFolders(root)

	var links []*bookmarks.Link
	bookmarks.WalkLinks(root, func(l *bookmarks.Link) {
		links = append(links, l)
	})
	total := len(links)
	links = DedupeLinks(links)
	stats.LinksRemoved = total - len(links)

	children := make([]bookmarks.Node, len(links))
	for i, link := range links {
		children[i] = link
	}
	root.Children = children

	logger.Debug().
		Int("foldersRemoved", stats.FoldersRemoved).
		Int("linksRemoved", stats.LinksRemoved).
		Int("linksKept", len(links)).
		Msg("Flattened tree")
	return stats
}
