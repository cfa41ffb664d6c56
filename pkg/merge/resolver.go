package merge

import (
	"strings"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
)

// dedupeKey normalizes a URL for duplicate comparison. Surrounding
// whitespace is trimmed and nothing else: no scheme or host folding,
// no trailing-slash stripping. URLs that differ beyond whitespace are
// distinct URLs.
func dedupeKey(url string) string {
	return strings.TrimSpace(url)
}

// DedupeLinks returns links filtered to the first occurrence of each
// URL, preserving order and metadata of the kept links. Later
// duplicates are dropped silently. The input slice is not modified.
func DedupeLinks(links []*bookmarks.Link) []*bookmarks.Link {
	seen := make(map[string]struct{}, len(links))
	result := make([]*bookmarks.Link, 0, len(links))
	for _, link := range links {
		key := dedupeKey(link.URL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, link)
	}
	return result
}

// dedupeTree removes duplicate links across the whole tree under f in
// document order, first occurrence wins. Returns the number removed.
func dedupeTree(f *bookmarks.Folder, seen map[string]struct{}) int {
	removed := 0
	newChildren := make([]bookmarks.Node, 0, len(f.Children))
	for _, child := range f.Children {
		switch n := child.(type) {
		case *bookmarks.Link:
			key := dedupeKey(n.URL)
			if _, dup := seen[key]; dup {
				removed++
				continue
			}
			seen[key] = struct{}{}
			newChildren = append(newChildren, child)
		case *bookmarks.Folder:
			removed += dedupeTree(n, seen)
			newChildren = append(newChildren, child)
		}
	}
	f.Children = newChildren
	return removed
}
