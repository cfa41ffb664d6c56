// Package merge implements the bookmark tree transforms: duplicate
// link removal, same-named folder merging under a sibling or global
// scope, and flattening a tree into a single folder of links.
// Transforms mutate the tree in place and return no errors; they are
// total over any well-formed tree.
package merge

import (
	"strings"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/logging"
)

// Scope selects which same-named folders are eligible to merge.
type Scope string

const (
	// ScopeSibling merges folders only when they share a direct parent.
	ScopeSibling Scope = "sibling"
	// ScopeGlobal merges same-named folders anywhere in the tree.
	ScopeGlobal Scope = "global"
)

func (s Scope) String() string {
	return string(s)
}

// ParseScope validates a scope name from a flag or config value.
func ParseScope(value string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(value))) {
	case ScopeSibling:
		return ScopeSibling, nil
	case ScopeGlobal:
		return ScopeGlobal, nil
	}
	return "", errors.Newf(errors.ErrInvalidArgs, "invalid merge scope %q (want %q or %q)", value, ScopeSibling, ScopeGlobal)
}

// Stats reports what a transform changed.
type Stats struct {
	FoldersMerged  int // duplicate folders absorbed into their first occurrence
	FoldersRemoved int // folders discarded by flattening
	LinksRemoved   int // duplicate links dropped
}

// Folders merges same-named folders under the given scope, then
// removes duplicate links across the entire tree in document order, so
// the result has globally unique URLs regardless of scope. Folder name
// matching is case-sensitive and exact. Empty folders are kept.
func Folders(root *bookmarks.Folder, scope Scope) Stats {
	logger := logging.GetLogger("merge")

	var stats Stats
	switch scope {
	case ScopeGlobal:
		stats.FoldersMerged = mergeGlobal(root)
	default:
		stats.FoldersMerged = mergeSiblings(root)
	}
	stats.LinksRemoved = dedupeTree(root, make(map[string]struct{}))

	logger.Debug().
		Str("scope", scope.String()).
		Int("foldersMerged", stats.FoldersMerged).
		Int("linksRemoved", stats.LinksRemoved).
		Msg("Merged folders")
	return stats
}

// mergeSiblings merges same-named direct child folders, bottom-up so
// nested duplicate names resolve before their parents. Returns the
// number of absorbed folders.
func mergeSiblings(f *bookmarks.Folder) int {
	merged := 0
	for _, child := range f.Folders() {
		merged += mergeSiblings(child)
	}
	return merged + collapseChildGroups(f)
}

// collapseChildGroups merges each group of same-named direct child
// folders of f into the group's first member, which keeps its name,
// metadata, and position; the members' children are concatenated in
// group-traversal order. Concatenation can bring new same-named
// siblings together one level down, so folders that absorbed children
// are collapsed again.
func collapseChildGroups(f *bookmarks.Folder) int {
	merged := 0
	keepers := make(map[string]*bookmarks.Folder)
	absorbed := make(map[*bookmarks.Folder]bool)
	newChildren := make([]bookmarks.Node, 0, len(f.Children))

	for _, child := range f.Children {
		folder, ok := child.(*bookmarks.Folder)
		if !ok {
			newChildren = append(newChildren, child)
			continue
		}
		if keeper, seen := keepers[folder.Name]; seen {
			keeper.Children = append(keeper.Children, folder.Children...)
			absorbed[keeper] = true
			merged++
			continue
		}
		keepers[folder.Name] = folder
		newChildren = append(newChildren, folder)
	}
	if merged == 0 {
		return 0
	}
	f.Children = newChildren

	for _, child := range f.Children {
		if folder, ok := child.(*bookmarks.Folder); ok && absorbed[folder] {
			merged += collapseChildGroups(folder)
		}
	}
	return merged
}

// mergeGlobal merges all same-named folders anywhere under root into
// the name's first occurrence in document order. An ancestor always
// precedes its descendants in pre-order, so a same-named nested folder
// collapses into its ancestor. Returns the number of absorbed folders.
func mergeGlobal(root *bookmarks.Folder) int {
	merged := 0
	for {
		var names []string
		groups := make(map[string][]*bookmarks.Folder)
		bookmarks.WalkFolders(root, func(f *bookmarks.Folder) {
			if f == root {
				return
			}
			if _, ok := groups[f.Name]; !ok {
				names = append(names, f.Name)
			}
			groups[f.Name] = append(groups[f.Name], f)
		})

		doomed := make(map[*bookmarks.Folder]bool)
		round := 0
		for _, name := range names {
			group := groups[name]
			if len(group) < 2 {
				continue
			}
			keeper := group[0]
			for _, dup := range group[1:] {
				keeper.Children = append(keeper.Children, dup.Children...)
				dup.Children = nil
				doomed[dup] = true
				round++
			}
		}
		if round == 0 {
			return merged
		}
		merged += round
		removeFolders(root, doomed)
	}
}

// removeFolders drops the doomed folder nodes, wherever the merge
// round left them. Doomed folders have already handed their children
// to a keeper.
func removeFolders(f *bookmarks.Folder, doomed map[*bookmarks.Folder]bool) {
	newChildren := make([]bookmarks.Node, 0, len(f.Children))
	for _, child := range f.Children {
		if folder, ok := child.(*bookmarks.Folder); ok {
			if doomed[folder] {
				continue
			}
			removeFolders(folder, doomed)
		}
		newChildren = append(newChildren, child)
	}
	f.Children = newChildren
}
