// Package bookmarks defines the in-memory tree model for browser
// bookmark exports: an owned tree of folders and links. A tree is
// built once by the parser, transformed in place, and serialized back.
package bookmarks

// Node is one entry in a bookmark tree, either a *Link or a *Folder.
type Node interface {
	isNode()
}

// Attr is a single preserved markup attribute (ADD_DATE, ICON, and
// whatever else the browser wrote). Values are opaque pass-through,
// carried unchanged and never interpreted.
type Attr struct {
	Key string
	Val string
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// Get returns the value for key and whether the key is present.
// Lookup is case-sensitive; the parser stores keys lowercased.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Link is a single bookmark. URL is never empty; the parser drops
// anchors without a usable HREF.
type Link struct {
	Title string
	URL   string
	Attrs Attrs
}

func (*Link) isNode() {}

// Folder is a named container of links and folders. Names may repeat
// anywhere in a tree. The root folder of a tree has an empty name.
type Folder struct {
	Name     string
	Attrs    Attrs
	Children []Node
}

func (*Folder) isNode() {}

// NewRoot returns an empty root folder.
func NewRoot() *Folder {
	return &Folder{}
}

// Links returns the folder's direct Link children in order.
func (f *Folder) Links() []*Link {
	var links []*Link
	for _, child := range f.Children {
		if link, ok := child.(*Link); ok {
			links = append(links, link)
		}
	}
	return links
}

// Folders returns the folder's direct Folder children in order.
func (f *Folder) Folders() []*Folder {
	var folders []*Folder
	for _, child := range f.Children {
		if folder, ok := child.(*Folder); ok {
			folders = append(folders, folder)
		}
	}
	return folders
}

// WalkFolders visits root and every descendant folder in depth-first
// pre-order, left to right.
func WalkFolders(root *Folder, fn func(*Folder)) {
	fn(root)
	for _, child := range root.Children {
		if folder, ok := child.(*Folder); ok {
			WalkFolders(folder, fn)
		}
	}
}

// WalkLinks visits every link under root in depth-first pre-order,
// left to right. This is document order for a parsed tree.
func WalkLinks(root *Folder, fn func(*Link)) {
	for _, child := range root.Children {
		switch n := child.(type) {
		case *Link:
			fn(n)
		case *Folder:
			WalkLinks(n, fn)
		}
	}
}

// CountLinks returns the number of links in the tree under root.
func CountLinks(root *Folder) int {
	count := 0
	WalkLinks(root, func(*Link) { count++ })
	return count
}

// CountFolders returns the number of folders under root, excluding
// root itself.
func CountFolders(root *Folder) int {
	count := -1
	WalkFolders(root, func(*Folder) { count++ })
	return count
}
