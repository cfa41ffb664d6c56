package netscape

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
)

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Bookmarks"

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten. Do Not Edit! -->
<TITLE>%s</TITLE>
<H1>%s</H1>
<DL><p>
`

// Render writes the tree as a Netscape bookmark file. The root folder
// itself emits no header; its children become the top-level list.
// Names, titles, and attribute values are HTML-escaped. Attributes are
// written in their preserved order with uppercased keys, HREF first on
// anchors. An empty title falls back to DefaultTitle.
func Render(w io.Writer, root *bookmarks.Folder, title string) error {
	if title == "" {
		title = DefaultTitle
	}

	ew := &errWriter{w: w}
	ew.printf(header, html.EscapeString(title), html.EscapeString(title))
	renderChildren(ew, root, 1)
	ew.printf("</DL><p>\n")
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func renderChildren(ew *errWriter, folder *bookmarks.Folder, indent int) {
	ind := strings.Repeat("  ", indent)
	for _, child := range folder.Children {
		switch n := child.(type) {
		case *bookmarks.Folder:
			ew.printf("%s<DT><H3%s>%s</H3>\n", ind, renderAttrs(n.Attrs), html.EscapeString(n.Name))
			ew.printf("%s<DL><p>\n", ind)
			renderChildren(ew, n, indent+1)
			ew.printf("%s</DL><p>\n", ind)
		case *bookmarks.Link:
			ew.printf("%s<DT><A HREF=\"%s\"%s>%s</A>\n",
				ind, html.EscapeString(n.URL), renderAttrs(n.Attrs), html.EscapeString(n.Title))
		}
	}
}

func renderAttrs(attrs bookmarks.Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(strings.ToUpper(a.Key))
		b.WriteString("=\"")
		b.WriteString(html.EscapeString(a.Val))
		b.WriteString("\"")
	}
	return b.String()
}
