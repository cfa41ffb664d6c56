// Package netscape reads and writes the NETSCAPE-Bookmark-file-1
// format that browsers use for bookmark import and export. Parsing
// builds a bookmarks tree; rendering turns a tree back into markup.
package netscape

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
	"github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/logging"
)

// Doctype marks a Netscape bookmark export. Parse rejects documents
// that do not declare it.
const Doctype = "NETSCAPE-Bookmark-file-1"

// pendingFolder is an <H3> header waiting for its <DL> list to open.
type pendingFolder struct {
	name  string
	attrs bookmarks.Attrs
}

// Parse reads a Netscape bookmark export into a tree. The grammar is
// loose HTML: <DT><H3 attrs>name</H3> followed by a nested <DL><p>
// list opens a folder, <DT><A HREF=... attrs>title</A> adds a link,
// </DL> closes the innermost folder. Anchors without a usable HREF
// are dropped. Structural problems (missing doctype, no bookmark
// list, unbalanced lists) yield an ErrMalformedInput coded error.
func Parse(r io.Reader) (*bookmarks.Folder, error) {
	logger := logging.GetLogger("netscape")

	root := bookmarks.NewRoot()
	stack := []*bookmarks.Folder{root}

	var (
		sawDoctype bool
		sawRootDL  bool
		openLists  []bool // one entry per open <DL>; true if it pushed a folder
		pending    *pendingFolder
		collecting string // "h3" or "a" while buffering element text
		textBuf    strings.Builder
		curAttrs   bookmarks.Attrs
		curHref    string
		dropped    int
	)

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read bookmark markup")
			}
			if !sawDoctype {
				return nil, errors.Newf(errors.ErrMalformedInput, "not a bookmark file: missing %s doctype", Doctype)
			}
			if !sawRootDL {
				return nil, errors.New(errors.ErrMalformedInput, "not a bookmark file: no bookmark list found")
			}
			if len(openLists) > 0 {
				return nil, errors.Newf(errors.ErrMalformedInput, "unterminated bookmark list: %d <DL> left open", len(openLists))
			}
			logger.Debug().
				Int("folders", bookmarks.CountFolders(root)).
				Int("links", bookmarks.CountLinks(root)).
				Int("droppedAnchors", dropped).
				Msg("Parsed bookmark file")
			return root, nil

		case html.DoctypeToken:
			if strings.Contains(strings.ToLower(string(z.Text())), strings.ToLower(Doctype)) {
				sawDoctype = true
			}

		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3":
				collecting = "h3"
				textBuf.Reset()
				curAttrs = nil
				for _, a := range tok.Attr {
					curAttrs = append(curAttrs, bookmarks.Attr{Key: a.Key, Val: a.Val})
				}
			case "a":
				collecting = "a"
				textBuf.Reset()
				curAttrs = nil
				curHref = ""
				for _, a := range tok.Attr {
					if a.Key == "href" {
						curHref = a.Val
						continue
					}
					curAttrs = append(curAttrs, bookmarks.Attr{Key: a.Key, Val: a.Val})
				}
			case "dl":
				pushed := false
				if pending != nil {
					folder := &bookmarks.Folder{Name: pending.name, Attrs: pending.attrs}
					top := stack[len(stack)-1]
					top.Children = append(top.Children, folder)
					stack = append(stack, folder)
					pending = nil
					pushed = true
				}
				sawRootDL = true
				openLists = append(openLists, pushed)
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3":
				if collecting == "h3" {
					pending = &pendingFolder{name: strings.TrimSpace(textBuf.String()), attrs: curAttrs}
					collecting = ""
					curAttrs = nil
				}
			case "a":
				if collecting == "a" {
					title := strings.TrimSpace(textBuf.String())
					if strings.TrimSpace(curHref) == "" {
						dropped++
						logger.Debug().Str("title", title).Msg("Dropping anchor without HREF")
					} else {
						top := stack[len(stack)-1]
						top.Children = append(top.Children, &bookmarks.Link{
							Title: title,
							URL:   curHref,
							Attrs: curAttrs,
						})
					}
					collecting = ""
					curAttrs = nil
					curHref = ""
				}
			case "dl":
				if len(openLists) == 0 {
					return nil, errors.New(errors.ErrMalformedInput, "unbalanced bookmark list: </DL> without matching <DL>")
				}
				if openLists[len(openLists)-1] {
					stack = stack[:len(stack)-1]
				}
				openLists = openLists[:len(openLists)-1]
				// A header whose list never opened is dropped with its list scope
				pending = nil
			}

		case html.TextToken:
			if collecting != "" {
				textBuf.Write(z.Text())
			}
		}
	}
}
