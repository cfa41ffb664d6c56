package netscape_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bmtidy/pkg/bookmarks"
	tidyerrors "github.com/arthur-debert/bmtidy/pkg/errors"
	"github.com/arthur-debert/bmtidy/pkg/netscape"
)

const sampleExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten. Do Not Edit! -->
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
  <DT><H3 ADD_DATE="1700000001" PERSONAL_TOOLBAR_FOLDER="true">Work</H3>
  <DL><p>
    <DT><A HREF="https://go.dev" ADD_DATE="1700000002" ICON="data:image/png;base64,Zm9v">Go</A>
    <DT><H3>Projects</H3>
    <DL><p>
      <DT><A HREF="https://pkg.go.dev">pkg.go.dev</A>
    </DL><p>
  </DL><p>
  <DT><A HREF="https://news.ycombinator.com">Hacker News</A>
</DL><p>
`

func TestParseSampleExport(t *testing.T) {
	root, err := netscape.Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, root.Children, 2)

	work, ok := root.Children[0].(*bookmarks.Folder)
	require.True(t, ok, "first child should be the Work folder")
	assert.Equal(t, "Work", work.Name)

	addDate, ok := work.Attrs.Get("add_date")
	require.True(t, ok)
	assert.Equal(t, "1700000001", addDate)
	toolbar, ok := work.Attrs.Get("personal_toolbar_folder")
	require.True(t, ok)
	assert.Equal(t, "true", toolbar)

	require.Len(t, work.Children, 2)
	goLink, ok := work.Children[0].(*bookmarks.Link)
	require.True(t, ok)
	assert.Equal(t, "Go", goLink.Title)
	assert.Equal(t, "https://go.dev", goLink.URL)
	icon, ok := goLink.Attrs.Get("icon")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,Zm9v", icon)

	projects, ok := work.Children[1].(*bookmarks.Folder)
	require.True(t, ok)
	assert.Equal(t, "Projects", projects.Name)
	require.Len(t, projects.Children, 1)

	hn, ok := root.Children[1].(*bookmarks.Link)
	require.True(t, ok)
	assert.Equal(t, "Hacker News", hn.Title)
}

func TestParseUnescapesEntities(t *testing.T) {
	input := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
  <DT><H3>R&amp;D</H3>
  <DL><p>
    <DT><A HREF="https://example.com/?a=1&amp;b=2">Tips &amp; Tricks</A>
  </DL><p>
</DL><p>
`
	root, err := netscape.Parse(strings.NewReader(input))
	require.NoError(t, err)

	folder := root.Folders()[0]
	assert.Equal(t, "R&D", folder.Name)

	link := folder.Links()[0]
	assert.Equal(t, "Tips & Tricks", link.Title)
	assert.Equal(t, "https://example.com/?a=1&b=2", link.URL)
}

func TestParseDropsAnchorsWithoutHref(t *testing.T) {
	input := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
  <DT><A>No destination</A>
  <DT><A HREF="   ">Blank destination</A>
  <DT><A HREF="https://example.com">Kept</A>
</DL><p>
`
	root, err := netscape.Parse(strings.NewReader(input))
	require.NoError(t, err)

	links := root.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "Kept", links[0].Title)
}

func TestParseEmptyListIsValid(t *testing.T) {
	input := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
</DL><p>
`
	root, err := netscape.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, root.Children)
}

func TestParseMalformedInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing doctype",
			input: "<DL><p>\n<DT><A HREF=\"https://example.com\">A</A>\n</DL><p>\n",
		},
		{
			name:  "no bookmark list",
			input: "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n<TITLE>Bookmarks</TITLE>\n",
		},
		{
			name:  "unterminated list",
			input: "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n<DL><p>\n<DT><H3>Work</H3>\n<DL><p>\n<DT><A HREF=\"https://example.com\">A</A>\n</DL><p>\n",
		},
		{
			name:  "close without open",
			input: "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n</DL><p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := netscape.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, root)
			assert.True(t, tidyerrors.IsErrorCode(err, tidyerrors.ErrMalformedInput),
				"expected MALFORMED_INPUT, got %v", err)
		})
	}
}

func TestParseReaderFailure(t *testing.T) {
	readErr := errors.New("disk on fire")
	root, err := netscape.Parse(iotest.ErrReader(readErr))

	require.Error(t, err)
	assert.Nil(t, root)
	assert.True(t, tidyerrors.IsErrorCode(err, tidyerrors.ErrInputRead))
	assert.ErrorIs(t, err, readErr)
}
