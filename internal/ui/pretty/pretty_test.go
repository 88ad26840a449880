package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/markmode/pkg/mdtree"
	"github.com/yaklabco/markmode/pkg/offsetmap"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestRenderTree_Plain(t *testing.T) {
	heading := mdtree.NewNode(mdtree.KindHeading)
	heading.Block = &mdtree.BlockAttrs{HeadingLevel: 1}
	ht := mdtree.NewNode(mdtree.KindText)
	ht.Inline = &mdtree.InlineAttrs{Text: []byte("Title")}
	mdtree.AppendChild(heading, ht)

	strong := mdtree.NewNode(mdtree.KindStrong)
	st := mdtree.NewNode(mdtree.KindText)
	st.Inline = &mdtree.InlineAttrs{Text: []byte("bold")}
	mdtree.AppendChild(strong, st)
	para := mdtree.NewNode(mdtree.KindParagraph)
	mdtree.AppendChild(para, strong)

	root := mdtree.NewDocument()
	mdtree.AppendChild(root, heading)
	mdtree.AppendChild(root, para)

	// With styling disabled the output is exactly the flat rendered text.
	out := NewStyles(false).RenderTree(root)
	assert.Equal(t, "Title\nbold", out)
}

func TestRenderTree_ImageInvisible(t *testing.T) {
	img := mdtree.NewNode(mdtree.KindImage)
	alt := mdtree.NewNode(mdtree.KindText)
	alt.Inline = &mdtree.InlineAttrs{Text: []byte("alt")}
	mdtree.AppendChild(img, alt)

	para := mdtree.NewNode(mdtree.KindParagraph)
	txt := mdtree.NewNode(mdtree.KindText)
	txt.Inline = &mdtree.InlineAttrs{Text: []byte("before ")}
	mdtree.AppendChild(para, txt)
	mdtree.AppendChild(para, img)

	root := mdtree.NewDocument()
	mdtree.AppendChild(root, para)

	out := NewStyles(false).RenderTree(root)
	assert.Equal(t, "before ", out)
}

func TestRenderMapTable(t *testing.T) {
	const text = "# Hi"
	m := offsetmap.BuildPositionMap(text)

	out := NewStyles(false).RenderMapTable(text, m)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// Header, separator, one row per raw byte.
	assert.Len(t, lines, 2+len(text))
	assert.Contains(t, lines[2], "syntax")
	assert.Contains(t, lines[4], "content")
}

func TestFormatOffsetReport(t *testing.T) {
	out := NewStyles(false).FormatOffsetReport("raw", 4, 2)
	assert.Contains(t, out, "raw offset 4")
	assert.Contains(t, out, "2")
}
