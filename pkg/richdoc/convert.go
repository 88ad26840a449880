package richdoc

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/markmode/pkg/langdetect"
	"github.com/yaklabco/markmode/pkg/mdtree"
)

// converter turns a goldmark AST into an mdtree.Node tree.
type converter struct {
	source []byte
}

// convertDocument converts a parsed goldmark document into the tree the
// rendered surface edits.
func (c *converter) convertDocument(gmDoc ast.Node) *mdtree.Node {
	doc := mdtree.NewDocument()
	c.convertChildren(gmDoc, doc)
	return doc
}

// convertChildren converts all children of gmParent under parent. A text
// node with a line-break flag expands into the text leaf followed by a break
// node, so breaks become stopping candidates of their own in the tree.
func (c *converter) convertChildren(gmParent ast.Node, parent *mdtree.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		node := c.convertNode(child)
		if node == nil {
			continue
		}
		mdtree.AppendChild(parent, node)

		if t, ok := child.(*ast.Text); ok {
			if t.HardLineBreak() {
				mdtree.AppendChild(parent, mdtree.NewNode(mdtree.KindHardBreak))
			} else if t.SoftLineBreak() {
				mdtree.AppendChild(parent, mdtree.NewNode(mdtree.KindSoftBreak))
			}
		}
	}
}

// convertNode converts a single goldmark node.
func (c *converter) convertNode(gm ast.Node) *mdtree.Node {
	switch n := gm.(type) {
	case *ast.Heading:
		node := mdtree.NewNode(mdtree.KindHeading)
		node.Block = &mdtree.BlockAttrs{HeadingLevel: n.Level}
		c.convertChildren(gm, node)
		return node

	case *ast.Paragraph, *ast.TextBlock:
		node := mdtree.NewNode(mdtree.KindParagraph)
		c.convertChildren(gm, node)
		return node

	case *ast.List:
		return c.convertList(n)

	case *ast.ListItem:
		node := mdtree.NewNode(mdtree.KindListItem)
		c.convertChildren(gm, node)
		return node

	case *ast.Blockquote:
		node := mdtree.NewNode(mdtree.KindBlockquote)
		c.convertChildren(gm, node)
		return node

	case *ast.FencedCodeBlock:
		return c.convertCodeBlock(n.Info, n.Lines(), false)

	case *ast.CodeBlock:
		return c.convertCodeBlock(nil, n.Lines(), true)

	case *ast.ThematicBreak:
		return mdtree.NewNode(mdtree.KindThematicBreak)

	case *ast.Text:
		return c.convertText(n)

	case *ast.Emphasis:
		return c.convertEmphasis(n)

	case *ast.CodeSpan:
		return c.convertCodeSpan(n)

	case *ast.Link:
		node := mdtree.NewNode(mdtree.KindLink)
		node.Inline = &mdtree.InlineAttrs{Link: &mdtree.LinkAttrs{
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}}
		c.convertChildren(gm, node)
		return node

	case *ast.Image:
		node := mdtree.NewNode(mdtree.KindImage)
		node.Inline = &mdtree.InlineAttrs{Link: &mdtree.LinkAttrs{
			Destination: string(n.Destination),
			Title:       string(n.Title),
		}}
		c.convertChildren(gm, node)
		return node

	case *ast.AutoLink:
		return c.convertAutoLink(n)

	case *ast.String:
		node := mdtree.NewNode(mdtree.KindText)
		node.Inline = &mdtree.InlineAttrs{Text: n.Value}
		return node

	default:
		node := mdtree.NewNode(mdtree.KindRaw)
		c.convertChildren(gm, node)
		return node
	}
}

// convertList maps a goldmark list, preserving bullet or numbering style.
func (c *converter) convertList(list *ast.List) *mdtree.Node {
	node := mdtree.NewNode(mdtree.KindList)

	attrs := &mdtree.ListAttrs{Ordered: list.IsOrdered()}
	if list.IsOrdered() {
		attrs.Start = list.Start
	} else {
		attrs.Bullet = string(list.Marker)
	}

	node.Block = &mdtree.BlockAttrs{List: attrs}
	c.convertChildren(list, node)
	return node
}

// convertCodeBlock maps a code block, collecting the literal content from its
// line segments. Fenced blocks without an info string get a detected
// language so the surface can still report one.
func (c *converter) convertCodeBlock(info *ast.Text, lines *text.Segments, indented bool) *mdtree.Node {
	node := mdtree.NewNode(mdtree.KindCodeBlock)

	var content []byte
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		content = append(content, c.source[seg.Start:seg.Stop]...)
	}

	attrs := &mdtree.CodeAttrs{Content: content, Indented: indented}
	if info != nil {
		attrs.Info = string(info.Value(c.source))
	}
	if attrs.Info == "" && len(content) > 0 {
		attrs.DetectedLang = langdetect.Detect(content)
	}

	node.Block = &mdtree.BlockAttrs{Code: attrs}
	return node
}

// convertText maps a text node. Break flags are handled by convertChildren.
func (c *converter) convertText(t *ast.Text) *mdtree.Node {
	node := mdtree.NewNode(mdtree.KindText)
	node.Inline = &mdtree.InlineAttrs{Text: t.Value(c.source)}
	return node
}

// convertEmphasis maps emphasis, distinguishing strong (level 2).
func (c *converter) convertEmphasis(em *ast.Emphasis) *mdtree.Node {
	kind := mdtree.KindEmphasis
	if em.Level == 2 {
		kind = mdtree.KindStrong
	}

	node := mdtree.NewNode(kind)
	node.Inline = &mdtree.InlineAttrs{EmphasisLevel: em.Level}
	c.convertChildren(em, node)
	return node
}

// convertCodeSpan flattens a code span's text children into one leaf.
func (c *converter) convertCodeSpan(span *ast.CodeSpan) *mdtree.Node {
	var text []byte
	for child := span.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			text = append(text, t.Value(c.source)...)
		}
	}

	node := mdtree.NewNode(mdtree.KindCodeSpan)
	node.Inline = &mdtree.InlineAttrs{Text: text}
	return node
}

// convertAutoLink maps an autolink to a link with a single text child.
func (c *converter) convertAutoLink(al *ast.AutoLink) *mdtree.Node {
	node := mdtree.NewNode(mdtree.KindLink)
	node.Inline = &mdtree.InlineAttrs{Link: &mdtree.LinkAttrs{
		Destination: string(al.URL(c.source)),
	}}

	label := mdtree.NewNode(mdtree.KindText)
	label.Inline = &mdtree.InlineAttrs{Text: al.Label(c.source)}
	mdtree.AppendChild(node, label)

	return node
}
