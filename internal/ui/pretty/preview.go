package pretty

import (
	"strings"

	"github.com/yaklabco/markmode/pkg/mdtree"
)

// RenderTree renders the content-only projection of a document tree with
// terminal styling: one line per line-producing block, syntax markers gone,
// trailing code-block newlines trimmed for display.
func (s *Styles) RenderTree(root *mdtree.Node) string {
	if root == nil {
		return ""
	}

	r := &treeRenderer{styles: s}
	for _, block := range root.Children() {
		r.block(block)
	}
	return r.sb.String()
}

type treeRenderer struct {
	styles *Styles
	sb     strings.Builder
	wrote  bool
}

func (r *treeRenderer) line() {
	if r.wrote {
		r.sb.WriteByte('\n')
	}
	r.wrote = true
}

func (r *treeRenderer) block(n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindHeading:
		r.line()
		r.sb.WriteString(r.styles.Heading.Render(inlineText(n)))

	case mdtree.KindParagraph:
		r.line()
		r.inlines(n, nil)

	case mdtree.KindList, mdtree.KindListItem, mdtree.KindBlockquote:
		for _, c := range n.Children() {
			r.block(c)
		}

	case mdtree.KindCodeBlock:
		r.line()
		if n.Block != nil && n.Block.Code != nil {
			content := strings.TrimSuffix(string(n.Block.Code.Content), "\n")
			r.sb.WriteString(r.styles.Code.Render(content))
		}

	case mdtree.KindThematicBreak:
		r.line()
		r.sb.WriteString(r.styles.Rule.Render(strings.Repeat("─", 3)))
	}
}

func (r *treeRenderer) inlines(n *mdtree.Node, style *func(...string) string) {
	for _, c := range n.Children() {
		r.inline(c, style)
	}
}

func (r *treeRenderer) inline(n *mdtree.Node, style *func(...string) string) {
	render := func(text string) string {
		if style != nil {
			return (*style)(text)
		}
		return text
	}

	switch n.Kind {
	case mdtree.KindText:
		r.sb.WriteString(render(textOf(n)))
	case mdtree.KindStrong:
		f := r.styles.Strong.Render
		r.inlines(n, &f)
	case mdtree.KindEmphasis:
		f := r.styles.Emphasis.Render
		r.inlines(n, &f)
	case mdtree.KindCodeSpan:
		r.sb.WriteString(r.styles.Code.Render(textOf(n)))
	case mdtree.KindLink:
		f := r.styles.Link.Render
		r.inlines(n, &f)
	case mdtree.KindImage:
		// Invisible in the rendered projection.
	case mdtree.KindSoftBreak, mdtree.KindHardBreak:
		r.sb.WriteByte('\n')
	default:
		r.inlines(n, style)
	}
}

// inlineText collects the plain text of a node's inline children.
func inlineText(n *mdtree.Node) string {
	var sb strings.Builder
	for _, c := range n.Children() {
		collectText(c, &sb)
	}
	return sb.String()
}

func collectText(n *mdtree.Node, sb *strings.Builder) {
	if n.Kind == mdtree.KindImage {
		return
	}
	if n.IsTextLeaf() {
		sb.Write(n.LeafText())
		return
	}
	if n.Kind == mdtree.KindSoftBreak || n.Kind == mdtree.KindHardBreak {
		sb.WriteByte('\n')
		return
	}
	for _, c := range n.Children() {
		collectText(c, sb)
	}
}

func textOf(n *mdtree.Node) string {
	return string(n.LeafText())
}
