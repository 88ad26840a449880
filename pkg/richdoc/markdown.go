package richdoc

import (
	"strconv"
	"strings"

	"github.com/yaklabco/markmode/pkg/mdtree"
)

// Markdown serializes a document tree back to Markdown source. Blocks are
// emitted one logical line each, separated by a single newline, matching the
// flattened-text model the position translator counts against.
func Markdown(root *mdtree.Node) string {
	var w mdWriter
	w.blocks(root)
	return w.sb.String()
}

type mdWriter struct {
	sb    strings.Builder
	first bool
}

// blocks emits all block children of parent, separating lines.
func (w *mdWriter) blocks(parent *mdtree.Node) {
	w.first = true
	for child := parent.FirstChild; child != nil; child = child.Next {
		w.block(child)
	}
}

// line starts a new output line unless this is the very first one.
func (w *mdWriter) line() {
	if !w.first {
		w.sb.WriteByte('\n')
	}
	w.first = false
}

func (w *mdWriter) block(n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindHeading:
		w.line()
		level := 1
		if n.Block != nil {
			level = n.Block.HeadingLevel
		}
		w.sb.WriteString(strings.Repeat("#", level))
		w.sb.WriteByte(' ')
		w.inlines(n)

	case mdtree.KindParagraph:
		w.line()
		w.inlines(n)

	case mdtree.KindList:
		w.list(n)

	case mdtree.KindBlockquote:
		for child := n.FirstChild; child != nil; child = child.Next {
			w.line()
			w.sb.WriteString("> ")
			w.inlines(child)
		}

	case mdtree.KindCodeBlock:
		w.codeBlock(n)

	case mdtree.KindThematicBreak:
		w.line()
		w.sb.WriteString("---")

	default:
		// Unknown block: recurse so nested content is not lost.
		for child := n.FirstChild; child != nil; child = child.Next {
			w.block(child)
		}
	}
}

// list emits one line per item, with the item's first block inlined after
// the marker and any further nested blocks following on their own lines.
func (w *mdWriter) list(n *mdtree.Node) {
	attrs := &mdtree.ListAttrs{}
	if n.Block != nil && n.Block.List != nil {
		attrs = n.Block.List
	}

	number := attrs.Start
	if number == 0 {
		number = 1
	}

	for item := n.FirstChild; item != nil; item = item.Next {
		w.line()
		if attrs.Ordered {
			w.sb.WriteString(strconv.Itoa(number))
			w.sb.WriteString(". ")
			number++
		} else {
			bullet := attrs.Bullet
			if bullet == "" {
				bullet = "-"
			}
			w.sb.WriteString(bullet)
			w.sb.WriteByte(' ')
		}

		for i, child := range item.Children() {
			if i == 0 && child.Kind == mdtree.KindParagraph {
				w.inlines(child)
				continue
			}
			w.block(child)
		}
	}
}

func (w *mdWriter) codeBlock(n *mdtree.Node) {
	attrs := &mdtree.CodeAttrs{}
	if n.Block != nil && n.Block.Code != nil {
		attrs = n.Block.Code
	}

	w.line()
	w.sb.WriteString("```")
	w.sb.WriteString(attrs.Info)

	content := string(attrs.Content)
	if content != "" {
		w.sb.WriteByte('\n')
		w.sb.WriteString(strings.TrimSuffix(content, "\n"))
	}
	w.sb.WriteString("\n```")
	w.first = false
}

// inlines emits the inline content of a block node.
func (w *mdWriter) inlines(parent *mdtree.Node) {
	for child := parent.FirstChild; child != nil; child = child.Next {
		w.inline(child)
	}
}

func (w *mdWriter) inline(n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindText:
		if n.Inline != nil {
			w.sb.Write(n.Inline.Text)
		}

	case mdtree.KindEmphasis:
		w.sb.WriteByte('*')
		w.inlines(n)
		w.sb.WriteByte('*')

	case mdtree.KindStrong:
		w.sb.WriteString("**")
		w.inlines(n)
		w.sb.WriteString("**")

	case mdtree.KindCodeSpan:
		w.sb.WriteByte('`')
		if n.Inline != nil {
			w.sb.Write(n.Inline.Text)
		}
		w.sb.WriteByte('`')

	case mdtree.KindLink:
		w.sb.WriteByte('[')
		w.inlines(n)
		w.sb.WriteString("](")
		w.sb.WriteString(linkDest(n))
		w.sb.WriteByte(')')

	case mdtree.KindImage:
		w.sb.WriteString("![")
		w.inlines(n)
		w.sb.WriteString("](")
		w.sb.WriteString(linkDest(n))
		w.sb.WriteByte(')')

	case mdtree.KindSoftBreak:
		w.sb.WriteByte('\n')

	case mdtree.KindHardBreak:
		w.sb.WriteString("\\\n")

	default:
		w.inlines(n)
	}
}

func linkDest(n *mdtree.Node) string {
	if n.Inline != nil && n.Inline.Link != nil {
		return n.Inline.Link.Destination
	}
	return ""
}
