// Package mdtree defines the node tree behind the rendered editing surface.
// A tree is built from Markdown source, edited structurally, and serialized
// back to Markdown. Nodes form a parent/child/sibling structure; inline text
// lives on text-bearing leaves.
package mdtree

// Kind classifies the type of a tree node.
type Kind uint8

// Node kinds for the block and inline constructs the rendered surface edits.
const (
	KindDocument Kind = iota

	// Block-level nodes.
	KindParagraph
	KindHeading
	KindList
	KindListItem
	KindBlockquote
	KindCodeBlock
	KindThematicBreak

	// Inline-level nodes.
	KindText
	KindEmphasis
	KindStrong
	KindCodeSpan
	KindLink
	KindImage
	KindSoftBreak
	KindHardBreak

	// Fallback for constructs the surface does not model.
	KindRaw
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	names := [...]string{
		"Document", "Paragraph", "Heading", "List", "ListItem", "Blockquote",
		"CodeBlock", "ThematicBreak", "Text", "Emphasis", "Strong", "CodeSpan",
		"Link", "Image", "SoftBreak", "HardBreak", "Raw",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Node is a single node in the rendered document tree.
type Node struct {
	Kind Kind

	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Block holds attributes for block-level nodes, nil otherwise.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes, nil otherwise.
	Inline *InlineAttrs
}

// NewNode creates a node of the given kind with no attributes.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// NewDocument creates an empty document root.
func NewDocument() *Node {
	return NewNode(KindDocument)
}

// IsBlock returns true for block-level nodes.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case KindDocument, KindParagraph, KindHeading, KindList, KindListItem,
		KindBlockquote, KindCodeBlock, KindThematicBreak:
		return true
	default:
		return false
	}
}

// IsInline returns true for inline-level nodes.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case KindText, KindEmphasis, KindStrong, KindCodeSpan, KindLink,
		KindImage, KindSoftBreak, KindHardBreak:
		return true
	default:
		return false
	}
}

// IsTextLeaf returns true for leaves that carry editable text and therefore
// occupy width in the flattened rendered text.
func (n *Node) IsTextLeaf() bool {
	switch n.Kind {
	case KindText, KindCodeSpan:
		return true
	case KindCodeBlock:
		return true
	default:
		return false
	}
}

// LeafText returns the editable text of a text-bearing leaf, or nil.
func (n *Node) LeafText() []byte {
	switch n.Kind {
	case KindText, KindCodeSpan:
		if n.Inline != nil {
			return n.Inline.Text
		}
	case KindCodeBlock:
		if n.Block != nil && n.Block.Code != nil {
			return n.Block.Code.Content
		}
	}
	return nil
}

// HasChildren returns true if the node has at least one child.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns the direct children in order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

// AppendChild links child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}
