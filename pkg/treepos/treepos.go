// Package treepos converts between structural positions inside a rendered
// document tree and offsets into its flattened rendered text.
//
// The rendered document is a tree of block and inline nodes, but the offset
// mapper only understands flat offsets; this package is the bridge. The two
// coordinate spaces:
//
//   - Structural space counts one unit for entering any block node, the
//     length of every text-bearing leaf, and one unit per line break node.
//     A structural position is meaningful only for the tree instance it was
//     computed against.
//   - Flat space is the rendered text: text-bearing leaves contribute their
//     length, every line-producing block after the first contributes one
//     virtual newline, and break nodes contribute one character.
//
// Counting block boundaries as single characters keeps this mapping
// consistent with how the rendered text is defined (one logical line per
// block); without it cursor conversions would drift by one per boundary.
package treepos

import "github.com/yaklabco/markmode/pkg/mdtree"

// Index holds the two parallel position maps for one tree snapshot.
// Both arrays are monotonically non-decreasing.
type Index struct {
	// StructToFlat maps each structural unit to its flat offset.
	StructToFlat []int

	// FlatToStruct maps each flat offset to its structural position.
	FlatToStruct []int
}

// FlatLen returns the length of the flattened rendered text.
func (x Index) FlatLen() int {
	return len(x.FlatToStruct) - 1
}

// StructLen returns the end structural position of the document.
func (x Index) StructLen() int {
	return len(x.StructToFlat) - 1
}

// Build walks the tree once and produces the full bidirectional index.
func Build(root *mdtree.Node) Index {
	w := &walker{}
	if root != nil {
		w.blocks(root)
	}

	w.structToFlat = append(w.structToFlat, w.flat)
	w.flatToStruct = append(w.flatToStruct, w.str)

	return Index{StructToFlat: w.structToFlat, FlatToStruct: w.flatToStruct}
}

// FlatOffset converts a structural position to a flat rendered offset.
// Out-of-range positions clamp, they never fail.
func FlatOffset(root *mdtree.Node, structural int) int {
	x := Build(root)
	if structural <= 0 {
		return 0
	}
	if structural >= len(x.StructToFlat) {
		return x.FlatLen()
	}
	return x.StructToFlat[structural]
}

// StructuralPosition converts a flat rendered offset to a structural
// position. Offsets past the content clamp to the document end position.
func StructuralPosition(root *mdtree.Node, flat int) int {
	x := Build(root)
	if flat < 0 {
		flat = 0
	}
	if flat >= len(x.FlatToStruct) {
		return x.StructLen()
	}
	// Note: the first flat character sits inside the first block, so flat 0
	// maps to the first text position, never to structural 0.
	return x.FlatToStruct[flat]
}

// Length returns the total flattened text length of the tree.
func Length(root *mdtree.Node) int {
	return Build(root).FlatLen()
}

// walker accumulates both coordinate spaces during one ordered traversal.
type walker struct {
	str  int
	flat int

	// sawLine is set once the first line-producing block has been entered;
	// every one after it is preceded by a virtual newline.
	sawLine bool

	structToFlat []int
	flatToStruct []int
}

// blocks walks the block children of a container node.
func (w *walker) blocks(parent *mdtree.Node) {
	for child := parent.FirstChild; child != nil; child = child.Next {
		w.block(child)
	}
}

func (w *walker) block(n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindParagraph, mdtree.KindHeading:
		w.enterLineBlock()
		w.inlines(n)

	case mdtree.KindCodeBlock:
		w.enterLineBlock()
		w.text(len(n.LeafText()))

	case mdtree.KindThematicBreak:
		w.enterLineBlock()

	case mdtree.KindList, mdtree.KindListItem, mdtree.KindBlockquote:
		w.enterContainer()
		w.blocks(n)

	default:
		w.blocks(n)
	}
}

func (w *walker) inlines(parent *mdtree.Node) {
	for child := parent.FirstChild; child != nil; child = child.Next {
		w.inline(child)
	}
}

func (w *walker) inline(n *mdtree.Node) {
	switch n.Kind {
	case mdtree.KindText, mdtree.KindCodeSpan:
		w.text(len(n.LeafText()))

	case mdtree.KindSoftBreak, mdtree.KindHardBreak:
		// A break is a stopping candidate of its own: one unit in both
		// spaces.
		w.pairedUnit()

	case mdtree.KindImage:
		// Images have no rendered text; the alt subtree is invisible to the
		// flat space.

	default:
		w.inlines(n)
	}
}

// enterLineBlock records the boundary of a line-producing block. The first
// one is free; each following one costs a virtual newline in flat space.
func (w *walker) enterLineBlock() {
	if !w.sawLine {
		w.sawLine = true
		w.structOnlyUnit()
		return
	}
	w.pairedUnit()
}

// enterContainer records a block that groups others but produces no line of
// its own.
func (w *walker) enterContainer() {
	w.structOnlyUnit()
}

// structOnlyUnit consumes one structural unit with no flat width.
func (w *walker) structOnlyUnit() {
	w.structToFlat = append(w.structToFlat, w.flat)
	w.str++
}

// pairedUnit consumes one unit in both spaces.
func (w *walker) pairedUnit() {
	w.structToFlat = append(w.structToFlat, w.flat)
	w.flatToStruct = append(w.flatToStruct, w.str)
	w.str++
	w.flat++
}

// text consumes n characters advancing both spaces in lockstep.
func (w *walker) text(n int) {
	for i := 0; i < n; i++ {
		w.structToFlat = append(w.structToFlat, w.flat+i)
		w.flatToStruct = append(w.flatToStruct, w.str+i)
	}
	w.str += n
	w.flat += n
}
