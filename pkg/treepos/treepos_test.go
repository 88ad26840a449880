package treepos

import (
	"testing"

	"github.com/yaklabco/markmode/pkg/mdtree"
)

func textNode(s string) *mdtree.Node {
	n := mdtree.NewNode(mdtree.KindText)
	n.Inline = &mdtree.InlineAttrs{Text: []byte(s)}
	return n
}

func paragraph(children ...*mdtree.Node) *mdtree.Node {
	p := mdtree.NewNode(mdtree.KindParagraph)
	for _, c := range children {
		mdtree.AppendChild(p, c)
	}
	return p
}

func doc(blocks ...*mdtree.Node) *mdtree.Node {
	d := mdtree.NewDocument()
	for _, b := range blocks {
		mdtree.AppendChild(d, b)
	}
	return d
}

func TestBuild_SingleParagraph(t *testing.T) {
	root := doc(paragraph(textNode("Hello")))
	x := Build(root)

	if got := x.FlatLen(); got != 5 {
		t.Fatalf("FlatLen = %d, want 5", got)
	}

	// Structural 0 is before the paragraph; the H sits at structural 1.
	if got := FlatOffset(root, 1); got != 0 {
		t.Errorf("FlatOffset(1) = %d, want 0", got)
	}
	if got := StructuralPosition(root, 0); got != 1 {
		t.Errorf("StructuralPosition(0) = %d, want 1", got)
	}
	if got := FlatOffset(root, 3); got != 2 {
		t.Errorf("FlatOffset(3) = %d, want 2", got)
	}
}

func TestBuild_HeadingAndList(t *testing.T) {
	// # Header          -> "Header"
	// - List item       -> "\nList item"
	item := mdtree.NewNode(mdtree.KindListItem)
	mdtree.AppendChild(item, paragraph(textNode("List item")))
	list := mdtree.NewNode(mdtree.KindList)
	list.Block = &mdtree.BlockAttrs{List: &mdtree.ListAttrs{Bullet: "-"}}
	mdtree.AppendChild(list, item)

	heading := mdtree.NewNode(mdtree.KindHeading)
	heading.Block = &mdtree.BlockAttrs{HeadingLevel: 1}
	mdtree.AppendChild(heading, textNode("Header"))

	root := doc(heading, list)
	x := Build(root)

	// "Header" + virtual newline + "List item" = 16.
	if got := x.FlatLen(); got != 16 {
		t.Fatalf("FlatLen = %d, want 16", got)
	}

	// Flat 7 is the L of "List item"; its structural position accounts for
	// heading entry (1) + 6 text + list, item and paragraph boundaries.
	structOfL := StructuralPosition(root, 7)
	if got := FlatOffset(root, structOfL); got != 7 {
		t.Errorf("round trip of flat 7 = %d", got)
	}
}

func TestBuild_Breaks(t *testing.T) {
	// One paragraph with a soft break flattens to "a\nb".
	p := paragraph(textNode("a"))
	mdtree.AppendChild(p, mdtree.NewNode(mdtree.KindSoftBreak))
	mdtree.AppendChild(p, textNode("b"))
	root := doc(p)

	if got := Length(root); got != 3 {
		t.Fatalf("Length = %d, want 3", got)
	}

	// The break itself is a stopping candidate.
	structOfBreak := StructuralPosition(root, 1)
	if got := FlatOffset(root, structOfBreak); got != 1 {
		t.Errorf("break position maps to flat %d, want 1", got)
	}
}

func TestBuild_ImageInvisible(t *testing.T) {
	img := mdtree.NewNode(mdtree.KindImage)
	img.Inline = &mdtree.InlineAttrs{Link: &mdtree.LinkAttrs{Destination: "u.png"}}
	mdtree.AppendChild(img, textNode("alt text"))

	root := doc(paragraph(textNode("a"), img, textNode("b")))

	if got := Length(root); got != 2 {
		t.Errorf("Length = %d, want 2 (alt text contributes nothing)", got)
	}
}

func TestBuild_CodeBlockLeaf(t *testing.T) {
	code := mdtree.NewNode(mdtree.KindCodeBlock)
	code.Block = &mdtree.BlockAttrs{Code: &mdtree.CodeAttrs{Content: []byte("x := 1\n")}}
	root := doc(paragraph(textNode("intro")), code)

	// "intro" + newline + 7 bytes of code.
	if got := Length(root); got != 13 {
		t.Errorf("Length = %d, want 13", got)
	}
}

func TestConversion_Clamping(t *testing.T) {
	root := doc(paragraph(textNode("ab")))
	x := Build(root)

	if got := FlatOffset(root, -3); got != 0 {
		t.Errorf("negative structural = %d, want 0", got)
	}
	if got := FlatOffset(root, 999); got != x.FlatLen() {
		t.Errorf("huge structural = %d, want %d", got, x.FlatLen())
	}
	if got := StructuralPosition(root, 999); got != x.StructLen() {
		t.Errorf("huge flat = %d, want end %d", got, x.StructLen())
	}
	if got := StructuralPosition(root, -1); got != x.FlatToStruct[0] {
		t.Errorf("negative flat = %d, want %d", got, x.FlatToStruct[0])
	}
}

func TestBuild_EmptyDocument(t *testing.T) {
	root := mdtree.NewDocument()
	x := Build(root)

	if got := x.FlatLen(); got != 0 {
		t.Errorf("FlatLen = %d, want 0", got)
	}
	if got := FlatOffset(root, 0); got != 0 {
		t.Errorf("FlatOffset(0) = %d, want 0", got)
	}
	if got := StructuralPosition(root, 0); got != 0 {
		t.Errorf("StructuralPosition(0) = %d, want 0", got)
	}
}

func TestBuild_Monotonic(t *testing.T) {
	item := mdtree.NewNode(mdtree.KindListItem)
	mdtree.AppendChild(item, paragraph(textNode("one")))
	list := mdtree.NewNode(mdtree.KindList)
	mdtree.AppendChild(list, item)

	strong := mdtree.NewNode(mdtree.KindStrong)
	mdtree.AppendChild(strong, textNode("bold"))

	root := doc(
		paragraph(textNode("first")),
		list,
		paragraph(strong, textNode(" tail")),
	)

	x := Build(root)
	for i := 1; i < len(x.StructToFlat); i++ {
		if x.StructToFlat[i] < x.StructToFlat[i-1] {
			t.Fatalf("StructToFlat not monotonic at %d", i)
		}
	}
	for i := 1; i < len(x.FlatToStruct); i++ {
		if x.FlatToStruct[i] < x.FlatToStruct[i-1] {
			t.Fatalf("FlatToStruct not monotonic at %d", i)
		}
	}
}

func TestRoundTrip_AllContentPositions(t *testing.T) {
	strong := mdtree.NewNode(mdtree.KindStrong)
	mdtree.AppendChild(strong, textNode("bold"))

	root := doc(
		paragraph(textNode("plain "), strong),
		paragraph(textNode("second")),
	)

	x := Build(root)
	for flat := 0; flat <= x.FlatLen(); flat++ {
		back := FlatOffset(root, StructuralPosition(root, flat))
		if back != flat {
			t.Errorf("flat %d -> structural -> %d", flat, back)
		}
	}
}
