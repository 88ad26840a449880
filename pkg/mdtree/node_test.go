package mdtree

import "testing"

func TestAppendChild(t *testing.T) {
	doc := NewDocument()
	para := NewNode(KindParagraph)
	text := NewNode(KindText)

	AppendChild(doc, para)
	AppendChild(para, text)

	if doc.FirstChild != para || doc.LastChild != para {
		t.Fatal("paragraph not linked under document")
	}
	if para.Parent != doc {
		t.Error("paragraph parent not set")
	}
	if text.Parent != para {
		t.Error("text parent not set")
	}

	second := NewNode(KindText)
	AppendChild(para, second)

	if para.LastChild != second || text.Next != second || second.Prev != text {
		t.Error("sibling links wrong after second append")
	}
	if got := len(para.Children()); got != 2 {
		t.Errorf("ChildCount = %d, want 2", got)
	}
}

func TestNode_Classification(t *testing.T) {
	tests := []struct {
		kind   Kind
		block  bool
		inline bool
	}{
		{KindDocument, true, false},
		{KindParagraph, true, false},
		{KindHeading, true, false},
		{KindCodeBlock, true, false},
		{KindText, false, true},
		{KindStrong, false, true},
		{KindHardBreak, false, true},
		{KindRaw, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			n := NewNode(tt.kind)
			if n.IsBlock() != tt.block {
				t.Errorf("IsBlock = %v, want %v", n.IsBlock(), tt.block)
			}
			if n.IsInline() != tt.inline {
				t.Errorf("IsInline = %v, want %v", n.IsInline(), tt.inline)
			}
		})
	}
}

func TestNode_LeafText(t *testing.T) {
	text := NewNode(KindText)
	text.Inline = &InlineAttrs{Text: []byte("hello")}
	if got := string(text.LeafText()); got != "hello" {
		t.Errorf("text leaf = %q, want %q", got, "hello")
	}

	code := NewNode(KindCodeBlock)
	code.Block = &BlockAttrs{Code: &CodeAttrs{Content: []byte("x := 1")}}
	if got := string(code.LeafText()); got != "x := 1" {
		t.Errorf("code leaf = %q, want %q", got, "x := 1")
	}

	para := NewNode(KindParagraph)
	if para.LeafText() != nil {
		t.Error("paragraph should have no leaf text")
	}
	if para.IsTextLeaf() {
		t.Error("paragraph is not a text leaf")
	}
}

func TestFindByKind(t *testing.T) {
	doc := NewDocument()
	for range 3 {
		para := NewNode(KindParagraph)
		AppendChild(doc, para)
		AppendChild(para, NewNode(KindText))
	}

	if got := len(FindByKind(doc, KindText)); got != 3 {
		t.Errorf("found %d text nodes, want 3", got)
	}
	if got := len(FindByKind(doc, KindHeading)); got != 0 {
		t.Errorf("found %d headings, want 0", got)
	}
}
