package offsetmap

import "testing"

func TestMarkdownOffsetToRendered_Heading(t *testing.T) {
	// "# " elides; the H lands at rendered 0.
	got := MarkdownOffsetToRendered("# Heading\nBody", 2)
	if got != 0 {
		t.Errorf("offset 2 = %d, want 0", got)
	}
}

func TestMarkdownOffsetToRendered_Bold(t *testing.T) {
	text := "This is **bold** text"

	if got := MarkdownOffsetToRendered(text, 10); got != 8 {
		t.Errorf("offset 10 (the b) = %d, want 8", got)
	}
	if got := MarkdownOffsetToRendered(text, 16); got != 12 {
		t.Errorf("offset 16 (after closing **) = %d, want 12", got)
	}
}

func TestMarkdownOffsetToRendered_Link(t *testing.T) {
	text := "Click [here](http://x) now"

	if got := MarkdownOffsetToRendered(text, 7); got != 6 {
		t.Errorf("offset 7 (the h) = %d, want 6", got)
	}

	// Just past the closing paren. The whole ](...) span collapses, so the
	// exact value depends on how much was elided; the contract is a window.
	got := MarkdownOffsetToRendered(text, 22)
	if got < 10 || got > 12 {
		t.Errorf("offset 22 = %d, want in [10, 12]", got)
	}
}

func TestOffsetConversion_EmptyString(t *testing.T) {
	if got := MarkdownOffsetToRendered("", 0); got != 0 {
		t.Errorf("raw->rendered = %d, want 0", got)
	}
	if got := RenderedOffsetToMarkdown("", 0); got != 0 {
		t.Errorf("rendered->raw = %d, want 0", got)
	}
}

func TestMarkdownOffsetToRendered_Table(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   int
	}{
		{"zero is always zero", "## anything **at** all", 0, 0},
		{"negative clamps to zero", "text", -5, 0},
		{"past end clamps to rendered length", "# Hi", 99, 2},
		{"plain text is identity", "no markers here", 7, 7},
		{"list marker elided", "- item", 2, 0},
		{"ordered list marker elided", "12. item", 4, 0},
		{"blockquote marker elided", "> quoted", 2, 0},
		{"emphasis elided", "an _em_ word", 4, 3},
		{"inline code delimiter elided", "a `b` c", 3, 2},
		{"image construct fully elided", "see ![alt](img.png) end", 19, 4},
		{"heading without space keeps text", "#Header", 1, 0},
		{"newline is content", "# A\nB", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkdownOffsetToRendered(tt.text, tt.offset); got != tt.want {
				t.Errorf("MarkdownOffsetToRendered(%q, %d) = %d, want %d",
					tt.text, tt.offset, got, tt.want)
			}
		})
	}
}

func TestRenderedLength(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"plain", "hello", 5},
		{"heading", "# Heading\nBody", 12},
		{"bold", "This is **bold** text", 17},
		{"link keeps label only", "Click [here](http://x) now", 14},
		{"only syntax", "**", 0},
		{"mixed document", "## Header\n- List item\n**bold** and _italic_", 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderedLength(tt.text); got != tt.want {
				t.Errorf("RenderedLength(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// sampleTexts exercises every recognizer plus malformed edge cases.
var sampleTexts = []string{
	"",
	"plain text",
	"# Heading\nBody",
	"### Deep heading",
	"This is **bold** text",
	"Click [here](http://x) now",
	"## Header\n- List item\n**bold** and _italic_",
	"> quote\n1. one\n2. two",
	"code `span` and ![img](u.png)",
	"unmatched _ underscore",
	"stray ` backtick",
	"trailing **",
	"[unclosed bracket",
	"](orphan close)",
	"* star list\n+ plus list",
	"10. ten\n200. two hundred",
}

func TestPositionMap_Monotonic(t *testing.T) {
	for _, text := range sampleTexts {
		m := BuildPositionMap(text)

		for i := 1; i < len(m.RawToRendered); i++ {
			if m.RawToRendered[i] < m.RawToRendered[i-1] {
				t.Errorf("%q: rawToRendered not monotonic at %d", text, i)
				break
			}
		}
		for j := 1; j < len(m.RenderedToRaw); j++ {
			if m.RenderedToRaw[j] < m.RenderedToRaw[j-1] {
				t.Errorf("%q: renderedToRaw not monotonic at %d", text, j)
				break
			}
		}
	}
}

func TestPositionMap_Bounds(t *testing.T) {
	for _, text := range sampleTexts {
		m := BuildPositionMap(text)

		if len(m.RawToRendered) != len(text)+1 {
			t.Errorf("%q: rawToRendered len = %d, want %d",
				text, len(m.RawToRendered), len(text)+1)
		}
		if m.RawToRendered[0] != 0 {
			t.Errorf("%q: rawToRendered[0] = %d, want 0", text, m.RawToRendered[0])
		}
		if last := m.RenderedToRaw[len(m.RenderedToRaw)-1]; last != len(text) {
			t.Errorf("%q: renderedToRaw end = %d, want %d", text, last, len(text))
		}
	}
}

func TestPositionMap_ContentRoundTrip(t *testing.T) {
	// Every raw offset that survives into the rendered text must round-trip
	// exactly. Syntax offsets are excluded: they collapse by design.
	for _, text := range sampleTexts {
		m := BuildPositionMap(text)

		content := make(map[int]bool, len(m.RenderedToRaw))
		for j := 0; j < len(m.RenderedToRaw)-1; j++ {
			content[m.RenderedToRaw[j]] = true
		}

		for i := 0; i < len(text); i++ {
			if !content[i] {
				continue
			}
			back := m.RenderedToRaw[m.RawToRendered[i]]
			if back != i {
				t.Errorf("%q: content offset %d round-trips to %d", text, i, back)
			}
		}
	}
}

func TestPositionMap_LengthConsistency(t *testing.T) {
	for _, text := range sampleTexts {
		m := BuildPositionMap(text)

		if got := m.RawToRendered[len(text)]; got != m.RenderedLen() {
			t.Errorf("%q: rawToRendered[len] = %d, want rendered length %d",
				text, got, m.RenderedLen())
		}
		if got := RenderedLength(text); got != m.RenderedLen() {
			t.Errorf("%q: RenderedLength = %d, want %d", text, got, m.RenderedLen())
		}
	}
}

func TestRenderedOffsetToMarkdown_RecoversContent(t *testing.T) {
	text := "## Header\n- List item"

	// Rendered 0 is the H of Header, raw offset 3.
	if got := RenderedOffsetToMarkdown(text, 0); got != 0 {
		t.Errorf("rendered 0 = %d, want 0 (zero fast path)", got)
	}
	if got := RenderedOffsetToMarkdown(text, 1); got != 4 {
		t.Errorf("rendered 1 = %d, want 4", got)
	}

	// The L of "List item": rendered offset 7, raw offset 12.
	if got := RenderedOffsetToMarkdown(text, 7); got != 12 {
		t.Errorf("rendered 7 = %d, want 12", got)
	}

	// Past-the-end clamps to the raw length.
	if got := RenderedOffsetToMarkdown(text, 999); got != len(text) {
		t.Errorf("rendered 999 = %d, want %d", got, len(text))
	}
}
