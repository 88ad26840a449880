package mdtree

import "sort"

// lineSpan describes one line of a text snapshot.
type lineSpan struct {
	// start is the offset of the first character of the line.
	start int

	// newline is the offset where the line terminator begins. Equals end for
	// the last line when the text has no trailing newline.
	newline int

	// end is the offset just past the terminator.
	end int
}

// LineIndex converts between character offsets and 1-based line/column
// positions over one text snapshot. Both surfaces derive their line/column
// cursor from this index; it is independent of the offset mapping machinery.
type LineIndex struct {
	spans  []lineSpan
	length int
}

// NewLineIndex builds a line index for text. LF and CRLF are both handled.
func NewLineIndex(text string) *LineIndex {
	idx := &LineIndex{length: len(text)}

	lineStart := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		nl := i
		if i > 0 && text[i-1] == '\r' {
			nl = i - 1
		}
		idx.spans = append(idx.spans, lineSpan{start: lineStart, newline: nl, end: i + 1})
		lineStart = i + 1
	}

	// The last line may lack a terminator; an empty text still has one line.
	idx.spans = append(idx.spans, lineSpan{start: lineStart, newline: len(text), end: len(text)})

	return idx
}

// LineCount returns the number of lines.
func (x *LineIndex) LineCount() int {
	return len(x.spans)
}

// Position converts an offset to a 1-based line and column.
// Out-of-range offsets clamp to the nearest valid position.
func (x *LineIndex) Position(offset int) (line, col int) {
	if offset <= 0 {
		return 1, 1
	}
	if offset >= x.length {
		last := x.spans[len(x.spans)-1]
		return len(x.spans), x.length - last.start + 1
	}

	i := sort.Search(len(x.spans), func(i int) bool {
		return x.spans[i].end > offset
	})
	if i >= len(x.spans) {
		i = len(x.spans) - 1
	}

	return i + 1, offset - x.spans[i].start + 1
}

// Offset converts a 1-based line and column to an offset.
// Line and column clamp into range rather than failing; the column may point
// one past the last character of the line, matching caret semantics.
func (x *LineIndex) Offset(line, col int) int {
	if line < 1 {
		line = 1
	}
	if line > len(x.spans) {
		line = len(x.spans)
	}
	span := x.spans[line-1]

	if col < 1 {
		col = 1
	}
	offset := span.start + col - 1
	if offset > span.newline {
		offset = span.newline
	}
	return offset
}
