// Package offsetmap builds bidirectional index maps between raw Markdown
// offsets and rendered-text offsets. The rendered text is the content-only
// projection of the source: syntax markers (heading hashes, list bullets,
// emphasis delimiters, link brackets, and so on) are elided, everything else
// is kept verbatim.
//
// The mapper recognizes a fixed subset of Markdown constructs. Malformed or
// ambiguous input degrades to more (or less) elision than a strict parser
// would apply, but the resulting maps are always monotonic, total, and
// in-range. The mapper never fails.
package offsetmap

// PositionMap holds the two parallel offset maps for one source snapshot.
// RawToRendered has len(raw)+1 entries, RenderedToRaw has renderedLen+1
// entries. Both are monotonically non-decreasing. Maps are computed fresh
// from a snapshot and are never cached across edits.
type PositionMap struct {
	RawToRendered []int
	RenderedToRaw []int
}

// RenderedLen returns the length of the rendered text.
func (m PositionMap) RenderedLen() int {
	return len(m.RenderedToRaw) - 1
}

// scanner walks the raw text once, classifying every position as syntax or
// content and recording the offset correspondence as it goes.
type scanner struct {
	src         string
	pos         int
	renderedPos int
	lineStart   bool

	rawToRendered []int
	renderedToRaw []int
}

// BuildPositionMap scans text and returns the full bidirectional map.
func BuildPositionMap(text string) PositionMap {
	sc := &scanner{
		src:           text,
		lineStart:     true,
		rawToRendered: make([]int, 0, len(text)+1),
		renderedToRaw: make([]int, 0, len(text)/2+1),
	}

	sc.scan()

	// Terminal entries: end of raw maps to end of rendered and vice versa.
	sc.rawToRendered = append(sc.rawToRendered, sc.renderedPos)
	sc.renderedToRaw = append(sc.renderedToRaw, len(text))

	return PositionMap{
		RawToRendered: sc.rawToRendered,
		RenderedToRaw: sc.renderedToRaw,
	}
}

// MarkdownOffsetToRendered converts a raw-Markdown offset to its rendered
// offset. Out-of-range offsets clamp: negative to 0, past-the-end to the
// rendered length.
func MarkdownOffsetToRendered(text string, offset int) int {
	// Offset 0 always maps to 0; skip the scan entirely.
	if offset <= 0 {
		return 0
	}

	m := BuildPositionMap(text)
	if offset >= len(m.RawToRendered) {
		return m.RenderedLen()
	}
	return m.RawToRendered[offset]
}

// RenderedOffsetToMarkdown converts a rendered offset back to a raw-Markdown
// offset. Rendered positions that several syntax offsets collapsed onto
// recover the first content offset at or after that point, so syntax-marker
// positions round-trip only approximately. Out-of-range offsets clamp.
func RenderedOffsetToMarkdown(text string, offset int) int {
	if offset <= 0 {
		return 0
	}

	m := BuildPositionMap(text)
	if offset >= len(m.RenderedToRaw) {
		return len(text)
	}
	return m.RenderedToRaw[offset]
}

// RenderedLength returns the length of the content-only rendered text.
func RenderedLength(text string) int {
	return BuildPositionMap(text).RenderedLen()
}

// RenderedText returns the content-only projection of text: every character
// the map classifies as content, in order, with syntax runs removed.
func RenderedText(text string) string {
	m := BuildPositionMap(text)

	out := make([]byte, m.RenderedLen())
	for j := 0; j < m.RenderedLen(); j++ {
		out[j] = text[m.RenderedToRaw[j]]
	}
	return string(out)
}

// scan is the main classification loop. Recognizers are tried in a fixed
// priority order; the first match wins, mirroring how real Markdown resolves
// ambiguity (for example ** is bold, never two emphasis markers).
func (sc *scanner) scan() {
	for sc.pos < len(sc.src) {
		if sc.lineStart {
			if sc.tryHeadingMarker() || sc.tryListMarker() {
				sc.lineStart = false
				continue
			}
			sc.lineStart = false
		}

		switch sc.src[sc.pos] {
		case '*':
			if sc.tryBoldDelimiter() {
				continue
			}
			sc.elide(1)
		case '_':
			sc.elide(1)
		case '`':
			// Opening and closing backticks are classified independently;
			// there is no matching step.
			sc.elide(1)
		case '[':
			sc.elide(1)
		case ']':
			if !sc.tryLinkClose() {
				sc.keep()
			}
		case '!':
			if !sc.tryImage() {
				sc.keep()
			}
		case '\n':
			sc.keep()
			sc.lineStart = true
		default:
			sc.keep()
		}
	}
}

// tryHeadingMarker elides a run of # characters at line start, plus the
// single space that follows, if present.
func (sc *scanner) tryHeadingMarker() bool {
	if sc.src[sc.pos] != '#' {
		return false
	}

	n := 0
	for sc.pos+n < len(sc.src) && sc.src[sc.pos+n] == '#' {
		n++
	}
	if sc.pos+n < len(sc.src) && sc.src[sc.pos+n] == ' ' {
		n++
	}

	sc.elide(n)
	return true
}

// tryListMarker elides bullet markers (-, *, + followed by a space), ordered
// list markers (digits, a dot, a space), and blockquote markers (> followed
// by a space) at line start.
func (sc *scanner) tryListMarker() bool {
	ch := sc.src[sc.pos]

	switch ch {
	case '-', '*', '+', '>':
		if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == ' ' {
			sc.elide(2)
			return true
		}
		return false
	}

	if !isDigit(ch) {
		return false
	}

	n := 0
	for sc.pos+n < len(sc.src) && isDigit(sc.src[sc.pos+n]) {
		n++
	}
	if sc.pos+n+1 < len(sc.src) && sc.src[sc.pos+n] == '.' && sc.src[sc.pos+n+1] == ' ' {
		sc.elide(n + 2)
		return true
	}
	return false
}

// tryBoldDelimiter elides ** as a unit. Checked before single-character
// emphasis so a bold delimiter is never split into two emphasis markers.
func (sc *scanner) tryBoldDelimiter() bool {
	if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == '*' {
		sc.elide(2)
		return true
	}
	return false
}

// tryLinkClose handles ](, the closing construct of an inline link. The
// whole span from ] through the first ) is syntax. A bare ] with no
// following ( stays content.
func (sc *scanner) tryLinkClose() bool {
	if sc.pos+1 >= len(sc.src) || sc.src[sc.pos+1] != '(' {
		return false
	}

	end := sc.pos + 2
	for end < len(sc.src) && sc.src[end] != ')' {
		end++
	}
	if end < len(sc.src) {
		end++ // include the )
	}

	sc.elide(end - sc.pos)
	return true
}

// tryImage handles ![alt](url). Unlike links, the whole construct including
// the alt text is syntax: first locate the matching ], then the (...) that
// follows it. If the shape does not hold, the ! stays content.
func (sc *scanner) tryImage() bool {
	if sc.pos+1 >= len(sc.src) || sc.src[sc.pos+1] != '[' {
		return false
	}

	bracket := sc.pos + 2
	for bracket < len(sc.src) && sc.src[bracket] != ']' {
		bracket++
	}
	if bracket+1 >= len(sc.src) || sc.src[bracket+1] != '(' {
		return false
	}

	end := bracket + 2
	for end < len(sc.src) && sc.src[end] != ')' {
		end++
	}
	if end >= len(sc.src) {
		return false
	}

	sc.elide(end + 1 - sc.pos)
	return true
}

// keep records the current character as content: it occupies the current
// rendered position and both maps advance.
func (sc *scanner) keep() {
	sc.rawToRendered = append(sc.rawToRendered, sc.renderedPos)
	sc.renderedToRaw = append(sc.renderedToRaw, sc.pos)
	sc.renderedPos++
	sc.pos++
}

// elide records a syntax run of n characters. Every raw position in the run
// maps to the same rendered position: the one the next content character
// will occupy.
func (sc *scanner) elide(n int) {
	for range n {
		sc.rawToRendered = append(sc.rawToRendered, sc.renderedPos)
	}
	sc.pos += n
}

// isDigit returns true if the byte is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
