package surface

// Raw is the surface over the raw Markdown source. Its native caret is
// already an absolute cursor, so the offset accessors are pass-throughs
// with clamping.
type Raw struct {
	content  string
	caret    int
	selEnd   int
	scroll   int
	active   bool
	focused  bool
	readOnly bool
	onChange func(string)
}

var _ Surface = (*Raw)(nil)

// NewRaw creates a live raw surface holding content.
func NewRaw(content string, opts Options) *Raw {
	return &Raw{
		content:  content,
		active:   true,
		readOnly: opts.ReadOnly,
		onChange: opts.OnChange,
	}
}

// Content returns the raw Markdown source.
func (r *Raw) Content() string {
	if !r.active {
		return ""
	}
	return r.content
}

// SetContent replaces the source and re-clamps the caret.
func (r *Raw) SetContent(text string) {
	if !r.active || r.readOnly {
		return
	}
	r.content = text
	r.caret = clamp(r.caret, len(text))
	r.selEnd = r.caret
	if r.onChange != nil {
		r.onChange(text)
	}
}

// AbsoluteCursor returns the caret directly; the raw surface is the raw
// space.
func (r *Raw) AbsoluteCursor(string) int {
	return r.caret
}

// SetAbsoluteCursor clamps offset into [0, len(content)] and sets the caret.
func (r *Raw) SetAbsoluteCursor(offset int, _ string) {
	r.caret = clamp(offset, len(r.content))
	r.selEnd = r.caret
}

// ScrollPosition returns the scroll offset.
func (r *Raw) ScrollPosition() int {
	return r.scroll
}

// SetScrollPosition sets the scroll offset, clamped non-negative.
func (r *Raw) SetScrollPosition(v int) {
	if v < 0 {
		v = 0
	}
	r.scroll = v
}

// Selection returns the selected range; collapsed when nothing is selected.
func (r *Raw) Selection() (int, int) {
	if r.selEnd < r.caret {
		return r.selEnd, r.caret
	}
	return r.caret, r.selEnd
}

// Select sets the selection range, clamped into the document.
func (r *Raw) Select(start, end int) {
	r.caret = clamp(start, len(r.content))
	r.selEnd = clamp(end, len(r.content))
}

// DocumentText returns the displayed text, which for this surface is the
// source itself.
func (r *Raw) DocumentText() string {
	return r.Content()
}

// Focus gives the surface input focus.
func (r *Raw) Focus() {
	if r.active {
		r.focused = true
	}
}

// Focused reports whether the surface has input focus.
func (r *Raw) Focused() bool {
	return r.focused
}

// Active reports whether the surface is live.
func (r *Raw) Active() bool {
	return r.active
}

// Destroy tears the surface down.
func (r *Raw) Destroy() {
	r.active = false
	r.focused = false
	r.content = ""
}

// clamp bounds an offset into [0, max].
func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
