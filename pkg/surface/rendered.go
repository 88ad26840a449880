package surface

import (
	"context"

	"github.com/yaklabco/markmode/pkg/offsetmap"
	"github.com/yaklabco/markmode/pkg/treepos"
)

// Rendered is the surface over the structured document engine. Its native
// caret is a structural position; the absolute-cursor accessors compose the
// tree-position translator with the offset mapper in both directions.
type Rendered struct {
	engine   Engine
	scroll   int
	active   bool
	focused  bool
	readOnly bool
	onChange func(string)
	open     EngineFactory
}

var _ Surface = (*Rendered)(nil)

// NewRendered creates a rendered surface and starts building its document
// engine from markdown. The surface must be awaited via Ready before cursor
// or content accessors return useful values.
func NewRendered(markdown string, opts Options) *Rendered {
	open := opts.OpenEngine
	if open == nil {
		open = openRichdoc
	}

	return &Rendered{
		engine:   open(markdown),
		active:   true,
		readOnly: opts.ReadOnly,
		onChange: opts.OnChange,
		open:     open,
	}
}

// Ready blocks until the engine finishes initializing. On failure the
// surface deactivates itself; it cannot be used afterwards.
func (r *Rendered) Ready(ctx context.Context) error {
	if err := r.engine.Await(ctx); err != nil {
		r.active = false
		return err
	}
	return nil
}

// Content serializes the document back to raw Markdown. A surface that is
// not live degrades to the empty string.
func (r *Rendered) Content() string {
	if !r.active {
		return ""
	}
	return r.engine.Markdown()
}

// SetContent rebuilds the engine from new source.
func (r *Rendered) SetContent(text string) {
	if !r.active || r.readOnly {
		return
	}
	r.engine.Destroy()
	r.engine = r.open(text)
	if r.onChange != nil {
		r.onChange(text)
	}
}

// AbsoluteCursor converts the structural caret to a raw-Markdown offset:
// structural position -> flat rendered offset -> raw offset. Any failure in
// the pipeline degrades to 0; restoration is best-effort and must never
// block a mode switch.
func (r *Rendered) AbsoluteCursor(markdown string) int {
	root := r.engine.Root()
	if !r.active || root == nil {
		return 0
	}

	flat := treepos.FlatOffset(root, r.engine.Caret())
	return offsetmap.RenderedOffsetToMarkdown(markdown, flat)
}

// SetAbsoluteCursor converts a raw-Markdown offset to a structural caret:
// raw offset -> flat rendered offset -> structural position.
func (r *Rendered) SetAbsoluteCursor(offset int, markdown string) {
	root := r.engine.Root()
	if !r.active || root == nil {
		return
	}

	flat := offsetmap.MarkdownOffsetToRendered(markdown, offset)
	r.engine.SetCaret(treepos.StructuralPosition(root, flat))
}

// ScrollPosition returns the scroll offset.
func (r *Rendered) ScrollPosition() int {
	return r.scroll
}

// SetScrollPosition sets the scroll offset, clamped non-negative.
func (r *Rendered) SetScrollPosition(v int) {
	if v < 0 {
		v = 0
	}
	r.scroll = v
}

// Selection reports the caret as a collapsed range in raw offsets. The
// rendered engine models a single caret, not a range selection.
func (r *Rendered) Selection() (int, int) {
	cur := r.AbsoluteCursor(r.Content())
	return cur, cur
}

// DocumentText returns the content-only text the surface displays.
func (r *Rendered) DocumentText() string {
	if !r.active {
		return ""
	}
	return offsetmap.RenderedText(r.Content())
}

// Focus gives the surface input focus.
func (r *Rendered) Focus() {
	if r.active {
		r.focused = true
	}
}

// Focused reports whether the surface has input focus.
func (r *Rendered) Focused() bool {
	return r.focused
}

// Active reports whether the surface is live.
func (r *Rendered) Active() bool {
	return r.active
}

// Destroy tears the surface down and releases the engine.
func (r *Rendered) Destroy() {
	r.active = false
	r.focused = false
	r.engine.Destroy()
}
