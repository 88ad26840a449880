// Package surface defines the uniform contract both editing surfaces expose
// to the mode coordinator, and the two concrete adapters: one over the raw
// Markdown source, one over the rendered document engine.
//
// The adapters agree on one canonical cursor representation: the absolute
// cursor, a raw-Markdown offset. The raw adapter passes it through; the
// rendered adapter composes the tree-position translator with the offset
// mapper to produce and consume it. Cursor and scroll restoration are
// best-effort: failures inside the composed pipeline degrade to offset 0 at
// the adapter boundary and never escape.
package surface

import (
	"context"

	"github.com/yaklabco/markmode/pkg/mdtree"
	"github.com/yaklabco/markmode/pkg/richdoc"
)

// Surface is the contract a live editing surface exposes to the coordinator.
// A surface owns its document snapshot exclusively; content crosses the
// boundary by value.
type Surface interface {
	// Content returns the document as raw Markdown source.
	Content() string

	// SetContent replaces the document. Ignored on read-only surfaces.
	SetContent(text string)

	// AbsoluteCursor reports the caret as a raw-Markdown offset. The current
	// source must be passed in because the mapping is text-dependent.
	AbsoluteCursor(markdown string) int

	// SetAbsoluteCursor moves the caret to the given raw-Markdown offset,
	// clamped into range.
	SetAbsoluteCursor(offset int, markdown string)

	// ScrollPosition and SetScrollPosition carry the vertical scroll offset.
	ScrollPosition() int
	SetScrollPosition(v int)

	// Selection reports the selected range in raw-Markdown offsets. A
	// collapsed selection equals the cursor.
	Selection() (start, end int)

	// DocumentText returns the text as the surface displays it: raw source
	// for the raw surface, content-only text for the rendered one.
	DocumentText() string

	// Focus gives the surface input focus.
	Focus()

	// Active reports whether the surface is live and accepting input.
	Active() bool

	// Destroy tears the surface down. The surface never outlives the switch
	// that replaced it.
	Destroy()
}

// Options configures a surface at construction time.
type Options struct {
	// OnChange is invoked with the latest raw Markdown whenever the
	// surface's content changes.
	OnChange func(content string)

	// ReadOnly blocks content mutation.
	ReadOnly bool

	// OpenEngine overrides the rendered surface's document engine factory.
	// Nil means richdoc.Open.
	OpenEngine EngineFactory
}

// Engine is the structured-document engine behind the rendered surface.
// richdoc.Document is the canonical implementation.
type Engine interface {
	// Await blocks until construction finishes and reports its outcome.
	Await(ctx context.Context) error

	// Root returns the document tree, nil before readiness or after failure.
	Root() *mdtree.Node

	// Markdown serializes the tree back to Markdown source.
	Markdown() string

	// Caret reports and SetCaret moves the structural caret.
	Caret() int
	SetCaret(pos int)

	// Destroy releases the engine.
	Destroy()
}

// EngineFactory constructs an engine from Markdown source.
type EngineFactory func(markdown string) Engine

// openRichdoc is the default engine factory.
func openRichdoc(markdown string) Engine {
	return richdoc.Open(markdown)
}
