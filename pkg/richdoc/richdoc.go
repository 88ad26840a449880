// Package richdoc implements the structured-document engine behind the
// rendered editing surface. A Document is constructed from Markdown source,
// holds an editable node tree plus a structural caret, and can serialize the
// tree back to Markdown.
//
// Construction is asynchronous: the tree is built off the caller's
// goroutine and the Document signals readiness through a channel. No method
// that touches the tree may be called before readiness is observed.
package richdoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/yaklabco/markmode/pkg/mdtree"
)

// ErrDestroyed is returned when awaiting a document that was destroyed
// before it became ready.
var ErrDestroyed = errors.New("richdoc: document destroyed")

// Document is one structured, editable Markdown snapshot.
type Document struct {
	ready chan struct{}

	// Set before ready is closed, read only after.
	root *mdtree.Node
	err  error

	caret     int
	destroyed bool
}

// Open starts building a document from Markdown source and returns
// immediately. Await the returned document before using it.
func Open(markdown string) *Document {
	doc := &Document{ready: make(chan struct{})}

	go func() {
		defer close(doc.ready)
		doc.root, doc.err = parse(markdown)
	}()

	return doc
}

// parse builds the node tree. A panic inside goldmark is absorbed into an
// error so a malformed input can never take the host down.
func parse(markdown string) (root *mdtree.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = fmt.Errorf("richdoc: parse: %v", r)
		}
	}()

	source := []byte(markdown)
	md := goldmark.New()
	gmDoc := md.Parser().Parse(gmtext.NewReader(source), parser.WithContext(parser.NewContext()))

	conv := &converter{source: source}
	return conv.convertDocument(gmDoc), nil
}

// Ready returns a channel closed once construction finishes, successfully
// or not.
func (d *Document) Ready() <-chan struct{} {
	return d.ready
}

// Await blocks until the document is ready or the context is cancelled, and
// reports the construction outcome.
func (d *Document) Await(ctx context.Context) error {
	select {
	case <-d.ready:
		if d.destroyed {
			return ErrDestroyed
		}
		return d.err
	case <-ctx.Done():
		return fmt.Errorf("richdoc: await: %w", ctx.Err())
	}
}

// Root returns the document tree, or nil if construction failed or has not
// completed.
func (d *Document) Root() *mdtree.Node {
	select {
	case <-d.ready:
		return d.root
	default:
		return nil
	}
}

// Markdown serializes the current tree back to Markdown source. Returns ""
// when the document is not usable.
func (d *Document) Markdown() string {
	root := d.Root()
	if root == nil || d.destroyed {
		return ""
	}
	return Markdown(root)
}

// Caret returns the structural caret position.
func (d *Document) Caret() int {
	return d.caret
}

// SetCaret moves the structural caret. Negative positions clamp to 0; upper
// clamping is the caller's job since it depends on the flattening scheme.
func (d *Document) SetCaret(pos int) {
	if pos < 0 {
		pos = 0
	}
	d.caret = pos
}

// Destroy releases the document. Any later use yields zero values.
func (d *Document) Destroy() {
	d.destroyed = true
	d.caret = 0

	// The tree is only dropped once the builder goroutine is done with it.
	select {
	case <-d.ready:
		d.root = nil
	default:
	}
}
