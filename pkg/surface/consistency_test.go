package surface

import (
	"context"
	"testing"

	"github.com/yaklabco/markmode/pkg/offsetmap"
	"github.com/yaklabco/markmode/pkg/richdoc"
	"github.com/yaklabco/markmode/pkg/treepos"
)

// The offset mapper's content projection and the translator's flattened tree
// must agree on length for the constructs both model the same way, or cursor
// restoration drifts. Fenced code and thematic breaks are excluded: the
// mapper treats their marker lines approximately while the tree models them
// structurally.
func TestFlatSpaceConsistency(t *testing.T) {
	docs := []string{
		"plain paragraph",
		"para one\npara two",
		"# Header\n- List item",
		"## Deep\ntext *em* tail",
		"**bold** text",
		"> quoted words",
		"a [link](https://x) b",
		"pre ![alt](u.png) post",
		"- one\n- two\n- three",
		"1. first\n2. second",
		"# T\nline one\nline two",
	}

	for _, src := range docs {
		doc := richdoc.Open(src)
		if err := doc.Await(context.Background()); err != nil {
			t.Fatalf("Await(%q): %v", src, err)
		}

		mapped := offsetmap.RenderedLength(src)
		flat := treepos.Length(doc.Root())
		if mapped != flat {
			t.Errorf("%q: mapper rendered length %d, tree flat length %d", src, mapped, flat)
		}
	}
}

// Every content position survives the full raw -> rendered -> structural ->
// rendered -> raw pipeline through the real engine.
func TestCursorPipelineRoundTrip(t *testing.T) {
	docs := []string{
		"# Header\n- List item",
		"plain with **bold** inside",
		"> quote line",
		"1. one\n2. two",
	}

	for _, src := range docs {
		r := NewRendered(src, Options{})
		if err := r.Ready(context.Background()); err != nil {
			t.Fatalf("Ready(%q): %v", src, err)
		}

		m := offsetmap.BuildPositionMap(src)
		for rendered := 0; rendered < m.RenderedLen(); rendered++ {
			raw := m.RenderedToRaw[rendered]
			r.SetAbsoluteCursor(raw, src)
			if got := r.AbsoluteCursor(src); got != raw {
				t.Errorf("%q: raw %d round-tripped to %d", src, raw, got)
			}
		}
		r.Destroy()
	}
}
