// Package editor owns the mode coordinator: which of the two editing
// surfaces is live, and the switch protocol that moves the document, cursor,
// and scroll state between them.
//
// At most one surface is live at any time. A switch captures state from the
// active surface, destroys it, constructs the replacement, waits for it to
// initialize and lay out, restores cursor and scroll, and focuses it.
// Concurrent switch requests serialize in FIFO order; the whole protocol is
// abortable through the caller's context.
package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yaklabco/markmode/internal/logging"
	"github.com/yaklabco/markmode/pkg/mdtree"
	"github.com/yaklabco/markmode/pkg/surface"
)

// Mode identifies which surface is active.
type Mode string

const (
	// ModeRaw is the plain-Markdown-source surface.
	ModeRaw Mode = "raw"

	// ModeRendered is the structured-document surface.
	ModeRendered Mode = "rendered"
)

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	return m == ModeRaw || m == ModeRendered
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeRendered {
		return ModeRaw
	}
	return ModeRendered
}

// ErrEditorDestroyed is returned by operations on a destroyed editor.
var ErrEditorDestroyed = fmt.Errorf("editor: destroyed")

// errSuperseded aborts an in-flight switch whose editor was torn down at one
// of the protocol's suspension points.
var errSuperseded = fmt.Errorf("editor: switch superseded")

// DefaultSettleDelay is the post-readiness stabilization delay for the
// rendered surface.
const DefaultSettleDelay = 50 * time.Millisecond

// Options configures a new Editor.
type Options struct {
	// Content is the initial Markdown source.
	Content string

	// OnChange is invoked with the latest source whenever the active
	// surface's content changes.
	OnChange func(content string)

	// ReadOnly blocks content mutation on every surface.
	ReadOnly bool

	// Frames overrides the frame scheduler. Nil means TimerFrames.
	Frames Frames

	// SettleDelay overrides the rendered surface's stabilization delay.
	// Zero means DefaultSettleDelay; negative means none.
	SettleDelay time.Duration

	// OpenEngine overrides the rendered surface's document engine factory.
	OpenEngine surface.EngineFactory
}

// Editor is the mode coordinator. It is created in raw mode; switch to
// rendered explicitly. Safe for concurrent use.
type Editor struct {
	// gate serializes switches: holding the token is holding the right to
	// run the protocol. Buffered with one token.
	gate chan struct{}

	frames   Frames
	settle   time.Duration
	open     surface.EngineFactory
	onChange func(string)
	readOnly bool

	mu         sync.Mutex
	mode       Mode
	current    surface.Surface
	generation uint64
	destroyed  bool
}

// New creates an editor in raw mode holding the initial content.
func New(opts Options) *Editor {
	frames := opts.Frames
	if frames == nil {
		frames = TimerFrames{}
	}

	settle := opts.SettleDelay
	if settle == 0 {
		settle = DefaultSettleDelay
	} else if settle < 0 {
		settle = 0
	}

	e := &Editor{
		gate:     make(chan struct{}, 1),
		frames:   frames,
		settle:   settle,
		open:     opts.OpenEngine,
		onChange: opts.OnChange,
		readOnly: opts.ReadOnly,
		mode:     ModeRaw,
	}
	e.gate <- struct{}{}
	e.current = surface.NewRaw(opts.Content, e.surfaceOptions())

	return e
}

func (e *Editor) surfaceOptions() surface.Options {
	return surface.Options{
		OnChange:   e.onChange,
		ReadOnly:   e.readOnly,
		OpenEngine: e.open,
	}
}

// Mode returns the last committed mode. During an in-flight switch this is
// still the previous mode; the new one is recorded only at protocol end.
func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Active reports whether a live surface exists. False while instance-less
// after a failed switch, and after Destroy.
func (e *Editor) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current != nil && e.current.Active()
}

// SwitchMode runs the switch protocol toward target. It is a no-op when
// target is already current. Concurrent calls serialize; ctx aborts both the
// wait for an in-flight switch and the protocol's own suspension points.
//
// On a readiness failure the editor is left instance-less: Content returns
// "" and Active reports false until a fresh switch succeeds.
func (e *Editor) SwitchMode(ctx context.Context, target Mode) error {
	if !target.Valid() {
		return fmt.Errorf("editor: unknown mode %q", target)
	}

	select {
	case <-e.gate:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { e.gate <- struct{}{} }()

	return e.doSwitch(ctx, target)
}

// ToggleMode switches to the opposite of the current mode.
func (e *Editor) ToggleMode(ctx context.Context) error {
	return e.SwitchMode(ctx, e.Mode().Other())
}

// doSwitch runs the protocol. The caller holds the gate token.
func (e *Editor) doSwitch(ctx context.Context, target Mode) error {
	logger := logging.FromContext(ctx)
	start := time.Now()

	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return ErrEditorDestroyed
	}
	if e.mode == target && e.current != nil {
		e.mu.Unlock()
		return nil
	}
	from := e.mode
	gen := e.generation
	cur := e.current
	e.mu.Unlock()

	// Capture, then destroy. Construction never starts while the old
	// surface is live.
	var content string
	var cursor, scroll int
	if cur != nil {
		content = cur.Content()
		cursor = cur.AbsoluteCursor(content)
		scroll = cur.ScrollPosition()
		cur.Destroy()
	}

	e.mu.Lock()
	e.current = nil
	e.mu.Unlock()

	next, err := e.construct(ctx, target, content)
	if err != nil {
		logger.Error("mode switch failed",
			logging.FieldFrom, string(from),
			logging.FieldTo, string(target),
			logging.FieldError, err)
		return err
	}

	// One layout pass, plus the rendered surface's settle delay.
	if err := e.frames.WaitFrame(ctx); err != nil {
		next.Destroy()
		return err
	}
	if target == ModeRendered && e.settle > 0 {
		if err := e.frames.Settle(ctx, e.settle); err != nil {
			next.Destroy()
			return err
		}
	}
	if !e.stillCurrent(gen) {
		next.Destroy()
		return errSuperseded
	}

	// Restoration is best-effort; the adapters clamp and degrade instead
	// of failing.
	next.SetAbsoluteCursor(cursor, content)
	next.SetScrollPosition(scroll)

	if err := e.frames.WaitFrame(ctx); err != nil {
		next.Destroy()
		return err
	}
	if !e.stillCurrent(gen) {
		next.Destroy()
		return errSuperseded
	}
	next.Focus()

	e.mu.Lock()
	e.current = next
	e.mode = target
	e.mu.Unlock()

	logger.Debug("mode switch complete",
		logging.FieldFrom, string(from),
		logging.FieldTo, string(target),
		logging.FieldCursor, cursor,
		logging.FieldScroll, scroll,
		logging.FieldDuration, time.Since(start))
	return nil
}

// construct builds the target surface and, for the rendered one, awaits its
// readiness.
func (e *Editor) construct(ctx context.Context, target Mode, content string) (surface.Surface, error) {
	if target == ModeRaw {
		return surface.NewRaw(content, e.surfaceOptions()), nil
	}

	r := surface.NewRendered(content, e.surfaceOptions())
	if err := r.Ready(ctx); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("initialize rendered surface: %w", err)
	}
	return r, nil
}

// stillCurrent reports whether the switch that observed gen is still the
// live transition. Destroy bumps the generation.
func (e *Editor) stillCurrent(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.destroyed && e.generation == gen
}

// Content returns the document as raw Markdown, or "" when instance-less.
func (e *Editor) Content() string {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return ""
	}
	return cur.Content()
}

// SetContent replaces the document on the active surface.
func (e *Editor) SetContent(text string) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur != nil {
		cur.SetContent(text)
	}
}

// DocumentText returns the text as the active surface displays it.
func (e *Editor) DocumentText() string {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return ""
	}
	return cur.DocumentText()
}

// CursorOffset returns the caret as an absolute raw-Markdown offset.
func (e *Editor) CursorOffset() int {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return 0
	}
	return cur.AbsoluteCursor(cur.Content())
}

// SetCursorOffset moves the caret to an absolute raw-Markdown offset,
// clamped into the document.
func (e *Editor) SetCursorOffset(offset int) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur != nil {
		cur.SetAbsoluteCursor(offset, cur.Content())
	}
}

// Cursor returns the caret as a 1-based line and column over the raw source.
func (e *Editor) Cursor() (line, col int) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return 1, 1
	}
	content := cur.Content()
	return mdtree.NewLineIndex(content).Position(cur.AbsoluteCursor(content))
}

// SetCursor moves the caret to a 1-based line and column, clamped into the
// document.
func (e *Editor) SetCursor(line, col int) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return
	}
	content := cur.Content()
	cur.SetAbsoluteCursor(mdtree.NewLineIndex(content).Offset(line, col), content)
}

// ScrollPosition returns the active surface's scroll offset.
func (e *Editor) ScrollPosition() int {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return 0
	}
	return cur.ScrollPosition()
}

// SetScrollPosition sets the active surface's scroll offset.
func (e *Editor) SetScrollPosition(v int) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur != nil {
		cur.SetScrollPosition(v)
	}
}

// Selection returns the selected range in raw offsets; collapsed when
// nothing is selected.
func (e *Editor) Selection() (start, end int) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil {
		return 0, 0
	}
	return cur.Selection()
}

// Focus gives the active surface input focus.
func (e *Editor) Focus() {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur != nil {
		cur.Focus()
	}
}

// Destroy tears the editor down. An in-flight switch aborts at its next
// suspension point and never installs its surface.
func (e *Editor) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return
	}
	e.destroyed = true
	e.generation++
	if e.current != nil {
		e.current.Destroy()
		e.current = nil
	}
}
