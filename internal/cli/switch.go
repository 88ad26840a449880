package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markmode/internal/logging"
	"github.com/yaklabco/markmode/internal/ui/pretty"
	"github.com/yaklabco/markmode/pkg/editor"
	"github.com/yaklabco/markmode/pkg/fsutil"
)

type switchFlags struct {
	cursor int
	count  int
}

func newSwitchCommand(root *rootFlags) *cobra.Command {
	flags := &switchFlags{}

	cmd := &cobra.Command{
		Use:   "switch FILE",
		Short: "Simulate mode switches and report cursor restoration",
		Long: `Open a document in an editor, place the cursor at a raw offset, and toggle
between the raw and rendered surfaces, reporting the recovered cursor after
every switch. Each toggle runs the full protocol: capture, destroy,
construct, await readiness, settle, restore, focus.

Cursor drift is expected when the starting offset sits inside a syntax
marker; content offsets round-trip exactly.

Examples:
  markmode switch README.md --cursor 42
  markmode switch README.md --cursor 42 --count 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", 0, "starting cursor as a raw Markdown offset")
	cmd.Flags().IntVar(&flags.count, "count", 2, "number of mode toggles to perform")

	return cmd
}

func runSwitch(cmd *cobra.Command, path string, root *rootFlags, flags *switchFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if flags.count < 1 {
		return &UsageError{Message: "count must be at least 1"}
	}

	cfg, err := resolveConfig(ctx, root)
	if err != nil {
		return err
	}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	ed := editor.New(editor.Options{
		Content:     string(content),
		ReadOnly:    cfg.ReadOnly,
		Frames:      editor.TimerFrames{Interval: time.Duration(cfg.FrameIntervalMS) * time.Millisecond},
		SettleDelay: time.Duration(cfg.SettleDelayMS) * time.Millisecond,
	})
	defer ed.Destroy()

	if cfg.DefaultMode == string(editor.ModeRendered) {
		if err := ed.SwitchMode(ctx, editor.ModeRendered); err != nil {
			return fmt.Errorf("enter rendered mode: %w", err)
		}
	}

	ed.SetCursorOffset(flags.cursor)

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s  %s %s\n",
		styles.Dim.Render("mode"), styles.ModeName.Render(string(ed.Mode())),
		styles.Dim.Render("cursor"), styles.CursorValue.Render(fmt.Sprintf("%d", ed.CursorOffset())))

	for i := 0; i < flags.count; i++ {
		start := time.Now()
		if err := ed.ToggleMode(ctx); err != nil {
			return fmt.Errorf("switch %d: %w", i+1, err)
		}
		logger.Debug("toggle complete",
			logging.FieldTo, string(ed.Mode()),
			logging.FieldDuration, time.Since(start))

		line, col := ed.Cursor()
		fmt.Fprintf(out, "%s %s  %s %s  %s %d:%d\n",
			styles.Dim.Render("mode"), styles.ModeName.Render(string(ed.Mode())),
			styles.Dim.Render("cursor"), styles.CursorValue.Render(fmt.Sprintf("%d", ed.CursorOffset())),
			styles.Dim.Render("line"), line, col)
	}

	return nil
}
