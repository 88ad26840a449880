package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markmode/internal/logging"
	"github.com/yaklabco/markmode/internal/ui/pretty"
	"github.com/yaklabco/markmode/pkg/fsutil"
	"github.com/yaklabco/markmode/pkg/richdoc"
)

type renderFlags struct {
	plain  bool
	output string
}

func newRenderCommand(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the rendered content-only projection of a document",
		Long: `Parse a Markdown document into its rendered tree and print the content-only
text: syntax markers elided, one line per block, terminal styling applied
when the output is a TTY.

Examples:
  markmode render README.md            Styled rendered text
  markmode render README.md --plain    Unstyled, suitable for piping
  markmode render README.md -o out.txt Write the projection to a file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.plain, "plain", false, "disable styling")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, path string, root *rootFlags, flags *renderFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := resolveConfig(ctx, root)
	if err != nil {
		return err
	}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	doc := richdoc.Open(string(content))
	if err := doc.Await(ctx); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	defer doc.Destroy()

	colorEnabled := !flags.plain && flags.output == "" &&
		pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout())
	styles := pretty.NewStyles(colorEnabled)

	rendered := styles.RenderTree(doc.Root())

	if flags.output != "" {
		if err := fsutil.WriteAtomic(ctx, flags.output, []byte(rendered+"\n"), 0); err != nil {
			return err
		}
		logger.Info("rendered projection written",
			logging.FieldInput, path,
			logging.FieldOutput, flags.output)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
