package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/markmode/internal/logging"
	"github.com/yaklabco/markmode/internal/ui/pretty"
	"github.com/yaklabco/markmode/pkg/config"
	"github.com/yaklabco/markmode/pkg/fsutil"
	"github.com/yaklabco/markmode/pkg/offsetmap"
)

type mapFlags struct {
	offset int
	from   string
	format string
}

func newMapCommand(root *rootFlags) *cobra.Command {
	flags := &mapFlags{}

	cmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Inspect the raw/rendered position map of a document",
		Long: `Build the bidirectional offset map between a document's raw Markdown and
its rendered content-only text.

Without --offset the whole map is printed, one row per raw byte. With
--offset a single conversion is reported; --from picks the direction.

Examples:
  markmode map README.md                      Dump the full position map
  markmode map README.md --offset 10          Convert raw offset 10
  markmode map README.md --offset 4 --from rendered
  markmode map README.md --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", -1, "convert a single offset instead of dumping the map")
	cmd.Flags().StringVar(&flags.from, "from", "raw", "offset direction: raw or rendered")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text or json")

	return cmd
}

func runMap(cmd *cobra.Command, path string, root *rootFlags, flags *mapFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := resolveConfig(ctx, root)
	if err != nil {
		return err
	}
	format := cfg.Format
	if flags.format != "" {
		format = config.OutputFormat(flags.format)
	}
	if format != config.FormatText && format != config.FormatJSON {
		return &UsageError{Message: fmt.Sprintf("unknown format %q: expected text or json", format)}
	}
	if flags.from != "raw" && flags.from != "rendered" {
		return &UsageError{Message: fmt.Sprintf("unknown direction %q: expected raw or rendered", flags.from)}
	}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	text := string(content)

	m := offsetmap.BuildPositionMap(text)
	logger.Debug("position map built",
		logging.FieldPath, path,
		logging.FieldRawLen, len(text),
		logging.FieldRenderedLen, m.RenderedLen())

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))

	if flags.offset >= 0 {
		return reportOffset(cmd, text, flags, format, styles)
	}

	if format == config.FormatJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(mapDump{
			RawLength:      len(text),
			RenderedLength: m.RenderedLen(),
			RawToRendered:  m.RawToRendered,
			RenderedToRaw:  m.RenderedToRaw,
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.RenderMapTable(text, m))
	return nil
}

// mapDump is the JSON shape of a full map dump.
type mapDump struct {
	RawLength      int   `json:"raw_length"`
	RenderedLength int   `json:"rendered_length"`
	RawToRendered  []int `json:"raw_to_rendered"`
	RenderedToRaw  []int `json:"rendered_to_raw"`
}

// offsetReport is the JSON shape of a single conversion.
type offsetReport struct {
	From      string `json:"from"`
	Offset    int    `json:"offset"`
	Converted int    `json:"converted"`
}

func reportOffset(cmd *cobra.Command, text string, flags *mapFlags, format config.OutputFormat, styles *pretty.Styles) error {
	var converted int
	if flags.from == "raw" {
		converted = offsetmap.MarkdownOffsetToRendered(text, flags.offset)
	} else {
		converted = offsetmap.RenderedOffsetToMarkdown(text, flags.offset)
	}

	if format == config.FormatJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(offsetReport{
			From:      flags.from,
			Offset:    flags.offset,
			Converted: converted,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.FormatOffsetReport(flags.from, flags.offset, converted))
	return nil
}
