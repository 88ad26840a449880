package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/markmode/internal/logging"
	"github.com/yaklabco/markmode/pkg/config"
	"github.com/yaklabco/markmode/pkg/fsutil"
)

// configHeader is prepended to generated configuration files.
const configHeader = `# markmode configuration
# See 'markmode --help' for the options each setting affects.`

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new markmode configuration file",
		Long: `Create a new .markmode.yaml configuration file in the current directory
with the default settings.

Examples:
  markmode init                     Create .markmode.yaml
  markmode init --output custom.yml Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .markmode.yaml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".markmode.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !isInteractive() {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		ok, err := confirmOverwrite(cmd, outputPath)
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("keeping existing file", logging.FieldPath, outputPath)
			return nil
		}
	}

	content, err := config.New().ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, 0); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	return nil
}

// confirmOverwrite prompts the user before replacing an existing file.
func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "File %q already exists. Overwrite? [Y/n] ", path)

	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
