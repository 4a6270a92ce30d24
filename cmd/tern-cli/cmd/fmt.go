package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tern/internal/ast"
	"tern/internal/errors"
	"tern/internal/parser"
)

var (
	fmtWrite bool
	fmtCheck bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE...",
	Short: "Print files in canonical form",
	Long: `Print each file in canonical form. Comments are not preserved.

With -w the files are rewritten in place; with --check nothing is written
and the command fails if any file is not already canonical.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit 1 if any file would change")
	fmtCmd.MarkFlagsMutuallyExclusive("write", "check")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	failed := false

	for _, path := range args {
		source, err := readSource(path)
		if err != nil {
			return err
		}
		items, err := parser.ParseFile(source)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, source).Report(err))
			failed = true
			continue
		}
		formatted := ast.Format(items)

		switch {
		case fmtCheck:
			if formatted != source {
				fmt.Fprintln(cmd.OutOrStdout(), path)
				failed = true
			}
		case fmtWrite:
			if formatted == source {
				continue
			}
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			log.Infof("formatted %s", path)
		default:
			fmt.Fprint(cmd.OutOrStdout(), formatted)
		}
	}

	if failed {
		return ErrReported
	}
	return nil
}
