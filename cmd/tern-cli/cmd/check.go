package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"tern/internal/errors"
	"tern/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report syntax errors in files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	failed := 0

	for _, path := range args {
		source, err := readSource(path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("%s: %s", path, err))
			failed++
			continue
		}

		items, err := parser.ParseFile(source)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, source).Report(err))
			failed++
			continue
		}
		log.Infof("%s: %d items", path, len(items))
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Check failed for %d of %d files after %s", failed, len(args), duration))
		return ErrReported
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Successfully checked %d files in %s", len(args), duration))
	return nil
}
