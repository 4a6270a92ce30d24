package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"tern/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Dump the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dim := color.New(color.Faint).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	failed := false
	for tok, span := range lexer.New(source).All() {
		pos := lexer.Locate(source, span.Start)
		kind := tok.Type.String()
		if tok.Is(lexer.ERROR) {
			kind = red(kind)
			failed = true
		}
		fmt.Fprintf(out, "%s %-14s %q\n", dim(fmt.Sprintf("%4d:%-3d", pos.Line, pos.Column)), kind, source[span.Start:span.End])
	}

	if failed {
		return ErrReported
	}
	return nil
}
