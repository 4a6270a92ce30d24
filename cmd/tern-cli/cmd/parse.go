package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"tern/internal/ast"
	"tern/internal/errors"
	"tern/internal/parser"
)

var (
	parseExpr bool
	parseType bool
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a file",
	Long: `Parse a file and print its items in canonical, fully parenthesized form.

With --expr or --type the argument is source text parsed as a single
expression or type instead of a file name.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseExpr, "expr", "e", false, "parse the argument as an expression")
	parseCmd.Flags().BoolVarP(&parseType, "type", "t", false, "parse the argument as a type")
	parseCmd.MarkFlagsMutuallyExclusive("expr", "type")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		name   = args[0]
		source string
		tree   string
		err    error
	)

	switch {
	case parseExpr, parseType:
		name, source = "<arg>", args[0]
		var node ast.Node
		if parseExpr {
			node, err = parser.ParseExpression(source)
		} else {
			node, err = parser.ParseType(source)
		}
		if err == nil {
			tree = node.String()
		}
	default:
		source, err = readSource(name)
		if err != nil {
			return err
		}
		var items []ast.Item
		items, err = parser.ParseFile(source)
		if err == nil {
			tree = strings.TrimSuffix(ast.Format(items), "\n")
		}
	}

	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(name, source).Report(err))
		return ErrReported
	}
	fmt.Fprintln(cmd.OutOrStdout(), tree)
	return nil
}
