// Package repl reads tern source interactively and prints what it parses to.
package repl

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/tliron/commonlog"
	"tern/internal/ast"
	"tern/internal/errors"
	"tern/internal/lexer"
	"tern/internal/parser"
)

const (
	PROMPT   = ">> "
	CONTINUE = ".. "
)

const help = `Enter an expression or an item (const, fn, struct, enum).
Commands:
  :type T       parse T as a type
  :tokens SRC   show the tokens of SRC
  :quit         leave the REPL
`

var log = commonlog.GetLogger("tern.repl")

// Eval parses one complete input and renders the result. Items are printed
// in canonical form, expressions fully parenthesized.
func Eval(src string) (string, error) {
	trimmed := strings.TrimSpace(src)
	switch {
	case trimmed == "":
		return "", nil
	case trimmed == ":help":
		return help, nil
	case strings.HasPrefix(trimmed, ":type "):
		t, err := parser.ParseType(strings.TrimPrefix(trimmed, ":type "))
		if err != nil {
			return "", err
		}
		return t.String(), nil
	case strings.HasPrefix(trimmed, ":tokens "):
		return tokens(strings.TrimPrefix(trimmed, ":tokens ")), nil
	case strings.HasPrefix(trimmed, ":"):
		return "", fmt.Errorf("unknown command %s, type :help", strings.Fields(trimmed)[0])
	}

	if startsItem(src) {
		items, err := parser.ParseFile(src)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(ast.Format(items), "\n"), nil
	}

	expr, err := parser.ParseExpression(src)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

// Incomplete reports whether src failed only because input ended early,
// in which case the REPL keeps reading lines.
func Incomplete(src string) bool {
	_, err := Eval(src)
	return goerrors.Is(err, parser.ErrMissingToken)
}

func startsItem(src string) bool {
	tok, _ := lexer.New(src).Next()
	switch tok.Type {
	case lexer.CONST, lexer.FN, lexer.STRUCT, lexer.ENUM:
		return true
	}
	return false
}

func tokens(src string) string {
	var b strings.Builder
	for tok, span := range lexer.New(src).All() {
		fmt.Fprintf(&b, "%-14s %-10q %d..%d\n", tok.Type, src[span.Start:span.End], span.Start, span.End)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Start runs the interactive loop until EOF or :quit. History is loaded
// from and saved to historyPath when it is set.
func Start(historyPath string, out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetMultiLineMode(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Warningf("reading history %s: %s", historyPath, err)
			}
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(historyPath)
			if err != nil {
				log.Warningf("writing history %s: %s", historyPath, err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	color.New(color.Bold).Fprintln(out, "tern REPL, :help for commands")
	for {
		src, ok := read(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(src) == ":quit" {
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		result, err := Eval(src)
		if err != nil {
			fmt.Fprint(out, errors.NewErrorReporter("<repl>", src).Report(err))
			continue
		}
		fmt.Fprintln(out, result)
	}
}

// read collects lines until they form a complete input.
func read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := PROMPT
		if b.Len() > 0 {
			prompt = CONTINUE
		}
		line, err := ln.Prompt(prompt)
		if goerrors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if goerrors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			log.Errorf("reading input: %s", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !Incomplete(b.String()) {
			return b.String(), true
		}
	}
}
