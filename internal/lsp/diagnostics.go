package lsp

import (
	goerrors "errors"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"tern/internal/errors"
	"tern/internal/lexer"
	"tern/internal/parser"
)

// Diagnose parses source and converts the first syntax error, if any, into
// an LSP diagnostic. A clean document yields an empty, non-nil slice so the
// client clears stale markers.
func Diagnose(source string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	_, err := parser.ParseFile(source)
	if err == nil {
		return diagnostics
	}

	ce, ok := errors.FromParseError(err, source)
	var perr *parser.ParseError
	if !ok || !goerrors.As(err, &perr) {
		log.Errorf("unexpected parse failure: %s", err)
		return diagnostics
	}

	end := lexer.Locate(source, perr.Span.End)
	if perr.Span.End <= perr.Span.Start {
		end = ce.Position
		end.Column++
	}

	message := ce.Message
	for _, s := range ce.Suggestions {
		message += "\nhelp: " + s.Message
	}
	if ce.HelpText != "" {
		message += "\nhelp: " + ce.HelpText
	}

	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: toPosition(ce.Position), End: toPosition(end)},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: ce.Code},
		Source:   ptrString("tern"),
		Message:  strings.TrimSpace(message),
	})
	return diagnostics
}

// toPosition converts a 1-based position into a 0-based LSP one.
func toPosition(pos lexer.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
