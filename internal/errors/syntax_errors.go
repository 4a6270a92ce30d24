package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tern/internal/lexer"
	"tern/internal/parser"
)

// SyntaxErrorBuilder provides a fluent interface for creating syntax errors with suggestions
type SyntaxErrorBuilder struct {
	err CompilerError
}

// NewSyntaxError creates a new syntax error builder
func NewSyntaxError(code, message string, pos lexer.Position) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion together with the corrected line
func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

// WithNote adds a note to the error
func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets the help text of the error
func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SyntaxErrorBuilder) Build() CompilerError {
	return b.err
}

// CodeFor maps a parse error kind to its error code
func CodeFor(kind parser.ErrorKind) string {
	switch kind {
	case parser.LexicalError:
		return ErrorLexical
	case parser.MissingToken:
		return ErrorMissingToken
	case parser.MismatchedToken:
		return ErrorMismatchedToken
	default:
		return ErrorUnexpectedToken
	}
}

// Keywords that can begin each construct, used for typo suggestions.
var startKeywords = map[string][]string{
	"start of item":       {"const", "fn", "struct", "enum"},
	"start of expression": {"let", "if", "true", "false"},
	"start of type name":  {"fn"},
}

// FromParseError turns a *parser.ParseError found in err's chain into a
// diagnostic positioned in source. ok is false for any other error.
func FromParseError(err error, source string) (CompilerError, bool) {
	var perr *parser.ParseError
	if !goerrors.As(err, &perr) {
		return CompilerError{}, false
	}

	span := clampSpan(perr.Span, len(source))
	pos := lexer.Locate(source, span.Start)
	found := source[span.Start:span.End]

	builder := NewSyntaxError(CodeFor(perr.Kind), perr.Error(), pos).
		WithLength(utf8.RuneCountInString(found))

	switch perr.Kind {
	case parser.LexicalError:
		builder = builder.WithNote(fmt.Sprintf("`%s` is not part of any token", found)).
			WithHelp("identifiers use ASCII letters, digits and `_`; comments start with `//`")

	case parser.MissingToken:
		if strings.HasPrefix(perr.Expected, "`") {
			builder = builder.WithSuggestion(fmt.Sprintf("add %s", perr.Expected))
		}
		builder = builder.WithNote("the source ended before this construct was complete")

	case parser.MismatchedToken:
		if strings.HasPrefix(perr.Expected, "`") {
			builder = builder.WithSuggestion(fmt.Sprintf("insert %s before %s", perr.Expected, perr.Found))
		}

	case parser.UnexpectedToken:
		if isSignedNumber(found) {
			line := lineOf(source, pos)
			at := pos.Offset - lineStart(source, pos) + 1
			builder = builder.WithReplacement("separate the sign from the number", line[:at]+" "+line[at:]).
				WithNote("a `+` or `-` directly followed by a digit is part of the number literal")
		}
		for _, kw := range findSimilarNames(found, startKeywords[perr.Expected]) {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean `%s`?", kw))
		}
	}

	return builder.Build(), true
}

func clampSpan(span lexer.Span, n int) lexer.Span {
	span.Start = min(max(span.Start, 0), n)
	span.End = min(max(span.End, span.Start), n)
	return span
}

func isSignedNumber(s string) bool {
	if len(s) < 2 || (s[0] != '-' && s[0] != '+') {
		return false
	}
	return (s[1] >= '0' && s[1] <= '9') || s[1] == '.'
}

func lineStart(source string, pos lexer.Position) int {
	return strings.LastIndexByte(source[:pos.Offset], '\n') + 1
}

func lineOf(source string, pos lexer.Position) string {
	start := lineStart(source, pos)
	end := strings.IndexByte(source[start:], '\n')
	if end < 0 {
		return source[start:]
	}
	return source[start : start+end]
}

// findSimilarNames returns the candidates within a small edit distance of target
func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if d := levenshteinDistance(target, candidate); d <= 2 && d < len(candidate) && d > 0 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
