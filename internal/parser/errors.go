package parser

import (
	"errors"
	"fmt"

	"tern/internal/lexer"
)

type ErrorKind int

const (
	LexicalError ErrorKind = iota
	MissingToken
	MismatchedToken
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case MissingToken:
		return "missing token"
	case MismatchedToken:
		return "mismatched token"
	case UnexpectedToken:
		return "unexpected token"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is, one per kind.
var (
	ErrLexical         = errors.New("lexical error")
	ErrMissingToken    = errors.New("missing token")
	ErrMismatchedToken = errors.New("mismatched token")
	ErrUnexpectedToken = errors.New("unexpected token")
)

// ParseError is the first syntax error met in the input. Found is already
// rendered for display: the offending source text in backticks, or
// "end of input".
type ParseError struct {
	Kind     ErrorKind
	Expected string
	Found    string
	Span     lexer.Span
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case LexicalError:
		msg = "unrecognized input " + e.Found
	case MissingToken:
		msg = "unexpected end of input"
	default:
		msg = e.Kind.String() + " " + e.Found
	}
	if e.Expected != "" {
		msg += ", expected " + e.Expected
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case LexicalError:
		return target == ErrLexical
	case MissingToken:
		return target == ErrMissingToken
	case MismatchedToken:
		return target == ErrMismatchedToken
	case UnexpectedToken:
		return target == ErrUnexpectedToken
	}
	return false
}
