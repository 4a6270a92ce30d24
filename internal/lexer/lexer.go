// Package lexer turns tern source text into a lazy sequence of tokens.
//
// Tokens are recognized by an ordered rule table (see rules.go). Input that no
// rule recognizes is reported as an ERROR token spanning the bad bytes, so
// lexing never fails; the parser decides what to do with those tokens.
package lexer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	source   string
	position int
	eof      bool
}

func New(source string) *Lexer {
	return &Lexer{source: source}
}

// Next returns the next token. ok is false once EOF has been handed out.
func (l *Lexer) Next() (Token, bool) {
	tok, _, ok := l.NextSpanned()
	return tok, ok
}

// NextSpanned is Next plus the byte range the token was read from.
func (l *Lexer) NextSpanned() (Token, Span, bool) {
	l.skipTrivia()

	if l.position >= len(l.source) {
		if l.eof {
			return Token{}, Span{}, false
		}
		l.eof = true
		end := len(l.source)
		return Simple(EOF), Span{Start: end, End: end}, true
	}

	start := l.position
	if tok, n, ok := longestMatch(l.source[start:]); ok {
		l.position += n
		return tok, Span{Start: start, End: l.position}, true
	}

	l.position = l.recover(start)
	return Error(start, l.position), Span{Start: start, End: l.position}, true
}

// All yields the remaining tokens, EOF included.
func (l *Lexer) All() iter.Seq2[Token, Span] {
	return func(yield func(Token, Span) bool) {
		for {
			tok, span, ok := l.NextSpanned()
			if !ok || !yield(tok, span) {
				return
			}
		}
	}
}

// Tokenize drains the lexer.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for tok := range l.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func (l *Lexer) skipTrivia() {
	for l.position < len(l.source) {
		rest := l.source[l.position:]

		if strings.HasPrefix(rest, "//") {
			nl := strings.IndexByte(rest, '\n')
			if nl < 0 {
				l.position = len(l.source)
			} else {
				l.position += nl + 1
			}
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			return
		}
		l.position += size
	}
}

// recover scans forward one character at a time from start until lexing
// could resume, and returns that offset.
func (l *Lexer) recover(start int) int {
	_, size := utf8.DecodeRuneInString(l.source[start:])
	for pos := start + size; pos < len(l.source); {
		if canResume(l.source[pos:]) {
			return pos
		}
		_, size := utf8.DecodeRuneInString(l.source[pos:])
		pos += size
	}
	return len(l.source)
}

func canResume(input string) bool {
	if strings.HasPrefix(input, "//") {
		return true
	}
	if r, _ := utf8.DecodeRuneInString(input); unicode.IsSpace(r) {
		return true
	}
	_, _, ok := longestMatch(input)
	return ok
}
