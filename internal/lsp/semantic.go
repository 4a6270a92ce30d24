package lsp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"tern/internal/lexer"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

const (
	modDeclaration = 1 << iota
	modReadonly
)

var tokenTypeIndex = func() map[string]int {
	index := make(map[string]int, len(SemanticTokenTypes))
	for i, name := range SemanticTokenTypes {
		index[name] = i
	}
	return index
}()

type spanned struct {
	tok  lexer.Token
	span lexer.Span
}

// collectSemanticTokens classifies every token of source. Identifiers are
// classified from the tokens around them, so the result does not depend on
// the document parsing cleanly.
func collectSemanticTokens(source string) []SemanticToken {
	var all []spanned
	for tok, span := range lexer.New(source).All() {
		all = append(all, spanned{tok, span})
	}

	var (
		tokens       []SemanticToken
		offset       int
		line, column uint32
	)
	for i, st := range all {
		kind, mods, ok := classify(all, i)
		if !ok {
			continue
		}
		text := source[st.span.Start:st.span.End]
		if strings.ContainsRune(text, '\n') {
			continue
		}

		for offset < st.span.Start {
			r, size := utf8.DecodeRuneInString(source[offset:])
			offset += size
			if r == '\n' {
				line++
				column = 0
			} else {
				column++
			}
		}

		tokens = append(tokens, SemanticToken{
			Line:           line,
			StartChar:      column,
			Length:         uint32(utf8.RuneCountInString(text)),
			TokenType:      tokenTypeIndex[kind],
			TokenModifiers: mods,
		})
	}
	return tokens
}

func classify(all []spanned, i int) (string, int, bool) {
	tok := all[i].tok
	switch tok.Type {
	case lexer.INT_LIT, lexer.FLOAT_LIT:
		return "number", 0, true
	case lexer.STRING_LIT, lexer.CHAR_LIT:
		return "string", 0, true
	case lexer.LET, lexer.MUT, lexer.FN, lexer.IF, lexer.ELSE, lexer.MATCH,
		lexer.CONST, lexer.STRUCT, lexer.ENUM, lexer.TRUE, lexer.FALSE:
		return "keyword", 0, true
	case lexer.IDENTIFIER:
		return classifyIdent(all, i)
	}
	if tok.Type >= lexer.EQUAL && tok.Type <= lexer.STAR_STAR {
		return "operator", 0, true
	}
	return "", 0, false
}

func classifyIdent(all []spanned, i int) (string, int, bool) {
	prev, next := lexer.EOF, lexer.EOF
	if i > 0 {
		prev = all[i-1].tok.Type
	}
	if i+1 < len(all) {
		next = all[i+1].tok.Type
	}

	switch prev {
	case lexer.FN:
		return "function", modDeclaration, true
	case lexer.STRUCT, lexer.ENUM:
		return "type", modDeclaration, true
	case lexer.CONST:
		return "variable", modDeclaration | modReadonly, true
	case lexer.LET, lexer.MUT:
		return "variable", modDeclaration, true
	}

	if next == lexer.LEFT_PAREN {
		return "function", 0, true
	}
	if r, _ := utf8.DecodeRuneInString(all[i].tok.Text); unicode.IsUpper(r) {
		return "type", 0, true
	}
	return "variable", 0, true
}

// encodeSemanticTokens encodes tokens into LSP wire format (delta-line,
// delta-start compression). tokens must be in document order.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}
