package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tern/internal/lsp"
)

const uri = "file:///tmp/main.tn"

type published struct {
	URI         protocol.DocumentUri
	Diagnostics []protocol.Diagnostic
}

func newContext(sent *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			p := params.(*protocol.PublishDiagnosticsParams)
			*sent = append(*sent, published{URI: p.URI, Diagnostics: p.Diagnostics})
		},
	}
}

func open(t *testing.T, h *lsp.TernHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "tern", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewTernHandler()
	var sent []published
	ctx := newContext(&sent)
	open(t, handler, ctx, "fn add(a, b: Int): Int -> a + b\nconst X: Int = 1")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 15)

	assertToken(t, &decoded[0], 1, 1, 2, "keyword", nil)
	assertToken(t, &decoded[1], 1, 4, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 8, 1, "variable", nil)
	assertToken(t, &decoded[3], 1, 11, 1, "variable", nil)
	assertToken(t, &decoded[4], 1, 14, 3, "type", nil)
	assertToken(t, &decoded[5], 1, 20, 3, "type", nil)
	assertToken(t, &decoded[6], 1, 24, 2, "operator", nil)
	assertToken(t, &decoded[7], 1, 27, 1, "variable", nil)
	assertToken(t, &decoded[8], 1, 29, 1, "operator", nil)
	assertToken(t, &decoded[9], 1, 31, 1, "variable", nil)
	assertToken(t, &decoded[10], 2, 1, 5, "keyword", nil)
	assertToken(t, &decoded[11], 2, 7, 1, "variable", []string{"declaration", "readonly"})
	assertToken(t, &decoded[12], 2, 10, 3, "type", nil)
	assertToken(t, &decoded[13], 2, 14, 1, "operator", nil)
	assertToken(t, &decoded[14], 2, 16, 1, "number", nil)
}

func TestDiagnosticsPublished(t *testing.T) {
	handler := lsp.NewTernHandler()
	var sent []published
	ctx := newContext(&sent)

	open(t, handler, ctx, "const A: Int = 1\n\nconst B: Int = 2 3\n")
	require.Len(t, sent, 1)
	assert.Equal(t, protocol.DocumentUri(uri), sent[0].URI)
	require.Len(t, sent[0].Diagnostics, 1)

	diag := sent[0].Diagnostics[0]
	assert.Equal(t, protocol.Position{Line: 2, Character: 17}, diag.Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 18}, diag.Range.End)
	assert.Equal(t, "E0103", diag.Code.Value)
	assert.Equal(t, "tern", *diag.Source)
	assert.Contains(t, diag.Message, "unexpected token `3`")

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "const A: Int = 1\n"}},
	})
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].Diagnostics)
	assert.NotNil(t, sent[1].Diagnostics)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, sent, 3)
	assert.Empty(t, sent[2].Diagnostics)
}

func TestDiagnoseSuggestion(t *testing.T) {
	diagnostics := lsp.Diagnose("strct Foo {}")
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0].Message, "help: did you mean `struct`?")
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, diagnostics[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 5}, diagnostics[0].Range.End)

	assert.Empty(t, lsp.Diagnose("fn main() -> {}"))
}

func TestDocumentSymbol(t *testing.T) {
	handler := lsp.NewTernHandler()
	var sent []published
	ctx := newContext(&sent)
	open(t, handler, ctx, "struct Pair<T> {\n    a: T,\n}\n\nfn swap(p: Pair<Int>) -> p\n")

	result, err := handler.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 2)

	pair := symbols[0]
	assert.Equal(t, "Pair", pair.Name)
	assert.Equal(t, protocol.SymbolKindStruct, pair.Kind)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 2, Character: 1},
	}, pair.Range)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 7},
		End:   protocol.Position{Line: 0, Character: 11},
	}, pair.SelectionRange)
	require.Len(t, pair.Children, 2)
	assert.Equal(t, protocol.SymbolKindTypeParameter, pair.Children[0].Kind)
	assert.Equal(t, "a", pair.Children[1].Name)
	assert.Equal(t, protocol.SymbolKindField, pair.Children[1].Kind)

	swap := symbols[1]
	assert.Equal(t, protocol.SymbolKindFunction, swap.Kind)
	require.NotNil(t, swap.Detail)
	assert.Equal(t, "fn(p: Pair<Int>)", *swap.Detail)
}

func TestCompletion(t *testing.T) {
	handler := lsp.NewTernHandler()
	var sent []published
	ctx := newContext(&sent)
	open(t, handler, ctx, "const LIMIT: Int = 10\nfn main() -> LIMIT")

	result, err := handler.TextDocumentCompletion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)

	labels := map[string]protocol.CompletionItemKind{}
	for _, item := range result.(*protocol.CompletionList).Items {
		labels[item.Label] = *item.Kind
	}
	assert.Equal(t, protocol.CompletionItemKindKeyword, labels["struct"])
	assert.Equal(t, protocol.CompletionItemKindConstant, labels["LIMIT"])
	assert.Equal(t, protocol.CompletionItemKindFunction, labels["main"])
}

func TestUnopenedDocumentReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.tn")
	require.NoError(t, os.WriteFile(path, []byte("enum E { A, }"), 0o644))

	handler := lsp.NewTernHandler()
	result, err := handler.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file://" + filepath.ToSlash(path)},
	})
	require.NoError(t, err)
	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 1)
	assert.Equal(t, protocol.SymbolKindEnum, symbols[0].Kind)

	_, err = handler.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.tn"},
	})
	assert.Error(t, err)
}

func TestInitialize(t *testing.T) {
	handler := lsp.NewTernHandler()
	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	res := result.(*protocol.InitializeResult)
	assert.Equal(t, true, res.Capabilities.DocumentSymbolProvider)
	assert.Equal(t, lsp.Name, res.ServerInfo.Name)

	h := handler.Handler()
	assert.NotNil(t, h.TextDocumentDocumentSymbol)
	assert.NotNil(t, h.SetTrace)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
