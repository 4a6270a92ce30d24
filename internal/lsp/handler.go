package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const Name = "tern"

var Version = "0.1.0"

var log = commonlog.GetLogger("tern.lsp")

// Semantic token types advertised in the legend; indices are referenced by encoded tokens
var SemanticTokenTypes = []string{
	"type",
	"typeParameter",
	"function",
	"variable",
	"parameter",
	"property",
	"enumMember",
	"keyword",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// TernHandler implements the LSP server handlers for tern. Documents are
// kept in memory as sent by the client and re-parsed on every request.
type TernHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]string
}

// NewTernHandler creates and returns a new TernHandler instance
func NewTernHandler() *TernHandler {
	return &TernHandler{
		docs: make(map[protocol.DocumentUri]string),
	}
}

// Handler wires the handler methods into a glsp protocol handler.
func (h *TernHandler) Handler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentCompletion:         h.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
		TextDocumentDocumentSymbol:     h.TextDocumentDocumentSymbol,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *TernHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		log.Infof("initialize from %s", params.ClientInfo.Name)
	} else {
		log.Info("initialize")
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &Version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *TernHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *TernHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *TernHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen stores the document and publishes its diagnostics
func (h *TernHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)
	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange replaces the document text. Only full sync is
// advertised, so the last change carries the whole text.
func (h *TernHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	for i := len(params.ContentChanges) - 1; i >= 0; i-- {
		switch change := params.ContentChanges[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			h.update(ctx, params.TextDocument.URI, change.Text)
			return nil
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				h.update(ctx, params.TextDocument.URI, change.Text)
				return nil
			}
		}
	}
	return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *TernHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.docs, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers keywords and the names declared in the document
func (h *TernHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	source, err := h.source(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions(params.TextDocument.URI, source),
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *TernHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	source, err := h.source(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(source)),
	}, nil
}

// TextDocumentDocumentSymbol returns the declaration outline of the document
func (h *TernHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	source, err := h.source(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return documentSymbols(params.TextDocument.URI, source), nil
}

func (h *TernHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	h.docs[uri] = text
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, Diagnose(text))
}

// source returns the open document, falling back to the file on disk for
// documents the client never opened.
func (h *TernHandler) source(uri protocol.DocumentUri) (string, error) {
	h.mu.RLock()
	text, ok := h.docs[uri]
	h.mu.RUnlock()
	if ok {
		return text, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
