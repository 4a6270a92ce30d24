package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"tern/grammar"
)

var keywords = []string{"const", "enum", "else", "false", "fn", "if", "let", "match", "mut", "struct", "true"}

var symbolKinds = map[grammar.SymbolKind]protocol.SymbolKind{
	grammar.FunctionSymbol:  protocol.SymbolKindFunction,
	grammar.ConstSymbol:     protocol.SymbolKindConstant,
	grammar.StructSymbol:    protocol.SymbolKindStruct,
	grammar.EnumSymbol:      protocol.SymbolKindEnum,
	grammar.FieldSymbol:     protocol.SymbolKindField,
	grammar.VariantSymbol:   protocol.SymbolKindEnumMember,
	grammar.TypeParamSymbol: protocol.SymbolKindTypeParameter,
}

var completionKinds = map[grammar.SymbolKind]protocol.CompletionItemKind{
	grammar.FunctionSymbol: protocol.CompletionItemKindFunction,
	grammar.ConstSymbol:    protocol.CompletionItemKindConstant,
	grammar.StructSymbol:   protocol.CompletionItemKindStruct,
	grammar.EnumSymbol:     protocol.CompletionItemKindEnum,
}

// documentSymbols returns the outline of source, or an empty list when the
// outline cannot be parsed.
func documentSymbols(uri protocol.DocumentUri, source string) []protocol.DocumentSymbol {
	file, err := grammar.ParseOutline(uri, source)
	if err != nil {
		log.Debugf("no outline for %s: %s", uri, err)
		return []protocol.DocumentSymbol{}
	}
	return convertSymbols(file.Symbols(source))
}

func convertSymbols(symbols []grammar.Symbol) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, sym := range symbols {
		ds := protocol.DocumentSymbol{
			Name:           sym.Name,
			Kind:           symbolKinds[sym.Kind],
			Range:          toRange(sym.Range),
			SelectionRange: toRange(sym.Selection),
		}
		if sym.Detail != "" {
			ds.Detail = ptrString(sym.Detail)
		}
		if len(sym.Children) > 0 {
			ds.Children = convertSymbols(sym.Children)
		}
		out = append(out, ds)
	}
	return out
}

func toRange(r grammar.Range) protocol.Range {
	return protocol.Range{Start: toPosition(r.Start), End: toPosition(r.End)}
}

// completions lists the keywords followed by the top-level names declared
// in source.
func completions(uri protocol.DocumentUri, source string) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(keywords))
	keywordKind := protocol.CompletionItemKindKeyword
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{Label: kw, Kind: &keywordKind})
	}

	file, err := grammar.ParseOutline(uri, source)
	if err != nil {
		return items
	}
	for _, sym := range file.Symbols(source) {
		kind := completionKinds[sym.Kind]
		item := protocol.CompletionItem{Label: sym.Name, Kind: &kind}
		if sym.Detail != "" {
			item.Detail = ptrString(sym.Detail)
		}
		items = append(items, item)
	}
	return items
}
