package grammar

import (
	"strings"
	"unicode"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"tern/internal/lexer"
)

type SymbolKind int

const (
	FunctionSymbol SymbolKind = iota + 1
	ConstSymbol
	StructSymbol
	EnumSymbol
	FieldSymbol
	VariantSymbol
	TypeParamSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case FunctionSymbol:
		return "function"
	case ConstSymbol:
		return "const"
	case StructSymbol:
		return "struct"
	case EnumSymbol:
		return "enum"
	case FieldSymbol:
		return "field"
	case VariantSymbol:
		return "variant"
	case TypeParamSymbol:
		return "type parameter"
	}
	return "unknown"
}

// Range is a half-open source range.
type Range struct {
	Start lexer.Position
	End   lexer.Position
}

// Symbol is one declaration in the outline. Range covers the whole
// declaration; Selection covers its name.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Detail    string
	Range     Range
	Selection Range
	Children  []Symbol
}

// Symbols builds the declaration tree of a parsed outline. source must be
// the text the outline was parsed from.
func (f *File) Symbols(source string) []Symbol {
	symbols := make([]Symbol, 0, len(f.Items))
	for _, item := range f.Items {
		symbols = append(symbols, item.symbol(source))
	}
	return symbols
}

func (it *Item) symbol(source string) Symbol {
	var sym Symbol
	switch {
	case it.Const != nil:
		sym = named(it.Const.Name, ConstSymbol)
		sym.Detail = it.Const.Type.String()

	case it.Function != nil:
		fn := it.Function
		sym = named(fn.Name, FunctionSymbol)
		params := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = p.String()
		}
		sym.Detail = "fn(" + strings.Join(params, ", ") + ")"
		if fn.Return != nil {
			sym.Detail += ": " + fn.Return.String()
		}

	case it.Struct != nil:
		sym = named(it.Struct.Name, StructSymbol)
		sym.Detail = generics(it.Struct.Generics)
		sym.Children = typeParams(it.Struct.Generics)
		sym.Children = append(sym.Children, fields(source, it.Struct.Fields)...)

	case it.Enum != nil:
		sym = named(it.Enum.Name, EnumSymbol)
		sym.Detail = generics(it.Enum.Generics)
		sym.Children = typeParams(it.Enum.Generics)
		for _, v := range it.Enum.Variants {
			child := named(v.Name, VariantSymbol)
			switch {
			case v.Tuple != nil:
				child.Detail = "(" + joinTypes(v.Tuple.Types) + ")"
			case v.Record != nil:
				child.Detail = "{ ... }"
				child.Children = fields(source, v.Record.Fields)
			}
			sym.Children = append(sym.Children, child)
		}
	}

	sym.Range = Range{
		Start: lexer.Locate(source, it.Pos.Offset),
		End:   lexer.Locate(source, trimEnd(source, it.EndPos.Offset)),
	}
	return sym
}

func named(n Name, kind SymbolKind) Symbol {
	sel := Range{Start: convert(n.Pos), End: convert(n.End())}
	return Symbol{Name: n.Value, Kind: kind, Range: sel, Selection: sel}
}

func fields(source string, fs []*Field) []Symbol {
	var out []Symbol
	for _, f := range fs {
		sym := named(f.Name, FieldSymbol)
		sym.Detail = f.Type.String()
		sym.Range.End = lexer.Locate(source, typeEnd(source, f.Type))
		out = append(out, sym)
	}
	return out
}

func typeParams(names []*Name) []Symbol {
	var out []Symbol
	for _, n := range names {
		out = append(out, named(*n, TypeParamSymbol))
	}
	return out
}

func generics(names []*Name) string {
	if len(names) == 0 {
		return ""
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.Value
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// typeEnd finds the end of a field type by skipping to the next separator
// at nesting depth zero.
func typeEnd(source string, t *Type) int {
	depth := 0
	for i := t.Pos.Offset; i < len(source); i++ {
		switch source[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			if depth == 0 {
				return trimEnd(source, i)
			}
			depth--
		case ',', '}':
			if depth == 0 {
				return trimEnd(source, i)
			}
		}
	}
	return trimEnd(source, len(source))
}

// trimEnd moves offset back over whitespace.
func trimEnd(source string, offset int) int {
	offset = min(offset, len(source))
	return len(strings.TrimRightFunc(source[:offset], unicode.IsSpace))
}

func convert(pos plexer.Position) lexer.Position {
	return lexer.Position{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}
