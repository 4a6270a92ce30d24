package lexer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// rule tries to recognize one token at the very start of input and reports
// how many bytes it consumed.
type rule func(input string) (Token, int, bool)

var (
	intRegexp    = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatRegexp  = regexp.MustCompile(`^[+-]?(([0-9]+\.([0-9]+)?)|(\.[0-9]+))([Ee][+-]?[0-9]+)?`)
	stringRegexp = regexp.MustCompile(`^"(\\"|\\\\|\\n|[^\\"])*"`)
	charRegexp   = regexp.MustCompile(`^'(\\'|\\\\|\\n|[^\\'])'`)
	identRegexp  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

	stringEscapes = strings.NewReplacer(`\n`, "\n", `\\`, `\`, `\"`, `"`)
	charEscapes   = strings.NewReplacer(`\n`, "\n", `\\`, `\`, `\'`, `'`)
)

// rules is evaluated as a whole at every position: the longest match wins and
// a tie goes to the rule declared first. Keywords therefore have to stay ahead
// of the identifier rule, and `_` ahead of it too.
var rules = []rule{
	intRule,
	floatRule,
	stringRule,
	charRule,

	single('[', LEFT_BRACKET),
	single(']', RIGHT_BRACKET),
	single('{', LEFT_BRACE),
	single('}', RIGHT_BRACE),
	single('(', LEFT_PAREN),
	single(')', RIGHT_PAREN),
	single('=', EQUAL),
	single('&', AMPERSAND),
	single('|', PIPE),
	single('!', BANG),
	single('^', CARET),
	single('<', LESS),
	single('>', GREATER),
	single('+', PLUS),
	single('-', MINUS),
	single('*', STAR),
	single('/', SLASH),
	single('\\', BACKSLASH),
	single('.', DOT),
	single(',', COMMA),
	single(':', COLON),
	single(';', SEMICOLON),
	single('_', UNDERSCORE),

	pair("==", EQUAL_EQUAL),
	pair("!=", BANG_EQUAL),
	pair("&&", AND),
	pair("||", OR),
	pair("<=", LESS_EQUAL),
	pair(">=", GREATER_EQUAL),
	pair("->", ARROW),
	pair("**", STAR_STAR),

	keyword("let", LET),
	keyword("mut", MUT),
	keyword("fn", FN),
	keyword("if", IF),
	keyword("else", ELSE),
	keyword("match", MATCH),
	keyword("const", CONST),
	keyword("struct", STRUCT),
	keyword("enum", ENUM),
	keyword("true", TRUE),
	keyword("false", FALSE),

	identRule,
}

func single(c byte, tt TokenType) rule {
	return func(input string) (Token, int, bool) {
		if len(input) > 0 && input[0] == c {
			return Simple(tt), 1, true
		}
		return Token{}, 0, false
	}
}

func pair(sym string, tt TokenType) rule {
	return func(input string) (Token, int, bool) {
		if strings.HasPrefix(input, sym) {
			return Simple(tt), len(sym), true
		}
		return Token{}, 0, false
	}
}

// keyword matches a bare prefix; "iffy" still lexes as an identifier because
// the identifier rule matches more of it.
func keyword(kw string, tt TokenType) rule {
	return pair(kw, tt)
}

func intRule(input string) (Token, int, bool) {
	m := intRegexp.FindString(input)
	if m == "" {
		return Token{}, 0, false
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return Token{}, 0, false
	}
	return IntLit(v), len(m), true
}

func floatRule(input string) (Token, int, bool) {
	m := floatRegexp.FindString(input)
	if m == "" {
		return Token{}, 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return Token{}, 0, false
	}
	return FloatLit(v), len(m), true
}

func stringRule(input string) (Token, int, bool) {
	m := stringRegexp.FindString(input)
	if m == "" {
		return Token{}, 0, false
	}
	return StringLit(stringEscapes.Replace(m[1 : len(m)-1])), len(m), true
}

func charRule(input string) (Token, int, bool) {
	m := charRegexp.FindString(input)
	if m == "" {
		return Token{}, 0, false
	}
	r, _ := utf8.DecodeRuneInString(charEscapes.Replace(m[1 : len(m)-1]))
	return CharLit(r), len(m), true
}

func identRule(input string) (Token, int, bool) {
	m := identRegexp.FindString(input)
	if m == "" {
		return Token{}, 0, false
	}
	return Ident(m), len(m), true
}

// longestMatch runs every rule against input and keeps the longest match,
// preferring earlier rules on equal length.
func longestMatch(input string) (Token, int, bool) {
	var (
		best    Token
		bestLen int
		found   bool
	)
	for _, r := range rules {
		tok, n, ok := r(input)
		if ok && n > bestLen {
			best, bestLen, found = tok, n, true
		}
	}
	return best, bestLen, found
}
