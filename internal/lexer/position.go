package lexer

import "unicode/utf8"

type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in characters
	Offset int // 0-based absolute index in input
}

// Locate converts a byte offset into a line/column position. Offsets past the
// end of source are clamped to it.
func Locate(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}

	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(source[lineStart:offset]) + 1,
		Offset: offset,
	}
}
