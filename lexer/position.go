package lexer

import (
	"fmt"
)

// Position is a 1-based line and column pair.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate computes the position of the byte at offset by scanning src from
// the start. It is linear in offset and only meant for diagnostics.
func Locate(src []byte, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}

	pos := Position{Line: 1, Column: 1}
	for _, c := range src[:offset] {
		if c == '\n' {
			pos.Line++
			pos.Column = 1
			continue
		}
		pos.Column++
	}
	return pos
}
