package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	Span

	tt TokenType
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, offset int, length int) Token {
	return Token{
		Span: Span{Offset: offset, Length: length},
		tt:   tt,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v [%d %d])", t.tt, t.Offset, t.Length)
}
