package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenNone       TokenType = iota // Sentinel, never produced by a successful scan
	TokenEOF                         // End of input
	TokenOpenParen                   // Open parenthesis: "("
	TokenCloseParen                  // Close parenthesis: ")"
	TokenString                      // Quoted text, delimiters excluded: "..." or '...'
	TokenIdentifier                  // Anything else up to whitespace or a parenthesis
)

var tokenValues = map[TokenType][]byte{
	TokenOpenParen:  []byte{'('},
	TokenCloseParen: []byte{')'},
	TokenString:     []byte{'"', '\''},
}

// whitespace separates tokens and is never emitted.
var whitespace = []byte(" \n\t\v\f")

var tokenNames = map[TokenType]string{
	TokenNone:       "none",
	TokenEOF:        "EOF",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenString:     "string",
	TokenIdentifier: "identifier",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenNone]
}

func isTokenType(tt TokenType) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range tokenValues[tt] {
			if v == c {
				return true
			}
		}
		return false
	}
}

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)
	isQuote      = isTokenType(TokenString)
)

func isWhitespace(c byte) bool {
	for _, v := range whitespace {
		if v == c {
			return true
		}
	}
	return false
}

// isControl reports C0 control bytes and DEL.
func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
