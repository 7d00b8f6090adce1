package lexer

import (
	"fmt"
)

// Options tweaks how the lexer reacts to questionable input.
type Options struct {
	// AllowUnterminatedStrings accepts a string literal that runs into the
	// end of input instead of failing with ErrUnterminatedString.
	AllowUnterminatedStrings bool

	// AllowCRLF treats '\r' as whitespace so CRLF line endings do not end
	// up inside identifiers.
	AllowCRLF bool

	// RejectControlCharacters fails with ErrUnexpectedCharacter on any C0
	// control byte or DEL outside a string, instead of reading it as part of
	// an identifier. NUL is always rejected.
	RejectControlCharacters bool
}

// Lexer represents a lexical analyzer. It keeps one token of lookahead.
type Lexer struct {
	src  []byte
	opts Options

	offset  int
	escaped bool

	lookahead Token
	lastErr   error
}

// New initializes a Lexer over src and primes the first lookahead token.
func New(src []byte) *Lexer {
	return NewWithOptions(src, Options{})
}

// NewWithOptions is like New but with explicit options.
func NewWithOptions(src []byte, opts Options) *Lexer {
	lx := &Lexer{
		src:  src,
		opts: opts,
	}
	lx.advance()
	return lx
}

// Peek returns the lookahead token without consuming it. A TokenNone
// lookahead means scanning failed; the next call to Next reports why.
func (lx *Lexer) Peek() Token {
	return lx.lookahead
}

// Next returns the lookahead token and scans the one after it.
func (lx *Lexer) Next() (Token, error) {
	tok := lx.lookahead
	if tok.Is(TokenNone) {
		return tok, lx.lastErr
	}
	lx.advance()
	return tok, nil
}

// Text returns the source text covered by tok.
func (lx *Lexer) Text(tok Token) string {
	return tok.Text(lx.src)
}

func (lx *Lexer) advance() {
	if lx.lookahead.Is(TokenEOF) {
		return
	}
	tok, err := lx.scan()
	if err != nil {
		lx.lookahead = Token{}
		lx.lastErr = err
		return
	}
	lx.lookahead = tok
}

func (lx *Lexer) peek() (byte, bool) {
	if lx.offset >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.offset], true
}

func (lx *Lexer) next() {
	c := lx.src[lx.offset]
	lx.escaped = c == '\\' && !lx.escaped
	lx.offset++
}

func (lx *Lexer) isSpace(c byte) bool {
	return isWhitespace(c) || (c == '\r' && lx.opts.AllowCRLF)
}

// isIllegal reports bytes that can't start or continue any token.
func (lx *Lexer) isIllegal(c byte) bool {
	if c == 0 {
		return true
	}
	return lx.opts.RejectControlCharacters && isControl(c) && !lx.isSpace(c)
}

// isBreak reports bytes that end an identifier.
func (lx *Lexer) isBreak(c byte) bool {
	return lx.isSpace(c) || isOpenParen(c) || isCloseParen(c)
}

func (lx *Lexer) errorf(err error, offset int, c byte) error {
	return NewError(err, lx.src, offset, fmt.Sprintf("%q (%d)", c, c))
}

func (lx *Lexer) scan() (Token, error) {
	for {
		c, ok := lx.peek()
		if !ok || !lx.isSpace(c) {
			break
		}
		lx.next()
	}

	start := lx.offset
	c, ok := lx.peek()

	switch {
	case !ok:
		return NewToken(TokenEOF, start, 0), nil

	case isOpenParen(c):
		lx.next()
		return NewToken(TokenOpenParen, start, 1), nil

	case isCloseParen(c):
		lx.next()
		return NewToken(TokenCloseParen, start, 1), nil

	case isQuote(c) && !lx.escaped:
		return lx.scanString(c)

	case lx.isIllegal(c):
		return Token{}, lx.errorf(ErrUnexpectedCharacter, start, c)

	default:
		return lx.scanIdentifier()
	}
}

func (lx *Lexer) scanString(delim byte) (Token, error) {
	quote := lx.offset
	lx.next()

	start := lx.offset
	for {
		c, ok := lx.peek()
		if !ok {
			if !lx.opts.AllowUnterminatedStrings {
				return Token{}, NewError(ErrUnterminatedString, lx.src, quote, "EOF")
			}
			return NewToken(TokenString, start, lx.offset-start), nil
		}
		if c == delim {
			break
		}
		lx.next()
	}

	end := lx.offset
	lx.next() // closing quote

	return NewToken(TokenString, start, end-start), nil
}

func (lx *Lexer) scanIdentifier() (Token, error) {
	start := lx.offset

	if lx.src[start] == '\\' {
		// The backslash is not part of the identifier; it only keeps the
		// next byte from being read as a quote.
		lx.next()
		start = lx.offset
	}

	for {
		c, ok := lx.peek()
		if !ok || lx.isBreak(c) {
			break
		}
		if lx.isIllegal(c) {
			return Token{}, lx.errorf(ErrUnexpectedCharacter, lx.offset, c)
		}
		lx.next()
	}

	return NewToken(TokenIdentifier, start, lx.offset-start), nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the final TokenEOF, or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	return TokenizeWithOptions(in, Options{})
}

// TokenizeWithOptions is like Tokenize but with explicit lexer options.
func TokenizeWithOptions(in []byte, opts Options) ([]Token, error) {
	tokens := []Token{}

	lx := NewWithOptions(in, opts)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
