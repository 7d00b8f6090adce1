package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
)

// Error is a lexical or syntactic error anchored to a source offset. Err is
// one of the sentinel errors of the package that raised it.
type Error struct {
	Err    error
	Offset int
	Pos    Position
	Got    string
}

// NewError creates an Error for the given offset of src.
func NewError(err error, src []byte, offset int, got string) *Error {
	return &Error{
		Err:    err,
		Offset: offset,
		Pos:    Locate(src, offset),
		Got:    got,
	}
}

func (e *Error) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%v: %v, got %s", e.Pos, e.Err, e.Got)
	}
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
