package parser

import (
	"errors"
)

var (
	ErrExpectedOpenParen  = errors.New("expected `(`")
	ErrExpectedOperand    = errors.New("expected identifier or string")
	ErrExpectedCloseParen = errors.New("expected `)`")
	ErrNestingTooDeep     = errors.New("nesting too deep")
)
