package parser

import (
	"fmt"

	"github.com/xiam/sexprdot/ast"
	"github.com/xiam/sexprdot/lexer"
)

// DefaultMaxDepth is the list nesting limit used when Options.MaxDepth is 0.
const DefaultMaxDepth = 1024

// Options configures a Parser.
type Options struct {
	// AllowUnterminatedStrings accepts a string literal cut short by the end
	// of input.
	AllowUnterminatedStrings bool `yaml:"allow_unterminated_strings"`

	// AllowCRLF treats carriage returns as whitespace.
	AllowCRLF bool `yaml:"allow_crlf"`

	// RejectControlCharacters fails on control bytes outside strings.
	RejectControlCharacters bool `yaml:"reject_control_characters"`

	// MaxDepth bounds list nesting. Zero means DefaultMaxDepth, a negative
	// value disables the limit.
	MaxDepth int `yaml:"max_depth"`
}

// LexerOptions returns the subset of o that drives tokenization.
func (o Options) LexerOptions() lexer.Options {
	return lexer.Options{
		AllowUnterminatedStrings: o.AllowUnterminatedStrings,
		AllowCRLF:                o.AllowCRLF,
		RejectControlCharacters:  o.RejectControlCharacters,
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parser builds an ast.Tree out of a source buffer.
type Parser struct {
	src  []byte
	opts Options

	lx    *lexer.Lexer
	tree  *ast.Tree
	depth int
}

// New creates a parser for src.
func New(src []byte) *Parser {
	return &Parser{
		src: src,
	}
}

// SetOptions replaces the parser options. It must be called before Parse.
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Tree returns the tree built by the last successful call to Parse.
func (p *Parser) Tree() *ast.Tree {
	return p.tree
}

// Parse reads every top-level expression and returns their ids in source
// order. On error no roots are returned and the tree is discarded.
func (p *Parser) Parse() ([]ast.NodeID, error) {
	p.tree = ast.NewTree(p.src)
	p.lx = lexer.NewWithOptions(p.src, p.opts.LexerOptions())
	p.depth = 0

	roots := []ast.NodeID{}
	for !p.lx.Peek().Is(lexer.TokenEOF) {
		id, err := p.expr()
		if err != nil {
			p.tree = nil
			return nil, err
		}
		roots = append(roots, id)
	}

	return roots, nil
}

// expr parses one parenthesized expression:
//
//	expr    := '(' ')' | '(' operand (expr | operand)* ')'
//	operand := identifier | string
func (p *Parser) expr() (ast.NodeID, error) {
	open, err := p.lx.Next()
	if err != nil {
		return 0, err
	}
	if !open.Is(lexer.TokenOpenParen) {
		return 0, p.errorAt(ErrExpectedOpenParen, open)
	}

	p.depth++
	defer func() { p.depth-- }()
	if limit := p.opts.maxDepth(); limit > 0 && p.depth > limit {
		return 0, lexer.NewError(ErrNestingTooDeep, p.src, open.Offset, fmt.Sprintf("more than %d levels", limit))
	}

	op, err := p.lx.Next()
	if err != nil {
		return 0, err
	}

	switch op.Type() {
	case lexer.TokenCloseParen:
		return p.tree.Add(ast.Empty{}), nil
	case lexer.TokenIdentifier, lexer.TokenString:
		// ok
	default:
		return 0, p.errorAt(ErrExpectedOperand, op)
	}

	children := []ast.NodeID{}

loop:
	for {
		switch p.lx.Peek().Type() {
		case lexer.TokenCloseParen, lexer.TokenEOF:
			break loop

		case lexer.TokenOpenParen:
			id, err := p.expr()
			if err != nil {
				return 0, err
			}
			children = append(children, id)

		case lexer.TokenIdentifier:
			tok, err := p.lx.Next()
			if err != nil {
				return 0, err
			}
			children = append(children, p.tree.Add(ast.Identifier{Tok: tok}))

		case lexer.TokenString:
			tok, err := p.lx.Next()
			if err != nil {
				return 0, err
			}
			children = append(children, p.tree.Add(ast.String{Tok: tok}))

		default:
			// A TokenNone lookahead carries the lexer error.
			if _, err := p.lx.Next(); err != nil {
				return 0, err
			}
			panic("unreachable")
		}
	}

	closing, err := p.lx.Next()
	if err != nil {
		return 0, err
	}
	if !closing.Is(lexer.TokenCloseParen) {
		return 0, p.errorAt(ErrExpectedCloseParen, closing)
	}

	return p.tree.Add(ast.List{Op: op, Children: children}), nil
}

func (p *Parser) errorAt(err error, tok lexer.Token) error {
	return lexer.NewError(err, p.src, tok.Offset, describe(p.src, tok))
}

func describe(src []byte, tok lexer.Token) string {
	switch tok.Type() {
	case lexer.TokenEOF:
		return "EOF"
	case lexer.TokenOpenParen:
		return "`(`"
	case lexer.TokenCloseParen:
		return "`)`"
	}
	return fmt.Sprintf("%v %q", tok.Type(), tok.Text(src))
}

// Parse parses src with default options and returns the resulting tree and
// its root ids.
func Parse(src []byte) (*ast.Tree, []ast.NodeID, error) {
	p := New(src)

	roots, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	return p.Tree(), roots, nil
}
