// Package sexprdot converts s-expression source into Graphviz DOT documents.
//
// The work is done by three packages, run in order:
//
//   - lexer: splits the source into parentheses, identifiers and strings.
//   - parser: builds an ast.Tree arena and returns one root per top-level
//     expression.
//   - render: walks the roots and writes one DOT cluster per root.
//
// Usage:
//
//	out, err := sexprdot.Convert([]byte(`(add 1 (mul 2 3))`), sexprdot.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
package sexprdot

import (
	"github.com/xiam/sexprdot/ast"
	"github.com/xiam/sexprdot/parser"
	"github.com/xiam/sexprdot/render"
)

// Parse parses src with the parse section of cfg.
func Parse(src []byte, cfg Config) (*ast.Tree, []ast.NodeID, error) {
	p := parser.New(src)
	p.SetOptions(cfg.Parse)

	roots, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}
	return p.Tree(), roots, nil
}

// Convert parses src and renders it as a DOT document. Nothing is rendered
// when parsing fails.
func Convert(src []byte, cfg Config) (string, error) {
	tree, roots, err := Parse(src, cfg)
	if err != nil {
		return "", err
	}
	return render.New(cfg.Render).Render(tree, roots), nil
}

// ConvertFile reads the file at path and converts it.
func ConvertFile(path string, cfg Config) (string, error) {
	src, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return Convert(src, cfg)
}
