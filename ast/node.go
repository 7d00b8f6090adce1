package ast

import (
	"fmt"

	"github.com/xiam/sexprdot/lexer"
)

// NodeID identifies a node within a Tree. It is the node's index and stays
// valid for the lifetime of the tree.
type NodeID int

// Node is one of List, Identifier, String or Empty.
type Node interface {
	Type() NodeType
}

// List is a parenthesized expression with an operator and zero or more
// children. Every child id is lower than the list's own id.
type List struct {
	Op       lexer.Token
	Children []NodeID
}

// Identifier is a bare word.
type Identifier struct {
	Tok lexer.Token
}

// String is a quoted literal; its token span excludes the quotes.
type String struct {
	Tok lexer.Token
}

// Empty is the literal pair "()".
type Empty struct{}

func (List) Type() NodeType       { return NodeTypeList }
func (Identifier) Type() NodeType { return NodeTypeIdentifier }
func (String) Type() NodeType     { return NodeTypeString }
func (Empty) Type() NodeType      { return NodeTypeEmpty }

// Tree is an append-only arena of nodes parsed from a single source buffer.
type Tree struct {
	src   []byte
	nodes []Node
}

// NewTree creates an empty tree for nodes whose tokens point into src.
func NewTree(src []byte) *Tree {
	return &Tree{
		src:   src,
		nodes: []Node{},
	}
}

// Add appends a fully built node and returns its id.
func (t *Tree) Add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Node returns the node with the given id. It panics if the id does not
// belong to the tree.
func (t *Tree) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("ast: node id %d out of range [0, %d)", id, len(t.nodes)))
	}
	return t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Source returns the buffer the tree's tokens point into.
func (t *Tree) Source() []byte {
	return t.src
}

// Text returns the source text of tok.
func (t *Tree) Text(tok lexer.Token) string {
	return tok.Text(t.src)
}

// Label returns the text a node displays as: the operator of a list, the
// token text of a leaf, and "" for Empty.
func (t *Tree) Label(id NodeID) string {
	switch n := t.Node(id).(type) {
	case List:
		return t.Text(n.Op)
	case Identifier:
		return t.Text(n.Tok)
	case String:
		return t.Text(n.Tok)
	}
	return ""
}
