package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/sexprdot/lexer"
)

// Fprint writes a human-readable dump of the trees rooted at roots.
func Fprint(w io.Writer, t *Tree, roots []NodeID) error {
	for _, id := range roots {
		if err := printLevel(w, t, id, 0); err != nil {
			return err
		}
	}
	return nil
}

func printLevel(w io.Writer, t *Tree, id NodeID, level int) error {
	indent := strings.Repeat("    ", level)
	n := t.Node(id)

	switch n := n.(type) {
	case List:
		if _, err := fmt.Fprintf(w, "%s#%d (%s): %q\n", indent, id, n.Type(), t.Text(n.Op)); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := printLevel(w, t, child, level+1); err != nil {
				return err
			}
		}
		return nil

	case Identifier, String:
		_, err := fmt.Fprintf(w, "%s#%d (%s): %q\n", indent, id, n.Type(), t.Label(id))
		return err

	case Empty:
		_, err := fmt.Fprintf(w, "%s#%d (%s)\n", indent, id, n.Type())
		return err
	}

	panic("unknown node type")
}

// Encode transforms a node back into s-expression text.
func Encode(t *Tree, id NodeID) string {
	var b strings.Builder
	encodeNode(&b, t, id)
	return b.String()
}

// EncodeAll encodes each root and joins them with a space.
func EncodeAll(t *Tree, roots []NodeID) string {
	nodes := make([]string, 0, len(roots))
	for _, id := range roots {
		nodes = append(nodes, Encode(t, id))
	}
	return strings.Join(nodes, " ")
}

func encodeNode(b *strings.Builder, t *Tree, id NodeID) {
	switch n := t.Node(id).(type) {
	case Empty:
		b.WriteString("()")

	case List:
		b.WriteByte('(')
		encodeOperand(b, t.Text(n.Op), n.Op.Is(lexer.TokenString))
		for _, child := range n.Children {
			b.WriteByte(' ')
			encodeNode(b, t, child)
		}
		b.WriteByte(')')

	case Identifier:
		encodeOperand(b, t.Text(n.Tok), false)

	case String:
		encodeOperand(b, t.Text(n.Tok), true)

	default:
		panic("unknown node type")
	}
}

func encodeOperand(b *strings.Builder, text string, quoted bool) {
	if !quoted {
		if needsEscape(text) {
			b.WriteByte('\\')
		}
		b.WriteString(text)
		return
	}
	delim := byte('"')
	if strings.IndexByte(text, '"') >= 0 {
		delim = '\''
	}
	b.WriteByte(delim)
	b.WriteString(text)
	b.WriteByte(delim)
}

// needsEscape reports identifiers that would otherwise read back as a
// string or lose their first byte. Empty identifiers only come from a lone
// backslash.
func needsEscape(text string) bool {
	if text == "" {
		return true
	}
	switch text[0] {
	case '"', '\'', '\\':
		return true
	}
	return false
}
