// Package render turns a parsed s-expression forest into a Graphviz DOT
// document. Each root expression becomes its own cluster; every list
// operator and leaf becomes a vertex labeled with its source text, linked to
// the vertex of the list that contains it.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xiam/sexprdot/ast"
)

// Options controls the shape of the generated document.
type Options struct {
	// Name is the graph identifier; left out of the document when empty.
	Name string `yaml:"name"`

	// Undirected emits "graph" and "--" instead of "digraph" and "->".
	Undirected bool `yaml:"undirected"`

	ClusterPrefix string `yaml:"cluster_prefix"`
	VertexPrefix  string `yaml:"vertex_prefix"`
	Indent        string `yaml:"indent"`

	// Attributes are graph-level attributes, written in key order.
	Attributes map[string]string `yaml:"attributes"`
}

// DefaultOptions returns the options used by Render.
func DefaultOptions() Options {
	return Options{
		ClusterPrefix: "cluster",
		VertexPrefix:  "n",
		Indent:        "\t",
	}
}

// Renderer writes DOT documents. It holds no state between calls and is safe
// for concurrent use.
type Renderer struct {
	opts Options
}

// New creates a renderer. Empty prefixes and indentation fall back to
// DefaultOptions.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.ClusterPrefix == "" {
		opts.ClusterPrefix = def.ClusterPrefix
	}
	if opts.VertexPrefix == "" {
		opts.VertexPrefix = def.VertexPrefix
	}
	if opts.Indent == "" {
		opts.Indent = def.Indent
	}
	return &Renderer{opts: opts}
}

// noParent marks a vertex that sits at the top of its cluster.
const noParent = -1

// state is threaded through one rendering pass.
type state struct {
	buf  *strings.Builder
	tree *ast.Tree

	// next is the id of the next vertex; it is shared by all clusters.
	next int
}

// Render returns the DOT document for the given roots.
func (r *Renderer) Render(tree *ast.Tree, roots []ast.NodeID) string {
	var buf strings.Builder
	st := &state{buf: &buf, tree: tree}

	r.line(st, 0, r.header())
	r.attributes(st, 1)

	for i, id := range roots {
		r.line(st, 1, fmt.Sprintf("subgraph %s%d {", r.opts.ClusterPrefix, i))
		r.node(st, id, noParent, 2)
		r.line(st, 1, "}")
	}

	r.line(st, 0, "}")
	return buf.String()
}

// Fprint writes the DOT document for the given roots to w.
func (r *Renderer) Fprint(w io.Writer, tree *ast.Tree, roots []ast.NodeID) error {
	_, err := io.WriteString(w, r.Render(tree, roots))
	return err
}

func (r *Renderer) header() string {
	keyword := "digraph"
	if r.opts.Undirected {
		keyword = "graph"
	}
	if r.opts.Name == "" {
		return keyword + " {"
	}
	return fmt.Sprintf("%s %s {", keyword, quote(r.opts.Name))
}

func (r *Renderer) attributes(st *state, depth int) {
	keys := make([]string, 0, len(r.opts.Attributes))
	for k := range r.opts.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		r.line(st, depth, fmt.Sprintf("%s=%s;", k, quote(r.opts.Attributes[k])))
	}
}

func (r *Renderer) node(st *state, id ast.NodeID, parent int, depth int) {
	switch n := st.tree.Node(id).(type) {
	case ast.List:
		self := r.vertex(st, st.tree.Text(n.Op), parent, depth)
		for _, child := range n.Children {
			r.node(st, child, self, depth)
		}

	case ast.Identifier:
		r.vertex(st, st.tree.Text(n.Tok), parent, depth)

	case ast.String:
		r.vertex(st, st.tree.Text(n.Tok), parent, depth)

	case ast.Empty:
		// nothing to draw

	default:
		panic("unknown node type")
	}
}

// vertex allocates a vertex id, declares it and links it to its parent.
func (r *Renderer) vertex(st *state, label string, parent int, depth int) int {
	self := st.next
	st.next++

	r.line(st, depth, fmt.Sprintf("%s [label=%s];", r.vertexName(self), quote(label)))
	if parent != noParent {
		r.line(st, depth, fmt.Sprintf("%s %s %s;", r.vertexName(parent), r.edgeOp(), r.vertexName(self)))
	}

	return self
}

func (r *Renderer) vertexName(id int) string {
	return r.opts.VertexPrefix + strconv.Itoa(id)
}

func (r *Renderer) edgeOp() string {
	if r.opts.Undirected {
		return "--"
	}
	return "->"
}

func (r *Renderer) line(st *state, depth int, s string) {
	st.buf.WriteString(strings.Repeat(r.opts.Indent, depth))
	st.buf.WriteString(s)
	st.buf.WriteByte('\n')
}

var labelEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", "",
)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}

// Render renders the given roots with DefaultOptions.
func Render(tree *ast.Tree, roots []ast.NodeID) string {
	return New(DefaultOptions()).Render(tree, roots)
}
