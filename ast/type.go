package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeList
	NodeTypeIdentifier
	NodeTypeString
	NodeTypeEmpty
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return nodeTypeName[NodeTypeInvalid]
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid:    "invalid",
	NodeTypeList:       "list",
	NodeTypeIdentifier: "identifier",
	NodeTypeString:     "string",
	NodeTypeEmpty:      "empty",
}
