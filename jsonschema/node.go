package jsonschema

import "sort"

// Node is one type declaration in a schema tree. A node is either a
// reference (Ref set, everything else ignored) or a direct declaration.
type Node struct {
	Ref string

	Types      TypeSet
	Format     string
	Properties map[string]*Node
	// PropertyOrder lists the keys of Properties in visiting order. Parse
	// and Object fill it with the names sorted.
	PropertyOrder []string
	Items         *Node
}

// IsRef reports whether the node points at a definition instead of
// declaring a type itself.
func (n *Node) IsRef() bool { return n != nil && n.Ref != "" }

// PropertyNames returns the declared property names in visiting order. Nodes
// built by hand without PropertyOrder get their names sorted on each call.
func (n *Node) PropertyNames() []string {
	if len(n.PropertyOrder) == len(n.Properties) {
		return n.PropertyOrder
	}
	names := make([]string, 0, len(n.Properties))
	for name := range n.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document is a parsed schema: the root node plus the named definitions that
// references point into. A Document is read-only once built and can be shared
// between goroutines.
type Document struct {
	Root *Node
	// Definitions holds entries of the draft-07 "definitions" table.
	Definitions map[string]*Node
	// Defs holds entries of the 2019-09+ "$defs" table.
	Defs map[string]*Node
}

// NewDocument wraps a root node with an optional definitions table.
func NewDocument(root *Node, definitions map[string]*Node) *Document {
	return &Document{Root: root, Definitions: definitions}
}

// Type builds a node declaring the given kinds.
func Type(kinds ...Kind) *Node { return &Node{Types: TypeSetOf(kinds...)} }

// Object builds an object node with the given properties.
func Object(props map[string]*Node) *Node {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Node{Types: TypeSetOf(KindObject), Properties: props, PropertyOrder: names}
}

// ArrayOf builds an array node whose elements follow items.
func ArrayOf(items *Node) *Node {
	return &Node{Types: TypeSetOf(KindArray), Items: items}
}

// RefTo builds a reference node.
func RefTo(ref string) *Node { return &Node{Ref: ref} }
