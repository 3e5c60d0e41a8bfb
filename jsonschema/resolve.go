package jsonschema

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxRefDepth bounds how many references ResolveChain follows before
// giving up. Reference cycles hit this bound.
const DefaultMaxRefDepth = 32

var (
	// ErrUnsupportedRef is returned for references that do not point into a
	// local definitions table.
	ErrUnsupportedRef = errors.New("jsonschema: unsupported $ref")
	// ErrUnknownDefinition is returned when a reference names a definition
	// that does not exist.
	ErrUnknownDefinition = errors.New("jsonschema: unknown definition")
	// ErrRefDepth is returned when a chain of references is longer than the
	// configured bound.
	ErrRefDepth = errors.New("jsonschema: $ref chain too deep")
)

const (
	definitionsPrefix = "#/definitions/"
	defsPrefix        = "#/$defs/"
)

// Resolve returns the node a reference points to. Resolution is one level
// deep: the returned node may itself be a reference. "#" resolves to the
// document root. The document is never modified.
func (d *Document) Resolve(ref string) (*Node, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: %q (no document)", ErrUnknownDefinition, ref)
	}
	if ref == "#" {
		if d.Root == nil {
			return nil, fmt.Errorf("%w: %q (empty root)", ErrUnknownDefinition, ref)
		}
		return d.Root, nil
	}
	var (
		table map[string]*Node
		name  string
	)
	switch {
	case strings.HasPrefix(ref, definitionsPrefix):
		table, name = d.Definitions, strings.TrimPrefix(ref, definitionsPrefix)
	case strings.HasPrefix(ref, defsPrefix):
		table, name = d.Defs, strings.TrimPrefix(ref, defsPrefix)
	default:
		return nil, fmt.Errorf("%w: %q (local definitions only)", ErrUnsupportedRef, ref)
	}
	if name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRef, ref)
	}
	n, ok := table[unescapeToken(name)]
	if !ok || n == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, ref)
	}
	return n, nil
}

// Resolve is the function form of Document.Resolve.
func Resolve(doc *Document, ref string) (*Node, error) { return doc.Resolve(ref) }

// ResolveChain follows references starting at n until it reaches a node that
// declares its type directly. maxDepth <= 0 selects DefaultMaxRefDepth.
func ResolveChain(doc *Document, n *Node, maxDepth int) (*Node, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRefDepth
	}
	for hops := 0; n.IsRef(); hops++ {
		if hops == maxDepth {
			return nil, fmt.Errorf("%w: stopped at %q after %d hops", ErrRefDepth, n.Ref, hops)
		}
		next, err := doc.Resolve(n.Ref)
		if err != nil {
			return nil, err
		}
		n = next
	}
	return n, nil
}
