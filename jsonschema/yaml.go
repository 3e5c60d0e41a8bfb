package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// ParseYAML decodes the first document of a YAML stream and parses it as a
// schema. Duplicate keys are rejected so that a schema never silently loses
// a property declaration.
func ParseYAML(data []byte) (*Document, Diag, error) {
	v, err := NewStrictYAMLReader(bytes.NewReader(data)).Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &simpleDiag{}, errors.New("jsonschema: empty YAML document")
		}
		return nil, &simpleDiag{}, fmt.Errorf("jsonschema: invalid YAML: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &simpleDiag{}, ErrNotObject
	}
	return Parse(m)
}

// StrictYAMLReader decodes a multi-document YAML stream through yaml.Node so
// duplicate keys can be reported with positions. Values come back JSON-like
// (map[string]any, []any and primitives).
type StrictYAMLReader struct {
	dec *yaml.Decoder
}

// NewStrictYAMLReader constructs a StrictYAMLReader.
func NewStrictYAMLReader(r io.Reader) *StrictYAMLReader {
	return &StrictYAMLReader{dec: yaml.NewDecoder(r)}
}

// Next returns the next document, or (nil, io.EOF) when the stream is exhausted.
func (s *StrictYAMLReader) Next() (any, error) {
	var root yaml.Node
	if err := s.dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	return yamlValue(root.Content[0])
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if pos, dup := first[k.Value]; dup {
				return nil, &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			val, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			m[k.Value] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err == nil {
				return b, nil
			}
			return n.Value, nil
		case "!!int":
			if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
				return i, nil
			}
			return n.Value, nil
		case "!!float":
			if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
				return f, nil
			}
			return n.Value, nil
		default:
			return n.Value, nil
		}
	default:
		return nil, nil
	}
}
