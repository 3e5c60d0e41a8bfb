package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrNotObject is returned when a schema document is not a JSON object.
var ErrNotObject = errors.New("jsonschema: document root must be an object")

// Parse builds a Document from a decoded schema (map[string]any as produced
// by JSON or YAML decoders). Problems that leave a node without usable type
// information are reported through the returned Diag rather than failing.
func Parse(doc map[string]any) (*Document, Diag, error) {
	d := &simpleDiag{}
	if doc == nil {
		return nil, d, errors.New("jsonschema: nil schema")
	}
	out := &Document{
		Root:        parseNode(doc, "", d),
		Definitions: parseTable(doc, "definitions", d),
		Defs:        parseTable(doc, "$defs", d),
	}
	return out, d, nil
}

// ParseJSON decodes a JSON schema document and parses it.
func ParseJSON(data []byte) (*Document, Diag, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("jsonschema: invalid JSON: %w", err)
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, &simpleDiag{}, ErrNotObject
	}
	return Parse(m)
}

func parseTable(doc map[string]any, key string, d *simpleDiag) map[string]*Node {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	tbl, ok := raw.(map[string]any)
	if !ok {
		d.warnf("/%s: expected an object, got %T", key, raw)
		return nil
	}
	out := make(map[string]*Node, len(tbl))
	for _, name := range sortedKeys(tbl) {
		at := "/" + key + "/" + escapeToken(name)
		sch, ok := tbl[name].(map[string]any)
		if !ok {
			d.warnf("%s: definition is not an object", at)
			continue
		}
		out[name] = parseNode(sch, at, d)
	}
	return out
}

func parseNode(s map[string]any, at string, d *simpleDiag) *Node {
	if raw, ok := s["$ref"]; ok {
		ref, ok := raw.(string)
		if !ok || ref == "" {
			d.warnf("%s/$ref: expected a non-empty string", at)
			return &Node{}
		}
		return &Node{Ref: ref}
	}

	n := &Node{}
	switch t := s["type"].(type) {
	case nil:
	case string:
		n.Types = n.Types.With(parseTypeTag(t, at, d))
	case []any:
		for _, e := range t {
			tag, ok := e.(string)
			if !ok {
				d.warnf("%s/type: non-string entry %v", at, e)
				n.Types = n.Types.With(KindUnknown)
				continue
			}
			n.Types = n.Types.With(parseTypeTag(tag, at, d))
		}
	default:
		d.warnf("%s/type: expected a string or an array, got %T", at, t)
		n.Types = n.Types.With(KindUnknown)
	}
	if f, ok := s["format"].(string); ok {
		n.Format = f
	}

	if raw, ok := s["properties"]; ok {
		pm, ok := raw.(map[string]any)
		if !ok {
			d.warnf("%s/properties: expected an object, got %T", at, raw)
		} else {
			n.Properties = make(map[string]*Node, len(pm))
			n.PropertyOrder = make([]string, 0, len(pm))
			for _, name := range sortedKeys(pm) {
				child := at + "/properties/" + escapeToken(name)
				ps, ok := pm[name].(map[string]any)
				if !ok {
					d.warnf("%s: property schema is not an object", child)
					continue
				}
				n.Properties[name] = parseNode(ps, child, d)
				n.PropertyOrder = append(n.PropertyOrder, name)
			}
		}
	}

	switch it := s["items"].(type) {
	case nil:
	case map[string]any:
		n.Items = parseNode(it, at+"/items", d)
	case []any:
		d.warnf("%s/items: tuple items are not supported; elements left untouched", at)
	default:
		d.warnf("%s/items: expected an object, got %T", at, it)
	}
	return n
}

func parseTypeTag(tag, at string, d *simpleDiag) Kind {
	k, ok := ParseKind(tag)
	if !ok {
		d.warnf("%s/type: unrecognized type tag %q", at, tag)
	}
	return k
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeToken escapes a JSON Pointer reference token (RFC 6901).
func escapeToken(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func unescapeToken(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}
