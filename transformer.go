package recordnorm

import (
	"errors"

	"github.com/reoring/recordnorm/i18n"
	"github.com/reoring/recordnorm/jsonschema"
)

// Transformer reshapes records in place so that their leaves match the
// types declared by a schema. It holds no per-call state: one Transformer
// (and one jsonschema.Document) may serve concurrent Transform calls as long
// as each call gets its own record.
type Transformer struct {
	cfg         Config
	custom      CustomFunc
	onIssue     IssueHandler
	maxRefDepth int
}

// New validates cfg and returns a Transformer. Combining NoTransform with
// any other flag returns a *ConfigError.
func New(cfg Config, opts ...Option) (*Transformer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Transformer{cfg: cfg, maxRefDepth: jsonschema.DefaultMaxRefDepth}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// Config returns the flags the Transformer was built with.
func (t *Transformer) Config() Config { return t.cfg }

// Transform normalizes record in place against doc. Fields that cannot be
// coerced safely are left as they are; Transform never fails a record.
//
// A root schema without a declared type but with properties is treated as
// an object.
func (t *Transformer) Transform(record map[string]any, doc *jsonschema.Document) {
	if record == nil {
		return
	}
	_ = t.TransformValue(record, doc)
}

// TransformValue normalizes v against doc and returns the result. Maps and
// slices are rewritten in place; the return value only differs from v when v
// itself is a scalar that got coerced (or a value the custom normalizer
// replaced).
func (t *Transformer) TransformValue(v any, doc *jsonschema.Document) any {
	if !t.active() || doc == nil || doc.Root == nil {
		return v
	}
	root := doc.Root
	if !root.IsRef() && root.Types.IsEmpty() && root.Properties != nil {
		root = &jsonschema.Node{Types: jsonschema.TypeSetOf(jsonschema.KindObject), Properties: root.Properties, PropertyOrder: root.PropertyOrder, Format: root.Format}
	}
	return t.normalize(v, root, doc, nil)
}

func (t *Transformer) active() bool {
	if t == nil || t.cfg.Has(NoTransform) {
		return false
	}
	return t.cfg.Has(DefaultSchemaNormalization) || (t.cfg.Has(CustomSchemaNormalization) && t.custom != nil)
}

// normalize handles one (value, schema node) pair and returns the value to
// store back at the same position.
func (t *Transformer) normalize(v any, n *jsonschema.Node, doc *jsonschema.Document, at *pointer) any {
	node, err := jsonschema.ResolveChain(doc, n, t.maxRefDepth)
	if err != nil {
		code := CodeUnresolvedRef
		if errors.Is(err, jsonschema.ErrRefDepth) {
			code = CodeRefDepth
		}
		t.report(at, code, err, "ref", n.Ref)
		return v
	}
	if node == nil {
		return v
	}

	replaced := false
	if t.cfg.Has(CustomSchemaNormalization) && t.custom != nil {
		if nv, ok := t.custom(v, node); ok {
			v, replaced = nv, true
		}
	}

	// Null is never coerced, whether or not the node allows it.
	if v == nil {
		return nil
	}

	nonNull := node.Types.Without(jsonschema.KindNull)
	if nonNull.Len() > 1 {
		t.report(at, CodeAmbiguousType, nil, "types", node.Types.String())
		return v
	}
	kind, ok := nonNull.Single()
	if !ok {
		return v
	}

	switch kind {
	case jsonschema.KindObject:
		if m, ok := v.(map[string]any); ok && node.Properties != nil {
			t.walkObject(m, node, doc, at)
		}
	case jsonschema.KindArray:
		if s, ok := v.([]any); ok && node.Items != nil {
			t.walkArray(s, node.Items, doc, at)
		}
	case jsonschema.KindString, jsonschema.KindNumber, jsonschema.KindInteger, jsonschema.KindBoolean:
		if replaced || !t.cfg.Has(DefaultSchemaNormalization) {
			return v
		}
		nv, err := coerce(kind, v)
		if err != nil {
			t.report(at, CodeCoercionFailed, err, "target", kind.String())
			return v
		}
		return nv
	case jsonschema.KindUnknown:
		t.report(at, CodeUnsupportedNode, nil, "types", node.Types.String())
	case jsonschema.KindNull:
	}
	return v
}

// walkObject visits declared properties that exist in m, in the node's
// property order.
// Undeclared keys pass through and absent keys stay absent.
func (t *Transformer) walkObject(m map[string]any, node *jsonschema.Node, doc *jsonschema.Document, at *pointer) {
	for _, name := range node.PropertyNames() {
		child, ok := m[name]
		if !ok {
			continue
		}
		prop := node.Properties[name]
		if prop == nil {
			continue
		}
		m[name] = t.normalize(child, prop, doc, t.field(at, name))
	}
}

func (t *Transformer) walkArray(s []any, items *jsonschema.Node, doc *jsonschema.Document, at *pointer) {
	for i := range s {
		s[i] = t.normalize(s[i], items, doc, t.index(at, i))
	}
}

func (t *Transformer) field(at *pointer, name string) *pointer {
	if t.onIssue == nil {
		return nil
	}
	return at.field(name)
}

func (t *Transformer) index(at *pointer, i int) *pointer {
	if t.onIssue == nil {
		return nil
	}
	return at.index(i)
}

func (t *Transformer) report(at *pointer, code string, cause error, kv ...any) {
	if t.onIssue == nil {
		return
	}
	params := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			params[k] = kv[i+1]
		}
	}
	msg := i18n.T(code, nil)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	t.onIssue(Issue{Path: at.String(), Code: code, Message: msg, Cause: cause, Params: params})
}
