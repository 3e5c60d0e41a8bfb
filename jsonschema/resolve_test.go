package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/recordnorm/jsonschema"
)

func refDoc() *jsonschema.Document {
	return &jsonschema.Document{
		Root: jsonschema.Object(map[string]*jsonschema.Node{"a": jsonschema.RefTo("#/definitions/alias")}),
		Definitions: map[string]*jsonschema.Node{
			"str":   jsonschema.Type(jsonschema.KindString),
			"alias": jsonschema.RefTo("#/definitions/str"),
			"a/b":   jsonschema.Type(jsonschema.KindInteger),
			"loop":  jsonschema.RefTo("#/definitions/loop"),
		},
		Defs: map[string]*jsonschema.Node{
			"n": jsonschema.Type(jsonschema.KindNumber),
		},
	}
}

func TestResolve_OneLevel(t *testing.T) {
	doc := refDoc()

	n, err := doc.Resolve("#/definitions/alias")
	require.NoError(t, err)
	assert.True(t, n.IsRef(), "resolution is one level deep")

	n, err = jsonschema.Resolve(doc, "#/definitions/str")
	require.NoError(t, err)
	assert.Equal(t, jsonschema.TypeSetOf(jsonschema.KindString), n.Types)

	n, err = doc.Resolve("#/$defs/n")
	require.NoError(t, err)
	assert.True(t, n.Types.Has(jsonschema.KindNumber))

	n, err = doc.Resolve("#/definitions/a~1b")
	require.NoError(t, err)
	assert.True(t, n.Types.Has(jsonschema.KindInteger))

	n, err = doc.Resolve("#")
	require.NoError(t, err)
	assert.Same(t, doc.Root, n)
}

func TestResolve_Errors(t *testing.T) {
	doc := refDoc()

	_, err := doc.Resolve("#/definitions/missing")
	assert.ErrorIs(t, err, jsonschema.ErrUnknownDefinition)

	_, err = doc.Resolve("http://example.com/schema.json")
	assert.ErrorIs(t, err, jsonschema.ErrUnsupportedRef)

	_, err = doc.Resolve("#/definitions/str/properties/x")
	assert.ErrorIs(t, err, jsonschema.ErrUnsupportedRef)

	var nilDoc *jsonschema.Document
	_, err = nilDoc.Resolve("#/definitions/str")
	assert.ErrorIs(t, err, jsonschema.ErrUnknownDefinition)
}

func TestResolve_DoesNotMutate(t *testing.T) {
	doc := refDoc()
	before := len(doc.Definitions)
	for i := 0; i < 3; i++ {
		_, _ = doc.Resolve("#/definitions/alias")
		_, _ = doc.Resolve("#/definitions/missing")
	}
	assert.Len(t, doc.Definitions, before)
	assert.Equal(t, "#/definitions/str", doc.Definitions["alias"].Ref)
}

func TestResolveChain(t *testing.T) {
	doc := refDoc()

	n, err := jsonschema.ResolveChain(doc, doc.Root.Properties["a"], 0)
	require.NoError(t, err)
	assert.Equal(t, jsonschema.TypeSetOf(jsonschema.KindString), n.Types)

	direct := jsonschema.Type(jsonschema.KindBoolean)
	n, err = jsonschema.ResolveChain(doc, direct, 0)
	require.NoError(t, err)
	assert.Same(t, direct, n)

	_, err = jsonschema.ResolveChain(doc, jsonschema.RefTo("#/definitions/loop"), 4)
	assert.ErrorIs(t, err, jsonschema.ErrRefDepth)

	_, err = jsonschema.ResolveChain(doc, doc.Root.Properties["a"], 1)
	assert.ErrorIs(t, err, jsonschema.ErrRefDepth)
}
