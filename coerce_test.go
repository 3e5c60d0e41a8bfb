package recordnorm_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/recordnorm/jsonschema"
)

func TestCoercion_Scalars(t *testing.T) {
	tr := newDefault(t)
	type tc struct {
		in   any
		want any
	}
	table := map[jsonschema.Kind][]tc{
		jsonschema.KindString: {
			{"x", "x"},
			{12, "12"},
			{12.0, "12"},
			{1.25, "1.25"},
			{true, "true"},
			{json.Number("007"), "007"},
			{map[string]any{"b": 1, "a": "<"}, `{"a":"<","b":1}`},
			{map[string]any{"z": []any{1.5, "<&>"}, "a": nil}, `{"a":null,"z":[1.5,"<&>"]}`},
			{[]any{1, "a", nil}, `[1,"a",null]`},
			{math.NaN(), math.NaN()},
		},
		jsonschema.KindNumber: {
			{"3.5", 3.5},
			{" 10 ", 10.0},
			{7, 7.0},
			{float32(0.5), 0.5},
			{true, 1.0},
			{"NaN", "NaN"},
			{"abc", "abc"},
			{map[string]any{}, map[string]any{}},
		},
		jsonschema.KindInteger: {
			{"12", int64(12)},
			{12.0, int64(12)},
			{12.7, 12.7},
			{"12.0", "12.0"},
			{int32(5), int64(5)},
			{uint64(math.MaxUint64), uint64(math.MaxUint64)},
			{false, int64(0)},
			{1e300, 1e300},
		},
		jsonschema.KindBoolean: {
			{"true", true},
			{"F", false},
			{1, true},
			{0.0, false},
			{2, 2},
			{"yes", "yes"},
			{[]any{}, []any{}},
		},
	}
	for kind, cases := range table {
		doc := jsonschema.NewDocument(jsonschema.Type(kind), nil)
		for _, c := range cases {
			got := tr.TransformValue(c.in, doc)
			if f, ok := c.want.(float64); ok && math.IsNaN(f) {
				g, isFloat := got.(float64)
				assert.True(t, isFloat && math.IsNaN(g), "%s(%#v)", kind, c.in)
				continue
			}
			assert.Equal(t, c.want, got, "%s(%#v)", kind, c.in)
		}
	}
}

func TestCoercion_ObjectAndArrayTargetsDoNotCoerceScalars(t *testing.T) {
	tr := newDefault(t)
	for _, k := range []jsonschema.Kind{jsonschema.KindObject, jsonschema.KindArray} {
		doc := jsonschema.NewDocument(&jsonschema.Node{Types: jsonschema.TypeSetOf(k)}, nil)
		assert.Equal(t, "x", tr.TransformValue("x", doc))
		assert.Equal(t, 3, tr.TransformValue(3, doc))
	}
}

func TestCoercion_UnknownTypeTagLeavesValue(t *testing.T) {
	doc, _, err := jsonschema.ParseJSON([]byte(`{"type":"object","properties":{"a":{"type":"decimal"},"b":{"type":["decimal","string"]}}}`))
	if err != nil {
		t.Fatal(err)
	}
	rec := map[string]any{"a": 1, "b": 2}
	newDefault(t).Transform(rec, doc)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, rec)
}
