package recordnorm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/recordnorm"
	"github.com/reoring/recordnorm/jsonschema"
)

func upperStrings(v any, n *jsonschema.Node) (any, bool) {
	k, ok := n.Types.Single()
	if s, isStr := v.(string); ok && k == jsonschema.KindString && isStr {
		return strings.ToUpper(s), true
	}
	return nil, false
}

func TestCustomNormalization_RunsBeforeDefault(t *testing.T) {
	tr, err := recordnorm.New(
		recordnorm.DefaultSchemaNormalization|recordnorm.CustomSchemaNormalization,
		recordnorm.WithCustomNormalizer(upperStrings),
	)
	require.NoError(t, err)

	doc := mustDoc(t, complexSchema)
	rec := map[string]any{"prop": "abc", "array": []any{"x", 1}, "number_prop": "2"}
	tr.Transform(rec, doc)
	assert.Equal(t, map[string]any{"prop": "ABC", "array": []any{"X", "1"}, "number_prop": float64(2)}, rec)
}

func TestCustomNormalization_SeesResolvedNode(t *testing.T) {
	var seen []string
	spy := func(v any, n *jsonschema.Node) (any, bool) {
		assert.False(t, n.IsRef())
		seen = append(seen, n.Types.String())
		return nil, false
	}
	tr, err := recordnorm.New(recordnorm.CustomSchemaNormalization, recordnorm.WithCustomNormalizer(spy))
	require.NoError(t, err)

	rec := map[string]any{"nested": map[string]any{"a": 1}}
	tr.Transform(rec, mustDoc(t, complexSchema))
	assert.Equal(t, []string{"[object]", "[object]", "[string]"}, seen)
	assert.Equal(t, map[string]any{"nested": map[string]any{"a": 1}}, rec, "custom only: no default coercion")
}

func TestCustomNormalization_ReplacesContainer(t *testing.T) {
	wrap := func(v any, n *jsonschema.Node) (any, bool) {
		if k, _ := n.Types.Single(); k == jsonschema.KindArray {
			if s, ok := v.(string); ok {
				return []any{s}, true
			}
		}
		return nil, false
	}
	tr, err := recordnorm.New(
		recordnorm.DefaultSchemaNormalization|recordnorm.CustomSchemaNormalization,
		recordnorm.WithCustomNormalizer(wrap),
	)
	require.NoError(t, err)

	rec := map[string]any{"list_of_lists": []any{"a", []any{1}}}
	tr.Transform(rec, mustDoc(t, complexSchema))
	assert.Equal(t, map[string]any{"list_of_lists": []any{[]any{"a"}, []any{"1"}}}, rec)
}

func TestCustomNormalization_FlagWithoutCallback(t *testing.T) {
	tr, err := recordnorm.New(recordnorm.CustomSchemaNormalization)
	require.NoError(t, err)
	rec := map[string]any{"prop": 1}
	tr.Transform(rec, mustDoc(t, complexSchema))
	assert.Equal(t, map[string]any{"prop": 1}, rec)
}

func TestCustomNormalization_IgnoredWithoutFlag(t *testing.T) {
	tr := newDefault(t, recordnorm.WithCustomNormalizer(upperStrings))
	rec := map[string]any{"prop": "abc"}
	tr.Transform(rec, mustDoc(t, complexSchema))
	assert.Equal(t, map[string]any{"prop": "abc"}, rec)
}
