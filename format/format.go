// Package format provides CustomFunc normalizers keyed on a schema node's
// "format" keyword. They plug into recordnorm through
// CustomSchemaNormalization:
//
//	t, err := recordnorm.New(
//		recordnorm.DefaultSchemaNormalization|recordnorm.CustomSchemaNormalization,
//		recordnorm.WithCustomNormalizer(format.Standard()),
//	)
package format

import (
	"math"
	"strings"
	"time"

	"github.com/reoring/recordnorm"
	"github.com/reoring/recordnorm/jsonschema"
)

// Standard chains the normalizers for the formats this package knows.
func Standard() recordnorm.CustomFunc {
	return Chain(DateTime(), Date())
}

// Chain returns a CustomFunc that tries fns in order and returns the first
// replacement offered.
func Chain(fns ...recordnorm.CustomFunc) recordnorm.CustomFunc {
	return func(v any, n *jsonschema.Node) (any, bool) {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if out, ok := fn(v, n); ok {
				return out, true
			}
		}
		return nil, false
	}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// DateTime rewrites values of string nodes with format "date-time" to
// canonical RFC 3339 in UTC. Strings in a few common layouts and Unix epoch
// seconds are accepted; anything else is declined.
func DateTime() recordnorm.CustomFunc {
	return func(v any, n *jsonschema.Node) (any, bool) {
		if !stringFormat(n, "date-time") {
			return nil, false
		}
		t, ok := parseDateTime(v)
		if !ok {
			return nil, false
		}
		return formatRFC3339Canonical(t), true
	}
}

// Date rewrites values of string nodes with format "date" to YYYY-MM-DD.
func Date() recordnorm.CustomFunc {
	return func(v any, n *jsonschema.Node) (any, bool) {
		if !stringFormat(n, "date") {
			return nil, false
		}
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		s = strings.TrimSpace(s)
		if d, err := time.Parse(time.DateOnly, s); err == nil {
			return d.Format(time.DateOnly), true
		}
		if t, ok := parseDateTime(s); ok {
			return t.Format(time.DateOnly), true
		}
		return nil, false
	}
}

func stringFormat(n *jsonschema.Node, format string) bool {
	if n == nil || n.Format != format {
		return false
	}
	k, ok := n.Types.Without(jsonschema.KindNull).Single()
	return ok && k == jsonschema.KindString
}

func parseDateTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	case float64:
		return fromEpoch(x)
	case int64:
		return time.Unix(x, 0), true
	case int:
		return time.Unix(int64(x), 0), true
	case interface{ Float64() (float64, error) }:
		if f, err := x.Float64(); err == nil {
			return fromEpoch(f)
		}
	}
	return time.Time{}, false
}

func fromEpoch(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)), true
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
