package recordnorm

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/recordnorm/jsonschema"
)

var errNotCoercible = errors.New("value not coercible")

// jsonNumber matches json.Number from both encoding/json and go-json
// decoders running with UseNumber.
type jsonNumber interface {
	String() string
	Float64() (float64, error)
	Int64() (int64, error)
}

// coerce converts v to the scalar kind k. A nil error means the returned
// value should replace v; otherwise v is to be kept as is.
func coerce(k jsonschema.Kind, v any) (any, error) {
	switch k {
	case jsonschema.KindString:
		return toString(v)
	case jsonschema.KindNumber:
		return toNumber(v)
	case jsonschema.KindInteger:
		return toInteger(v)
	case jsonschema.KindBoolean:
		return toBoolean(v)
	case jsonschema.KindNull, jsonschema.KindObject, jsonschema.KindArray, jsonschema.KindUnknown:
		return v, nil
	}
	return nil, fmt.Errorf("%w: unhandled kind %s", errNotCoercible, k)
}

// toString renders scalars and composites as their JSON text. Strings are
// returned unchanged.
func toString(v any) (any, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case jsonNumber:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotCoercible, err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

func toNumber(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case jsonNumber:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errNotCoercible, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q is not a finite number", errNotCoercible, x)
		}
		return f, nil
	case bool:
		if x {
			return float64(1), nil
		}
		return float64(0), nil
	}
	if i, ok := asInt64(v); ok {
		return float64(i), nil
	}
	if u, ok := v.(uint64); ok {
		return float64(u), nil
	}
	return nil, fmt.Errorf("%w: %T to number", errNotCoercible, v)
}

func toInteger(v any) (any, error) {
	if i, ok := asInt64(v); ok {
		return i, nil
	}
	switch x := v.(type) {
	case float64:
		return integral(x)
	case float32:
		return integral(float64(x))
	case jsonNumber:
		if i, err := x.Int64(); err == nil {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errNotCoercible, err)
		}
		return integral(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errNotCoercible, x)
		}
		return i, nil
	case bool:
		if x {
			return int64(1), nil
		}
		return int64(0), nil
	}
	return nil, fmt.Errorf("%w: %T to integer", errNotCoercible, v)
}

func toBoolean(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", errNotCoercible, x)
		}
		return b, nil
	}
	// Numbers map to booleans only when they are exactly 0 or 1.
	n, err := toNumber(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T to boolean", errNotCoercible, v)
	}
	switch n.(float64) {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return nil, fmt.Errorf("%w: %v is not 0 or 1", errNotCoercible, v)
}

func integral(f float64) (any, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: %v is not a whole number", errNotCoercible, f)
	}
	return int64(f), nil
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		if uint64(x) <= math.MaxInt64 {
			return int64(x), true
		}
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x), true
		}
	}
	return 0, false
}
