// Package recordnorm reshapes loosely typed records so their leaves match
// the types a JSON Schema declares for them.
//
// Behaviour:
//
//   - Scalars are coerced only when the node declares exactly one non-null
//     type (string, number, integer or boolean). Unions such as
//     ["boolean", "string"] are left alone.
//   - null is never coerced, nullable or not.
//   - Objects and arrays are walked through their declared properties and
//     items; keys and elements are never added or removed.
//   - Local references ("#", "#/definitions/x", "#/$defs/x") are followed.
//     A broken reference skips that field only.
//   - Nothing fails at transform time. The only error is an invalid Config
//     passed to New.
//
// Typical usage:
//
//	doc, _, err := jsonschema.ParseJSON(schemaBytes)
//	t, err := recordnorm.New(recordnorm.DefaultSchemaNormalization)
//	for rec := range records {
//		t.Transform(rec, doc)
//	}
package recordnorm
