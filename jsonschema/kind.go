package jsonschema

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is one JSON Schema type tag. The set is closed: adding a tag means
// regenerating kind_string.go, which fails to compile until every constant
// is accounted for.
type Kind uint8

const (
	KindUnknown Kind = iota // unknown
	KindNull                // null
	KindBoolean             // boolean
	KindInteger             // integer
	KindNumber              // number
	KindString              // string
	KindObject              // object
	KindArray               // array

	kindCount = int(iota)
)

var kindByTag = map[string]Kind{
	"null":    KindNull,
	"boolean": KindBoolean,
	"integer": KindInteger,
	"number":  KindNumber,
	"string":  KindString,
	"object":  KindObject,
	"array":   KindArray,
}

// ParseKind maps a type tag to its Kind. Unrecognized tags return
// (KindUnknown, false).
func ParseKind(tag string) (Kind, bool) {
	k, ok := kindByTag[tag]
	if !ok {
		return KindUnknown, false
	}
	return k, true
}

// IsScalar reports whether values of this kind are leaves that can be coerced.
func (k Kind) IsScalar() bool {
	switch k {
	case KindBoolean, KindInteger, KindNumber, KindString:
		return true
	default:
		return false
	}
}

// TypeSet is the effective type set of a schema node.
type TypeSet uint16

// TypeSetOf builds a set from the given kinds.
func TypeSetOf(kinds ...Kind) TypeSet {
	var s TypeSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

func (s TypeSet) With(k Kind) TypeSet    { return s | 1<<k }
func (s TypeSet) Without(k Kind) TypeSet { return s &^ (1 << k) }
func (s TypeSet) Has(k Kind) bool        { return s&(1<<k) != 0 }
func (s TypeSet) IsEmpty() bool          { return s == 0 }

// Len returns the number of kinds in the set.
func (s TypeSet) Len() int {
	n := 0
	for k := 0; k < kindCount; k++ {
		if s.Has(Kind(k)) {
			n++
		}
	}
	return n
}

// Kinds lists the members in declaration order.
func (s TypeSet) Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := 0; k < kindCount; k++ {
		if s.Has(Kind(k)) {
			out = append(out, Kind(k))
		}
	}
	return out
}

// Single returns the only member of the set, or false when the set is empty
// or holds more than one kind.
func (s TypeSet) Single() (Kind, bool) {
	if s.Len() != 1 {
		return KindUnknown, false
	}
	return s.Kinds()[0], true
}

func (s TypeSet) String() string {
	b := []byte{'['}
	for i, k := range s.Kinds() {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, k.String()...)
	}
	return string(append(b, ']'))
}
