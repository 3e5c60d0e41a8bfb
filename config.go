package recordnorm

import "strings"

// Config selects which normalizations a Transformer applies. Flags combine
// with bitwise or:
//
//	recordnorm.DefaultSchemaNormalization | recordnorm.CustomSchemaNormalization
type Config uint8

const (
	// NoTransform disables every normalization. It cannot be combined with
	// another flag.
	NoTransform Config = 1 << iota
	// DefaultSchemaNormalization coerces scalar leaves to their declared type.
	DefaultSchemaNormalization
	// CustomSchemaNormalization calls the CustomFunc given through
	// WithCustomNormalizer before the default coercion.
	CustomSchemaNormalization
)

var configNames = []struct {
	flag Config
	name string
}{
	{NoTransform, "NoTransform"},
	{DefaultSchemaNormalization, "DefaultSchemaNormalization"},
	{CustomSchemaNormalization, "CustomSchemaNormalization"},
}

// Has reports whether every flag in f is set.
func (c Config) Has(f Config) bool { return c&f == f }

func (c Config) String() string {
	if c == 0 {
		return "0"
	}
	var parts []string
	for _, cn := range configNames {
		if c.Has(cn.flag) {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}

func (c Config) validate() error {
	if c.Has(NoTransform) && c != NoTransform {
		return &ConfigError{Config: c, Reason: "NoTransform option cannot be combined with other flags"}
	}
	return nil
}
