package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	assert.Equal(t, "ambiguous type, coercion skipped", T("ambiguous_type", nil))

	SetLanguage("ja")
	defer SetLanguage("en")
	assert.NotEqual(t, "ambiguous type, coercion skipped", T("ambiguous_type", nil))
	assert.NotEmpty(t, T("coercion_failed", nil))
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	assert.Equal(t, "something_else", T("something_else", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	assert.Equal(t, "X:unresolved_ref", T("unresolved_ref", nil))
}
