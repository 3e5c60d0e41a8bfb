package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "target" or "ref").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "ambiguous_type":
			return "型が曖昧なため変換をスキップしました"
		case "unresolved_ref":
			return "$ref を解決できません"
		case "ref_depth_exceeded":
			return "$ref の連鎖が深すぎます"
		case "coercion_failed":
			return "宣言された型に変換できません"
		case "unsupported_node":
			return "未対応の型宣言です"
		}
	default: // "en"
		switch code {
		case "ambiguous_type":
			return "ambiguous type, coercion skipped"
		case "unresolved_ref":
			return "cannot resolve $ref"
		case "ref_depth_exceeded":
			return "$ref chain too deep"
		case "coercion_failed":
			return "value cannot be coerced to the declared type"
		case "unsupported_node":
			return "unsupported type declaration"
		}
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
