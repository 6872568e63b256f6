package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "index").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "schema_error":
			return "スキーマが不正です"
		case "validation_failed":
			return "検証に失敗しました"
		case "malformed_segment":
			return "セグメントの形式が不正です"
		case "key_not_found":
			return "キーが見つかりません"
		case "index_out_of_range":
			return "インデックスが範囲外です"
		case "type_mismatch":
			return "型が一致しません"
		case "predicate_no_match":
			return "条件に一致する要素がありません"
		}
	default: // "en"
		switch code {
		case "schema_error":
			return "schema error"
		case "validation_failed":
			return "validation failed"
		case "malformed_segment":
			return "malformed segment"
		case "key_not_found":
			return "key not found"
		case "index_out_of_range":
			return "index out of range"
		case "type_mismatch":
			return "type mismatch"
		case "predicate_no_match":
			return "no element matches predicate"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
