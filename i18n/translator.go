package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unsupported_kind":
			return "サポートされていないスキーマ種別です"
		case "recursion_limit":
			return "再帰の上限を超えました"
		case "nil_node":
			return "スキーマノードがありません"
		case "unknown_ref":
			return "参照先が見つかりません"
		case "stale_output":
			return "生成済みファイルが古くなっています"
		}
	default: // "en"
		switch code {
		case "unsupported_kind":
			return "unsupported schema kind"
		case "recursion_limit":
			return "recursion limit exceeded"
		case "nil_node":
			return "missing schema node"
		case "unknown_ref":
			return "unresolved reference"
		case "stale_output":
			return "generated output is stale"
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
