package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unknown_key":
			return "未知のキーです"
		case "invalid_value":
			return "値が不正です"
		case "duplicate_key":
			return "キーが重複しています"
		case "unknown_validator":
			return "未知のバリデータ種別です"
		case "bad_params":
			return "バリデータのパラメータが不正です"
		}
	default: // "en"
		switch code {
		case "unknown_key":
			return "no validator registered for key"
		case "invalid_value":
			return "value rejected by validator"
		case "duplicate_key":
			return "duplicate key registration"
		case "unknown_validator":
			return "unknown validator type"
		case "bad_params":
			return "invalid validator parameters"
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
