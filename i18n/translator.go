package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "max" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "empty":
			return "アドレスが空です"
		case "missing_at":
			return "'@' がありません"
		case "multiple_at":
			return "'@' が複数あります"
		case "leading_dot":
			return "先頭にピリオドは使えません"
		case "trailing_dot":
			return "末尾にピリオドは使えません"
		case "consecutive_dots":
			return "ピリオドを連続して使えません"
		case "local_too_long":
			return "ローカル部が長すぎます"
		case "domain_too_long":
			return "ドメインが長すぎます"
		case "invalid_domain":
			return "ドメインが不正です"
		case "invalid_character":
			return "不正な文字が含まれています"
		case "not_valid":
			return "メールアドレスが不正です"
		}
	default: // "en"
		switch code {
		case "empty":
			return "the address is empty"
		case "missing_at":
			return "missing '@' sign"
		case "multiple_at":
			return "more than one '@' sign"
		case "leading_dot":
			return "the address cannot start with a period"
		case "trailing_dot":
			return "the address cannot end with a period"
		case "consecutive_dots":
			return "two periods in a row"
		case "local_too_long":
			return "the local part (before '@') is too long"
		case "domain_too_long":
			return "the domain is too long"
		case "invalid_domain":
			return "the domain is not valid"
		case "invalid_character":
			return "invalid character in the address"
		case "not_valid":
			return "the address is not valid"
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
