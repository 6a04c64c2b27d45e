package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_domain", nil); msg == "invalid_domain" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_domain", nil); msg == "the domain is not valid" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo for unknown code, got %q", msg)
	}
}

func TestSetTranslator_NilRestoresDefault(t *testing.T) {
	SetTranslator(nil)
	if msg := T("empty", nil); msg == "" || msg == "empty" {
		t.Fatalf("expected default translator after nil, got %q", msg)
	}
}
