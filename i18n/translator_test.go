package i18n_test

import (
	"testing"

	"github.com/reoring/dataspec/i18n"
)

func TestT_DefaultEnglish(t *testing.T) {
	if got := i18n.T("key_not_found", nil); got != "key not found" {
		t.Fatalf("unexpected message: %q", got)
	}
	// Unknown codes fall back to the code itself.
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("key_not_found", nil); got == "key not found" {
		t.Fatalf("expected japanese message, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "CODE:" + code }

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("type_mismatch", nil); got != "CODE:type_mismatch" {
		t.Fatalf("unexpected message: %q", got)
	}
}
