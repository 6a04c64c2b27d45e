package mailcheck_test

import (
	"os"
	"path/filepath"
	"testing"

	j "github.com/goccy/go-json"

	mailcheck "github.com/reoring/mailcheck"
)

type corpusEntry struct {
	Address      string `json:"address"`
	UnicodeLocal bool   `json:"unicode_local"`
	Valid        bool   `json:"valid"`
	Code         string `json:"code"`
	Normalized   string `json:"normalized"`
	SMTPUTF8     bool   `json:"smtputf8"`
}

func loadCorpus(t *testing.T) []corpusEntry {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "corpus.json"))
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	var entries []corpusEntry
	if err := j.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode corpus: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("empty corpus")
	}
	return entries
}

func TestCorpus_Validate(t *testing.T) {
	for _, e := range loadCorpus(t) {
		opts := mailcheck.Options{AllowUnicodeLocal: e.UnicodeLocal}
		v, err := mailcheck.Validate(e.Address, opts)

		if e.Valid {
			if err != nil {
				t.Fatalf("Validate(%q) = %v, want ok", e.Address, err)
			}
			if e.Normalized != "" && v.Normalized != e.Normalized {
				t.Fatalf("Validate(%q).Normalized = %q, want %q", e.Address, v.Normalized, e.Normalized)
			}
			if v.SMTPUTF8 != e.SMTPUTF8 {
				t.Fatalf("Validate(%q).SMTPUTF8 = %v, want %v", e.Address, v.SMTPUTF8, e.SMTPUTF8)
			}
			continue
		}

		if err == nil {
			t.Fatalf("Validate(%q) succeeded, want code %q", e.Address, e.Code)
		}
		if e.Code != "" && mailcheck.CodeOf(err) != e.Code {
			t.Fatalf("CodeOf(Validate(%q)) = %q, want %q", e.Address, mailcheck.CodeOf(err), e.Code)
		}
	}
}

// Every corpus entry doubles as a tier-agreement fixture.
func TestCorpus_TierAgreement(t *testing.T) {
	for _, e := range loadCorpus(t) {
		opts := mailcheck.Options{AllowUnicodeLocal: e.UnicodeLocal}
		if got := mailcheck.IsValid(e.Address, opts); got != e.Valid {
			t.Fatalf("IsValid(%q) = %v, want %v", e.Address, got, e.Valid)
		}
	}
}
