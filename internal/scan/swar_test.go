package scan

import (
	"strings"
	"testing"
)

func TestCountAt_AgainstStdlib(t *testing.T) {
	cases := []string{
		"",
		"a",
		"@",
		"user@example.com",
		"a@b@c@d",
		"no-at-here.example.com",
		"@leading",
		"trailing@",
		strings.Repeat("x", 7) + "@",           // '@' as byte 8 of the first word
		strings.Repeat("x", 8) + "@tail",       // '@' just past the first word
		strings.Repeat("x", 100) + "@" + "end", // deep in word-sized territory
		strings.Repeat("@", 24),
		"short@x",
	}
	for _, s := range cases {
		count, first := countAt(s)
		if want := strings.Count(s, "@"); count != want {
			t.Fatalf("countAt(%q) count = %d, want %d", s, count, want)
		}
		if want := strings.IndexByte(s, '@'); first != want {
			t.Fatalf("countAt(%q) first = %d, want %d", s, first, want)
		}
	}
}

func TestHasHighByte(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"plain ascii only", false},
		{"üser", true},
		{strings.Repeat("a", 16) + "é", true},
		{"é" + strings.Repeat("a", 16), true},
		{strings.Repeat("a", 8), false},
	}
	for _, tc := range cases {
		if got := hasHighByte(tc.s); got != tc.want {
			t.Fatalf("hasHighByte(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}
