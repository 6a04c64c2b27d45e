package syntax

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Result is the canonical output of a successful validation.
// It is constructed once and never mutated.
type Result struct {
	Original    string // input after whitespace trimming
	LocalPart   string // part before '@', as given
	Domain      string // part after '@', as given
	Normalized  string // NFC local part + '@' + lowercased ASCII domain
	ASCIIDomain string // ASCII-compatible domain, Unicode mapped via IDNA
	SMTPUTF8    bool   // true iff the local part contains non-ASCII bytes
}

// Validate is the single source of truth for address validity. Every fast
// tier's definite answer must match Validate for the same input.
func Validate(raw string, allowUnicode bool) (Result, Kind) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return Result{}, KindEmpty
	}

	// Single pass: count '@' occurrences and record the first position.
	atPos := -1
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			if atPos >= 0 {
				return Result{}, KindMultipleAt
			}
			atPos = i
		}
	}
	if atPos < 0 {
		return Result{}, KindMissingAt
	}

	local := email[:atPos]
	domain := email[atPos+1:]

	if k := ValidateLocal(local, allowUnicode); k != KindNone {
		return Result{}, k
	}
	ascii, k := ValidateDomain(domain)
	if k != KindNone {
		return Result{}, k
	}

	// NFC only when needed; pure ASCII is already canonical.
	normalizedLocal := local
	smtputf8 := false
	if !isASCII(local) {
		normalizedLocal = norm.NFC.String(local)
		smtputf8 = true
	}

	return Result{
		Original:    email,
		LocalPart:   local,
		Domain:      domain,
		Normalized:  normalizedLocal + "@" + strings.ToLower(ascii),
		ASCIIDomain: ascii,
		SMTPUTF8:    smtputf8,
	}, KindNone
}
