package syntax

import (
	"unicode"
	"unicode/utf8"

	"github.com/reoring/mailcheck/internal/classify"
)

// ValidateLocal checks the part before '@' against RFC 5322 atext rules,
// optionally extended to RFC 6531 Unicode when allowUnicode is set.
// It returns KindNone on success.
func ValidateLocal(local string, allowUnicode bool) Kind {
	if local == "" {
		return KindEmpty
	}
	if len(local) > MaxLocalBytes {
		return KindLocalTooLong
	}
	if local[0] == '.' {
		return KindLeadingDot
	}
	if local[len(local)-1] == '.' {
		return KindTrailingDot
	}

	// Single pass: consecutive dots and byte classes. High bytes are left
	// for the rune-level pass below when Unicode is allowed.
	prevDot := false
	hasHigh := false
	for i := 0; i < len(local); i++ {
		b := local[i]
		if b == '.' {
			if prevDot {
				return KindConsecutiveDots
			}
			prevDot = true
			continue
		}
		prevDot = false
		if classify.IsLocal(b) {
			continue
		}
		if b >= 0x80 && allowUnicode {
			hasHigh = true
			continue
		}
		return KindInvalidCharacter
	}

	if hasHigh {
		return checkUnicodeLocal(local)
	}
	return KindNone
}

// checkUnicodeLocal re-scans the span as Unicode scalar values and rejects
// code points that are syntactically legal bytes but unsafe in an address:
// control characters, zero-width characters, and the byte-order mark.
// Malformed UTF-8 is rejected outright.
func checkUnicodeLocal(local string) Kind {
	for i := 0; i < len(local); {
		r, size := utf8.DecodeRuneInString(local[i:])
		if r == utf8.RuneError && size == 1 {
			return KindInvalidCharacter
		}
		if r > 0x7F && isUnsafeRune(r) {
			return KindInvalidCharacter
		}
		i += size
	}
	return KindNone
}

func isUnsafeRune(r rune) bool {
	if unicode.IsControl(r) {
		return true
	}
	if r >= '\u200B' && r <= '\u200D' { // zero-width space/non-joiner/joiner
		return true
	}
	return r == '\uFEFF' // byte-order mark
}
