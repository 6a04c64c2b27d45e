package scan

import "strings"

// maxTotalBytes is the longest input the structural validator can possibly
// accept: a 64-byte local part, the separator, and a 253-byte domain.
// Anything longer is a definite reject whatever its content.
const maxTotalBytes = 64 + 1 + 253

// commonDomains are hosts known to pass every domain check. Membership lets
// tier 2 skip the per-label scan; it never admits anything the structural
// validator would refuse. Read-only after init.
var commonDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"icloud.com":     {},
	"protonmail.com": {},
	"yandex.com":     {},
	"zoho.com":       {},
	"mail.ru":        {},
	"qq.com":         {},
	"163.com":        {},
	"126.com":        {},
	"foxmail.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"aol.com":        {},
	"proton.me":      {},
	"hey.com":        {},
	"fastmail.com":   {},
	"gmx.com":        {},
	"comcast.net":    {},
	"verizon.net":    {},
	"att.net":        {},
	"me.com":         {},
	"mac.com":        {},
	"example.com":    {},
	"test.com":       {},
}

// Classify runs tiers 1 and 2 over an already-trimmed input. A definite
// answer is returned only when every invariant the structural validator
// checks has been independently verified for the covered code path
// (pure ASCII, hostname domain). Unicode, bracketed literals, and anything
// else not fully modeled escalate as Unknown.
func Classify(s string) Outcome {
	// Tier 1: structural pre-screen.
	if s == "" {
		return Reject
	}
	if len(s) > maxTotalBytes {
		return Reject
	}
	atCount, atPos := countAt(s)
	if atCount != 1 {
		return Reject
	}

	// Unicode local parts and IDNA domains are the slow path's business.
	if hasHighByte(s) {
		return Unknown
	}
	// A bracketed domain may be a valid IP literal the machine cannot model.
	if atPos+1 < len(s) && s[atPos+1] == '[' {
		return Unknown
	}

	// Tier 2: the byte machine plus the bounds it does not carry.
	if !machineAccepts(s) {
		return Reject
	}
	if atPos > 64 {
		return Reject
	}
	domain := s[atPos+1:]
	if len(domain) > 253 {
		return Reject
	}

	if _, ok := commonDomains[domain]; ok {
		return Accept
	}

	// The machine guarantees non-empty labels with no leading hyphen; label
	// length, trailing hyphen, and the all-numeric rule remain.
	allNumeric := true
	rest := domain
	for {
		label, tail, more := strings.Cut(rest, ".")
		if len(label) > 63 {
			return Reject
		}
		if label[len(label)-1] == '-' {
			return Reject
		}
		if allNumeric && !labelAllDigits(label) {
			allNumeric = false
		}
		if !more {
			break
		}
		rest = tail
	}
	if allNumeric {
		return Reject
	}
	return Accept
}

func labelAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
