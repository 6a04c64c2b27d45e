package syntax

import (
	"net/netip"
	"strings"

	"golang.org/x/net/idna"

	"github.com/reoring/mailcheck/internal/classify"
)

// unicodeToASCII maps Unicode domains to their ASCII-compatible encoding.
// STD3 rules stay off so that byte-level label validation, not the mapper,
// decides what counts as an invalid character.
var unicodeToASCII = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
)

// ValidateDomain checks the part after '@' and returns its ASCII-compatible
// form. Pure-ASCII hostnames pass through with their casing intact; Unicode
// hostnames are IDNA-mapped; bracketed IP literals are returned unchanged.
func ValidateDomain(domain string) (string, Kind) {
	if domain == "" {
		return "", KindInvalidDomain
	}

	if domain[0] == '[' && domain[len(domain)-1] == ']' {
		return validateIPLiteral(domain)
	}

	if len(domain) > MaxDomainBytes {
		return "", KindDomainTooLong
	}

	ascii := domain
	if !isASCII(domain) {
		mapped, err := unicodeToASCII.ToASCII(domain)
		if err != nil {
			return "", KindInvalidDomain
		}
		if len(mapped) > MaxDomainBytes {
			return "", KindDomainTooLong
		}
		ascii = mapped
	}

	// python-email-validator compatibility: bare single-label hosts are not
	// deliverable addresses.
	if strings.IndexByte(ascii, '.') < 0 {
		return "", KindInvalidDomain
	}

	labels := strings.Split(ascii, ".")

	// All-numeric labels would be mistaken for a bare IP address without
	// dotted-decimal validity.
	allNumeric := true
	for _, label := range labels {
		if !isAllDigits(label) {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return "", KindInvalidDomain
	}

	for _, label := range labels {
		if k := validateLabel(label); k != KindNone {
			return "", k
		}
	}
	return ascii, KindNone
}

func validateLabel(label string) Kind {
	if label == "" {
		return KindConsecutiveDots
	}
	if len(label) > MaxLabelBytes {
		return KindInvalidDomain
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return KindInvalidDomain
	}
	for i := 0; i < len(label); i++ {
		if !classify.IsDomain(label[i]) {
			return KindInvalidCharacter
		}
	}
	return KindNone
}

// validateIPLiteral handles the bracketed forms [v4] and [IPv6:v6].
// The literal is already ASCII, so it is returned as-is on success.
func validateIPLiteral(domain string) (string, Kind) {
	inner := domain[1 : len(domain)-1]

	// The tag is matched case-insensitively so that the lowercased
	// normalized form re-validates. Zone identifiers (fe80::1%eth0) are
	// not valid in address literals.
	if len(inner) >= 5 && strings.EqualFold(inner[:5], "IPv6:") {
		addr, err := netip.ParseAddr(inner[5:])
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return "", KindInvalidDomain
		}
		return domain, KindNone
	}

	addr, err := netip.ParseAddr(inner)
	if err != nil || !addr.Is4() || addr.Zone() != "" {
		return "", KindInvalidDomain
	}
	return domain, KindNone
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
