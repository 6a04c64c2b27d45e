// Package syntax implements the authoritative structural validator: the
// local-part and domain checks, IDNA mapping, and canonical-form
// construction. Fast tiers under internal/scan accept a subset of the
// language defined here and defer to this package whenever unsure.
package syntax

// Kind identifies a rejection reason. The zero value means "no error".
// The constants mirror the public issue codes exposed by the root package.
type Kind string

const (
	KindNone             Kind = ""
	KindEmpty            Kind = "empty"
	KindMissingAt        Kind = "missing_at"
	KindMultipleAt       Kind = "multiple_at"
	KindLeadingDot       Kind = "leading_dot"
	KindTrailingDot      Kind = "trailing_dot"
	KindConsecutiveDots  Kind = "consecutive_dots"
	KindLocalTooLong     Kind = "local_too_long"
	KindDomainTooLong    Kind = "domain_too_long"
	KindInvalidDomain    Kind = "invalid_domain"
	KindInvalidCharacter Kind = "invalid_character"
	KindGeneric          Kind = "not_valid"
)

// MaxLocalBytes is the RFC 5321 limit for the part before '@'.
const MaxLocalBytes = 64

// MaxDomainBytes is the RFC 1035 limit for a full domain name.
const MaxDomainBytes = 253

// MaxLabelBytes is the RFC 1035 limit for a single dot-separated label.
const MaxLabelBytes = 63
