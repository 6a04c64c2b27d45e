package mailcheck

import (
	"strings"

	"github.com/reoring/mailcheck/internal/scan"
	"github.com/reoring/mailcheck/internal/syntax"
)

// Options configures validation. The flavors (ASCII-only vs Unicode-aware)
// are data consumed by one orchestrator, not separate validator types.
type Options struct {
	// AllowUnicodeLocal permits non-ASCII UTF-8 in the local part
	// (RFC 6531). When false any byte >= 0x80 before '@' is rejected with
	// CodeInvalidCharacter. Unicode in the domain is always accepted and
	// IDNA-mapped regardless of this setting.
	AllowUnicodeLocal bool
}

// Validate is the authoritative entry point. It validates and
// canonicalizes address, returning the first violation as an Issue error.
func Validate(address string, opts Options) (ValidatedEmail, error) {
	res, kind := syntax.Validate(address, opts.AllowUnicodeLocal)
	if kind != syntax.KindNone {
		return ValidatedEmail{}, issueFromKind(kind)
	}
	return ValidatedEmail{
		Original:    res.Original,
		LocalPart:   res.LocalPart,
		Domain:      res.Domain,
		Normalized:  res.Normalized,
		ASCIIDomain: res.ASCIIDomain,
		SMTPUTF8:    res.SMTPUTF8,
	}, nil
}

// IsValid reports whether address would validate. It routes through the
// fast tiers first and escalates to Validate when they cannot decide, so
// it is behaviorally identical to Validate(address, opts) == nil for every
// input.
func IsValid(address string, opts Options) bool {
	trimmed := strings.TrimSpace(address)
	switch scan.Classify(trimmed) {
	case scan.Accept:
		return true
	case scan.Reject:
		return false
	}
	_, kind := syntax.Validate(trimmed, opts.AllowUnicodeLocal)
	return kind == syntax.KindNone
}

// Validator binds Options for repeated use.
type Validator struct {
	opts Options
}

// NewValidator returns a Validator with the given options.
func NewValidator(opts Options) Validator { return Validator{opts: opts} }

// Validate applies the bound options; see the package-level Validate.
func (v Validator) Validate(address string) (ValidatedEmail, error) {
	return Validate(address, v.opts)
}

// IsValid applies the bound options; see the package-level IsValid.
func (v Validator) IsValid(address string) bool {
	return IsValid(address, v.opts)
}
