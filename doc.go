package mailcheck

// Package mailcheck provides:
//
// - Syntactic validation of email addresses per RFC 5322 (ASCII) and
//   RFC 6531 (internationalized local parts, SMTPUTF8)
// - Domain canonicalization: IDNA Unicode-to-ASCII mapping, label rules,
//   and bracketed IPv4/IPv6 address literals
// - A stable error model via Issue (code, message) with localized messages
// - Fast accept/reject tiers behind IsValid that always agree with Validate
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place localized messages under i18n/ and the CLI under cmd/mailcheck.
// - Fast tiers report a tri-state outcome and escalate whenever uncertain;
//   only the structural validator is authoritative.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := mailcheck.Validate("User.Name+tag@Example.COM", mailcheck.Options{AllowUnicodeLocal: true})
//	ok := mailcheck.IsValid("user@example.com", mailcheck.Options{})
//	results := mailcheck.Batch(ctx, addrs, mailcheck.Options{AllowUnicodeLocal: true})
