package mailcheck

// ValidatedEmail is the canonical record produced by a successful
// validation. It is constructed once and never mutated; no field shares
// state with the caller's input beyond string immutability.
type ValidatedEmail struct {
	// Original is the input address after surrounding whitespace trimming.
	Original string `json:"original"`
	// LocalPart is the part before '@', exactly as given.
	LocalPart string `json:"local_part"`
	// Domain is the part after '@', exactly as given.
	Domain string `json:"domain"`
	// Normalized joins the canonically composed local part with the
	// lowercased ASCII domain. Feeding it back through Validate yields the
	// same normalized form.
	Normalized string `json:"normalized"`
	// ASCIIDomain is the domain's ASCII-compatible encoding: unchanged for
	// ASCII hostnames and IP literals, IDNA-mapped for Unicode hostnames.
	ASCIIDomain string `json:"ascii_domain"`
	// SMTPUTF8 reports whether delivering to this address requires the
	// SMTPUTF8 extension, i.e. the local part contains non-ASCII bytes.
	// Domain internationalization alone never sets it; ASCII-compatible
	// encoding covers that case.
	SMTPUTF8 bool `json:"smtputf8"`
}
