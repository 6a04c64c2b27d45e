// Package scan contains the non-authoritative fast tiers: a zero-copy
// finite-state byte scanner, a SWAR '@' counter, and the tiered classifier
// consumed by the boolean entry point. Tiers answer with a tri-state
// Outcome and never guess: anything not fully modeled escalates.
package scan

// Outcome is a fast tier's answer. The zero value escalates, so a tier
// that falls off the end of its analysis defers to the next one by
// construction.
type Outcome int

const (
	// Unknown means the tier cannot decide; escalate to the next tier.
	Unknown Outcome = iota
	// Accept means the input is definitely valid.
	Accept
	// Reject means the input is definitely invalid.
	Reject
)

func (o Outcome) String() string {
	switch o {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}
