package scan

import "github.com/reoring/mailcheck/internal/classify"

// machineState enumerates the states of the single-pass byte machine.
type machineState uint8

const (
	stateLocalStart machineState = iota
	stateLocal
	stateLocalDot
	stateDomainStart
	stateDomain
	stateDomainDot
	stateReject
)

// machineAccepts runs the zero-copy state machine over s. It accepts a
// strict subset of the structural validator's language: pure 7-bit ASCII,
// no IP literals, no length bounds. Acceptance requires ending in the
// Domain state having consumed exactly one '@' and at least one dot after
// it. Callers must bounds-check lengths before trusting an accept and must
// not treat a reject as authoritative for inputs containing non-ASCII
// bytes or bracketed domains.
func machineAccepts(s string) bool {
	state := stateLocalStart
	atSeen := false
	domainDots := 0

	for i := 0; i < len(s); i++ {
		b := s[i]
		switch state {
		case stateLocalStart:
			if b == '.' || b == '@' || !classify.IsAtext(b) {
				return false
			}
			state = stateLocal
		case stateLocal:
			switch {
			case b == '@':
				if atSeen {
					return false
				}
				atSeen = true
				state = stateDomainStart
			case b == '.':
				state = stateLocalDot
			case classify.IsAtext(b):
				// stay
			default:
				return false
			}
		case stateLocalDot:
			if b == '.' || b == '@' || !classify.IsAtext(b) {
				return false
			}
			state = stateLocal
		case stateDomainStart:
			if b == '.' || b == '-' || b == '@' || !classify.IsDomain(b) {
				return false
			}
			state = stateDomain
		case stateDomain:
			switch {
			case b == '@':
				return false
			case b == '.':
				domainDots++
				state = stateDomainDot
			case classify.IsDomain(b):
				// stay
			default:
				return false
			}
		case stateDomainDot:
			if b == '.' || b == '-' || b == '@' || !classify.IsDomain(b) {
				return false
			}
			state = stateDomain
		}
	}

	return state == stateDomain && atSeen && domainDots >= 1
}
