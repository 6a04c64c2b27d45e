package scan

// Word-at-a-time '@' search. Eight bytes are folded into a uint64 and the
// classic zero-byte trick locates matches without a per-byte branch.

const (
	swarAt   = 0x4040404040404040 // '@' repeated
	swarOnes = 0x0101010101010101
	swarHigh = 0x8080808080808080
)

// countAt returns the number of '@' bytes in s and the index of the first
// one (-1 when absent).
func countAt(s string) (count, first int) {
	first = -1

	i := 0
	for ; i+8 <= len(s); i += 8 {
		chunk := uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
			uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56

		x := chunk ^ swarAt
		if (x-swarOnes)&^x&swarHigh == 0 {
			continue
		}
		for j := i; j < i+8; j++ {
			if s[j] == '@' {
				count++
				if first < 0 {
					first = j
				}
			}
		}
	}

	for ; i < len(s); i++ {
		if s[i] == '@' {
			count++
			if first < 0 {
				first = i
			}
		}
	}
	return count, first
}

// hasHighByte reports whether s contains any byte >= 0x80, again eight
// bytes at a time.
func hasHighByte(s string) bool {
	i := 0
	for ; i+8 <= len(s); i += 8 {
		chunk := uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
			uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
		if chunk&swarHigh != 0 {
			return true
		}
	}
	for ; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return false
}
