// Package classify holds the byte-class membership tables shared by every
// validation tier. Both tables are built once at package init and are
// read-only afterwards, so unsynchronized concurrent reads are safe.
package classify

// localTable marks the bytes permitted in an unquoted local part:
// RFC 5322 atext plus the dot separator. Bytes >= 0x80 are always false;
// whether they are acceptable is the caller's SMTPUTF8 policy, not a
// property of the byte itself.
var localTable = buildLocalTable()

// domainTable marks the bytes permitted inside a domain label:
// ASCII letters, digits, and hyphen.
var domainTable = buildDomainTable()

func buildLocalTable() (t [256]bool) {
	for b := 'a'; b <= 'z'; b++ {
		t[b] = true
	}
	for b := 'A'; b <= 'Z'; b++ {
		t[b] = true
	}
	for b := '0'; b <= '9'; b++ {
		t[b] = true
	}
	for _, b := range []byte("!#$%&'*+-/=?^_`{|}~.") {
		t[b] = true
	}
	return t
}

func buildDomainTable() (t [256]bool) {
	for b := 'a'; b <= 'z'; b++ {
		t[b] = true
	}
	for b := 'A'; b <= 'Z'; b++ {
		t[b] = true
	}
	for b := '0'; b <= '9'; b++ {
		t[b] = true
	}
	t['-'] = true
	return t
}

// IsLocal reports whether b may appear in an unquoted ASCII local part.
func IsLocal(b byte) bool { return localTable[b] }

// IsDomain reports whether b may appear in a domain label.
func IsDomain(b byte) bool { return domainTable[b] }

// IsAtext reports whether b is RFC 5322 atext, i.e. local-part legal
// excluding the dot separator.
func IsAtext(b byte) bool { return b != '.' && localTable[b] }
