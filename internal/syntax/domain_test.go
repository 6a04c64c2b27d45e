package syntax

import (
	"strings"
	"testing"
)

func TestValidateDomain_Hostnames(t *testing.T) {
	cases := []struct {
		name      string
		domain    string
		wantASCII string
		wantKind  Kind
	}{
		{"simple", "example.com", "example.com", KindNone},
		{"case preserved", "Example.COM", "Example.COM", KindNone},
		{"subdomain", "mail.sub.example.org", "mail.sub.example.org", KindNone},
		{"hyphenated label", "my-host.example.com", "my-host.example.com", KindNone},
		{"digit-leading label", "1host.example.com", "1host.example.com", KindNone},
		{"empty", "", "", KindInvalidDomain},
		{"no dot", "localhost", "", KindInvalidDomain},
		{"all numeric labels", "192.168.1.1", "", KindInvalidDomain},
		{"empty label", "a..b", "", KindConsecutiveDots},
		{"empty label all numeric", "1..2", "", KindInvalidDomain},
		{"leading hyphen", "-host.example.com", "", KindInvalidDomain},
		{"trailing hyphen", "host-.example.com", "", KindInvalidDomain},
		{"underscore", "my_host.example.com", "", KindInvalidCharacter},
		{"trailing dot", "example.com.", "", KindConsecutiveDots},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ascii, kind := ValidateDomain(tc.domain)
			if kind != tc.wantKind || ascii != tc.wantASCII {
				t.Fatalf("ValidateDomain(%q) = (%q, %q), want (%q, %q)",
					tc.domain, ascii, kind, tc.wantASCII, tc.wantKind)
			}
		})
	}
}

func TestValidateDomain_IDNA(t *testing.T) {
	ascii, kind := ValidateDomain("bücher.example")
	if kind != KindNone {
		t.Fatalf("unexpected kind %q", kind)
	}
	if ascii != "xn--bcher-kva.example" {
		t.Fatalf("IDNA mapping = %q, want %q", ascii, "xn--bcher-kva.example")
	}
	if !strings.HasPrefix(ascii, "xn--") {
		t.Fatalf("expected ACE prefix in %q", ascii)
	}
}

func TestValidateDomain_IPLiterals(t *testing.T) {
	cases := []struct {
		name   string
		domain string
		want   Kind
	}{
		{"ipv4", "[192.168.1.1]", KindNone},
		{"ipv6", "[IPv6:::1]", KindNone},
		{"ipv6 full", "[IPv6:2001:db8::1]", KindNone},
		{"ipv6 lowercase tag", "[ipv6:::1]", KindNone},
		{"ipv6 garbage", "[IPv6:not-an-addr]", KindInvalidDomain},
		{"ipv4 too many octets", "[1.2.3.4.5]", KindInvalidDomain},
		{"ipv4 octet overflow", "[256.1.1.1]", KindInvalidDomain},
		{"ipv6 without tag", "[::1]", KindInvalidDomain},
		{"ipv4 under ipv6 tag", "[IPv6:1.2.3.4]", KindInvalidDomain},
		{"ipv6 zone", "[IPv6:fe80::1%eth0]", KindInvalidDomain},
		{"ipv4 zone", "[192.168.1.1%eth0]", KindInvalidDomain},
		{"empty literal", "[]", KindInvalidDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ascii, kind := ValidateDomain(tc.domain)
			if kind != tc.want {
				t.Fatalf("ValidateDomain(%q) kind = %q, want %q", tc.domain, kind, tc.want)
			}
			if kind == KindNone && ascii != tc.domain {
				t.Fatalf("literal %q changed to %q; literals pass through unchanged", tc.domain, ascii)
			}
		})
	}
}

func TestValidateDomain_LengthBoundaries(t *testing.T) {
	label63 := strings.Repeat("a", 63)

	// 63+1+63+1+63+1+61 = 253 bytes.
	domain253 := label63 + "." + label63 + "." + label63 + "." + strings.Repeat("a", 61)
	if len(domain253) != 253 {
		t.Fatalf("bad fixture: len = %d", len(domain253))
	}
	if _, kind := ValidateDomain(domain253); kind != KindNone {
		t.Fatalf("253-byte domain rejected: %q", kind)
	}

	domain254 := domain253 + "a"
	if _, kind := ValidateDomain(domain254); kind != KindDomainTooLong {
		t.Fatalf("254-byte domain kind = %q, want %q", kind, KindDomainTooLong)
	}

	if _, kind := ValidateDomain(label63 + ".com"); kind != KindNone {
		t.Fatalf("63-byte label rejected: %q", kind)
	}
	if _, kind := ValidateDomain(label63 + "a.com"); kind != KindInvalidDomain {
		t.Fatalf("64-byte label kind = %q, want %q", kind, KindInvalidDomain)
	}
}
