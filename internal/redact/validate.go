package redact

import (
	"encoding/base64"
	"encoding/json"
	"net/netip"
	"strings"

	"github.com/google/uuid"
)

// validLuhn reports whether a card-shaped candidate (digits with optional
// space/hyphen grouping) carries 13-19 digits and passes the Luhn checksum.
// Arbitrary numeric IDs fail here and are left alone.
func validLuhn(s string) bool {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits = append(digits, int(c-'0'))
		case c == ' ' || c == '-':
		default:
			return false
		}
	}
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	sum, double := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validJWTHeader decodes the first dot-separated segment and accepts the
// candidate only if it is a JSON object declaring an "alg" member. Arbitrary
// dotted tokens fail this and are not treated as JWTs.
func validJWTHeader(s string) bool {
	head, _, ok := strings.Cut(s, ".")
	if !ok {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(head)
	if err != nil {
		return false
	}
	var hdr map[string]json.RawMessage
	if err := json.Unmarshal(raw, &hdr); err != nil {
		return false
	}
	_, ok = hdr["alg"]
	return ok
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Documented test and benchmark ranges, excluded alongside the ranges the
// netip predicates already cover.
var (
	docNets4 = []netip.Prefix{
		netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
		netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
		netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
		netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking
		netip.MustParsePrefix("100.64.0.0/10"),   // CGNAT
	}
	uniqueLocal6 = netip.MustParsePrefix("fc00::/7")
	docNet6      = netip.MustParsePrefix("2001:db8::/32")
)

// publicIPv4 reports whether s parses as an IPv4 address that is routable on
// the public internet. Private, loopback, link-local, unspecified, broadcast,
// multicast, and documented test ranges are all considered local noise and
// are not redacted.
func publicIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return false
	}
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() || addr.IsMulticast() || addr.IsUnspecified() {
		return false
	}
	if addr == netip.AddrFrom4([4]byte{255, 255, 255, 255}) {
		return false
	}
	for _, p := range docNets4 {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}

// publicIPv6 is the IPv6 counterpart: loopback, link-local, unique-local,
// unspecified, multicast, and the documentation range stay untouched.
func publicIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Is4In6() {
		return false
	}
	if addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() || addr.IsUnspecified() {
		return false
	}
	if uniqueLocal6.Contains(addr) || docNet6.Contains(addr) {
		return false
	}
	return true
}
