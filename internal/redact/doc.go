// Package redact finds and replaces personally identifiable information and
// secret values in text, leaving everything outside matched spans byte for
// byte intact.
//
// Detection combines a static catalog of structural patterns (emails, public
// IP addresses, MAC addresses, phone numbers, Luhn-valid card numbers, JWTs,
// provider API keys, UUIDs, URL-embedded credentials) with exact-substring
// matchers built at startup from the process environment: the values of
// secret-looking variables and BIIP_-prefixed custom patterns, plus the
// invoking user's login name and home directory. Several categories carry a
// validator that rejects structural false positives, such as private-range
// IP addresses or digit runs that fail the Luhn checksum.
//
// Overlapping candidates are resolved by a single greedy sweep ordered by
// start offset and detector priority, so output is deterministic for a given
// text and [Context]. A Scrubber is immutable once built and safe to share
// across goroutines.
package redact
