package redact

import "regexp"

// Detector priorities. Lower wins when overlapping matches start at the same
// offset. More structurally specific, higher-consequence categories come
// first so a coarser pattern cannot partially consume them.
const (
	prioSecret = iota // secret literals and BIIP_ custom patterns
	prioURLCreds
	prioJWT
	prioAPIKey
	prioCard
	prioUUID
	prioEmail
	prioMAC
	prioIP
	prioPhone
	prioHomeDir
	prioUsername
)

// Default replacement tokens per category. None of these may themselves
// match any detector, or redaction would not be idempotent.
var defaultTokens = map[Category]string{
	CategorySecret:   "••••••••",
	CategoryCustom:   "•••◆•••",
	CategoryURLCreds: "••••:••••",
	CategoryJWT:      "••••🌐•",
	CategoryAPIKey:   "••••☁️•",
	CategoryCard:     "•••• •••• •••• ••••",
	CategoryUUID:     "••••••••-••••-••••-••••-••••••••••••",
	CategoryEmail:    "•••@•••",
	CategoryMAC:      "••:••:••:••:••:••",
	CategoryIPv4:     "••.••.••.••",
	CategoryIPv6:     "••:••:••:••:••:••:••:••",
	CategoryPhone:    "(•••) •••-••••",
	CategoryHomeDir:  "~",
	CategoryUsername: "user",
}

// DefaultToken returns the built-in replacement token for a category.
func DefaultToken(c Category) string { return defaultTokens[c] }

var (
	// Only the user:pass portion is redacted; scheme and host survive.
	reURLCreds = regexp.MustCompile(`\b(?:https?|ftp)://([^/\s:@]+:[^/\s@]+)@`)

	// Header and payload of a JWT are base64url-encoded JSON objects, so
	// both begin with "ey". The header is decoded by the validator.
	reJWT = regexp.MustCompile(`\bey[A-Za-z0-9_-]{10,}\.ey[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]+`)

	// 13-19 digits with optional space/hyphen grouping; Luhn-validated.
	reCard = regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`)

	reUUID = regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`)

	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	reMAC = regexp.MustCompile(`\b[0-9A-Fa-f]{2}(?:[:-][0-9A-Fa-f]{2}){5}\b`)

	// Broad candidates; the validators keep only public addresses.
	reIPv4 = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	reIPv6 = regexp.MustCompile(`\b[0-9a-fA-F]+(?::[0-9a-fA-F]*)+[0-9a-fA-F]\b`)

	// Intentionally permissive: parenthesized area code, hyphenated,
	// dotted, and international forms.
	rePhone = regexp.MustCompile(`\(\d{3}\)[ -]?\d{3}[-. ]\d{4}|\b\d{3}[-.]\d{3}[-.]\d{4}\b|\+\d{1,3}[- ]?\d{2,4}[- ]?\d{3,4}[- ]?\d{2,4}\b`)
)

// apiKeyPatterns holds one fixed prefix/alphabet/length rule per known
// provider family. New providers are additive entries here.
var apiKeyPatterns = []struct {
	provider string
	re       *regexp.Regexp
}{
	{"aws", regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`)},
	{"anthropic", regexp.MustCompile(`\bsk-ant-[A-Za-z0-9_-]{20,}\b`)},
	{"openai", regexp.MustCompile(`\bsk-[A-Za-z0-9]{20,48}\b`)},
	{"github", regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9_]{36,}\b`)},
	{"slack", regexp.MustCompile(`\bxox[bporas]-[A-Za-z0-9-]{10,}\b`)},
	{"google", regexp.MustCompile(`\bAIza[A-Za-z0-9_-]{30,40}\b`)},
	{"xai", regexp.MustCompile(`\bxai-[A-Za-z0-9]{32,64}\b`)},
	{"cerebras", regexp.MustCompile(`\bcsk-[A-Za-z0-9]{40,50}\b`)},
	{"gcp", regexp.MustCompile(`\bgcp_[A-Za-z0-9_-]{30,40}\b`)},
}

// catalog returns the static detector table. Secret-literal and
// username/home-dir detectors are environment-dependent and are appended
// from the Context when a Scrubber is built.
func catalog() []Detector {
	ds := []Detector{
		{Category: CategoryURLCreds, Priority: prioURLCreds, re: reURLCreds, group: 1},
		{Category: CategoryJWT, Priority: prioJWT, re: reJWT, validate: validJWTHeader},
		{Category: CategoryCard, Priority: prioCard, re: reCard, validate: validLuhn},
		{Category: CategoryUUID, Priority: prioUUID, re: reUUID, validate: validUUID},
		{Category: CategoryEmail, Priority: prioEmail, re: reEmail},
		{Category: CategoryMAC, Priority: prioMAC, re: reMAC},
		{Category: CategoryIPv4, Priority: prioIP, re: reIPv4, validate: publicIPv4},
		{Category: CategoryIPv6, Priority: prioIP, re: reIPv6, validate: publicIPv6},
		{Category: CategoryPhone, Priority: prioPhone, re: rePhone},
	}
	for _, p := range apiKeyPatterns {
		ds = append(ds, Detector{Category: CategoryAPIKey, Priority: prioAPIKey, re: p.re})
	}
	for i := range ds {
		ds[i].Token = defaultTokens[ds[i].Category]
	}
	return ds
}
