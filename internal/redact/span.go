package redact

import (
	"regexp"
	"strings"
)

// Category identifies the kind of sensitive data a detector recognizes.
type Category string

const (
	CategorySecret   Category = "secret"
	CategoryCustom   Category = "custom"
	CategoryURLCreds Category = "url-credentials"
	CategoryJWT      Category = "jwt"
	CategoryAPIKey   Category = "api-key"
	CategoryCard     Category = "credit-card"
	CategoryUUID     Category = "uuid"
	CategoryEmail    Category = "email"
	CategoryMAC      Category = "mac-address"
	CategoryIPv4     Category = "ipv4"
	CategoryIPv6     Category = "ipv6"
	CategoryPhone    Category = "phone"
	CategoryHomeDir  Category = "home-dir"
	CategoryUsername Category = "username"
)

// Categories lists every detector category, in priority order.
func Categories() []Category {
	return []Category{
		CategorySecret, CategoryCustom, CategoryURLCreds, CategoryJWT,
		CategoryAPIKey, CategoryCard, CategoryUUID, CategoryEmail,
		CategoryMAC, CategoryIPv4, CategoryIPv6, CategoryPhone,
		CategoryHomeDir, CategoryUsername,
	}
}

// Span is a half-open byte offset range [Start, End) into a text buffer.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Match is a span tagged with the detector that produced it and the
// replacement token to substitute for it.
type Match struct {
	Span
	Category Category
	Priority int
	Token    string
}

// Detector is one immutable entry in the detection catalog: either a regex
// matcher (optionally narrowed to a capture group and filtered by a
// validator) or an exact-substring matcher for a literal value.
type Detector struct {
	Category Category
	Priority int
	Token    string

	re    *regexp.Regexp
	group int // submatch index to redact; 0 means the whole match

	literal  string // exact-substring matcher, used when non-empty
	foldCase bool   // literal comparison ignores ASCII case

	validate func(string) bool // nil means every structural match is accepted
}

// find returns the raw spans the detector matches in text. Candidates
// rejected by the validator are dropped silently.
func (d *Detector) find(text string) []Span {
	if d.literal != "" {
		return d.findLiteral(text)
	}

	var spans []Span
	for _, loc := range d.re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2*d.group], loc[2*d.group+1]
		if start < 0 || start >= end {
			continue
		}
		if d.validate != nil && !d.validate(text[start:end]) {
			continue
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}

func (d *Detector) findLiteral(text string) []Span {
	var spans []Span
	for off := 0; off < len(text); {
		i := indexSubstr(text[off:], d.literal, d.foldCase)
		if i < 0 {
			break
		}
		start := off + i
		end := start + len(d.literal)
		spans = append(spans, Span{Start: start, End: end})
		off = end
	}
	return spans
}

// indexSubstr is strings.Index with optional ASCII case folding. Folding is
// byte-wise so offsets always refer to the original text.
func indexSubstr(s, substr string, fold bool) int {
	if !fold {
		return strings.Index(s, substr)
	}
	if len(substr) == 0 || len(s) < len(substr) {
		return -1
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if equalFoldASCII(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
