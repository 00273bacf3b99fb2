package redact

import (
	"sort"
	"strings"
)

// Options tune a Scrubber. The zero value enables the full catalog with the
// default tokens.
type Options struct {
	// Disabled lists categories whose detectors are skipped entirely.
	Disabled []Category
	// Tokens overrides the replacement token for the given categories.
	// Each category maps to exactly one token for the lifetime of the
	// Scrubber.
	Tokens map[Category]string
}

// Scrubber runs the full detector set over text buffers. It is immutable
// after construction and safe for concurrent use.
type Scrubber struct {
	detectors []Detector
}

// New builds a Scrubber from the static catalog plus the context-derived
// detectors, using default options.
func New(ctx *Context) *Scrubber {
	return NewWithOptions(ctx, Options{})
}

// NewWithOptions builds a Scrubber with category and token overrides.
func NewWithOptions(ctx *Context, opts Options) *Scrubber {
	disabled := make(map[Category]bool, len(opts.Disabled))
	for _, c := range opts.Disabled {
		disabled[c] = true
	}
	token := func(c Category) string {
		if t, ok := opts.Tokens[c]; ok && t != "" {
			return t
		}
		return defaultTokens[c]
	}

	var ds []Detector

	// Secret literals run at the highest priority and were ordered
	// longest-first by BuildContext, so a nested shorter literal can never
	// split a longer one.
	for _, s := range ctx.secrets {
		if disabled[s.category] {
			continue
		}
		ds = append(ds, Detector{
			Category: s.category,
			Priority: prioSecret,
			Token:    token(s.category),
			literal:  s.value,
		})
	}

	for _, d := range catalog() {
		if disabled[d.Category] {
			continue
		}
		d.Token = token(d.Category)
		ds = append(ds, d)
	}

	// Exact-substring detectors for the user identity. The home directory
	// outranks the username so a path prefix wins over the name embedded
	// inside it; only the prefix is replaced, the rest of the path
	// survives verbatim.
	if ctx.HomeDir != "" && !disabled[CategoryHomeDir] {
		ds = append(ds, Detector{
			Category: CategoryHomeDir,
			Priority: prioHomeDir,
			Token:    token(CategoryHomeDir),
			literal:  ctx.HomeDir,
		})
	}
	if ctx.Username != "" && !disabled[CategoryUsername] {
		ds = append(ds, Detector{
			Category: CategoryUsername,
			Priority: prioUsername,
			Token:    token(CategoryUsername),
			literal:  ctx.Username,
			foldCase: true,
		})
	}

	return &Scrubber{detectors: ds}
}

// Process returns text with every resolved match replaced by its category
// token. Text outside matched spans is preserved byte for byte. It never
// fails; text with no matches comes back unchanged.
func (s *Scrubber) Process(text string) string {
	if text == "" {
		return text
	}
	matches := s.detect(text)
	if len(matches) == 0 {
		return text
	}
	return apply(text, resolve(matches))
}

// Redact is a convenience for one-shot use; callers processing many input
// units should build a Scrubber once and reuse it.
func Redact(text string, ctx *Context) string {
	return New(ctx).Process(text)
}

// detect collects the raw, possibly overlapping matches from every detector.
// A detector that matches nothing simply contributes zero spans; there is no
// error path.
func (s *Scrubber) detect(text string) []Match {
	var matches []Match
	for i := range s.detectors {
		d := &s.detectors[i]
		for _, sp := range d.find(text) {
			matches = append(matches, Match{
				Span:     sp,
				Category: d.Category,
				Priority: d.Priority,
				Token:    d.Token,
			})
		}
	}
	return matches
}

// resolve reduces raw matches to a non-overlapping set. Candidates are
// ordered by start offset, then priority, then longer span, and swept left
// to right: a candidate overlapping an already-accepted match is discarded
// even if its own priority is higher, because acceptance is ordered by scan
// position.
func resolve(matches []Match) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority < matches[j].Priority
		}
		return matches[i].End > matches[j].End
	})

	accepted := matches[:0]
	lastEnd := 0
	for _, m := range matches {
		if m.Start < lastEnd {
			continue
		}
		accepted = append(accepted, m)
		lastEnd = m.End
	}
	return accepted
}

// apply splices the tokens over the accepted spans in one pass.
func apply(text string, matches []Match) string {
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(m.Token)
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}
