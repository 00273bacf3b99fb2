package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator is printed around interactive paste input.
const Separator = "──────────"

// Printer writes redacted output, optionally decorated with per-file
// headers. It captures the first write error and turns later writes into
// no-ops, so callers check Err once at the end.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints the banner shown above each file argument's output.
func (p *Printer) Header(path string) {
	p.printf("─── %s ───\n", path)
}

// Text prints redacted content followed by a newline when the content does
// not already end with one.
func (p *Printer) Text(s string) {
	if strings.HasSuffix(s, "\n") {
		p.printf("%s", s)
		return
	}
	p.printf("%s\n", s)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Open returns the destination for redacted output: the named file when
// outPath is non-empty, stdout otherwise. The caller owns the closer.
func Open(outPath string) (io.WriteCloser, error) {
	if outPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
