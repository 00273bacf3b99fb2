package redact

import (
	"bytes"
	"unicode/utf8"
)

// sniffLen bounds how much of a buffer is sampled for classification.
const sniffLen = 8192

// maxNonPrintable is the tolerated ratio of non-printable, non-whitespace
// bytes before a buffer is treated as binary.
const maxNonPrintable = 0.30

// IsBinary classifies a byte buffer as binary content that must bypass
// detection and redaction. The heuristic matches what pagers use: a NUL byte
// in the sampled prefix, invalid UTF-8, or a high ratio of control bytes.
// Empty buffers are text.
func IsBinary(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	s := buf
	if len(s) > sniffLen {
		s = s[:sniffLen]
		// A multi-byte rune may straddle the cut; trim the partial tail
		// so it does not read as invalid UTF-8.
		for len(s) > 0 && !utf8.RuneStart(s[len(s)-1]) {
			s = s[:len(s)-1]
		}
		if len(s) > 0 && s[len(s)-1] >= utf8.RuneSelf {
			s = s[:len(s)-1]
		}
	}

	if bytes.IndexByte(s, 0) >= 0 {
		return true
	}
	if !utf8.Valid(s) {
		return true
	}

	nonPrintable := 0
	for _, b := range s {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' || b == 0x7f {
			nonPrintable++
		}
	}
	return float64(nonPrintable) > maxNonPrintable*float64(len(s))
}
