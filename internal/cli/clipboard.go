package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/dshills/biip/internal/output"
	"github.com/dshills/biip/internal/redact"
)

// runClipboard redacts the clipboard contents. By default the redacted text
// goes to stdout; with --in-place the clipboard itself is rewritten so the
// next paste is already scrubbed.
func runClipboard(s *redact.Scrubber) error {
	text, err := clipboard.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "biip: reading clipboard: %v\n", err)
		exitCode = ExitFailures
		return nil
	}
	if redact.IsBinary([]byte(text)) {
		fmt.Fprintln(os.Stderr, "warning: binary clipboard content skipped")
		return nil
	}

	redacted := s.Process(text)

	if flagInPlace {
		if err := clipboard.WriteAll(redacted); err != nil {
			fmt.Fprintf(os.Stderr, "biip: writing clipboard: %v\n", err)
			exitCode = ExitFailures
			return nil
		}
		fmt.Fprintln(os.Stderr, "clipboard redacted in place")
		return nil
	}

	w, err := output.Open(flagOut)
	if err != nil {
		return err
	}
	defer w.Close()

	p := output.NewPrinter(w)
	p.Text(redacted)
	return p.Err()
}
