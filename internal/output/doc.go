// Package output formats redacted content for the terminal or an output
// file: per-file headers in file-argument mode, separators in interactive
// paste mode, and plain pass-through for piped input.
package output
