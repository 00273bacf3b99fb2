// Package scrub orchestrates redaction over whole input units: file
// arguments, piped stdin, and pasted buffers.
//
// File arguments are independent, so a bounded worker pool processes them
// concurrently against a shared immutable Scrubber; results are returned in
// argument order, which keeps output deterministic under any parallelism.
// Oversized and binary files are skipped, never altered. Policy decisions
// that belong to the I/O boundary (what to print for a skip, exit codes)
// are left to the caller.
package scrub
