// Biip is a CLI that scrubs personally identifiable information and secrets
// from text before it is shared with third parties, including LLMs.
//
// It replaces usernames, home-directory paths, emails, public IP and MAC
// addresses, phone numbers, card numbers, JWTs, provider API keys, UUIDs,
// URL credentials, and the values of secret-looking environment variables
// with fixed redaction tokens, leaving everything else untouched.
//
// Usage:
//
//	cat file | biip              # redact piped input
//	biip FILE [FILE ...]         # redact one or more files
//	biip --clipboard             # redact the clipboard contents
//	biip                         # interactive paste; Ctrl-D to finish
//
// See https://github.com/dshills/biip for full documentation.
package main
