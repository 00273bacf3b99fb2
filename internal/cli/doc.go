// Package cli wires together the Cobra command tree for the biip binary.
//
// The root command is the scrubber itself: it redacts file arguments, piped
// stdin, an interactive paste, or the clipboard, choosing the input mode
// from the arguments and whether stdin is a terminal. Subcommands manage
// configuration and print the version. Handlers set deterministic exit
// codes: 0 on success, 1 when some inputs could not be read, 2 on usage
// errors.
package cli
