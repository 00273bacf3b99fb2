package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes.
const (
	ExitSuccess    = 0 // all inputs processed (skips included)
	ExitFailures   = 1 // some inputs could not be read
	ExitUsageError = 2
)

var rootCmd = &cobra.Command{
	Use:   "biip [file ...]",
	Short: "Scrub PII and secrets from text",
	Long: "Biip copies text with personally identifiable information and secret values\n" +
		"replaced by redaction tokens, so logs and terminal output can be shared safely.\n" +
		"It reads file arguments, piped stdin, the clipboard, or an interactive paste.",
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

var flagVerbose bool

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
	addScrubFlags(rootCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(func() {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	})

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print biip version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "biip version %s\n", version)
	},
}
