package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/user"

	"github.com/dshills/biip/internal/config"
	"github.com/dshills/biip/internal/output"
	"github.com/dshills/biip/internal/redact"
	"github.com/dshills/biip/internal/scrub"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Scrub flags shared by every input mode.
var (
	flagClipboard    bool
	flagInPlace      bool
	flagOut          string
	flagMaxFileBytes int
	flagWorkers      int
	flagDisable      string
	flagNoDotenv     bool
)

func addScrubFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagClipboard, "clipboard", "c", false, "Redact the clipboard contents")
	cmd.Flags().BoolVar(&flagInPlace, "in-place", false, "With --clipboard, write the redacted text back to the clipboard")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&flagMaxFileBytes, "max-file-bytes", 0, "Skip files larger than this many bytes")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Number of files processed in parallel (0 = one per CPU)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "Detector categories to skip (comma-separated)")
	cmd.Flags().BoolVar(&flagNoDotenv, "no-dotenv", false, "Do not harvest secrets from a .env file in the working directory")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagMaxFileBytes > 0 {
		m["maxFileBytes"] = fmt.Sprintf("%d", flagMaxFileBytes)
	}
	if flagWorkers > 0 {
		m["workers"] = fmt.Sprintf("%d", flagWorkers)
	}
	if flagDisable != "" {
		m["disabled"] = flagDisable
	}
	if flagNoDotenv {
		m["noDotenv"] = "true"
	}
	return m
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}

	scrubber := buildScrubber(cfg)
	runner := scrub.New(scrubber, cfg.MaxFileBytes, cfg.Workers)

	switch {
	case flagClipboard:
		return runClipboard(scrubber)
	case len(args) > 0:
		return runFiles(runner, args)
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		return runPiped(runner)
	default:
		return runPaste(runner)
	}
}

// buildScrubber assembles the process-wide redaction context exactly once:
// environment variables, optional .env contents, and the invoking user's
// identity. Secret values never reach the logs, only their count.
func buildScrubber(cfg config.Config) *redact.Scrubber {
	env := environMap()

	var dotenv string
	if !cfg.NoDotenv {
		if data, err := os.ReadFile(".env"); err == nil && !redact.IsBinary(data) {
			dotenv = string(data)
		}
	}

	username := os.Getenv("USER")
	if u, err := user.Current(); err == nil && u.Username != "" {
		username = u.Username
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	ctx := redact.BuildContext(env, dotenv, username, home)
	slog.Debug("scrub context ready", "secretLiterals", ctx.SecretCount())

	known := make(map[redact.Category]bool)
	for _, c := range redact.Categories() {
		known[c] = true
	}

	opts := redact.Options{Tokens: make(map[redact.Category]string, len(cfg.Tokens))}
	for _, c := range cfg.DisabledCategories {
		if !known[redact.Category(c)] {
			slog.Warn("unknown detector category ignored", "category", c)
			continue
		}
		opts.Disabled = append(opts.Disabled, redact.Category(c))
	}
	for c, tok := range cfg.Tokens {
		opts.Tokens[redact.Category(c)] = tok
	}
	return redact.NewWithOptions(ctx, opts)
}

func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				env[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return env
}

func runFiles(runner *scrub.Runner, paths []string) error {
	w, err := output.Open(flagOut)
	if err != nil {
		return err
	}
	defer w.Close()

	p := output.NewPrinter(w)
	for _, res := range runner.Files(paths) {
		switch {
		case res.Err != nil:
			fmt.Fprintf(os.Stderr, "biip: %s: %v\n", res.Path, res.Err)
			exitCode = ExitFailures
		case res.Skipped:
			fmt.Fprintf(os.Stderr, "warning: %s skipped: %s\n", res.Reason, res.Path)
		default:
			p.Header(res.Path)
			p.Text(res.Output)
		}
	}
	return p.Err()
}

func runPiped(runner *scrub.Runner) error {
	w, err := output.Open(flagOut)
	if err != nil {
		return err
	}
	defer w.Close()

	return runner.Stream(os.Stdin, w)
}

func runPaste(runner *scrub.Runner) error {
	fmt.Fprintln(os.Stderr, "Paste content. Press Ctrl-D (Unix/macOS) or Ctrl-Z then Enter (Windows) to finish:")
	fmt.Fprintln(os.Stderr, output.Separator)

	redacted, err := runner.All(os.Stdin)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, output.Separator)

	w, err := output.Open(flagOut)
	if err != nil {
		return err
	}
	defer w.Close()

	p := output.NewPrinter(w)
	p.Text(redacted)
	return p.Err()
}
