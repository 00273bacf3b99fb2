package scrub

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/dshills/biip/internal/redact"
)

// Result is the outcome of scrubbing one input unit.
type Result struct {
	Path    string
	Output  string
	Skipped bool   // binary or oversized input, no output produced
	Reason  string // human-readable skip reason
	Err     error  // read failure
}

// Runner scrubs input units with a shared, read-only Scrubber. Units have no
// data dependency on one another, so file arguments are processed in
// parallel; results always come back in argument order.
type Runner struct {
	scrubber *redact.Scrubber
	maxBytes int
	workers  int
}

// New creates a Runner. maxBytes is the per-file size ceiling (0 disables
// it); workers bounds parallelism (0 means one per CPU).
func New(s *redact.Scrubber, maxBytes, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{scrubber: s, maxBytes: maxBytes, workers: workers}
}

// Files processes each path and returns one Result per path, in argument
// order regardless of which worker finished first.
func (r *Runner) Files(paths []string) []Result {
	results := make([]Result, len(paths))
	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = r.file(path)
		}(i, path)
	}
	wg.Wait()

	return results
}

func (r *Runner) file(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	if r.maxBytes > 0 && len(data) > r.maxBytes {
		return Result{Path: path, Skipped: true, Reason: fmt.Sprintf("file larger than %d bytes", r.maxBytes)}
	}
	if redact.IsBinary(data) {
		return Result{Path: path, Skipped: true, Reason: "binary file"}
	}
	return Result{Path: path, Output: r.scrubber.Process(string(data))}
}

// Stream redacts in line by line, writing each redacted line to out as it is
// produced. Used for piped stdin, where output should flow before EOF.
func (r *Runner) Stream(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if _, err := fmt.Fprintln(out, r.scrubber.Process(sc.Text())); err != nil {
			return err
		}
	}
	return sc.Err()
}

// All reads in to EOF and returns the redacted whole. Used for interactive
// paste mode, where the buffer is redacted as one unit.
func (r *Runner) All(in io.Reader) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return r.scrubber.Process(string(data)), nil
}
