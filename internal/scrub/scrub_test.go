package scrub

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/biip/internal/redact"
)

func testRunner(t *testing.T, maxBytes int) *Runner {
	t.Helper()
	ctx := redact.BuildContext(map[string]string{"API_SECRET": "abcd1234"}, "", "alice", "/home/alice")
	return New(redact.New(ctx), maxBytes, 4)
}

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestFilesRedactsText(t *testing.T) {
	r := testRunner(t, 0)
	path := writeTemp(t, "notes.txt", []byte("mail alice@example.com\nsecret abcd1234\n"))

	results := r.Files([]string{path})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.Err != nil || res.Skipped {
		t.Fatalf("unexpected result: %+v", res)
	}
	if strings.Contains(res.Output, "alice@example.com") || strings.Contains(res.Output, "abcd1234") {
		t.Errorf("sensitive values survived: %q", res.Output)
	}
	if !strings.Contains(res.Output, "•••@•••") || !strings.Contains(res.Output, "••••••••") {
		t.Errorf("tokens missing from output: %q", res.Output)
	}
}

func TestFilesSkipsBinary(t *testing.T) {
	r := testRunner(t, 0)
	path := writeTemp(t, "blob.bin", []byte{0x00, 0xff, 0x00, 'B', 'I', 'N'})

	results := r.Files([]string{path})
	if !results[0].Skipped {
		t.Fatalf("binary file not skipped: %+v", results[0])
	}
	if results[0].Reason != "binary file" {
		t.Errorf("Reason = %q", results[0].Reason)
	}
}

func TestFilesSkipsOversized(t *testing.T) {
	r := testRunner(t, 16)
	path := writeTemp(t, "big.txt", bytes.Repeat([]byte("a"), 64))

	results := r.Files([]string{path})
	if !results[0].Skipped {
		t.Fatalf("oversized file not skipped: %+v", results[0])
	}
}

func TestFilesReportsReadErrors(t *testing.T) {
	r := testRunner(t, 0)
	results := r.Files([]string{filepath.Join(t.TempDir(), "missing.txt")})
	if results[0].Err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFilesPreservesArgumentOrder(t *testing.T) {
	r := testRunner(t, 0)
	var paths []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		paths = append(paths, writeTemp(t, name, []byte("content of "+name)))
	}

	results := r.Files(paths)
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d path = %q, want %q", i, res.Path, paths[i])
		}
		if !strings.Contains(res.Output, filepath.Base(paths[i])) {
			t.Errorf("result %d output mismatch: %q", i, res.Output)
		}
	}
}

func TestStream(t *testing.T) {
	r := testRunner(t, 0)
	in := strings.NewReader("line one\nip 8.8.8.8\nuser alice signing off\n")
	var out bytes.Buffer

	if err := r.Stream(in, &out); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	want := "line one\nip ••.••.••.••\nuser user signing off\n"
	if out.String() != want {
		t.Errorf("Stream output = %q, want %q", out.String(), want)
	}
}

func TestAll(t *testing.T) {
	r := testRunner(t, 0)
	got, err := r.All(strings.NewReader("paste with abcd1234 inside"))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if got != "paste with •••••••• inside" {
		t.Errorf("All = %q", got)
	}
}
