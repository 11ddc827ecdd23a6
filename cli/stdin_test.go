package cli

import (
	"os"
	"testing"
)

// withStdin temporarily replaces os.Stdin with a pipe fed by content, for
// the duration of fn.
func withStdin(t *testing.T, content string, fn func()) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()

	go func() {
		w.WriteString(content)
		w.Close()
	}()

	fn()
	r.Close()
}
