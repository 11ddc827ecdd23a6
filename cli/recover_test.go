package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mnemonic-sss/mnemonic-sss/sss"
)

func TestRunRecover_ReconstructsMaster(t *testing.T) {
	master, err := sss.Generate()
	if err != nil {
		t.Fatalf("sss.Generate: %v", err)
	}
	shares, err := sss.Split(master, 3, 5)
	if err != nil {
		t.Fatalf("sss.Split: %v", err)
	}

	var input strings.Builder
	used := []int{2, 4, 5}
	for _, x := range used {
		fmt.Fprintf(&input, "%d\n", x)
		fmt.Fprintf(&input, "%s\n", strings.Join(shares[x], " "))
	}

	var code int
	var out string
	withStdin(t, input.String(), func() {
		out = captureStdoutStderr(t, func() {
			code = runRecover([]string{"-quorum", "3", "-word", "long", "-mode", "phrase"})
		})
	})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	got := lines[len(lines)-1]
	if got != strings.Join(master, " ") {
		t.Fatalf("recovered mnemonic mismatch:\ngot:  %s\nwant: %s", got, strings.Join(master, " "))
	}
}

func TestRunRecover_RejectsBadQuorum(t *testing.T) {
	var code int
	captureStderr(t, func() { code = runRecover([]string{"-quorum", "1"}) })
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
