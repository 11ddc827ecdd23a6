package cli

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mnemonic-sss/mnemonic-sss/sss"
)

func TestRunSplit_ProducesSharesAndPassesSelfTest(t *testing.T) {
	master, err := sss.Generate()
	if err != nil {
		t.Fatalf("sss.Generate: %v", err)
	}

	input := strings.Join(master, " ") + "\n"
	var code int
	var out string
	withStdin(t, input, func() {
		out = captureStdoutStderr(t, func() {
			code = runSplit([]string{"-quorum", "3", "-total", "5", "-word", "long", "-mode", "phrase"})
		})
	})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d, output:\n%s", code, out)
	}

	lines := 0
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if _, err := strconv.Atoi(strings.SplitN(line, ":", 2)[0]); err == nil {
			lines++
		}
	}
	if lines != 5 {
		t.Fatalf("expected 5 share lines, got %d, output:\n%s", lines, out)
	}
	if !strings.Contains(out, "10 combination(s) passed") {
		t.Fatalf("expected exhaustive self-test over C(5,3)=10 combinations, output:\n%s", out)
	}
}

func TestRunSplit_RejectsBadParams(t *testing.T) {
	cases := [][]string{
		{"-quorum", "1", "-total", "5"},
		{"-quorum", "6", "-total", "5"},
		{"-quorum", "2", "-total", "21"},
	}
	for _, args := range cases {
		var code int
		captureStderr(t, func() { code = runSplit(args) })
		if code != 2 {
			t.Fatalf("args %v: expected exit 2, got %d", args, code)
		}
	}
}
