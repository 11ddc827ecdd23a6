package cli

import "testing"

func TestRun_NoArgsPrintsTopHelp(t *testing.T) {
	var code int
	out := captureStdout(t, func() { code = Run(nil) })
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out == "" {
		t.Fatal("expected top-level help text, got empty output")
	}
}

func TestRun_UnknownCommandReturns2(t *testing.T) {
	var code int
	captureStderr(t, func() { code = Run([]string{"bogus"}) })
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRun_HelpTopicDispatch(t *testing.T) {
	var code int
	out := captureStdout(t, func() { code = Run([]string{"help", "split"}) })
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != helpSplit {
		t.Fatalf("expected helpSplit text, got:\n%s", out)
	}
}

func TestRun_HelpUnknownTopicReturns2(t *testing.T) {
	var code int
	captureStderr(t, func() { code = Run([]string{"help", "bogus"}) })
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
