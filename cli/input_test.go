package cli

import "testing"

func TestParseWordMode(t *testing.T) {
	if m, err := parseWordMode(""); err != nil || m != wordShort {
		t.Fatalf("default: got %v, %v", m, err)
	}
	if m, err := parseWordMode("long"); err != nil || m != wordLong {
		t.Fatalf("long: got %v, %v", m, err)
	}
	if _, err := parseWordMode("bogus"); err == nil {
		t.Fatal("expected error for invalid -word value")
	}
}

func TestParseLineMode(t *testing.T) {
	if m, err := parseLineMode(""); err != nil || m != modeWord {
		t.Fatalf("default: got %v, %v", m, err)
	}
	if m, err := parseLineMode("phrase"); err != nil || m != modePhrase {
		t.Fatalf("phrase: got %v, %v", m, err)
	}
	if _, err := parseLineMode("bogus"); err == nil {
		t.Fatal("expected error for invalid -mode value")
	}
}

func TestResolveWord_LongRequiresFullWord(t *testing.T) {
	if _, err := resolveWord("aban", wordLong); err == nil {
		t.Fatal("expected error resolving an abbreviation in long mode")
	}
	if w, err := resolveWord("Abandon", wordLong); err != nil || w != "abandon" {
		t.Fatalf("got %q, %v", w, err)
	}
}

func TestResolveWord_ShortAcceptsPrefix(t *testing.T) {
	w, err := resolveWord("aban", wordShort)
	if err != nil || w != "abandon" {
		t.Fatalf("got %q, %v", w, err)
	}
}
