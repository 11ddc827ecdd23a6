package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mnemonic-sss/mnemonic-sss/bip39"
)

// wordInputMode selects whether prompted words are typed out in full or
// as their 4-character abbreviated prefix.
type wordInputMode int

const (
	wordShort wordInputMode = iota // default: 4-character prefixes, resolved via the abbreviated map
	wordLong
)

// lineInputMode selects whether the mnemonic is entered one word per
// prompt, or as a single 24-word line.
type lineInputMode int

const (
	modeWord lineInputMode = iota // default: word-by-word prompting
	modePhrase
)

func parseWordMode(s string) (wordInputMode, error) {
	switch s {
	case "", "short":
		return wordShort, nil
	case "long":
		return wordLong, nil
	default:
		return 0, fmt.Errorf("invalid -word value %q (want short or long)", s)
	}
}

func parseLineMode(s string) (lineInputMode, error) {
	switch s {
	case "", "word":
		return modeWord, nil
	case "phrase":
		return modePhrase, nil
	default:
		return 0, fmt.Errorf("invalid -mode value %q (want word or phrase)", s)
	}
}

// promptReader bundles a line scanner with the underlying reader so the
// secret-input path can check whether it is attached to a real terminal.
type promptReader struct {
	raw     io.Reader
	scanner *bufio.Scanner
}

func newPromptReader(r io.Reader) *promptReader {
	return &promptReader{raw: r, scanner: bufio.NewScanner(r)}
}

// readLine returns one line of input. When secret is set and the reader
// is attached to a terminal, it reads via golang.org/x/term.ReadPassword
// so the typed mnemonic words are never echoed to the terminal
// scrollback; otherwise (piped input, redirected files, tests) it falls
// back to the plain line scanner. When the reader is not a terminal, nothing
// echoes the typed newline, so a newline is written to out after the line is
// read to end the prompt line.
func (p *promptReader) readLine(out io.Writer, secret bool) (string, error) {
	f, isFile := p.raw.(*os.File)
	tty := isFile && term.IsTerminal(int(f.Fd()))
	if secret && tty {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading secret input: %w", err)
		}
		return string(b), nil
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of input")
	}
	if !tty {
		fmt.Fprintln(out)
	}
	return p.scanner.Text(), nil
}

func resolveWord(raw string, wm wordInputMode) (string, error) {
	norm := bip39.Normalize(raw)
	if norm == "" {
		return "", fmt.Errorf("empty word")
	}
	if wm == wordLong {
		if _, ok := bip39.WordIndex(norm); !ok {
			return "", fmt.Errorf("%q is not a wordlist entry", raw)
		}
		return norm, nil
	}
	full, ok := bip39.ResolveAbbreviation(norm)
	if !ok {
		return "", fmt.Errorf("%q does not resolve to a wordlist entry", raw)
	}
	return full, nil
}

// readMnemonic drives the interactive input state machine from the
// specification: Prompt -> Read line -> Normalize -> Validate word or
// split-phrase -> {Accept | Re-prompt}. Once 24 words are accepted the
// full mnemonic is checksum-validated; on failure it restarts from word 1.
func readMnemonic(p *promptReader, out io.Writer, label string, wm wordInputMode, lm lineInputMode, secret bool) ([]string, error) {
	for {
		words, err := collectWords(p, out, label, wm, lm, secret)
		if err != nil {
			return nil, err
		}
		if bip39.IsValid(words) {
			return words, nil
		}
		fmt.Fprintf(out, "%s: checksum invalid, please re-enter all %d words\n", label, bip39.WordCount)
	}
}

func collectWords(p *promptReader, out io.Writer, label string, wm wordInputMode, lm lineInputMode, secret bool) ([]string, error) {
	if lm == modePhrase {
	phrase:
		for {
			fmt.Fprintf(out, "%s (%d words, space-separated): ", label, bip39.WordCount)
			line, err := p.readLine(out, secret)
			if err != nil {
				return nil, err
			}
			fields := strings.Fields(line)
			if len(fields) != bip39.WordCount {
				fmt.Fprintf(out, "  expected %d words, got %d, try again\n", bip39.WordCount, len(fields))
				continue
			}
			words := make([]string, 0, len(fields))
			for _, f := range fields {
				w, err := resolveWord(f, wm)
				if err != nil {
					fmt.Fprintf(out, "  %v, try again\n", err)
					continue phrase
				}
				words = append(words, w)
			}
			return words, nil
		}
	}

	words := make([]string, 0, bip39.WordCount)
	for i := 1; i <= bip39.WordCount; i++ {
		for {
			fmt.Fprintf(out, "%s word %d/%d: ", label, i, bip39.WordCount)
			line, err := p.readLine(out, secret)
			if err != nil {
				return nil, err
			}
			w, err := resolveWord(line, wm)
			if err != nil {
				fmt.Fprintf(out, "  %v, try again\n", err)
				continue
			}
			words = append(words, w)
			break
		}
	}
	return words, nil
}
