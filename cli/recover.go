package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mnemonic-sss/mnemonic-sss/shamir"
	"github.com/mnemonic-sss/mnemonic-sss/sss"
)

// runRecover implements `mnemonic-sss recover -quorum k [-word short|long] [-mode word|phrase]`.
func runRecover(args []string) int {
	fs := flag.NewFlagSet("recover", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	quorum := fs.Int("quorum", 0, "threshold k, 2 <= k <= 20")
	wordFlag := fs.String("word", "short", "short|long: abbreviated 4-character or full word input")
	modeFlag := fs.String("mode", "word", "word|phrase: prompt one word at a time, or one line of 24")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	wm, err := parseWordMode(*wordFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "recover:", err)
		return 2
	}
	lm, err := parseLineMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "recover:", err)
		return 2
	}
	if *quorum < shamir.MinThreshold || *quorum > shamir.MaxTotal {
		fmt.Fprintf(os.Stderr, "recover: -quorum must be between %d and %d\n", shamir.MinThreshold, shamir.MaxTotal)
		return 2
	}

	p := newPromptReader(os.Stdin)
	shares := make(map[int][]string, *quorum)
	for i := 1; i <= *quorum; i++ {
		x, err := readShareIndex(p, os.Stdout, i, *quorum, shares)
		if err != nil {
			fmt.Fprintln(os.Stderr, "recover:", err)
			return 1
		}
		label := fmt.Sprintf("share %d (index %d)", i, x)
		words, err := readMnemonic(p, os.Stdout, label, wm, lm, true)
		if err != nil {
			fmt.Fprintln(os.Stderr, "recover:", err)
			return 1
		}
		shares[x] = words
	}

	recovered, err := sss.Recover(shares, *quorum)
	if err != nil {
		fmt.Fprintln(os.Stderr, "recover:", err)
		return 1
	}

	fmt.Fprintln(os.Stdout, strings.Join(recovered, " "))
	return 0
}

func readShareIndex(p *promptReader, out io.Writer, n, total int, seen map[int][]string) (int, error) {
	for {
		fmt.Fprintf(out, "share %d/%d index (1-20): ", n, total)
		line, err := p.readLine(out, false)
		if err != nil {
			return 0, err
		}
		x, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || x < 1 || x > shamir.MaxTotal {
			fmt.Fprintln(out, "  not a valid share index, try again")
			continue
		}
		if _, dup := seen[x]; dup {
			fmt.Fprintln(out, "  that index was already entered, try again")
			continue
		}
		return x, nil
	}
}

const helpRecover = `# mnemonic-sss recover

Reconstruct a master mnemonic from k of its shares.

Usage:
  mnemonic-sss recover -quorum k [-word short|long] [-mode word|phrase]

Flags:
  -quorum k      threshold, the number of shares to collect
  -word short    accept 4-character word prefixes (default)
  -word long     require full words
  -mode word     prompt one word at a time (default)
  -mode phrase   read all 24 words on a single line

The CLI prompts for each share's index followed by its 24-word
mnemonic, interactively, k times.
`
