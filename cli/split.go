package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mnemonic-sss/mnemonic-sss/shamir"
	"github.com/mnemonic-sss/mnemonic-sss/sss"
)

// runSplit implements `mnemonic-sss split -quorum k -total n [-word short|long] [-mode word|phrase]`.
func runSplit(args []string) int {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	quorum := fs.Int("quorum", 0, "threshold k, 2 <= k <= total")
	total := fs.Int("total", 0, "total shares n, k <= n <= 20")
	wordFlag := fs.String("word", "short", "short|long: abbreviated 4-character or full word input")
	modeFlag := fs.String("mode", "word", "word|phrase: prompt one word at a time, or one line of 24")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	wm, err := parseWordMode(*wordFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "split:", err)
		return 2
	}
	lm, err := parseLineMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "split:", err)
		return 2
	}
	if *quorum < shamir.MinThreshold {
		fmt.Fprintf(os.Stderr, "split: -quorum must be at least %d\n", shamir.MinThreshold)
		return 2
	}
	if *total < *quorum {
		fmt.Fprintln(os.Stderr, "split: -total must be at least -quorum")
		return 2
	}
	if *total > shamir.MaxTotal {
		fmt.Fprintf(os.Stderr, "split: -total must be at most %d\n", shamir.MaxTotal)
		return 2
	}

	p := newPromptReader(os.Stdin)
	master, err := readMnemonic(p, os.Stdout, "master mnemonic", wm, lm, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "split:", err)
		return 1
	}

	shares, err := sss.Split(master, *quorum, *total)
	if err != nil {
		fmt.Fprintln(os.Stderr, "split:", err)
		return 1
	}

	if err := runSplitSelfTest(os.Stdout, master, shares, *quorum, *total); err != nil {
		fmt.Fprintln(os.Stderr, "split:", err)
		return 1
	}

	printShares(os.Stdout, shares)
	return 0
}

func printShares(out io.Writer, shares map[int][]string) {
	xs := make([]int, 0, len(shares))
	for x := range shares {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	for _, x := range xs {
		fmt.Fprintf(out, "%d: %s\n", x, strings.Join(shares[x], " "))
	}
}

const helpSplit = `# mnemonic-sss split

Split a 24-word master mnemonic into n shares, any k of which reconstruct it.

Usage:
  mnemonic-sss split -quorum k -total n [-word short|long] [-mode word|phrase]

Flags:
  -quorum k      threshold, 2 <= k <= n
  -total n       total shares, k <= n <= 20
  -word short    accept 4-character word prefixes (default)
  -word long     require full words
  -mode word     prompt one word at a time (default)
  -mode phrase   read all 24 words on a single line

The master mnemonic is read interactively and never accepted as a
command-line argument. After splitting, the CLI reconstructs the
master from every (or, for large n, a bounded random sample of) k-of-n
combination of the produced shares and reports the result; the shares
are printed only after that check passes.
`
