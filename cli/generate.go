package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mnemonic-sss/mnemonic-sss/sss"
)

// runGenerate implements `mnemonic-sss generate`: it draws a fresh random
// secret and prints it as a 24-word mnemonic. It takes no flags.
func runGenerate(args []string) int {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "generate does not accept arguments")
		return 2
	}
	words, err := sss.Generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, strings.Join(words, " "))
	return 0
}

const helpGenerate = `# mnemonic-sss generate

Generate a fresh random 24-word master mnemonic.

Usage:
  mnemonic-sss generate
`
