// Package cli implements the mnemonic-sss command-line boundary: parsing,
// interactive prompting, and dispatch to the split/recover/generate
// operations in the sss package.
package cli

import (
	"fmt"
	"os"
)

// Main is the process entry point: run the CLI against the real process
// argv/stdio and exit with its reported status code.
func Main() {
	os.Exit(Run(os.Args[1:]))
}

// Run dispatches args[0] to the matching subcommand and returns the
// process exit code: 0 on success, 1 on an operational failure (bad
// mnemonic, insufficient shares, ...), 2 on a usage error.
func Run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stdout, topHelp)
		return 0
	}

	cmd, remain := args[0], args[1:]
	switch cmd {
	case "split":
		return runSplit(remain)
	case "recover":
		return runRecover(remain)
	case "generate":
		return runGenerate(remain)
	case "version":
		return runVersion(remain)
	case "help", "-h", "--help":
		return runHelp(remain)
	default:
		fmt.Fprintf(os.Stderr, "mnemonic-sss: unknown command %q\n\n", cmd)
		fmt.Fprint(os.Stderr, topHelp)
		return 2
	}
}

func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stdout, topHelp)
		return 0
	}
	topic := args[0]
	text, ok := helpTopics[topic]
	if !ok {
		fmt.Fprintf(os.Stderr, "mnemonic-sss: no help topic %q\n", topic)
		return 2
	}
	fmt.Fprint(os.Stdout, text)
	return 0
}

var helpTopics = map[string]string{
	"split":    helpSplit,
	"recover":  helpRecover,
	"generate": helpGenerate,
	"version":  helpVersion,
}

const topHelp = `mnemonic-sss: split and recover a BIP-39 mnemonic using Shamir's Secret Sharing

Usage:
  mnemonic-sss <command> [flags]

Commands:
  split      split a master mnemonic into n shares, k of which recover it
  recover    reconstruct a master mnemonic from k shares
  generate   generate a fresh random master mnemonic
  version    print the build version
  help       show this message, or "help <command>" for details

All secret mnemonics (the master phrase, and each share) are entered
interactively; they are never accepted as command-line arguments,
environment variables, or file paths, so they never appear in a shell
history or process listing.
`
