// Command mnemonic-sss splits and recovers a 24-word BIP-39 mnemonic
// using Shamir's Secret Sharing.
package main

import "github.com/mnemonic-sss/mnemonic-sss/cli"

func main() {
	cli.Main()
}
