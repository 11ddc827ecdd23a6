// Package sss is the facade: it composes the bip39 codec with the shamir
// engine into a mnemonic-in / mnemonic-out contract (Generate, Split,
// Recover), matching the external interface in the specification.
package sss

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mnemonic-sss/mnemonic-sss/bigint"
	"github.com/mnemonic-sss/mnemonic-sss/bip39"
	"github.com/mnemonic-sss/mnemonic-sss/shamir"
)

// ErrEntropyTooLarge indicates that generateMaxAttempts random draws in a
// row all exceeded 256 bits; at roughly a 38% chance per draw this should
// essentially never happen, but is checked rather than assumed.
var ErrEntropyTooLarge = errors.New("sss: generated entropy exceeds 256 bits")

// generateMaxAttempts bounds the rejection loop for drawing a random
// field element that also fits in 256 bits. P is about 1.62 * 2^256, so
// about 62% of draws fit and the rest are redrawn; the bound exists so a
// pathological RNG cannot spin forever.
const generateMaxAttempts = 1000

// Generate draws a fresh random 256-bit secret and returns it as a
// 24-word mnemonic.
func Generate() ([]string, error) {
	for attempt := 0; attempt < generateMaxAttempts; attempt++ {
		n, err := bigint.RandRange(shamir.Prime())
		if err != nil {
			return nil, fmt.Errorf("sss: generating entropy: %w", err)
		}
		if n.BitLen() > 256 {
			n.Zero()
			continue
		}

		buf, err := n.ToBytesBE(bip39.EntropyBytes)
		n.Zero()
		if err != nil {
			return nil, fmt.Errorf("sss: encoding entropy: %w", err)
		}
		defer zeroBytes(buf)

		return bip39.Encode(buf)
	}
	return nil, ErrEntropyTooLarge
}

// Split validates master, decodes it to its 256-bit entropy, runs the
// Shamir split, and returns n shares keyed by their 1-based index, each
// itself encoded as a 24-word mnemonic.
func Split(master []string, k, n int) (map[int][]string, error) {
	entropy, err := bip39.Decode(master)
	if err != nil {
		return nil, fmt.Errorf("sss: invalid master mnemonic: %w", err)
	}
	defer zeroBytes(entropy)

	secret := bigint.FromBytesBE(entropy)
	defer secret.Zero()

	shares, err := shamir.Split(secret, k, n)
	if err != nil {
		return nil, err
	}

	out := make(map[int][]string, len(shares))
	for _, s := range shares {
		yBytes, err := s.Y.ToBytesBE(bip39.EntropyBytes)
		if err != nil {
			zeroShareMap(out)
			s.Zero()
			return nil, fmt.Errorf("sss: encoding share %d: %w", s.X, err)
		}
		words, err := bip39.Encode(yBytes)
		zeroBytes(yBytes)
		s.Zero()
		if err != nil {
			zeroShareMap(out)
			return nil, fmt.Errorf("sss: encoding share %d: %w", s.X, err)
		}
		out[s.X] = words
	}
	return out, nil
}

// Recover decodes each supplied share's mnemonic, runs Lagrange
// interpolation at x=0 over the first k shares in ascending index order
// (a map has no input order — see DESIGN.md), and returns the
// reconstructed secret as a 24-word mnemonic.
func Recover(shares map[int][]string, k int) ([]string, error) {
	if len(shares) < k {
		return nil, shamir.ErrNotEnoughShares
	}

	xs := make([]int, 0, len(shares))
	for x := range shares {
		xs = append(xs, x)
	}
	sort.Ints(xs)

	decoded := make([]shamir.Share, 0, len(xs))
	defer func() {
		for i := range decoded {
			decoded[i].Zero()
		}
	}()

	for _, x := range xs {
		entropy, err := bip39.Decode(shares[x])
		if err != nil {
			return nil, fmt.Errorf("sss: invalid share %d mnemonic: %w", x, err)
		}
		y := bigint.FromBytesBE(entropy)
		zeroBytes(entropy)
		decoded = append(decoded, shamir.Share{X: x, Y: y})
	}

	secret, err := shamir.Recover(decoded, k)
	if err != nil {
		return nil, err
	}
	defer secret.Zero()

	buf, err := secret.ToBytesBE(bip39.EntropyBytes)
	if err != nil {
		return nil, fmt.Errorf("sss: encoding recovered secret: %w", err)
	}
	defer zeroBytes(buf)

	return bip39.Encode(buf)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zeroShareMap(m map[int][]string) {
	for _, words := range m {
		for i := range words {
			words[i] = ""
		}
	}
}
