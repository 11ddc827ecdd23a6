// Package bigint wraps math/big.Int in a value type suited to holding
// secret material: Clone deep-copies (a plain assignment of an Int shares
// its storage with the original), and callers are expected to call
// Zero on every exit path (including error paths) for any Int that carried
// entropy, a polynomial coefficient, or a share's y-value.
package bigint

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Int owns a single arbitrary-precision integer value. Values built from
// bytes, hex, decimal or uint64 are non-negative; Sub can yield a negative.
type Int struct {
	v *big.Int
}

// Zero overwrites the receiver's storage with zero. A zeroed Int behaves
// like the value 0 for every subsequent operation.
func (x *Int) Zero() {
	if x == nil || x.v == nil {
		return
	}
	words := x.v.Bits()
	for i := range words {
		words[i] = 0
	}
	x.v.SetInt64(0)
}

// Clone deep-copies x; the result shares no storage with x.
func (x Int) Clone() Int {
	if x.v == nil {
		return FromU64(0)
	}
	return Int{v: new(big.Int).Set(x.v)}
}

// FromU64 constructs an Int from a uint64.
func FromU64(n uint64) Int {
	return Int{v: new(big.Int).SetUint64(n)}
}

// FromHex parses a hex string (optional "0x" prefix) into an Int.
func FromHex(s string) (Int, error) {
	s = trimHexPrefix(s)
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Int{}, fmt.Errorf("bigint: invalid hex string %q", s)
	}
	return Int{v: v}, nil
}

// FromDecimal parses a base-10 string into an Int.
func FromDecimal(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("bigint: invalid decimal string %q", s)
	}
	return Int{v: v}, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// FromBytesBE constructs an Int from a big-endian byte slice. Slices
// shorter than the caller's expected width are treated as left-padded
// with zeros, matching big.Int's own semantics.
func FromBytesBE(b []byte) Int {
	return Int{v: new(big.Int).SetBytes(b)}
}

// ToBytesBE serializes x as a big-endian buffer of exactly n bytes,
// left-padded with zeros. It fails if x does not fit in n bytes.
func (x Int) ToBytesBE(n int) ([]byte, error) {
	raw := x.v.Bytes()
	if len(raw) > n {
		return nil, fmt.Errorf("bigint: value does not fit in %d bytes", n)
	}
	out := make([]byte, n)
	copy(out[n-len(raw):], raw)
	return out, nil
}

// BitLen returns 0 for zero, else the position of the top set bit plus one.
func (x Int) BitLen() int {
	return x.v.BitLen()
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x Int) Cmp(y Int) int {
	return x.v.Cmp(y.v)
}

// IsZero reports whether x is the zero value.
func (x Int) IsZero() bool {
	return x.v.Sign() == 0
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return Int{v: new(big.Int).Add(x.v, y.v)}
}

// Sub returns x - y. The reference never relies on a negative result; a
// negative difference is returned as-is (callers normalize with
// ModNonNeg when a non-negative result is required).
func (x Int) Sub(y Int) Int {
	return Int{v: new(big.Int).Sub(x.v, y.v)}
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return Int{v: new(big.Int).Mul(x.v, y.v)}
}

// DivRem returns the quotient and remainder of x / y.
func (x Int) DivRem(y Int) (q, r Int) {
	qq, rr := new(big.Int), new(big.Int)
	qq.DivMod(x.v, y.v, rr)
	return Int{v: qq}, Int{v: rr}
}

// ModNonNeg returns x mod m, a value in [0, m).
func (x Int) ModNonNeg(m Int) Int {
	r := new(big.Int).Mod(x.v, m.v)
	return Int{v: r}
}

// ModInverse returns the multiplicative inverse of x modulo m. It fails
// when gcd(x, m) != 1.
func (x Int) ModInverse(m Int) (Int, error) {
	inv := new(big.Int).ModInverse(x.v, m.v)
	if inv == nil {
		return Int{}, fmt.Errorf("bigint: %s has no inverse modulo %s", x.v.String(), m.v.String())
	}
	return Int{v: inv}, nil
}

// RandRange returns a cryptographically strong uniform random value in
// [0, upper).
func RandRange(upper Int) (Int, error) {
	if upper.v.Sign() <= 0 {
		return Int{}, fmt.Errorf("bigint: upper bound must be positive")
	}
	n, err := rand.Int(rand.Reader, upper.v)
	if err != nil {
		return Int{}, fmt.Errorf("bigint: random generation failed: %w", err)
	}
	return Int{v: n}, nil
}

// String renders x in decimal, for diagnostics only.
func (x Int) String() string {
	if x.v == nil {
		return "0"
	}
	return x.v.String()
}
