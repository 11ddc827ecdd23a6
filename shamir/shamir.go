// Package shamir implements Shamir's Secret Sharing over a fixed 257-bit
// prime field, constrained so every emitted share's y-value fits in 256
// bits and can therefore be re-encoded as a 24-word BIP-39 mnemonic.
package shamir

import (
	"errors"
	"fmt"

	"github.com/mnemonic-sss/mnemonic-sss/bigint"
)

// MaxIterations bounds the split rejection loop; exceeding it without
// finding an all-256-bit share batch is reported as failure rather than
// looping unbounded.
const MaxIterations = 500000

// MaxTotal is the largest share count the engine supports (n <= 20).
const MaxTotal = 20

// MinThreshold is the smallest threshold the engine supports (k >= 2).
const MinThreshold = 2

var (
	// ErrThresholdInvalid is returned when k < MinThreshold.
	ErrThresholdInvalid = errors.New("shamir: threshold must be at least 2")
	// ErrThresholdExceedsTotal is returned when k > n.
	ErrThresholdExceedsTotal = errors.New("shamir: threshold cannot exceed total shares")
	// ErrTotalExceedsMax is returned when n > MaxTotal.
	ErrTotalExceedsMax = errors.New("shamir: total shares cannot exceed 20")
	// ErrDuplicateIndex is returned when recover is given two shares with
	// the same x-value.
	ErrDuplicateIndex = errors.New("shamir: duplicate share index")
	// ErrNotEnoughShares is returned when fewer shares than the threshold
	// are supplied to recover.
	ErrNotEnoughShares = errors.New("shamir: fewer shares than threshold")
	// ErrRejectionExhausted is returned when split's rejection loop hits
	// MaxIterations without producing an all-256-bit share batch.
	ErrRejectionExhausted = errors.New("shamir: could not find all-256-bit shares within iteration budget")
	// ErrReconstructionFailure is returned when the Lagrange result at
	// x=0 exceeds 256 bits, indicating the caller supplied bad shares.
	ErrReconstructionFailure = errors.New("shamir: reconstructed value exceeds 256 bits, likely invalid shares")
)

// maxShareBits is the bound every emitted share's y-value (and every
// recovered secret) must satisfy to round-trip through the BIP-39 codec.
const maxShareBits = 256

// prime is the fixed 257-bit field modulus from the specification. It is
// larger than 2^256 so every 256-bit entropy value is a valid field
// element; its extra bit is exactly why the rejection loop in Split
// exists.
var prime = mustParsePrime("187110422339161656731757292403725394067928975545356095774785896842956550853219")

func mustParsePrime(decimal string) bigint.Int {
	// Parsed once at package init; a failure here is a build-time invariant
	// violation, not a runtime condition callers can recover from.
	v, err := bigint.FromDecimal(decimal)
	if err != nil {
		panic(fmt.Sprintf("shamir: invalid prime constant: %v", err))
	}
	return v
}

// Share is one (x, y) point on the secret polynomial. x is the 1-based
// share index; y is a field element guaranteed, at emission time, to be
// less than 2^256.
type Share struct {
	X int
	Y bigint.Int
}

// Zero wipes the share's y-value.
func (s *Share) Zero() {
	s.Y.Zero()
}

// checkParams validates the threshold/total constraints shared by Split
// and the facade.
func checkParams(k, n int) error {
	if k < MinThreshold {
		return ErrThresholdInvalid
	}
	if n > MaxTotal {
		return ErrTotalExceedsMax
	}
	if k > n {
		return ErrThresholdExceedsTotal
	}
	return nil
}

// evaluatePolynomial evaluates y(x) = sum(coeffs[i] * x^i) mod P using
// Horner's method, iterating coefficients high-to-low. Per the reference
// implementation, an extended modulus P' = r*P (r a fresh random value in
// [1, 65536)) is formed before every call; no reduction is ever actually
// taken against P', only against P. The coefficient is preserved here for
// call-count compatibility with the reference and has no effect on the
// result (see DESIGN.md's open-question note).
func evaluatePolynomial(coeffs []bigint.Int, x bigint.Int) (bigint.Int, error) {
	if _, err := maskingCoefficient(); err != nil {
		return bigint.Int{}, err
	}

	acc := bigint.FromU64(0)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(coeffs[i])
		acc = acc.ModNonNeg(prime)
	}
	return acc, nil
}

// maskingCoefficient draws the inert r in [1, 65536) described in the
// specification's masking trick. It is called once per evaluatePolynomial
// and once per lagrangeInterpolate invocation purely to preserve the
// reference's RNG call count; the returned value is not otherwise used.
func maskingCoefficient() (bigint.Int, error) {
	r, err := bigint.RandRange(bigint.FromU64(65536))
	if err != nil {
		return bigint.Int{}, fmt.Errorf("shamir: masking coefficient: %w", err)
	}
	if r.IsZero() {
		r = bigint.FromU64(1)
	}
	return r, nil
}

// Split divides secret (a 256-bit value) into n shares such that any k
// reconstruct it. Every emitted share's y-value is guaranteed to fit in
// 256 bits via whole-batch rejection sampling.
func Split(secret bigint.Int, k, n int) ([]Share, error) {
	if err := checkParams(k, n); err != nil {
		return nil, err
	}

	for iter := 0; iter < MaxIterations; iter++ {
		coeffs := make([]bigint.Int, k)
		coeffs[0] = secret.Clone() // decouple from the caller's value so zeroing coeffs never touches it
		ok := true
		for i := 1; i < k; i++ {
			c, err := bigint.RandRange(prime)
			if err != nil {
				return nil, fmt.Errorf("shamir: drawing coefficient: %w", err)
			}
			coeffs[i] = c
		}

		shares := make([]Share, n)
		for i := 1; i <= n; i++ {
			y, err := evaluatePolynomial(coeffs, bigint.FromU64(uint64(i)))
			if err != nil {
				zeroCoeffs(coeffs)
				return nil, err
			}
			if y.BitLen() > maxShareBits {
				ok = false
			}
			shares[i-1] = Share{X: i, Y: y}
		}

		if ok {
			zeroCoeffs(coeffs)
			return shares, nil
		}
		zeroShares(shares)
		zeroCoeffs(coeffs)
	}

	return nil, ErrRejectionExhausted
}

func zeroCoeffs(coeffs []bigint.Int) {
	for i := range coeffs {
		coeffs[i].Zero()
	}
}

func zeroShares(shares []Share) {
	for i := range shares {
		shares[i].Zero()
	}
}

// Recover reconstructs the secret from shares (using exactly the first k,
// in input order) via Lagrange interpolation at x=0.
func Recover(shares []Share, k int) (bigint.Int, error) {
	if k < MinThreshold {
		return bigint.Int{}, ErrThresholdInvalid
	}
	if len(shares) < k {
		return bigint.Int{}, ErrNotEnoughShares
	}
	used := shares[:k]

	seen := make(map[int]struct{}, k)
	for _, s := range used {
		if _, dup := seen[s.X]; dup {
			return bigint.Int{}, ErrDuplicateIndex
		}
		seen[s.X] = struct{}{}
	}

	secret, err := lagrangeInterpolateAtZero(used)
	if err != nil {
		return bigint.Int{}, err
	}
	if secret.BitLen() > maxShareBits {
		return bigint.Int{}, ErrReconstructionFailure
	}
	return secret, nil
}

// lagrangeInterpolateAtZero computes L(0) = sum_i y_i * prod_{j!=i} (0-x_j)/(x_i-x_j) mod P.
func lagrangeInterpolateAtZero(shares []Share) (bigint.Int, error) {
	if _, err := maskingCoefficient(); err != nil {
		return bigint.Int{}, err
	}

	result := bigint.FromU64(0)
	for i, si := range shares {
		numerator := bigint.FromU64(1)
		denominator := bigint.FromU64(1)
		xi := bigint.FromU64(uint64(si.X))

		for j, sj := range shares {
			if i == j {
				continue
			}
			xj := bigint.FromU64(uint64(sj.X))

			// numerator term: (0 - x_j); add P first to avoid a
			// negative intermediate before reducing mod P.
			term := prime.Sub(xj).ModNonNeg(prime)
			numerator = numerator.Mul(term).ModNonNeg(prime)

			diff := xi.Sub(xj)
			diff = diff.Add(prime).ModNonNeg(prime)
			denominator = denominator.Mul(diff).ModNonNeg(prime)
		}

		denomInv, err := denominator.ModInverse(prime)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("shamir: non-invertible denominator (duplicate x?): %w", err)
		}

		term := si.Y.Mul(numerator).ModNonNeg(prime)
		term = term.Mul(denomInv).ModNonNeg(prime)
		result = result.Add(term).ModNonNeg(prime)
	}
	return result, nil
}

// Prime returns the fixed field modulus, for callers (e.g. the facade)
// that need to validate a value is a legal field element before sharing.
func Prime() bigint.Int {
	return prime
}
