package cli

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/mnemonic-sss/mnemonic-sss/sss"
)

// selfTestAllCombinationsLimit bounds the exhaustive all-combinations
// check: above this many total shares, C(n,k) grows too large to walk in
// full, so a bounded random sample is checked instead (unless C(n,k) is
// at most selfTestSampleSize, in which case every subset is checked).
const selfTestAllCombinationsLimit = 12

// selfTestSampleSize is the number of distinct random k-subsets checked
// when the share count exceeds selfTestAllCombinationsLimit.
const selfTestSampleSize = 200

// runSplitSelfTest reconstructs master from every (or, above the limit, a
// bounded random sample of) k-subset of the produced shares and confirms
// each recovers byte-for-byte. A mismatch indicates an internal
// invariant failure in Split/Recover, not a usage error, so it is
// reported distinctly from ordinary command errors.
func runSplitSelfTest(out io.Writer, master []string, shares map[int][]string, k, n int) error {
	want := strings.Join(master, " ")

	combos, skipped, err := selfTestCombos(n, k)
	if err != nil {
		return err
	}
	if skipped {
		total := binomial(n, k)
		fmt.Fprintf(out, "self-test: %d shares exceeds the exhaustive limit (%d); spot-checking %d of %d possible %d-subsets (%d skipped)\n",
			n, selfTestAllCombinationsLimit, len(combos), total, k, total-len(combos))
	} else {
		fmt.Fprintf(out, "self-test: checking all %d combinations of %d-of-%d shares\n", len(combos), k, n)
	}

	for _, combo := range combos {
		subset := make(map[int][]string, k)
		for _, x := range combo {
			subset[x] = shares[x]
		}
		got, err := sss.Recover(subset, k)
		if err != nil {
			return fmt.Errorf("self-test: combination %v failed to recover: %w", combo, err)
		}
		if strings.Join(got, " ") != want {
			return fmt.Errorf("self-test: combination %v recovered a different mnemonic than the master", combo)
		}
	}
	fmt.Fprintf(out, "self-test: %d combination(s) passed\n", len(combos))
	return nil
}

// selfTestCombos returns the indices (1-based, matching share X values)
// to check: every k-subset of {1..n} when n is at most
// selfTestAllCombinationsLimit or there are no more than selfTestSampleSize
// subsets, else a random sample of selfTestSampleSize distinct subsets. The
// second return reports whether sampling (rather than exhaustive
// enumeration) was used.
func selfTestCombos(n, k int) ([][]int, bool, error) {
	all := indices(1, n)
	if n <= selfTestAllCombinationsLimit || binomial(n, k) <= selfTestSampleSize {
		return combinations(all, k), false, nil
	}
	samples := make([][]int, 0, selfTestSampleSize)
	seen := make(map[int]bool, selfTestSampleSize)
	for len(samples) < selfTestSampleSize {
		combo, err := randomCombination(all, k)
		if err != nil {
			return nil, true, err
		}
		mask := 0
		for _, x := range combo {
			mask |= 1 << x
		}
		if seen[mask] {
			continue
		}
		seen[mask] = true
		samples = append(samples, combo)
	}
	return samples, true, nil
}

func indices(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func combinations(xs []int, k int) [][]int {
	var out [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(chosen) == k {
			cp := make([]int, k)
			copy(cp, chosen)
			out = append(out, cp)
			return
		}
		for i := start; i < len(xs); i++ {
			pick(i+1, append(chosen, xs[i]))
		}
	}
	pick(0, nil)
	return out
}

func randomCombination(xs []int, k int) ([]int, error) {
	pool := append([]int(nil), xs...)
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		j, err := randIntn(len(pool) - i)
		if err != nil {
			return nil, err
		}
		out = append(out, pool[i+j])
		pool[i+j] = pool[i]
	}
	return out, nil
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("self-test: random sampling failed: %w", err)
	}
	return int(v.Int64()), nil
}
