package sss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateProducesValidMnemonic(t *testing.T) {
	words, err := Generate()
	require.NoError(t, err)
	require.Len(t, words, 24)
}

func TestSplitRecoverRoundTrip(t *testing.T) {
	master, err := Generate()
	require.NoError(t, err)

	shares, err := Split(master, 3, 5)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	subset := map[int][]string{
		2: shares[2],
		4: shares[4],
		5: shares[5],
	}
	recovered, err := Recover(subset, 3)
	require.NoError(t, err)
	require.Equal(t, strings.Join(master, " "), strings.Join(recovered, " "))
}

// TestSplitRecoverAllSubsets covers E6: every 3-of-5 subset of produced
// shares recovers the same master mnemonic.
func TestSplitRecoverAllSubsets(t *testing.T) {
	master, err := Generate()
	require.NoError(t, err)

	shares, err := Split(master, 3, 5)
	require.NoError(t, err)

	indices := []int{1, 2, 3, 4, 5}
	for _, combo := range combinations3of(indices) {
		subset := map[int][]string{
			combo[0]: shares[combo[0]],
			combo[1]: shares[combo[1]],
			combo[2]: shares[combo[2]],
		}
		recovered, err := Recover(subset, 3)
		require.NoErrorf(t, err, "combo %v", combo)
		require.Equalf(t, strings.Join(master, " "), strings.Join(recovered, " "), "combo %v", combo)
	}
}

func combinations3of(xs []int) [][3]int {
	var out [][3]int
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			for k := j + 1; k < len(xs); k++ {
				out = append(out, [3]int{xs[i], xs[j], xs[k]})
			}
		}
	}
	return out
}

func TestSplitRejectsOutOfRangeParams(t *testing.T) {
	master, err := Generate()
	require.NoError(t, err)

	_, err = Split(master, 1, 5)
	require.Error(t, err)

	_, err = Split(master, 3, 21)
	require.Error(t, err)
}

func TestRecoverFailsOnCorruptedShareMnemonic(t *testing.T) {
	master, err := Generate()
	require.NoError(t, err)

	shares, err := Split(master, 2, 3)
	require.NoError(t, err)

	broken := append([]string(nil), shares[1]...)
	broken[0] = "hippo"

	_, err = Recover(map[int][]string{1: broken, 2: shares[2]}, 2)
	require.Error(t, err)
}

// TestRecoverWithFreshlyGeneratedShareDoesNotMatch covers E7.
func TestRecoverWithFreshlyGeneratedShareDoesNotMatch(t *testing.T) {
	master, err := Generate()
	require.NoError(t, err)

	shares, err := Split(master, 3, 5)
	require.NoError(t, err)

	imposter, err := Generate()
	require.NoError(t, err)

	subset := map[int][]string{
		1: shares[1],
		2: shares[2],
		3: imposter,
	}
	recovered, err := Recover(subset, 3)
	if err == nil {
		require.NotEqual(t, strings.Join(master, " "), strings.Join(recovered, " "))
	}
}

func TestRecoverRejectsFewerThanThreshold(t *testing.T) {
	master, err := Generate()
	require.NoError(t, err)
	shares, err := Split(master, 3, 5)
	require.NoError(t, err)

	_, err = Recover(map[int][]string{1: shares[1], 2: shares[2]}, 3)
	require.Error(t, err)
}
