package texas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func countSum(probs []CategoryProbability) int {
	n := 0
	for _, p := range probs {
		n += p.Count
	}
	return n
}

func TestHandTypesFlop(t *testing.T) {
	for _, workers := range []int{1, 3} {
		probs, err := Engine{Workers: workers}.HandTypes(MustParseCards("As Ah"), MustParseCards("Ad 7c 2h"))
		require.NoError(t, err)
		require.Len(t, probs, len(Categories))
		assert.Equal(t, 1081, countSum(probs))
		assert.Equal(t, RoyalFlush, probs[0].Category)
		assert.Equal(t, HighCard, probs[len(probs)-1].Category)
		assert.InDelta(t, 1.0, probs[len(probs)-1].AccProb, 1e-9)
		for i, p := range probs {
			if p.Category <= TwoPair {
				// a set on the flop never gets worse
				assert.Zero(t, p.Count, p.Category.String())
			}
			if i > 0 {
				assert.GreaterOrEqual(t, p.AccProb, probs[i-1].AccProb)
			}
		}
	}
}

func TestHandTypesSameAcrossWorkers(t *testing.T) {
	hand, board := MustParseCards("9h 8h"), MustParseCards("7h 2c")
	a, err := Engine{Workers: 1}.HandTypes(hand, board)
	require.NoError(t, err)
	b, err := Engine{Workers: 4}.HandTypes(hand, board)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 17296, countSum(a))
}

func TestNextCombination(t *testing.T) {
	want := combin.Combinations(6, 3)
	comb := combin.IndexToCombination(nil, 0, 6, 3)
	got := [][]int{append([]int(nil), comb...)}
	for len(got) < len(want) {
		nextCombination(comb, 6)
		got = append(got, append([]int(nil), comb...))
	}
	assert.Equal(t, want, got)
}

func TestHandTypesUnevenSplit(t *testing.T) {
	// 1081 board completions do not divide evenly by 7 workers
	hand, board := MustParseCards("Kc Qd"), MustParseCards("Jh Ts 3c")
	a, err := Engine{Workers: 1}.HandTypes(hand, board)
	require.NoError(t, err)
	b, err := Engine{Workers: 7}.HandTypes(hand, board)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1081, countSum(b))
}

func TestHandTypesRiver(t *testing.T) {
	probs, err := HandTypes(MustParseCards("As Ks"), MustParseCards("Qs Js Ts 2h 3d"))
	require.NoError(t, err)
	assert.Equal(t, 1, countSum(probs))
	assert.Equal(t, 1.0, probs[0].Prob)
	assert.Equal(t, RoyalFlush, probs[0].Category)
}

func TestHandTypesPreflop(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates every board")
	}
	probs, err := Engine{Workers: 8}.HandTypes(MustParseCards("7c 2d"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2118760, countSum(probs))
	assert.InDelta(t, 1.0, probs[len(probs)-1].AccProb, 1e-9)
}

func TestOpponentHandTypes(t *testing.T) {
	hand, board := MustParseCards("As Ks"), MustParseCards("Qs Js Ts 2h 3d")
	probs, err := Engine{}.OpponentHandTypes(newRand(9), hand, board, 0)
	require.NoError(t, err)
	// 45 unseen cards cap the default at 450 samples
	assert.Equal(t, 450, countSum(probs))
	assert.Zero(t, probs[0].Count)
	assert.InDelta(t, 1.0, probs[len(probs)-1].AccProb, 1e-9)

	probs, err = Engine{}.OpponentHandTypes(newRand(9), hand, board, 200)
	require.NoError(t, err)
	assert.Equal(t, 200, countSum(probs))

	_, err = Engine{}.OpponentHandTypes(newRand(9), hand, MustParseCards("Qs Js Ts"), 0)
	assert.True(t, errors.Is(err, ErrNotApplicable))
}
