package texas

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/combin"
)

// Exact enumerates every two card holding of a single opponent on a complete
// board. Ties count as half a win and are folded into Win, so Tie is always 0
// and Win+Lose is 1. Any other board size or opponent count returns
// ErrNotApplicable and the caller should fall back to Simulate.
func (e Engine) Exact(hand, board []Card, opponents int) (ExactResult, error) {
	remaining, err := validateDeal(hand, board)
	if err != nil {
		return ExactResult{}, err
	}
	if opponents < 1 {
		return ExactResult{}, invalid("opponents", "need at least 1, got %d", opponents)
	}
	if len(board) != BoardSize || opponents != 1 {
		return ExactResult{}, ErrNotApplicable
	}

	heroCards := make([]Card, 0, 7)
	heroCards = append(heroCards, hand...)
	heroCards = append(heroCards, board...)
	heroRank, err := e.rank(heroCards)
	if err != nil {
		return ExactResult{}, err
	}

	var res ExactResult
	oppCards := make([]Card, 2, 7)
	oppCards = append(oppCards, board...)
	gen := combin.NewCombinationGenerator(len(remaining), HoleSize)
	idx := make([]int, HoleSize)
	for gen.Next() {
		gen.Combination(idx)
		oppCards[0], oppCards[1] = remaining[idx[0]], remaining[idx[1]]
		oppRank, err := e.rank(oppCards)
		if err != nil {
			return ExactResult{}, err
		}
		switch {
		case heroRank < oppRank:
			res.Wins++
		case heroRank == oppRank:
			res.Ties++
		default:
			res.Losses++
		}
		res.Combinations++
	}

	res.Win = (float64(res.Wins) + 0.5*float64(res.Ties)) / float64(res.Combinations)
	res.Lose = 1 - res.Win
	res.Tie = 0
	return res, nil
}

// Equity picks the exact enumerator when it applies and Monte Carlo otherwise.
func (e Engine) Equity(rng *rand.Rand, hand, board []Card, opponents, trials int) (Equity, Method, error) {
	res, err := e.Exact(hand, board, opponents)
	if err == nil {
		return res.Equity, MethodExact, nil
	}
	if !errors.Is(err, ErrNotApplicable) {
		return Equity{}, "", err
	}
	t, err := e.Simulate(rng, hand, board, opponents, trials)
	if err != nil {
		return Equity{}, "", err
	}
	return t.Rates(), MethodMonteCarlo, nil
}

// Exact runs the default Engine.
func Exact(hand, board []Card, opponents int) (ExactResult, error) {
	return defaultEngine.Exact(hand, board, opponents)
}

// Estimate runs Equity on the default Engine.
func Estimate(rng *rand.Rand, hand, board []Card, opponents, trials int) (Equity, Method, error) {
	return defaultEngine.Equity(rng, hand, board, opponents, trials)
}
