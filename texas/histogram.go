package texas

import (
	"github.com/yangrq1018/holdem-equity/util"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

// HandTypes enumerates every completion of board to five cards and returns the
// distribution of the hero's final category, strongest first.
func (e Engine) HandTypes(hand, board []Card) ([]CategoryProbability, error) {
	remaining, err := validateDeal(hand, board)
	if err != nil {
		return nil, err
	}
	known := make([]Card, 0, 7)
	known = append(known, hand...)
	known = append(known, board...)
	leftToShow := BoardSize - len(board)
	if leftToShow == 0 {
		r, err := e.rank(known)
		if err != nil {
			return nil, err
		}
		return probabilities(map[Category]int{Classify(r): 1}, 1), nil
	}
	total := combin.Binomial(len(remaining), leftToShow)

	workers := e.workers(total)
	counts := make([][RoyalFlush + 1]int, workers)
	var wg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		// worker w owns the lexicographic indices [lo, hi)
		lo, hi := total*w/workers, total*(w+1)/workers
		wg.Go(func() error {
			cards := make([]Card, len(known), 7)
			copy(cards, known)
			combIndices := combin.IndexToCombination(nil, lo, len(remaining), leftToShow)
			for n := lo; n < hi; n++ {
				if n > lo {
					nextCombination(combIndices, len(remaining))
				}
				cards = cards[:len(known)]
				for _, idx := range combIndices {
					cards = append(cards, remaining[idx])
				}
				r, err := e.rank(cards)
				if err != nil {
					return err
				}
				counts[w][Classify(r)]++
			}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}

	distribution := make(map[Category]int)
	for _, c := range counts {
		for _, h := range Categories {
			distribution[h] += c[h]
		}
	}
	return probabilities(distribution, total), nil
}

// OpponentHandTypes samples opponent holdings on a complete board and returns
// the distribution of the opponent's category. trials <= 0 picks
// min(1000, 10*remaining cards).
func (e Engine) OpponentHandTypes(rng *rand.Rand, hand, board []Card, trials int) ([]CategoryProbability, error) {
	remaining, err := validateDeal(hand, board)
	if err != nil {
		return nil, err
	}
	if len(board) != BoardSize {
		return nil, ErrNotApplicable
	}
	if rng == nil {
		return nil, invalid("rng", "random source is nil")
	}
	if trials <= 0 {
		trials = util.Min(1000, 10*len(remaining))
	}

	distribution := make(map[Category]int)
	oppCards := make([]Card, 2, 7)
	oppCards = append(oppCards, board...)
	for i := 0; i < trials; i++ {
		for j := 0; j < HoleSize; j++ {
			k := j + rng.Intn(len(remaining)-j)
			remaining[j], remaining[k] = remaining[k], remaining[j]
		}
		oppCards[0], oppCards[1] = remaining[0], remaining[1]
		r, err := e.rank(oppCards)
		if err != nil {
			return nil, err
		}
		distribution[Classify(r)]++
	}
	return probabilities(distribution, trials), nil
}

// nextCombination advances comb, a sorted k-subset of 0..n-1, to its
// lexicographic successor. comb must not be the last subset.
func nextCombination(comb []int, n int) {
	k := len(comb)
	i := k - 1
	for comb[i] == n-k+i {
		i--
	}
	comb[i]++
	for j := i + 1; j < k; j++ {
		comb[j] = comb[j-1] + 1
	}
}

func probabilities(distribution map[Category]int, total int) []CategoryProbability {
	probSlice := make([]CategoryProbability, 0, len(Categories))
	accProb := 0.0
	for _, h := range Categories {
		p := float64(distribution[h]) / float64(total)
		accProb += p
		probSlice = append(probSlice, CategoryProbability{
			Category: h,
			Prob:     p,
			Count:    distribution[h],
			AccProb:  accProb,
		})
	}
	return probSlice
}

// HandTypes runs the default Engine.
func HandTypes(hand, board []Card) ([]CategoryProbability, error) {
	return defaultEngine.HandTypes(hand, board)
}
