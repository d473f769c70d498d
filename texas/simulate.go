package texas

import (
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Engine computes equities with a ranking oracle. The zero value uses Standard
// and runs on the calling goroutine.
type Engine struct {
	Ranker Ranker
	// Workers > 1 splits Monte Carlo trials and enumerations across goroutines.
	Workers int
}

var defaultEngine Engine

type outcome int

const (
	outcomeWin outcome = iota
	outcomeTie
	outcomeLose
)

func (e Engine) rank(cards []Card) (HandRank, error) {
	if e.Ranker == nil {
		return evaluate(cards), nil
	}
	return e.Ranker.Rank(cards)
}

func (e Engine) workers(jobs int) int {
	w := e.Workers
	if w < 1 {
		w = 1
	}
	if w > jobs {
		w = jobs
	}
	return w
}

// Simulate plays trials random completions of hand and board against opponents
// random holdings and tallies the hero outcomes.
//
// A trial is lost as soon as one opponent ranks strictly better than the hero,
// it is a tie when nobody beats the hero but someone equals it, and a win otherwise.
func (e Engine) Simulate(rng *rand.Rand, hand, board []Card, opponents, trials int) (Tally, error) {
	remaining, err := validateDeal(hand, board)
	if err != nil {
		return Tally{}, err
	}
	if opponents < 1 {
		return Tally{}, invalid("opponents", "need at least 1, got %d", opponents)
	}
	if trials < 1 {
		return Tally{}, invalid("trials", "need at least 1, got %d", trials)
	}
	if need := HoleSize*opponents + BoardSize - len(board); need > len(remaining) {
		return Tally{}, &InsufficientDeckError{Need: need, Have: len(remaining)}
	}
	if rng == nil {
		return Tally{}, invalid("rng", "random source is nil")
	}

	workers := e.workers(trials)
	if workers == 1 {
		return e.simulateWorker(rng, remaining, hand, board, opponents, trials)
	}

	// seeds are drawn up front so the split is reproducible from rng alone
	seeds := make([]uint64, workers)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	tallies := make([]Tally, workers)
	var wg errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		n := trials / workers
		if i < trials%workers {
			n++
		}
		wg.Go(func() error {
			deck := make([]Card, len(remaining))
			copy(deck, remaining)
			t, err := e.simulateWorker(rand.New(rand.NewSource(seeds[i])), deck, hand, board, opponents, n)
			tallies[i] = t
			return err
		})
	}
	if err := wg.Wait(); err != nil {
		return Tally{}, err
	}
	var total Tally
	for _, t := range tallies {
		total = total.add(t)
	}
	return total, nil
}

// simulateWorker owns deck and reorders it freely.
func (e Engine) simulateWorker(rng *rand.Rand, deck, hand, board []Card, opponents, trials int) (Tally, error) {
	missing := BoardSize - len(board)
	draw := HoleSize*opponents + missing

	heroCards := make([]Card, 0, 7)
	heroCards = append(heroCards, hand...)
	heroCards = append(heroCards, board...)
	oppCards := make([]Card, 7)

	var t Tally
	for i := 0; i < trials; i++ {
		// partial Fisher-Yates: the first draw cards are a uniform sample without replacement
		for j := 0; j < draw; j++ {
			k := j + rng.Intn(len(deck)-j)
			deck[j], deck[k] = deck[k], deck[j]
		}
		community := deck[HoleSize*opponents : draw]
		heroCards = append(heroCards[:HoleSize+len(board)], community...)
		heroRank, err := e.rank(heroCards)
		if err != nil {
			return t, err
		}

		result := outcomeWin
		for o := 0; o < opponents; o++ {
			oppCards = append(oppCards[:0], deck[HoleSize*o], deck[HoleSize*o+1])
			oppCards = append(oppCards, board...)
			oppCards = append(oppCards, community...)
			oppRank, err := e.rank(oppCards)
			if err != nil {
				return t, err
			}
			if oppRank < heroRank {
				result = outcomeLose
				break
			}
			if oppRank == heroRank {
				result = outcomeTie
			}
		}

		switch result {
		case outcomeWin:
			t.Win++
		case outcomeLose:
			t.Lose++
		default:
			t.Tie++
		}
	}
	return t, nil
}

// Simulate runs the default Engine.
func Simulate(rng *rand.Rand, hand, board []Card, opponents, trials int) (Tally, error) {
	return defaultEngine.Simulate(rng, hand, board, opponents, trials)
}
