package texas

import (
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

// HandRank is the strength of a 5 to 7 card hand on the standard 7462-class
// scale: 1 is a royal flush, 7462 is seven-five high. Lower is stronger and
// equal ranks tie.
type HandRank int

const (
	BestRank  HandRank = 1
	WorstRank HandRank = 7462
)

// Ranker is the hand ranking oracle. Implementations must be pure and safe for
// concurrent use, and must keep the category bounds used by Classify.
type Ranker interface {
	Rank(cards []Card) (HandRank, error)
}

type RankerFunc func(cards []Card) (HandRank, error)

func (f RankerFunc) Rank(cards []Card) (HandRank, error) {
	return f(cards)
}

// Standard is the table driven evaluator of this package.
var Standard Ranker = standardRanker{}

type standardRanker struct{}

func (standardRanker) Rank(cards []Card) (HandRank, error) {
	return Evaluate(cards...)
}

// 13^5 keys for five sorted ranks, doubled for the flush variant.
const keySpace = 13 * 13 * 13 * 13 * 13

var (
	rankTable [2 * keySpace]int16
	subsets6  [][]int
	subsets7  [][]int
)

func init() {
	if n := buildRankTable(); n != int(WorstRank) {
		panic(fmt.Sprintf("texas: rank table holds %d classes", n))
	}
	subsets6 = combin.Combinations(6, 5)
	subsets7 = combin.Combinations(7, 5)
}

// Evaluate ranks 5, 6 or 7 distinct cards.
func Evaluate(cards ...Card) (HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, invalid("cards", "need 5 to 7 cards, got %d", len(cards))
	}
	if _, err := markKnown(cards); err != nil {
		return 0, err
	}
	return evaluate(cards), nil
}

// BestFive returns the five cards achieving the rank of cards.
func BestFive(cards []Card) ([]Card, HandRank, error) {
	rank, err := Evaluate(cards...)
	if err != nil {
		return nil, 0, err
	}
	if len(cards) == 5 {
		return append([]Card(nil), cards...), rank, nil
	}
	subsets := subsets7
	if len(cards) == 6 {
		subsets = subsets6
	}
	for _, s := range subsets {
		if rank5(cards[s[0]], cards[s[1]], cards[s[2]], cards[s[3]], cards[s[4]]) == rank {
			return []Card{cards[s[0]], cards[s[1]], cards[s[2]], cards[s[3]], cards[s[4]]}, rank, nil
		}
	}
	// unreachable: rank is the minimum over the same subsets
	return nil, 0, fmt.Errorf("texas: no subset matches rank %d", rank)
}

// evaluate skips validation, callers guarantee 5..7 distinct cards.
func evaluate(cards []Card) HandRank {
	switch len(cards) {
	case 5:
		return rank5(cards[0], cards[1], cards[2], cards[3], cards[4])
	case 6:
		return bestOf(cards, subsets6)
	default:
		return bestOf(cards, subsets7)
	}
}

func bestOf(cards []Card, subsets [][]int) HandRank {
	best := WorstRank + 1
	for _, s := range subsets {
		if r := rank5(cards[s[0]], cards[s[1]], cards[s[2]], cards[s[3]], cards[s[4]]); r < best {
			best = r
		}
	}
	return best
}

func rank5(a, b, c, d, e Card) HandRank {
	flush := a.Suite == b.Suite && a.Suite == c.Suite && a.Suite == d.Suite && a.Suite == e.Suite
	return HandRank(rankTable[handKey(flush, [5]int{
		int(a.Rank - Two),
		int(b.Rank - Two),
		int(c.Rank - Two),
		int(d.Rank - Two),
		int(e.Rank - Two),
	})])
}

// handKey sorts r descending and packs it base 13.
func handKey(flush bool, r [5]int) int {
	for i := 1; i < 5; i++ {
		for j := i; j > 0 && r[j] > r[j-1]; j-- {
			r[j], r[j-1] = r[j-1], r[j]
		}
	}
	k := (((r[0]*13+r[1])*13+r[2])*13+r[3])*13 + r[4]
	if flush {
		k += keySpace
	}
	return k
}

func rankMask(r []int) int {
	var m int
	for _, v := range r {
		m |= 1 << v
	}
	return m
}

// buildRankTable walks every equivalence class from strongest to weakest and
// returns how many it assigned.
func buildRankTable() int {
	next := 1
	put := func(flush bool, r ...int) {
		rankTable[handKey(flush, [5]int{r[0], r[1], r[2], r[3], r[4]})] = int16(next)
		next++
	}

	isStraight := make(map[int]bool)
	var straights [][]int
	for high := 12; high >= 3; high-- {
		r := []int{high, high - 1, high - 2, high - 3, high - 4}
		if high == 3 {
			r[4] = 12 // the wheel, ace plays low
		}
		straights = append(straights, r)
		isStraight[rankMask(r)] = true
	}
	var unpaired [][]int
	for m := 1<<13 - 1; m > 0; m-- {
		if bits.OnesCount(uint(m)) != 5 || isStraight[m] {
			continue
		}
		r := make([]int, 0, 5)
		for v := 12; v >= 0; v-- {
			if m&(1<<v) != 0 {
				r = append(r, v)
			}
		}
		unpaired = append(unpaired, r)
	}

	for _, r := range straights {
		put(true, r...)
	}
	for q := 12; q >= 0; q-- {
		for k := 12; k >= 0; k-- {
			if k != q {
				put(false, q, q, q, q, k)
			}
		}
	}
	for t := 12; t >= 0; t-- {
		for p := 12; p >= 0; p-- {
			if p != t {
				put(false, t, t, t, p, p)
			}
		}
	}
	for _, r := range unpaired {
		put(true, r...)
	}
	for _, r := range straights {
		put(false, r...)
	}
	for t := 12; t >= 0; t-- {
		for k1 := 12; k1 >= 0; k1-- {
			for k2 := k1 - 1; k2 >= 0; k2-- {
				if k1 != t && k2 != t {
					put(false, t, t, t, k1, k2)
				}
			}
		}
	}
	for p1 := 12; p1 >= 0; p1-- {
		for p2 := p1 - 1; p2 >= 0; p2-- {
			for k := 12; k >= 0; k-- {
				if k != p1 && k != p2 {
					put(false, p1, p1, p2, p2, k)
				}
			}
		}
	}
	for p := 12; p >= 0; p-- {
		for k1 := 12; k1 >= 0; k1-- {
			for k2 := k1 - 1; k2 >= 0; k2-- {
				for k3 := k2 - 1; k3 >= 0; k3-- {
					if k1 != p && k2 != p && k3 != p {
						put(false, p, p, k1, k2, k3)
					}
				}
			}
		}
	}
	for _, r := range unpaired {
		put(false, r...)
	}
	return next - 1
}

func markKnown(known []Card) ([DeckSize]bool, error) {
	var used [DeckSize]bool
	for _, c := range known {
		if !c.Valid() {
			return used, invalid("card", "%v is not a card of the deck", c)
		}
		if used[c.Index()] {
			return used, &DuplicateCardError{Card: c}
		}
		used[c.Index()] = true
	}
	return used, nil
}
