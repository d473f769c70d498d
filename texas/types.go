package texas

import "strconv"

type Suite int

func (s Suite) String() string {
	switch s {
	case Spade:
		return "spade"
	case Heart:
		return "heart"
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	default:
		return ""
	}
}

// Symbol returns the single character used in compact card identifiers.
func (s Suite) Symbol() string {
	switch s {
	case Spade:
		return "s"
	case Heart:
		return "h"
	case Club:
		return "c"
	case Diamond:
		return "d"
	default:
		return "?"
	}
}

const (
	Diamond Suite = 1 + iota
	Club
	Heart
	Spade
)

var suites = []Suite{Diamond, Club, Heart, Spade}

type Rank int

func (r Rank) String() string {
	if r <= 10 {
		return strconv.Itoa(int(r))
	} else {
		switch r {
		case Jack:
			return "Jack"
		case Queen:
			return "Queen"
		case King:
			return "King"
		case Ace:
			return "Ace"
		default:
			return ""
		}
	}
}

// Symbol returns the rank character used in compact card identifiers (A, 2..9, T, J, Q, K).
func (r Rank) Symbol() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	default:
		if r >= Two && r <= 9 {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

const (
	Two   Rank = 2
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

type Card struct {
	Suite
	Rank
}

// Valid reports whether the card belongs to the 52-card universe.
func (c Card) Valid() bool {
	return c.Suite >= Diamond && c.Suite <= Spade && c.Rank >= Two && c.Rank <= Ace
}

// Index maps a valid card to 0..51.
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suite-Diamond)
}

// String returns the compact identifier, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suite.Symbol()
}

// Category is the human hand type of a rank; the higher the better.
type Category int

const (
	HighCard Category = 1 + iota
	OnePair
	TwoPair
	ThreeOfKind
	Straight
	Flush
	FullHouse
	FourOfKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest.
var Categories = []Category{
	RoyalFlush,
	StraightFlush,
	FourOfKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfKind,
	TwoPair,
	OnePair,
	HighCard,
}

func (h Category) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return ""
	}
}

// Tally counts trial outcomes of a Monte Carlo run.
type Tally struct {
	Win  int `json:"win"`
	Lose int `json:"lose"`
	Tie  int `json:"tie"`
}

func (t Tally) Trials() int {
	return t.Win + t.Lose + t.Tie
}

func (t Tally) add(o Tally) Tally {
	return Tally{Win: t.Win + o.Win, Lose: t.Lose + o.Lose, Tie: t.Tie + o.Tie}
}

// Rates divides every counter by the number of trials.
func (t Tally) Rates() Equity {
	n := t.Trials()
	if n == 0 {
		return Equity{}
	}
	return Equity{
		Win:  float64(t.Win) / float64(n),
		Lose: float64(t.Lose) / float64(n),
		Tie:  float64(t.Tie) / float64(n),
	}
}

// Equity holds outcome probabilities of the hero hand.
type Equity struct {
	Win  float64 `json:"win"`
	Lose float64 `json:"lose"`
	Tie  float64 `json:"tie"`
}

func (e Equity) Sum() float64 {
	return e.Win + e.Lose + e.Tie
}

// ExactResult is the outcome of enumerating every opponent holding on a full board.
// Ties are folded into Win as half wins and Tie is always zero.
type ExactResult struct {
	Equity
	Wins         int `json:"wins"`
	Ties         int `json:"ties"`
	Losses       int `json:"losses"`
	Combinations int `json:"combinations"`
}

type CategoryProbability struct {
	Category Category `json:"category"`
	Prob     float64  `json:"prob"`
	AccProb  float64  `json:"acc_prob"` // cumulated probability of getting this or something better
	Count    int      `json:"count"`
}

// Method names the algorithm that produced an Equity.
type Method string

const (
	MethodMonteCarlo Method = "monte-carlo"
	MethodExact      Method = "exact"
)
