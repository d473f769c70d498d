package texas

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// toPoker converts a card to the paulhankin/poker representation, where the
// ace is rank 1.
func toPoker(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suite {
	case Club:
		s = poker.Club
	case Diamond:
		s = poker.Diamond
	case Heart:
		s = poker.Heart
	case Spade:
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, invalid("card", "%v is not a card of the deck", c)
	}
	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

func toPokerCards(cards []Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := toPoker(c)
		if err != nil {
			return nil, err
		}
		out[i] = pc
	}
	return out, nil
}

// Describe names the best five card hand in words, e.g. "ace-high flush".
func Describe(cards []Card) (string, error) {
	best, _, err := BestFive(cards)
	if err != nil {
		return "", err
	}
	pcs, err := toPokerCards(best)
	if err != nil {
		return "", err
	}
	d, err := poker.Describe(pcs)
	if err != nil {
		return "", fmt.Errorf("describe %s: %w", FormatCards(best), err)
	}
	return d, nil
}
