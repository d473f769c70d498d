package texas

const (
	DeckSize  = 52
	BoardSize = 5
	HoleSize  = 2
)

// GetAllCards returns the 52-card universe ordered by rank then suite.
func GetAllCards() []Card {
	acc := make([]Card, 0, DeckSize)
	for rank := Two; rank <= Ace; rank++ {
		for _, suite := range suites {
			acc = append(acc, Card{
				Rank:  rank,
				Suite: suite,
			})
		}
	}
	return acc
}

// Remaining returns the universe minus known. It fails on invalid or repeated cards.
func Remaining(known []Card) ([]Card, error) {
	used, err := markKnown(known)
	if err != nil {
		return nil, err
	}
	remaining := make([]Card, 0, DeckSize-len(known))
	for _, c := range GetAllCards() {
		if !used[c.Index()] {
			remaining = append(remaining, c)
		}
	}
	return remaining, nil
}

// validateDeal checks the shape of a hero hand and board and returns the remaining deck.
func validateDeal(hand, board []Card) ([]Card, error) {
	if len(hand) != HoleSize {
		return nil, invalid("hand", "need %d cards, got %d", HoleSize, len(hand))
	}
	if len(board) > BoardSize {
		return nil, invalid("board", "at most %d cards, got %d", BoardSize, len(board))
	}
	known := make([]Card, 0, len(hand)+len(board))
	known = append(known, hand...)
	known = append(known, board...)
	return Remaining(known)
}
