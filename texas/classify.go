package texas

// InsufficientBoard is the label of a hand classified before the flop.
const InsufficientBoard = "insufficient board"

// Inclusive upper rank bound of each category on the Standard scale.
const (
	royalFlushBound    HandRank = 1
	straightFlushBound HandRank = 10
	fourOfKindBound    HandRank = 166
	fullHouseBound     HandRank = 322
	flushBound         HandRank = 1599
	straightBound      HandRank = 1609
	threeOfKindBound   HandRank = 2467
	twoPairBound       HandRank = 3325
	onePairBound       HandRank = 6185
)

// Classify maps a rank to its category.
func Classify(r HandRank) Category {
	switch {
	case r <= royalFlushBound:
		return RoyalFlush
	case r <= straightFlushBound:
		return StraightFlush
	case r <= fourOfKindBound:
		return FourOfKind
	case r <= fullHouseBound:
		return FullHouse
	case r <= flushBound:
		return Flush
	case r <= straightBound:
		return Straight
	case r <= threeOfKindBound:
		return ThreeOfKind
	case r <= twoPairBound:
		return TwoPair
	case r <= onePairBound:
		return OnePair
	default:
		return HighCard
	}
}

// ClassifyHand labels the best hand made of hand and board, or returns
// InsufficientBoard while fewer than three board cards are known.
func (e Engine) ClassifyHand(hand, board []Card) (string, error) {
	if _, err := validateDeal(hand, board); err != nil {
		return "", err
	}
	if len(board) < 3 {
		return InsufficientBoard, nil
	}
	cards := make([]Card, 0, len(hand)+len(board))
	cards = append(cards, hand...)
	cards = append(cards, board...)
	r, err := e.rank(cards)
	if err != nil {
		return "", err
	}
	return Classify(r).String(), nil
}

// ClassifyHand runs the default Engine.
func ClassifyHand(hand, board []Card) (string, error) {
	return defaultEngine.ClassifyHand(hand, board)
}
