package texas

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseCards parses a list of card identifiers. A list containing a comma is
// split on commas only, so long forms like "Spade 14, Heart K" work; otherwise
// it is split on whitespace ("As Kd").
func ParseCards(s string) ([]Card, error) {
	var fields []string
	if strings.Contains(s, ",") {
		for _, f := range strings.Split(s, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	} else {
		fields = strings.Fields(s)
	}
	return CardsFromStrings(fields)
}

func CardsFromStrings(s []string) ([]Card, error) {
	cs := make([]Card, 0, len(s))
	for _, s := range s {
		c, err := NewCardFromString(s)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// NewCardFromString parses a compact identifier ("As", "Td", "A♠") or the long
// form "<Suite> <Rank>" ("Spade 14", "S A").
func NewCardFromString(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " ") {
		return parseLongCard(s)
	}
	if utf8.RuneCountInString(s) != 2 {
		return Card{}, invalid("card", "cannot parse %q", s)
	}
	rankRune, size := utf8.DecodeRuneInString(s)
	suiteRune, _ := utf8.DecodeRuneInString(s[size:])
	rank, ok := rankFromRune(rankRune)
	if !ok {
		return Card{}, invalid("card", "invalid rank in %q", s)
	}
	suite, ok := suiteFromRune(suiteRune)
	if !ok {
		return Card{}, invalid("card", "invalid suite in %q", s)
	}
	return Card{Suite: suite, Rank: rank}, nil
}

// MustParseCards panics on malformed input; meant for tests and constants.
func MustParseCards(s string) []Card {
	cs, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cs
}

func rankFromRune(r rune) (Rank, bool) {
	switch r {
	case 'A', 'a':
		return Ace, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'J', 'j':
		return Jack, true
	case 'T', 't':
		return Ten, true
	}
	if r >= '2' && r <= '9' {
		return Rank(r - '0'), true
	}
	return 0, false
}

func suiteFromRune(r rune) (Suite, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spade, true
	case 'h', 'H', '♥':
		return Heart, true
	case 'd', 'D', '♦':
		return Diamond, true
	case 'c', 'C', '♣':
		return Club, true
	}
	return 0, false
}

func parseLongCard(s string) (Card, error) {
	var (
		suiteName string
		rankStr   string
		c         Card
		rank      Rank
	)
	_, err := fmt.Sscanf(s, "%s %s", &suiteName, &rankStr)
	if err != nil {
		return c, invalid("card", "cannot scan %q", s)
	}
	// short name is supported
	switch suiteName {
	case "Diamond", "D":
		c.Suite = Diamond
	case "Club", "C":
		c.Suite = Club
	case "Heart", "H":
		c.Suite = Heart
	case "Spade", "S":
		c.Suite = Spade
	default:
		return c, invalid("card", "invalid suite %q", suiteName)
	}

	switch rankStr {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		rankI, err := strconv.Atoi(rankStr)
		if err != nil {
			return c, invalid("card", "invalid rank %q", rankStr)
		}
		rank = Rank(rankI)
	}
	c.Rank = rank
	if c.Rank < Two || c.Rank > Ace {
		return c, invalid("card", "rank %d out of range", c.Rank)
	}
	return c, nil
}

// FormatCards joins compact identifiers with a space.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i := range cards {
		parts[i] = cards[i].String()
	}
	return strings.Join(parts, " ")
}
