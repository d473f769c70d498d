package texas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{in: "As", want: Card{Suite: Spade, Rank: Ace}},
		{in: "Td", want: Card{Suite: Diamond, Rank: Ten}},
		{in: "2c", want: Card{Suite: Club, Rank: 2}},
		{in: "kH", want: Card{Suite: Heart, Rank: King}},
		{in: "Q♠", want: Card{Suite: Spade, Rank: Queen}},
		{in: "9♦", want: Card{Suite: Diamond, Rank: 9}},
		{in: "Spade 14", want: Card{Suite: Spade, Rank: Ace}},
		{in: "H J", want: Card{Suite: Heart, Rank: Jack}},
		{in: "Club 10", want: Card{Suite: Club, Rank: Ten}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewCardFromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCardFromStringInvalid(t *testing.T) {
	for _, in := range []string{"", "A", "1s", "Ax", "10s", "Spade 15", "Moon 3", "Asd"} {
		t.Run(in, func(t *testing.T) {
			_, err := NewCardFromString(in)
			var inputErr *InvalidInputError
			assert.True(t, errors.As(err, &inputErr), "got %v", err)
		})
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("As, Kd, 7h,2c")
	require.NoError(t, err)
	assert.Equal(t, "As Kd 7h 2c", FormatCards(cards))

	cards, err = ParseCards("Spade 14, H K,Club 10")
	require.NoError(t, err)
	assert.Equal(t, "As Kh Tc", FormatCards(cards))

	cards, err = ParseCards("As,  Kd ,")
	require.NoError(t, err)
	assert.Equal(t, "As Kd", FormatCards(cards))

	_, err = ParseCards("As Kd, 7h")
	var inputErr *InvalidInputError
	assert.True(t, errors.As(err, &inputErr))

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCardString(t *testing.T) {
	for _, c := range GetAllCards() {
		back, err := NewCardFromString(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}
