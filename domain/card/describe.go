package card

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// ToPoker converts the card to the representation used by the hand evaluator.
// Ace is rank 1 there.
func (c Card) ToPoker() (poker.Card, error) {
	var s poker.Suit
	switch c.Suit() {
	case Hearts:
		s = poker.Heart
	case Diamonds:
		s = poker.Diamond
	case Spades:
		s = poker.Spade
	case Clubs:
		s = poker.Club
	}
	r := poker.Rank(c.Rank())
	if c.Rank() == Ace {
		r = poker.Rank(1)
	}
	pc, err := poker.MakeCard(s, r)
	if err != nil {
		return pc, fmt.Errorf("invalid card %s: %w", c, err)
	}
	return pc, nil
}

// Describe names the poker hand formed by the given cards, for example
// "pair of sevens". Only 3, 5 and 7 card hands can be described.
func Describe(cards []Card) (string, error) {
	switch len(cards) {
	case 3, 5, 7:
	default:
		return "", fmt.Errorf("cannot describe a hand of %d cards", len(cards))
	}
	hand := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := c.ToPoker()
		if err != nil {
			return "", err
		}
		hand[i] = pc
	}
	return poker.Describe(hand)
}
