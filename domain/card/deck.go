package card

import (
	"iter"
	"math/bits"
)

// All iterates over the full deck in canonical order. The sequence is
// restartable: every call to the returned function yields the same 52 cards.
func All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for i := range DeckSize {
			if !yield(Card(i)) {
				return
			}
		}
	}
}

// Deck returns a freshly allocated slice holding the 52 cards in canonical order.
func Deck() []Card {
	deck := make([]Card, 0, DeckSize)
	for c := range All() {
		deck = append(deck, c)
	}
	return deck
}

// Set is a membership set over the 52 cards of a deck.
type Set uint64

// SetOf builds a set holding the given cards.
func SetOf(cards ...Card) Set {
	var s Set
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// Add returns a copy of the set that also holds c.
func (s Set) Add(c Card) Set {
	return s | 1<<c
}

// Has reports whether c is a member of the set.
func (s Set) Has(c Card) bool {
	return s&(1<<c) != 0
}

// Len returns the number of cards in the set.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Remaining returns the cards of the deck not in s, in canonical order.
func (s Set) Remaining() []Card {
	out := make([]Card, 0, max(DeckSize-s.Len(), 0))
	for c := range All() {
		if !s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
