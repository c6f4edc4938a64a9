package ridethebus

import (
	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/decision"
)

// Payout multipliers of each stage, relative to the pot entering it.
// Over a full game the pot goes 1x -> 2x -> 3x -> 4x -> 10x.
const (
	ColorPayout     = 2.0
	LatitudePayout  = 3.0 / 2.0
	ContainedPayout = 4.0 / 3.0
	SuitPayout      = 10.0 / 4.0
)

// FirstDecision is the decision a player faces when the game starts.
func FirstDecision() decision.Decision {
	return decision.NewWithCashout(Red, Black)
}

// PickColor guesses the color of the first card.
type PickColor uint8

const (
	Red PickColor = iota
	Black
)

func (p PickColor) Score(history []card.Card) float64 {
	if history[0].Color() == p.color() {
		return ColorPayout
	}
	return 0
}

func (p PickColor) Next() decision.Decision {
	return decision.NewWithCashout(Higher, Lower)
}

func (p PickColor) String() string {
	if p == Red {
		return "Red"
	}
	return "Black"
}

func (p PickColor) color() card.Color {
	if p == Red {
		return card.Red
	}
	return card.Black
}

// PickLatitude guesses whether the second card ranks higher or lower than the
// first one. An equal rank counts as higher.
type PickLatitude uint8

const (
	Higher PickLatitude = iota
	Lower
)

func (p PickLatitude) Score(history []card.Card) float64 {
	higher := history[0].Rank() >= history[1].Rank()
	if higher == (p == Higher) {
		return LatitudePayout
	}
	return 0
}

func (p PickLatitude) Next() decision.Decision {
	return decision.NewWithCashout(Inside, Outside)
}

func (p PickLatitude) String() string {
	if p == Higher {
		return "Higher"
	}
	return "Lower"
}

// PickContained guesses whether the third card falls within the ranks of the
// first two, bounds included.
type PickContained uint8

const (
	Inside PickContained = iota
	Outside
)

func (p PickContained) Score(history []card.Card) float64 {
	last, before := history[1].Rank(), history[2].Rank()
	lo, hi := min(last, before), max(last, before)
	r := history[0].Rank()
	inside := lo <= r && r <= hi
	if inside == (p == Inside) {
		return ContainedPayout
	}
	return 0
}

func (p PickContained) Next() decision.Decision {
	return decision.NewWithCashout(Hearts, Diamonds, Spades, Clubs)
}

func (p PickContained) String() string {
	if p == Inside {
		return "Inside"
	}
	return "Outside"
}

// PickSuit guesses the suit of the fourth and last card.
type PickSuit card.Suit

const (
	Hearts   = PickSuit(card.Hearts)
	Diamonds = PickSuit(card.Diamonds)
	Spades   = PickSuit(card.Spades)
	Clubs    = PickSuit(card.Clubs)
)

func (p PickSuit) Score(history []card.Card) float64 {
	if history[0].Suit() == card.Suit(p) {
		return SuitPayout
	}
	return 0
}

func (p PickSuit) Next() decision.Decision {
	return decision.Empty()
}

func (p PickSuit) String() string {
	return card.Suit(p).String()
}
