package card

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit constants (0-3). Bit 1 of the suit is the color bit.
const (
	Hearts   Suit = 0 // ♥ (red)
	Diamonds Suit = 1 // ♦ (red)
	Spades   Suit = 2 // ♠ (black)
	Clubs    Suit = 3 // ♣ (black)
)

// Color constants derived from the suit.
const (
	Red   Color = 0
	Black Color = 1
)

// Rank constants for face cards and ace. Ace is high.
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A
)

// DeckSize is the number of distinct cards in a standard deck.
const DeckSize = 52

type Suit uint8

type Color uint8

// Card is a standard playing card identified by a value in 0-51.
// The two least significant bits hold the suit, the remaining bits hold rank-2.
type Card uint8

var (
	rankLabels = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	suitLabels = [...]string{"H", "D", "S", "C"}
	suitGlyphs = [...]string{"♥", "♦", "♠", "♣"}
	suitNames  = [...]string{"Hearts", "Diamonds", "Spades", "Clubs"}
	colorNames = [...]string{"Red", "Black"}
)

// New creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//   - suit: 0-3 (Hearts, Diamonds, Spades, Clubs)
//
// Returns the Card or an error if suit or rank is invalid.
func New(rank uint8, suit Suit) (Card, error) {
	if suit > Clubs || rank < 2 || rank > Ace {
		return 0, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card((rank-2)<<2 | uint8(suit)), nil
}

// FromIndex returns the card with the given identity (0-51).
func FromIndex(i int) (Card, error) {
	if i < 0 || i >= DeckSize {
		return 0, fmt.Errorf("card index %d out of range", i)
	}
	return Card(i), nil
}

// Index returns the identity of the card, 0-51.
func (c Card) Index() int {
	return int(c)
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return Suit(c & 0b11)
}

// Color returns Red or Black.
func (c Card) Color() Color {
	return Color((c & 0b10) >> 1)
}

// Rank returns 2-14, with 11-14 being Jack, Queen, King and Ace.
func (c Card) Rank() uint8 {
	return uint8(c>>2) + 2
}

// String returns the canonical label of the card, rank token followed by the
// suit letter (for example "10C" or "QD"). Parse accepts this label back.
func (c Card) String() string {
	if c >= DeckSize {
		return "?"
	}
	return rankLabels[c.Rank()-2] + suitLabels[c.Suit()]
}

// Symbol returns a colored label using the suit glyphs, for terminal output.
func (c Card) Symbol() string {
	if c >= DeckSize {
		return "?"
	}
	glyph := suitGlyphs[c.Suit()]
	if c.Color() == Red {
		glyph = pterm.LightRed(glyph)
	} else {
		glyph = pterm.Gray(glyph)
	}
	return rankLabels[c.Rank()-2] + glyph
}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return "?"
	}
	return suitNames[s]
}

// Color returns the color every card of this suit has.
func (s Suit) Color() Color {
	return Color((s & 0b10) >> 1)
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "?"
	}
	return colorNames[c]
}
