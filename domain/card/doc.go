// Package card models a standard 52-card deck.
//
// # Identity
//
// A Card is a single byte in 0-51. The two least significant bits encode the
// suit (Hearts, Diamonds, Spades, Clubs) and bit 1 of the suit is the color,
// so Color is a pure function of Suit. The remaining bits encode rank-2, with
// ranks running 2-14 and the Ace high.
//
// # Enumeration
//
// All and Deck enumerate the deck in canonical (identity) order. Set is a
// 52-bit membership set used to exclude cards already seen along a path.
//
// # Labels
//
// String renders the canonical label ("10C", "QD", "AS") and Parse accepts it
// back case-insensitively. Unknown labels fail with ErrInvalidCardFormat.
package card
