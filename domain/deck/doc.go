// Package deck deals cards for practice games.
//
// A Shoe holds the 52 cards in an order drawn from kyber's random streams:
// the Ed25519 suite's cryptographic stream by default, or a blake2xb XOF
// keyed with a seed when a reproducible sequence of games is wanted.
package deck
