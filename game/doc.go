// Package game walks a solved decision tree while a real (or practice) game
// is played: the player picks the choice with the highest expected value,
// types the card the dealer reveals, and the Walker moves to the decision
// that follows.
package game
