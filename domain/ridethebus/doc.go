// Package ridethebus defines the rules of Ride The Bus as decision.Choice
// implementations.
//
// The game has four stages, each one offering a cash-out next to its guesses:
// the color of the first card, whether the second ranks higher or lower than
// the first, whether the third falls inside or outside the first two, and the
// suit of the fourth.
package ridethebus
