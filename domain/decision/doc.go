// Package decision defines the contract between game rules and the solver.
//
// A Choice scores a reversed card history (most recent card first) and names
// the Decision that follows it. A Decision is an ordered list of choices; an
// empty Decision is a terminal state. Cashout is the built-in choice that
// keeps the pot and ends the game.
package decision
