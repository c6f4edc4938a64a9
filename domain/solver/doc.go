// Package solver computes the optimal strategy of a multi-stage card wagering
// game by exhaustive search.
//
// # Algorithm
//
// For every choice of a decision, every card not yet revealed along the
// current path is drawn in turn, each one equally likely. The choice's score
// turns the pot into a new pot:
//   - below the loss threshold the outcome is Lost and is worth 0;
//   - when nothing follows the choice the outcome is a Leaf worth the new pot;
//   - otherwise the next decision is solved recursively from the new pot and
//     the outcome is a Child worth the expected value of its optimal choice.
//
// The expected value of a choice is the arithmetic mean of its outcomes, and
// the optimal choice is the one with the largest expected value, the first
// one winning ties.
//
// # Draw model
//
// Along one path cards are drawn without replacement. Sibling branches draw
// independently from the same remaining deck: each hypothetical future is a
// fresh draw restricted to the cards unseen on that path.
//
// # Concurrency
//
// Solve is sequential by default. WithWorkers spreads the root decision's
// (choice, card) pairs over a bounded errgroup; results are written to
// pre-allocated slots so the tree is identical to a sequential solve.
package solver
