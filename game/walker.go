package game

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/solver"
)

var (
	// ErrInvalidCard is returned when the revealed card cannot be drawn at the
	// current decision point, because it was already revealed on this walk.
	ErrInvalidCard = errors.New("invalid card")
	// ErrFinished is returned when a card is revealed at a decision point that
	// has no choice left.
	ErrFinished = errors.New("no decision left")
	// ErrUnknownChoice is returned when a played choice is not offered at the
	// current decision point.
	ErrUnknownChoice = errors.New("unknown choice")
)

// Step is the result of revealing a card.
type Step struct {
	// Choice is the choice the revealed card was interpreted as.
	Choice solver.EvaluatedChoice
	// Outcome is what the revealed card did to that choice.
	Outcome solver.Outcome
	// Finished is true when the game is over: the card lost, or nothing follows.
	Finished bool
}

type frame struct {
	tree     *solver.Tree
	revealed card.Card
}

// Walker navigates a solved tree as cards are revealed at the table.
// It only reads the tree, which stays shared between walkers.
type Walker struct {
	root *solver.Tree
	path []frame
}

func NewWalker(root *solver.Tree) *Walker {
	return &Walker{root: root}
}

// Current returns the decision point the player is facing.
func (w *Walker) Current() *solver.Tree {
	if len(w.path) == 0 {
		return w.root
	}
	return w.path[len(w.path)-1].tree
}

// Depth returns the number of cards accepted since the root.
func (w *Walker) Depth() int {
	return len(w.path)
}

// Revealed returns the cards accepted since the root, oldest first.
func (w *Walker) Revealed() []card.Card {
	cards := make([]card.Card, len(w.path))
	for i, f := range w.path {
		cards[i] = f.revealed
	}
	return cards
}

// Reveal interprets c as the result of the choice it resolves best and
// advances into the following decision point, if any.
//
// Choices are disjoint except for the cash-out, which never beats a winning
// guess, so the choice realizing the largest value on c is the one played.
func (w *Walker) Reveal(c card.Card) (Step, error) {
	cur := w.Current()
	if cur.Len() == 0 {
		return Step{}, ErrFinished
	}

	var (
		best  solver.EvaluatedChoice
		bestO solver.Outcome
		found bool
	)
	for _, ec := range cur.Choices() {
		o, ok := ec.Outcome(c)
		if !ok {
			continue
		}
		if !found || cmp.Compare(o.Value(), bestO.Value()) > 0 {
			best, bestO, found = ec, o, true
		}
	}
	if !found {
		return Step{}, fmt.Errorf("%w: %s was already revealed", ErrInvalidCard, c)
	}
	return w.advance(best, bestO, c), nil
}

// Play resolves c against the choice the player committed to before the card
// was revealed. name is a choice name or "optimal". Unlike Reveal, the card
// can lose the pot.
func (w *Walker) Play(name string, c card.Card) (Step, error) {
	cur := w.Current()
	if cur.Len() == 0 {
		return Step{}, ErrFinished
	}
	ec, ok := ListTarget(cur, name)
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownChoice, name)
	}
	o, ok := ec.Outcome(c)
	if !ok {
		return Step{}, fmt.Errorf("%w: %s was already revealed", ErrInvalidCard, c)
	}
	return w.advance(*ec, o, c), nil
}

func (w *Walker) advance(ec solver.EvaluatedChoice, o solver.Outcome, c card.Card) Step {
	step := Step{Choice: ec, Outcome: o}
	if o.Kind == solver.Child {
		w.path = append(w.path, frame{tree: o.Child(), revealed: c})
	} else {
		step.Finished = true
	}
	return step
}

// Back undoes the last accepted card. It reports false at the root.
func (w *Walker) Back() bool {
	if len(w.path) == 0 {
		return false
	}
	w.path = w.path[:len(w.path)-1]
	return true
}

// Reset goes back to the root for a new game.
func (w *Walker) Reset() {
	w.path = nil
}

// ListTarget resolves the argument of the list command: "optimal" or the
// name of a choice of tree.
func ListTarget(tree *solver.Tree, name string) (*solver.EvaluatedChoice, bool) {
	if name == "optimal" {
		return tree.Optimal()
	}
	return tree.Find(name)
}
