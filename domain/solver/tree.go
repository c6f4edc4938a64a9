package solver

import (
	"cmp"
	"iter"
	"slices"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/decision"
)

// Kind tells how a revealed card resolved a choice.
type Kind uint8

const (
	// Lost means the pot fell below the loss threshold. Its value is 0.
	Lost Kind = iota
	// Leaf means the choice succeeded and nothing follows. Its value is the new pot.
	Leaf
	// Child means a further decision follows. Its value is the expected value
	// of that decision's optimal choice.
	Child
)

func (k Kind) String() string {
	switch k {
	case Lost:
		return "lost"
	case Leaf:
		return "leaf"
	case Child:
		return "child"
	default:
		return "unknown"
	}
}

// Tree is a solved decision point. It is built once by Solve and never
// modified afterwards; every node exclusively owns its sub-trees.
type Tree struct {
	candidates []card.Card
	choices    []EvaluatedChoice
	outcomes   int
	nodes      int
}

// Choices returns the evaluated choices in the order of the decision.
func (t *Tree) Choices() []EvaluatedChoice {
	return slices.Clone(t.choices)
}

// Len returns the number of choices at this decision point.
func (t *Tree) Len() int {
	return len(t.choices)
}

// Optimal returns the choice with the maximum expected value. Ties go to the
// first maximal choice. It reports false when the decision had no choices.
func (t *Tree) Optimal() (*EvaluatedChoice, bool) {
	if len(t.choices) == 0 {
		return nil, false
	}
	best := 0
	for i := 1; i < len(t.choices); i++ {
		if cmp.Compare(t.choices[i].expectedValue, t.choices[best].expectedValue) > 0 {
			best = i
		}
	}
	ec := t.choices[best]
	return &ec, true
}

// Find returns the first choice whose name is name.
func (t *Tree) Find(name string) (*EvaluatedChoice, bool) {
	for i := range t.choices {
		if t.choices[i].choice.String() == name {
			ec := t.choices[i]
			return &ec, true
		}
	}
	return nil, false
}

// OutcomeCount returns the number of terminal card resolutions reachable from
// this node: 1 per Lost or Leaf outcome, the child's own count per Child outcome.
func (t *Tree) OutcomeCount() int {
	return t.outcomes
}

// NodeCount returns the number of decision points in the tree, this one included.
func (t *Tree) NodeCount() int {
	return t.nodes
}

// Candidates returns the cards that could be revealed at this decision point.
func (t *Tree) Candidates() []card.Card {
	return slices.Clone(t.candidates)
}

// optimalValue is the realized value of reaching this node with the given pot.
func (t *Tree) optimalValue(pot float64) float64 {
	best, ok := t.Optimal()
	if !ok {
		return pot
	}
	return best.expectedValue
}

// EvaluatedChoice is a Choice together with its expected value and the
// outcome of every card that could be revealed after picking it.
type EvaluatedChoice struct {
	choice        decision.Choice
	expectedValue float64

	// cards is shared with the owning Tree and sorted in canonical order.
	cards    []card.Card
	kinds    []Kind
	values   []float64
	children []*Tree // nil when the choice is terminal
}

func (ec EvaluatedChoice) Choice() decision.Choice {
	return ec.choice
}

// ExpectedValue is the mean realized value over every candidate card.
func (ec EvaluatedChoice) ExpectedValue() float64 {
	return ec.expectedValue
}

func (ec EvaluatedChoice) String() string {
	return ec.choice.String()
}

// Len returns the number of candidate cards evaluated.
func (ec EvaluatedChoice) Len() int {
	return len(ec.cards)
}

// Outcome returns the outcome of revealing c after this choice. It reports
// false when c could not be revealed here, because it was already seen.
func (ec EvaluatedChoice) Outcome(c card.Card) (Outcome, bool) {
	i, ok := slices.BinarySearch(ec.cards, c)
	if !ok {
		return Outcome{}, false
	}
	return ec.outcome(i), true
}

// Outcomes iterates over every candidate card and its outcome, in canonical order.
func (ec EvaluatedChoice) Outcomes() iter.Seq2[card.Card, Outcome] {
	return func(yield func(card.Card, Outcome) bool) {
		for i, c := range ec.cards {
			if !yield(c, ec.outcome(i)) {
				return
			}
		}
	}
}

// OutcomeCount is the number of terminal card resolutions below this choice.
func (ec EvaluatedChoice) OutcomeCount() int {
	n := 0
	for i, k := range ec.kinds {
		if k == Child {
			n += ec.children[i].outcomes
		} else {
			n++
		}
	}
	return n
}

func (ec EvaluatedChoice) outcome(i int) Outcome {
	o := Outcome{Card: ec.cards[i], Kind: ec.kinds[i], value: ec.values[i]}
	if o.Kind == Child {
		o.child = ec.children[i]
	}
	return o
}

// Outcome is the resolution of one revealed card.
type Outcome struct {
	Card  card.Card
	Kind  Kind
	value float64
	child *Tree
}

// Value is the realized value of the outcome: 0 when lost, the new pot for a
// leaf, the optimal expected value of the sub-tree for a child.
func (o Outcome) Value() float64 {
	return o.value
}

// Child returns the sub-tree of a Child outcome, nil otherwise.
func (o Outcome) Child() *Tree {
	return o.child
}
