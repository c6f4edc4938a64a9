package solver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/decision"
)

// DefaultThreshold is the pot value under which a branch is considered lost.
const DefaultThreshold = 1e-6

var (
	// ErrChoiceContract is returned when a Choice scores a negative or non-finite value.
	ErrChoiceContract = errors.New("choice contract violation")
	// ErrDeckExhausted is returned when every card of the deck was already
	// revealed along a path and a decision still has choices.
	ErrDeckExhausted = errors.New("deck exhausted")
)

type solver struct {
	workers   int
	threshold float64
	logger    *slog.Logger
}

// Solve evaluates d and every decision reachable from it, starting with a pot
// of 1 and no revealed card. The whole tree is built before Solve returns.
func Solve(d decision.Decision, opts ...option) (*Tree, error) {
	s := solver{
		workers:   1,
		threshold: DefaultThreshold,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}

	s.logger.Debug("solving decision", "choices", d.Len(), "workers", s.workers)
	start := time.Now()
	var (
		t   *Tree
		err error
	)
	if s.workers > 1 {
		t, err = s.computeParallel(d)
	} else {
		t, err = s.compute(d, 1.0, nil)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("decision tree solved",
		"outcomes", t.OutcomeCount(),
		"nodes", t.NodeCount(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return t, nil
}

// compute evaluates every choice of d against pot, history holding the
// cards already revealed along this path, most recent first.
func (s solver) compute(d decision.Decision, pot float64, history []card.Card) (*Tree, error) {
	t, nexts, err := newTree(d, history)
	if err != nil {
		return nil, err
	}
	buf := make([]card.Card, len(history)+1)
	copy(buf[1:], history)
	for ci := range t.choices {
		ec := &t.choices[ci]
		for i, c := range t.candidates {
			buf[0] = c
			if err := s.resolve(ec, i, pot, buf, nexts[ci]); err != nil {
				return nil, err
			}
		}
	}
	t.finish()
	return t, nil
}

// computeParallel is compute for the root decision, spreading every
// (choice, card) pair over the worker pool. Each task writes its own slot so
// the result does not depend on completion order.
func (s solver) computeParallel(d decision.Decision) (*Tree, error) {
	t, nexts, err := newTree(d, nil)
	if err != nil {
		return nil, err
	}
	var g errgroup.Group
	g.SetLimit(s.workers)
	for ci := range t.choices {
		ec := &t.choices[ci]
		for i, c := range t.candidates {
			g.Go(func() error {
				return s.resolve(ec, i, 1.0, []card.Card{c}, nexts[ci])
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	t.finish()
	return t, nil
}

// resolve scores the i-th candidate of ec. history[0] is the candidate.
func (s solver) resolve(ec *EvaluatedChoice, i int, pot float64, history []card.Card, next decision.Decision) error {
	score := ec.choice.Score(history)
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return fmt.Errorf("%w: %s scored %v on %s", ErrChoiceContract, ec.choice, score, history[0])
	}
	newPot := pot * score
	switch {
	case newPot < s.threshold:
		ec.kinds[i] = Lost
		ec.values[i] = 0
	case next.IsTerminal():
		ec.kinds[i] = Leaf
		ec.values[i] = newPot
	default:
		child, err := s.compute(next, newPot, history)
		if err != nil {
			return err
		}
		ec.kinds[i] = Child
		ec.values[i] = child.optimalValue(newPot)
		ec.children[i] = child
	}
	return nil
}

// newTree allocates the tree for d with every outcome slot, and returns the
// decision following each choice.
func newTree(d decision.Decision, history []card.Card) (*Tree, []decision.Decision, error) {
	if d.IsTerminal() {
		return &Tree{nodes: 1}, nil, nil
	}
	candidates := card.SetOf(history...).Remaining()
	if len(candidates) == 0 {
		return nil, nil, fmt.Errorf("%w: %d cards already revealed", ErrDeckExhausted, len(history))
	}
	t := &Tree{
		candidates: candidates,
		choices:    make([]EvaluatedChoice, d.Len()),
	}
	nexts := make([]decision.Decision, d.Len())
	for ci := range t.choices {
		ch := d.At(ci)
		nexts[ci] = ch.Next()
		t.choices[ci] = EvaluatedChoice{
			choice: ch,
			cards:  candidates,
			kinds:  make([]Kind, len(candidates)),
			values: make([]float64, len(candidates)),
		}
		if !nexts[ci].IsTerminal() {
			t.choices[ci].children = make([]*Tree, len(candidates))
		}
	}
	return t, nexts, nil
}

// finish computes expected values and counts once every outcome is resolved.
func (t *Tree) finish() {
	t.nodes = 1
	t.outcomes = 0
	for ci := range t.choices {
		ec := &t.choices[ci]
		ec.expectedValue = stat.Mean(ec.values, nil)
		t.outcomes += ec.OutcomeCount()
		for _, child := range ec.children {
			if child != nil {
				t.nodes += child.nodes
			}
		}
	}
}
