package game

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/decision"
	"github.com/luca-patrignani/ride-the-bus/domain/solver"
)

type pickColor card.Color

func (p pickColor) Score(history []card.Card) float64 {
	if history[0].Color() == card.Color(p) {
		return 2
	}
	return 0
}
func (p pickColor) Next() decision.Decision { return decision.NewWithCashout(pickHigher{}) }
func (p pickColor) String() string          { return card.Color(p).String() }

type pickHigher struct{}

func (pickHigher) Score(history []card.Card) float64 {
	if history[0].Rank() > history[1].Rank() {
		return 3
	}
	return 0
}
func (pickHigher) Next() decision.Decision { return decision.Empty() }
func (pickHigher) String() string          { return "Higher" }

func solve(t *testing.T) *solver.Tree {
	t.Helper()
	tree, err := solver.Solve(decision.NewWithCashout(pickColor(card.Red), pickColor(card.Black)))
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestRevealAdvances(t *testing.T) {
	w := NewWalker(solve(t))
	root := w.Current()

	step, err := w.Reveal(card.MustParse("2H"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Choice.String() != "Red" {
		t.Fatalf("expected Red, got %s", step.Choice)
	}
	if step.Finished || step.Outcome.Kind != solver.Child {
		t.Fatalf("expected to advance, got %v", step.Outcome.Kind)
	}
	if w.Depth() != 1 || w.Current() == root {
		t.Fatal("walker did not advance")
	}
	if got := w.Revealed(); len(got) != 1 || got[0] != card.MustParse("2H") {
		t.Fatalf("unexpected revealed cards %v", got)
	}
}

func TestRevealFinishes(t *testing.T) {
	w := NewWalker(solve(t))
	if _, err := w.Reveal(card.MustParse("2S")); err != nil {
		t.Fatal(err)
	}
	step, err := w.Reveal(card.MustParse("KD"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Choice.String() != "Higher" || step.Outcome.Kind != solver.Leaf || !step.Finished {
		t.Fatalf("expected a winning Higher leaf, got %s %v", step.Choice, step.Outcome.Kind)
	}
	if step.Outcome.Value() != 6 {
		t.Fatalf("expected pot 6, got %v", step.Outcome.Value())
	}
	if w.Depth() != 1 {
		t.Fatalf("a leaf must not advance, depth %d", w.Depth())
	}
}

func TestRevealLosingCardPicksCashout(t *testing.T) {
	w := NewWalker(solve(t))
	if _, err := w.Reveal(card.MustParse("KS")); err != nil {
		t.Fatal(err)
	}
	// Nothing beats a king, so the only realized value left is cashing out.
	step, err := w.Reveal(card.MustParse("3D"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Choice.String() != "Cashout" || !step.Finished {
		t.Fatalf("expected Cashout, got %s", step.Choice)
	}
}

func TestRevealAlreadySeenCard(t *testing.T) {
	w := NewWalker(solve(t))
	if _, err := w.Reveal(card.MustParse("QH")); err != nil {
		t.Fatal(err)
	}
	_, err := w.Reveal(card.MustParse("QH"))
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
	if w.Depth() != 1 {
		t.Fatal("an invalid card must not move the walker")
	}
}

func TestRevealOnEmptyTree(t *testing.T) {
	tree, err := solver.Solve(decision.Empty())
	if err != nil {
		t.Fatal(err)
	}
	w := NewWalker(tree)
	if _, err := w.Reveal(card.MustParse("2H")); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestBackAndReset(t *testing.T) {
	tree := solve(t)
	w := NewWalker(tree)
	if w.Back() {
		t.Fatal("back at the root should report false")
	}
	if _, err := w.Reveal(card.MustParse("5D")); err != nil {
		t.Fatal(err)
	}
	if !w.Back() || w.Current() != tree {
		t.Fatal("back should return to the root")
	}
	if _, err := w.Reveal(card.MustParse("5D")); err != nil {
		t.Fatal(err)
	}
	w.Reset()
	if w.Depth() != 0 || w.Current() != tree {
		t.Fatal("reset should return to the root")
	}
}

func TestListTarget(t *testing.T) {
	tree := solve(t)
	best, ok := ListTarget(tree, "optimal")
	if !ok {
		t.Fatal("expected an optimal choice")
	}
	opt, _ := tree.Optimal()
	if best.String() != opt.String() {
		t.Fatalf("expected %s, got %s", opt, best)
	}
	if ec, ok := ListTarget(tree, "Black"); !ok || ec.String() != "Black" {
		t.Fatal("expected to find Black")
	}
	if _, ok := ListTarget(tree, "Purple"); ok {
		t.Fatal("unexpected target")
	}
}

func TestPlayLosesOnWrongColor(t *testing.T) {
	w := NewWalker(solve(t))
	step, err := w.Play("Red", card.MustParse("9S"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Choice.String() != "Red" {
		t.Fatalf("expected Red to be played, got %s", step.Choice)
	}
	if step.Outcome.Kind != solver.Lost || !step.Finished {
		t.Fatalf("expected a lost game, got %v", step.Outcome.Kind)
	}
	if step.Outcome.Value() != 0 {
		t.Fatalf("expected nothing left, got %v", step.Outcome.Value())
	}
	if w.Depth() != 0 {
		t.Fatalf("a lost card must not advance, depth %d", w.Depth())
	}
}

func TestPlayAdvancesOnWinningCard(t *testing.T) {
	w := NewWalker(solve(t))
	step, err := w.Play("Black", card.MustParse("4C"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Outcome.Kind != solver.Child || step.Finished || w.Depth() != 1 {
		t.Fatalf("expected to advance, got %v at depth %d", step.Outcome.Kind, w.Depth())
	}
	// Higher is strict in this game, a lower card loses the doubled pot.
	step, err = w.Play("Higher", card.MustParse("2D"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Outcome.Kind != solver.Lost || !step.Finished {
		t.Fatalf("expected a lost game, got %v", step.Outcome.Kind)
	}
}

func TestPlayOptimal(t *testing.T) {
	tree := solve(t)
	w := NewWalker(tree)
	opt, _ := tree.Optimal()
	step, err := w.Play("optimal", card.MustParse("AH"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Choice.String() != opt.String() {
		t.Fatalf("expected %s, got %s", opt, step.Choice)
	}
}

func TestPlayCashout(t *testing.T) {
	w := NewWalker(solve(t))
	step, err := w.Play("Cashout", card.MustParse("7S"))
	if err != nil {
		t.Fatal(err)
	}
	if step.Outcome.Kind != solver.Leaf || step.Outcome.Value() != 1 || !step.Finished {
		t.Fatalf("expected to leave with the bet, got %v %v", step.Outcome.Kind, step.Outcome.Value())
	}
}

func TestPlayErrors(t *testing.T) {
	w := NewWalker(solve(t))
	if _, err := w.Play("Purple", card.MustParse("2H")); !errors.Is(err, ErrUnknownChoice) {
		t.Fatalf("expected ErrUnknownChoice, got %v", err)
	}
	if _, err := w.Play("Red", card.MustParse("2H")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Play("Higher", card.MustParse("2H")); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
	if w.Depth() != 1 {
		t.Fatal("a rejected play must not move the walker")
	}

	tree, err := solver.Solve(decision.Empty())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewWalker(tree).Play("optimal", card.MustParse("2H")); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}
