package decision

import (
	"fmt"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
)

// Choice is an option of a Decision. Concrete game rules implement it; the
// solver only relies on this contract.
type Choice interface {
	fmt.Stringer

	// Score returns the factor by which the pot changes for the outcome in
	// history: 0 is a loss, 1 leaves the pot unchanged, above 1 grows it.
	// It must be pure, finite and non-negative.
	//
	// history is given backwards: index 0 is the card just revealed, index 1
	// the card seen before it, and so on. The slice is only valid for the
	// duration of the call.
	Score(history []card.Card) float64

	// Next returns the decision available when this choice does not lose.
	// An empty decision marks a terminal choice.
	Next() Decision
}

// Decision is the list of choices available at one decision point. Order is
// kept for display only. The zero value is an empty, terminal decision.
type Decision struct {
	choices []Choice
}

// New creates a Decision from the given choices.
func New(choices ...Choice) Decision {
	return Decision{choices: append([]Choice(nil), choices...)}
}

// NewWithCashout creates a Decision from the given choices followed by Cashout.
func NewWithCashout(choices ...Choice) Decision {
	d := New(choices...)
	d.choices = append(d.choices, Cashout{})
	return d
}

// Empty returns a Decision with no choices.
func Empty() Decision {
	return Decision{}
}

// Choices returns a copy of the choices, in display order.
func (d Decision) Choices() []Choice {
	return append([]Choice(nil), d.choices...)
}

// At returns the i-th choice.
func (d Decision) At(i int) Choice {
	return d.choices[i]
}

func (d Decision) Len() int {
	return len(d.choices)
}

// IsTerminal reports whether no choice is available.
func (d Decision) IsTerminal() bool {
	return len(d.choices) == 0
}

func (d Decision) String() string {
	return fmt.Sprint(d.choices)
}

// Cashout ends the game keeping the current pot: its score is always 1 and
// nothing follows it.
type Cashout struct{}

func (Cashout) Score([]card.Card) float64 {
	return 1.0
}

func (Cashout) Next() Decision {
	return Empty()
}

func (Cashout) String() string {
	return "Cashout"
}
