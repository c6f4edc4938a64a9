package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/solver"
)

// optimalMarker flags every choice whose expected value matches the optimal one.
const optimalMarker = "<----"

// winThreshold hides outcomes worth nothing from the outcome listing.
const winThreshold = 1e-6

func formatEV(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// choicesTable lists the choices of tree with their expected values.
func choicesTable(tree *solver.Tree, precision int) [][]string {
	data := [][]string{{"Choice", "Expected Value", ""}}
	optimal := 0.0
	if best, ok := tree.Optimal(); ok {
		optimal = best.ExpectedValue()
	}
	for _, ec := range tree.Choices() {
		marker := ""
		if ec.ExpectedValue() >= optimal-winThreshold {
			marker = optimalMarker
		}
		data = append(data, []string{ec.String(), formatEV(ec.ExpectedValue(), precision), marker})
	}
	return data
}

// outcomesTable lists the cards that keep some value after picking ec.
func outcomesTable(ec *solver.EvaluatedChoice, precision int) [][]string {
	data := [][]string{{"Card", "Expected Value", "Outcome"}}
	for c, o := range ec.Outcomes() {
		if o.Value() <= winThreshold {
			continue
		}
		data = append(data, []string{c.Symbol(), formatEV(o.Value(), precision), o.Kind.String()})
	}
	return data
}

func printChoices(tree *solver.Tree, precision int) {
	if tree.Len() == 0 {
		pterm.Info.Println("No decision left.")
		return
	}
	pterm.DefaultSection.Println("Choices")
	pterm.DefaultTable.WithHasHeader().WithData(choicesTable(tree, precision)).Render()
}

func printOutcomes(ec *solver.EvaluatedChoice, precision int) {
	pterm.DefaultSection.Println(ec.String())
	pterm.DefaultTable.WithHasHeader().WithData(outcomesTable(ec, precision)).Render()
}

// printTable shows the cards revealed in the current game, and the poker hand
// they form once there are enough of them.
func printTable(revealed []card.Card) {
	if len(revealed) == 0 {
		return
	}
	line := ""
	for i, c := range revealed {
		if i > 0 {
			line += " - "
		}
		line += c.Symbol()
	}
	if hand, err := card.Describe(revealed); err == nil {
		line += "  (" + hand + ")"
	}
	pterm.DefaultBox.WithTitle("Table").WithTitleTopLeft().WithHorizontalPadding(4).Println(line)
}

func printHelp() {
	pterm.DefaultSection.Println("Commands")
	pterm.DefaultTable.WithData([][]string{
		{"help", "This command"},
		{"exit", "Quit the program"},
		{"list", "Prints the choices and the expected values"},
		{"list {choice|optimal}", "Prints the cards that win with a choice"},
		{"reset", "Start over (new game)"},
		{"back", "Go back to the previous choice (if you typed the wrong card)"},
		{"deal {choice|optimal}", "Play a choice against the next card of the practice dealer (optimal if omitted)"},
		{"{card}", "Input a card, your choice is interpreted from it"},
	}).Render()

	pterm.DefaultSection.Println("Card format")
	pterm.Println("The value (or letter) of the card followed by the suit, case insensitive:")
	pterm.Println("  2H  = 2 of hearts")
	pterm.Println("  10C = 10 of clubs")
	pterm.Println("  QD  = Queen of diamonds")
	pterm.Println("  AS  = Ace of spades")

	pterm.DefaultSection.Println("How to play")
	pterm.Println("1. Pick the choice marked with " + optimalMarker + ", it has the highest expected value")
	pterm.Println("2. The dealer reveals a card: type it here, or type deal {choice} to practice")
	pterm.Println("3. Your choice is interpreted from the card and the next choices are shown")
	pterm.Println("4. Repeat until you lose or cash out, then the game starts over")
}
