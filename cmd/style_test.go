package main

import (
	"log/slog"
	"testing"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/decision"
	"github.com/luca-patrignani/ride-the-bus/domain/ridethebus"
	"github.com/luca-patrignani/ride-the-bus/domain/solver"
)

func TestChoicesTable(t *testing.T) {
	tree, err := solver.Solve(decision.NewWithCashout(ridethebus.Hearts, ridethebus.Spades))
	if err != nil {
		t.Fatal(err)
	}
	data := choicesTable(tree, 3)
	if len(data) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(data))
	}
	// 13 winning cards out of 52 at 2.5x.
	if data[1][0] != "Hearts" || data[1][1] != "0.625" {
		t.Fatalf("unexpected row %v", data[1])
	}
	if data[3][0] != "Cashout" || data[3][1] != "1.000" || data[3][2] != optimalMarker {
		t.Fatalf("unexpected row %v", data[3])
	}
	if data[1][2] != "" {
		t.Fatalf("hearts should not be marked optimal: %v", data[1])
	}
}

func TestOutcomesTableOnlyWinners(t *testing.T) {
	tree, err := solver.Solve(decision.New(ridethebus.Clubs))
	if err != nil {
		t.Fatal(err)
	}
	clubs, ok := tree.Find("Clubs")
	if !ok {
		t.Fatal("clubs not found")
	}
	data := outcomesTable(clubs, 1)
	if len(data) != 14 {
		t.Fatalf("expected header and 13 clubs, got %d rows", len(data))
	}
	for _, row := range data[1:] {
		if row[1] != "2.5" || row[2] != "leaf" {
			t.Fatalf("unexpected row %v", row)
		}
	}
	if data[1][0] != card.MustParse("2C").Symbol() {
		t.Fatalf("expected canonical order starting at 2C, got %s", data[1][0])
	}
}

func TestPtermLevel(t *testing.T) {
	if ptermLevel(slog.LevelDebug) == ptermLevel(slog.LevelError) {
		t.Fatal("debug and error should map to different levels")
	}
}
